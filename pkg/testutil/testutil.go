// Package testutil contains common test utilities.
package testutil

import (
	"os"
	"path/filepath"

	"github.com/elves/conslist/pkg/must"
)

// Cleanuper wraps the Cleanup method. It is a subset of [testing.TB], thus
// satisfied by [*testing.T] and [*testing.B].
type Cleanuper interface {
	Cleanup(func())
}

// TempDirer is a subset of [testing.TB] used by InTempDir.
type TempDirer interface {
	Cleanuper
	TempDir() string
}

// InTempDir creates a temporary directory and changes into it, changing back
// to the original working directory when the test finishes. It returns the
// path of the temporary directory, with symlinks resolved.
func InTempDir(t TempDirer) string {
	dir := must.OK1(filepath.EvalSymlinks(t.TempDir()))
	oldWd := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	t.Cleanup(func() { must.OK(os.Chdir(oldWd)) })
	return dir
}

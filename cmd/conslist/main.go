// Conslist prints sample invocations of the persistent list operations
// provided by the github.com/elves/conslist/pkg/persistent/list package.
//
// Run "conslist -help" for the supported flags. Positional arguments name the
// scenarios to show; all scenarios are shown when there are none.
package main

import (
	"os"

	"github.com/elves/conslist/pkg/buildinfo"
	"github.com/elves/conslist/pkg/demo"
	"github.com/elves/conslist/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &demo.Program{})))
}

package logutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/elves/conslist/pkg/must"
)

func TestLoggerOutput(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })

	var sb strings.Builder
	logger := GetLogger("[test] ")
	logger.Println("before")
	SetOutput(&sb)
	logger.Println("after")
	GetLogger("[late] ").Println("late logger")

	got := sb.String()
	if strings.Contains(got, "before") {
		t.Errorf("message logged before SetOutput was written: %q", got)
	}
	// Log lines have a timestamp between the prefix and the message.
	for _, want := range []string{"[test] ", "after", "[late] ", "late logger"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output %q doesn't contain %q", got, want)
		}
	}
}

func TestSetOutputFile(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	fname := filepath.Join(t.TempDir(), "log")

	if err := SetOutputFile(fname); err != nil {
		t.Fatal(err)
	}
	GetLogger("[file] ").Println("to file")
	// Switching the output closes the file, flushing everything.
	if err := SetOutputFile(""); err != nil {
		t.Fatal(err)
	}
	if got := must.ReadFileString(fname); !strings.Contains(got, "[file] ") {
		t.Errorf("log file has %q, want it to contain %q", got, "[file] ")
	}

	if err := SetOutputFile(filepath.Join(fname, "bad")); err == nil {
		t.Errorf("SetOutputFile with a bad path -> nil error")
	}
	if _, err := os.Stat(fname); err != nil {
		t.Errorf("log file disappeared: %v", err)
	}
}

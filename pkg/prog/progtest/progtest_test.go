package progtest

import (
	"io"
	"os"
	"testing"

	"github.com/elves/conslist/pkg/prog"
)

// Verify we don't deadlock if more output is written to stdout than can be
// buffered by a pipe.
func TestOutputCaptureDoesNotDeadlock(t *testing.T) {
	Test(t, noisyProgram{},
		ThatProgram().WritesStdoutContaining("hello"),
	)
}

func TestStdin(t *testing.T) {
	Test(t, echoProgram{},
		ThatProgram().WithStdin("some input").WritesStdout("some input"),
		ThatProgram().DoesNothing(),
	)
}

func TestRun(t *testing.T) {
	exit, stdout, stderr := Run(echoProgram{}, "-bad-flag")
	if exit != 2 || stdout != "" || stderr == "" {
		t.Errorf("Run -> (%v, %q, %q), want (2, \"\", non-empty)", exit, stdout, stderr)
	}
}

type noisyProgram struct{}

func (noisyProgram) Run(fds [3]*os.File, _ *prog.Flags, args []string) error {
	// We need enough data to verify whether we're likely to deadlock due to
	// filling the pipe before the test completes. Pipes typically buffer 8 to
	// 128 KiB.
	bytes := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	for i := 0; i < 128*1024/len(bytes); i++ {
		fds[1].Write(bytes)
	}
	fds[1].WriteString("hello")
	return nil
}

type echoProgram struct{}

func (echoProgram) Run(fds [3]*os.File, _ *prog.Flags, args []string) error {
	_, err := io.Copy(fds[1], fds[0])
	return err
}

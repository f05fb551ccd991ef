package ffmpeg

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrToolNotFound reports that the transcoding tool executable could not be
// located at all. It is distinct from a failed invocation.
var ErrToolNotFound = errors.New("transcoding tool not found on PATH")

// ExitFailure reports a non-zero ffmpeg exit, carrying the captured output
// streams for diagnostics.
type ExitFailure struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ExitFailure) Error() string {
	return fmt.Sprintf("ffmpeg exited with status %d", e.ExitCode)
}

// Classify converts an ExecResult into the closed outcome set:
// nil on success, ErrToolNotFound (wrapped, with the binary name) when the
// executable cannot be located, *ExitFailure on non-zero exit, and a
// generic wrapped error for anything else that went wrong launching the
// process.
func Classify(bin string, res ExecResult) error {
	if res.Err == nil {
		return nil
	}
	if errors.Is(res.Err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %q", ErrToolNotFound, bin)
	}
	var exitErr *exec.ExitError
	if errors.As(res.Err, &exitErr) {
		return &ExitFailure{
			ExitCode: exitErr.ExitCode(),
			Stdout:   res.Stdout,
			Stderr:   res.Stderr,
		}
	}
	return fmt.Errorf("running %s: %w", bin, res.Err)
}

package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// ExecResult holds the outcome of a single ffmpeg invocation: both output
// streams captured as text plus the raw process error.
type ExecResult struct {
	Stdout string
	Stderr string
	Err    error
}

// Run executes args (args[0] is the binary) as a blocking call and captures
// stdout and stderr. When verbose is set, stderr is additionally tee'd to
// os.Stderr in real time so encode progress stays visible.
func Run(ctx context.Context, verbose bool, args []string) ExecResult {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}

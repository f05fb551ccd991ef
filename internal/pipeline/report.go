package pipeline

import "time"

// RunReport records what each step of the run observed. The orchestrator
// always fills it completely; no step aborts the run.
type RunReport struct {
	ToolPresent      bool // ffmpeg resolvable after the install step.
	InputExisted     bool // Input was already on disk.
	InputSynthesized bool // Placeholder clip was created this run.
	Skipped          bool // Output existed and --force was not given.
	DryRun           bool

	ConvertErr error // nil on success or skip.
	Stdout     string
	Stderr     string
	Elapsed    time.Duration

	OutputExists bool
	OutputSize   int64
}

// Succeeded reports whether the run should exit 0: the conversion either
// succeeded or was skipped, and the output file is present on disk. The
// filesystem check is the authoritative signal; a dry run only requires
// that nothing failed.
func (r *RunReport) Succeeded() bool {
	if r.ConvertErr != nil {
		return false
	}
	return r.DryRun || r.OutputExists
}

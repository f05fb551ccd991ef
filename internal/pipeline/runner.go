// Package pipeline orchestrates the linear conversion flow:
// install -> ensure-input -> convert -> classify -> verify.
// Every step is best-effort; the run always reaches the final verify step.
package pipeline

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/backmassage/reframe/internal/config"
	"github.com/backmassage/reframe/internal/ffmpeg"
	"github.com/backmassage/reframe/internal/install"
	"github.com/backmassage/reframe/internal/logging"
)

// Run executes the full orchestration and returns the report. It never
// returns an error: failures are classified, logged, and recorded on the
// report for the caller's exit code.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunReport {
	rep := RunReport{DryRun: cfg.DryRun}

	// --- Step 1: ensure tool availability (best-effort, never fatal) ---
	rep.ToolPresent = install.EnsureTool(ctx, cfg, log)

	// --- Step 2: ensure input existence (synthesize placeholder if missing) ---
	ensureInput(ctx, cfg, log, &rep)

	// --- Step 3+4: invoke conversion and classify the outcome ---
	convert(ctx, cfg, log, &rep)

	// --- Step 5: verify output regardless of the above ---
	verifyOutput(ctx, cfg, log, &rep)

	return rep
}

// convert runs the fixed ffmpeg invocation, honoring the skip-existing
// default and dry-run mode, and logs the classified outcome.
func convert(ctx context.Context, cfg *config.Config, log *logging.Logger, rep *RunReport) {
	if cfg.SkipExisting {
		if _, err := os.Stat(cfg.OutputPath); err == nil {
			log.Warn("Skip (exists): %s (use --force to overwrite)", cfg.OutputPath)
			rep.Skipped = true
			return
		}
	}

	args := ffmpeg.BuildConvert(cfg)
	log.Info("Converting '%s' to '%s'...", cfg.InputPath, cfg.OutputPath)
	log.Debug(cfg.Verbose, "Command: %s", strings.Join(args, " "))

	if cfg.DryRun {
		log.Success("[DRY] Would run: %s", strings.Join(args, " "))
		return
	}

	start := time.Now()
	res := ffmpeg.Run(ctx, cfg.Verbose, args)
	rep.Elapsed = time.Since(start)
	rep.Stdout, rep.Stderr = res.Stdout, res.Stderr

	err := ffmpeg.Classify(args[0], res)
	rep.ConvertErr = err

	switch {
	case err == nil:
		log.Success("Conversion successful! '%s' created in %ds.",
			cfg.OutputPath, int(rep.Elapsed.Seconds()))
	case errors.Is(err, ffmpeg.ErrToolNotFound):
		log.Error("ffmpeg command not found. Please ensure ffmpeg is installed correctly (%s).",
			install.InstallHint())
	default:
		var exitErr *ffmpeg.ExitFailure
		if errors.As(err, &exitErr) {
			log.Error("Error during conversion: %v", err)
			logCaptured(log, "stdout", exitErr.Stdout)
			logCaptured(log, "stderr", exitErr.Stderr)
		} else {
			log.Error("An unexpected error occurred: %v", err)
		}
	}
}

// logCaptured logs the tail of a captured ffmpeg output stream (last 20
// lines) for diagnostics.
func logCaptured(log *logging.Logger, name, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	log.Error("ffmpeg %s:", name)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		log.Error("  %s", l)
	}
}

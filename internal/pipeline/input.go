package pipeline

import (
	"context"
	"os"
	"strings"

	"github.com/backmassage/reframe/internal/config"
	"github.com/backmassage/reframe/internal/display"
	"github.com/backmassage/reframe/internal/ffmpeg"
	"github.com/backmassage/reframe/internal/logging"
)

// ensureInput checks that the input file exists and synthesizes a short
// placeholder clip when it does not. Synthesis failure is logged but never
// aborts the run; a missing input surfaces later as a conversion failure.
func ensureInput(ctx context.Context, cfg *config.Config, log *logging.Logger, rep *RunReport) {
	if fi, err := os.Stat(cfg.InputPath); err == nil {
		rep.InputExisted = true
		log.Info("Input: %s (%s)", cfg.InputPath, display.FormatBytes(fi.Size()))
		return
	}

	log.Warn("Input '%s' not found, creating a placeholder clip (%ds, %s, %s)",
		cfg.InputPath, cfg.PlaceholderSeconds, cfg.PlaceholderSize, cfg.PlaceholderColor)

	args := ffmpeg.BuildSynthesis(cfg)
	if cfg.DryRun {
		log.Info("[DRY] Would synthesize: %s", strings.Join(args, " "))
		return
	}

	res := ffmpeg.Run(ctx, cfg.Verbose, args)
	if err := ffmpeg.Classify(args[0], res); err != nil {
		log.Warn("Placeholder synthesis failed: %v", err)
	}

	// Existence is re-checked after the attempt; the synthesis exit status
	// alone is not authoritative.
	if _, err := os.Stat(cfg.InputPath); err == nil {
		rep.InputSynthesized = true
		log.Success("Placeholder '%s' created.", cfg.InputPath)
		return
	}
	log.Warn("Could not create placeholder '%s'; the conversion step will report the failure", cfg.InputPath)
}

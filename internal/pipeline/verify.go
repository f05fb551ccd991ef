package pipeline

import (
	"context"
	"os"

	"github.com/backmassage/reframe/internal/config"
	"github.com/backmassage/reframe/internal/display"
	"github.com/backmassage/reframe/internal/logging"
	"github.com/backmassage/reframe/internal/probe"
)

// verifyOutput is the authoritative final check: it stats the output path
// regardless of how the conversion went, logs its size (or explicit
// absence), and adds a best-effort ffprobe summary of the result.
func verifyOutput(ctx context.Context, cfg *config.Config, log *logging.Logger, rep *RunReport) {
	fi, err := os.Stat(cfg.OutputPath)
	if err != nil {
		log.Warn("Output file '%s' was not created.", cfg.OutputPath)
		return
	}
	rep.OutputExists = true
	rep.OutputSize = fi.Size()

	log.Info("Output file '%s' exists and has size: %d bytes (%s)",
		cfg.OutputPath, fi.Size(), display.FormatBytes(fi.Size()))

	if inFi, err := os.Stat(cfg.InputPath); err == nil && inFi.Size() > 0 {
		delta := fi.Size() - inFi.Size()
		ratio := fi.Size() * 100 / inFi.Size()
		log.Info("Size vs input: %s (%d%% of original)",
			display.FormatBytesWithSign(delta), ratio)
	}

	// Stream summary is informational only; probe failure never fails the run.
	pr, err := probe.Probe(ctx, cfg.FFprobeBin, cfg.OutputPath)
	if err != nil {
		log.Debug(cfg.Verbose, "ffprobe summary unavailable: %v", err)
		return
	}
	if pr.Video != nil {
		log.Info("  Video: %s | %s", pr.Resolution(), pr.Video.Codec)
	}
	if pr.Audio != nil {
		log.Info("  Audio: %s | %d ch | %s",
			pr.Audio.Codec, pr.Audio.Channels, display.FormatBitrateLabel(pr.Audio.BitRate/1000))
	}
	if pr.Format.Duration > 0 {
		log.Info("  Duration: %.1fs", pr.Format.Duration)
	}
}

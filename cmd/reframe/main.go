// Command reframe is the CLI entrypoint for the reframe MP4 re-encoder.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check) or the install/synthesize/convert/verify flow.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/reframe/internal/check"
	"github.com/backmassage/reframe/internal/config"
	"github.com/backmassage/reframe/internal/display"
	"github.com/backmassage/reframe/internal/logging"
	"github.com/backmassage/reframe/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "reframe: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "reframe: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reframe: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. All output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== reframe v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputPath)
	log.Info("Out: %s", cfg.OutputPath)
	log.Info("Codec: %s (%s, CRF %d), audio %s @ %s",
		cfg.VideoCodec, cfg.Preset, cfg.CRF, cfg.AudioCodec, cfg.AudioBitrate)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}
	log.Info("")

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so an
	// in-flight ffmpeg invocation is killed and the verify step still runs.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping")
		cancel()
	}()

	// Phase 4: Run the orchestration (install -> input -> convert -> verify).
	rep := pipeline.Run(ctx, &cfg, log)

	if !rep.Succeeded() {
		return 1
	}
	return 0
}

// Package install makes a best-effort attempt to provision the ffmpeg binary
// via the OS package manager. Failures here are never fatal: a missing tool
// is surfaced later by the conversion step itself.
package install

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/backmassage/reframe/internal/config"
)

// Logger is the minimal logging interface needed by EnsureTool.
// Defined here (rather than importing the logging package) so that install
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
}

// Seams for tests: binary lookup and shell execution are swappable so the
// apt-get path can be exercised without touching the real package manager.
var (
	lookPath = exec.LookPath

	runShell = func(ctx context.Context, script string) error {
		cmd := exec.CommandContext(ctx, "sh", "-c", script)
		cmd.Stdout = nil
		cmd.Stderr = nil
		return cmd.Run()
	}
)

// aptInstallScript mirrors the legacy install command. stdout is discarded;
// the exit status is logged but not acted upon.
const aptInstallScript = "apt-get update -qq && apt-get install -y ffmpeg > /dev/null"

// EnsureTool checks for ffmpeg on PATH and, when missing, attempts an
// apt-get install. The operation is idempotent and strictly best-effort:
// every failure is logged and swallowed. Returns whether the binary is
// resolvable afterwards, for reporting only.
func EnsureTool(ctx context.Context, cfg *config.Config, log Logger) bool {
	log.Info("Checking for %s installation...", cfg.FFmpegBin)

	if path, err := lookPath(cfg.FFmpegBin); err == nil {
		log.Success("%s already present (%s)", cfg.FFmpegBin, path)
		return true
	}

	if !cfg.InstallTool {
		log.Warn("%s not found and --no-install set; proceeding anyway", cfg.FFmpegBin)
		return false
	}

	if _, err := lookPath("apt-get"); err != nil {
		log.Warn("%s not found and apt-get unavailable; %s", cfg.FFmpegBin, InstallHint())
		return false
	}

	log.Info("Installing ffmpeg...")
	if err := runShell(ctx, aptInstallScript); err != nil {
		log.Warn("Error installing ffmpeg: %v", err)
		log.Warn("Attempting to proceed, assuming ffmpeg might be available")
		return false
	}

	if path, err := lookPath(cfg.FFmpegBin); err == nil {
		log.Success("ffmpeg installed (%s)", path)
		return true
	}
	log.Warn("Install reported success but %s is still not on PATH; proceeding anyway", cfg.FFmpegBin)
	return false
}

// InstallHint returns platform-specific installation instructions for the
// message shown when automatic installation is not possible.
func InstallHint() string {
	switch runtime.GOOS {
	case "darwin":
		return "install with: brew install ffmpeg"
	case "linux":
		return "install with: apt-get install ffmpeg or yum install ffmpeg"
	case "windows":
		return "download from https://ffmpeg.org/download.html and add to PATH"
	default:
		return fmt.Sprintf("download from https://ffmpeg.org/download.html (GOOS=%s)", runtime.GOOS)
	}
}

// Package check provides system diagnostics (--check mode) for ffmpeg,
// ffprobe, and the libx264/AAC encoders the conversion relies on.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/backmassage/reframe/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool or encoder is missing.
var (
	ErrFfmpegNotFound    = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound   = errors.New("ffprobe not found on PATH")
	ErrVideoEncodeFailed = errors.New("video codec test encode failed")
	ErrAudioEncodeFailed = errors.New("audio codec test encode failed")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints the ffmpeg/ffprobe
// versions and available H.264 encoders, then runs [CheckDeps] for the
// verdict. Returns false when any required piece is missing.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	logFfmpegVersion(cfg, log)
	logFfprobe(cfg, log)
	listH264Encoders(cfg, log)

	log.Info("Testing %s and %s encoders...", cfg.VideoCodec, cfg.AudioCodec)
	if err := CheckDeps(cfg); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("%s and %s test encodes passed", cfg.VideoCodec, cfg.AudioCodec)
	return true
}

// CheckDeps validates that ffmpeg and ffprobe are on PATH and that the
// configured codec pair passes a short lavfi test encode. Returns a
// sentinel error on the first failure. The pipeline itself never calls
// this; a missing tool is surfaced by the conversion step.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.FFmpegBin); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath(cfg.FFprobeBin); err != nil {
		return ErrFfprobeNotFound
	}
	if !runSilent(cfg.FFmpegBin, videoTestArgs(cfg)...) {
		return ErrVideoEncodeFailed
	}
	if !runSilent(cfg.FFmpegBin, audioTestArgs(cfg)...) {
		return ErrAudioEncodeFailed
	}
	return nil
}

// logFfmpegVersion reports whether ffmpeg is on PATH and its version string.
func logFfmpegVersion(cfg *config.Config, log Logger) {
	if _, err := exec.LookPath(cfg.FFmpegBin); err != nil {
		log.Error("%s not found", cfg.FFmpegBin)
		return
	}
	cmd := exec.Command(cfg.FFmpegBin, "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", cfg.FFmpegBin, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffmpeg: %s", firstLine)
}

// logFfprobe reports whether ffprobe is on PATH (used for the output report).
func logFfprobe(cfg *config.Config, log Logger) {
	if _, err := exec.LookPath(cfg.FFprobeBin); err != nil {
		log.Warn("%s not found (output verification will skip stream details)", cfg.FFprobeBin)
		return
	}
	log.Success("ffprobe: found")
}

// listH264Encoders lists all H.264-related encoders reported by ffmpeg.
func listH264Encoders(cfg *config.Config, log Logger) {
	log.Info("H.264 encoders:")
	cmd := exec.Command(cfg.FFmpegBin, "-hide_banner", "-encoders")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(strings.ToLower(line), "264") {
			log.Info("  %s", strings.TrimSpace(line))
		}
	}
}

// videoTestArgs returns the ffmpeg arguments for a minimal video test encode.
func videoTestArgs(cfg *config.Config) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", cfg.VideoCodec,
		"-f", "null", "-",
	}
}

// audioTestArgs returns the ffmpeg arguments for a minimal audio test encode.
func audioTestArgs(cfg *config.Config) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", cfg.AudioCodec, "-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}

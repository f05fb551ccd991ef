// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. All defaults match the legacy convert script for parity, so
// running with no arguments re-encodes 4k.mp4 into 4k_output.mp4.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// x264Presets are the preset names libx264 accepts.
var x264Presets = map[string]bool{
	"ultrafast": true,
	"superfast": true,
	"veryfast":  true,
	"faster":    true,
	"fast":      true,
	"medium":    true,
	"slow":      true,
	"slower":    true,
	"veryslow":  true,
	"placebo":   true,
}

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (defaults match the legacy constants; overridable as
	// positional args).
	InputPath  string
	OutputPath string

	// External binaries. Overridable so tests can point at a missing or
	// fake executable.
	FFmpegBin  string // Default: "ffmpeg".
	FFprobeBin string // Default: "ffprobe".

	// Fixed encoding parameters for the conversion invocation.
	VideoCodec   string // Default: "libx264".
	Preset       string // Default: "medium".
	CRF          int    // Default: 23. Valid range 0..51.
	AudioCodec   string // Default: "aac".
	AudioBitrate string // Default: "192k".

	// Placeholder synthesis parameters, used only when the input is missing.
	PlaceholderSeconds int    // Default: 5.
	PlaceholderSize    string // Default: "1280x720".
	PlaceholderColor   string // Default: "blue".

	// Behavior flags.
	InstallTool  bool // Default: true. Cleared by --no-install.
	SkipExisting bool // Default: true. Cleared by --force.
	Force        bool // Set by --force; overwrite the output with -y.
	DryRun       bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// convert script. Used as the base before [ParseFlags] applies overrides.
func DefaultConfig() Config {
	return Config{
		InputPath:          "4k.mp4",
		OutputPath:         "4k_output.mp4",
		FFmpegBin:          "ffmpeg",
		FFprobeBin:         "ffprobe",
		VideoCodec:         "libx264",
		Preset:             "medium",
		CRF:                23,
		AudioCodec:         "aac",
		AudioBitrate:       "192k",
		PlaceholderSeconds: 5,
		PlaceholderSize:    "1280x720",
		PlaceholderColor:   "blue",
		InstallTool:        true,
		SkipExisting:       true,
		Force:              false,
		DryRun:             false,
		Verbose:            false,
		ColorMode:          ColorAuto,
		CheckOnly:          false,
	}
}

// Validate checks path, codec, and placeholder fields. It also canonicalizes
// the audio bitrate in place.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	normalizedBitrate, err := normalizeAudioBitrate(c.AudioBitrate)
	if err != nil {
		return err
	}
	c.AudioBitrate = normalizedBitrate

	if c.CRF < 0 || c.CRF > 51 {
		return fmt.Errorf("invalid CRF %d (libx264 accepts 0-51)", c.CRF)
	}
	if !x264Presets[c.Preset] {
		return fmt.Errorf("invalid preset %q (e.g. ultrafast, fast, medium, slow, veryslow)", c.Preset)
	}
	if c.VideoCodec == "" || c.AudioCodec == "" {
		return errors.New("video and audio codecs must not be empty")
	}

	if err := validatePlaceholder(c); err != nil {
		return err
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputPath == "" || c.OutputPath == "" {
		return errors.New("input and output paths must not be empty")
	}
	if c.InputPath == c.OutputPath {
		return errors.New("output path must differ from input path")
	}
	return nil
}

// validatePlaceholder checks the synthesis parameters: positive duration,
// WxH resolution, non-empty color name.
func validatePlaceholder(c *Config) error {
	if c.PlaceholderSeconds <= 0 {
		return fmt.Errorf("invalid placeholder duration %d (must be positive seconds)", c.PlaceholderSeconds)
	}
	w, h, ok := strings.Cut(c.PlaceholderSize, "x")
	wn, werr := strconv.Atoi(w)
	hn, herr := strconv.Atoi(h)
	if !ok || werr != nil || herr != nil || wn <= 0 || hn <= 0 {
		return fmt.Errorf("invalid placeholder size %q (use WxH, e.g. 1280x720)", c.PlaceholderSize)
	}
	if strings.TrimSpace(c.PlaceholderColor) == "" {
		return errors.New("placeholder color must not be empty")
	}
	return nil
}

// normalizeAudioBitrate validates and canonicalizes user bitrate input.
// Accepted forms: "192", "192k", "192K", "192kbps". Output is "<n>k".
func normalizeAudioBitrate(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", errors.New("audio bitrate must not be empty")
	}
	if strings.HasSuffix(s, "kbps") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "kbps"))
	} else if strings.HasSuffix(s, "k") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "k"))
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return "", fmt.Errorf("invalid audio bitrate %q (use positive Kbps value, e.g. 192k)", raw)
	}
	return fmt.Sprintf("%dk", n), nil
}

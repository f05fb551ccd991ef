package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into encoding, placeholder, behavior, display, and utility.
// Negated flags (e.g. --no-install) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, bad positional args).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("reframe", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineEncodingFlags(fs, cfg)
	definePlaceholderFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg, &negated)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "reframe v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noInstall -> InstallTool=false) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noInstall   bool
	force       bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineEncodingFlags registers the fixed conversion parameters:
// --video-codec, -p/--preset, -q/--crf, --audio-codec, -b/--audio-bitrate.
func defineEncodingFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.VideoCodec, "video-codec", cfg.VideoCodec, "Output video codec")
	fs.StringVar(&cfg.Preset, "preset", cfg.Preset, "x264 preset (e.g. fast, medium, slow)")
	fs.StringVar(&cfg.Preset, "p", cfg.Preset, "Same as --preset")
	fs.IntVar(&cfg.CRF, "crf", cfg.CRF, "Quality setting (lower = better, 18-28 typical)")
	fs.IntVar(&cfg.CRF, "q", cfg.CRF, "Same as --crf")
	fs.StringVar(&cfg.AudioCodec, "audio-codec", cfg.AudioCodec, "Output audio codec")
	fs.StringVar(&cfg.AudioBitrate, "audio-bitrate", cfg.AudioBitrate, "Audio bitrate (e.g. 192k)")
	fs.StringVar(&cfg.AudioBitrate, "b", cfg.AudioBitrate, "Same as --audio-bitrate")
}

// definePlaceholderFlags registers the synthetic-input parameters and binary overrides.
func definePlaceholderFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.PlaceholderSeconds, "placeholder-duration", cfg.PlaceholderSeconds, "Placeholder clip duration in seconds")
	fs.StringVar(&cfg.PlaceholderSize, "placeholder-size", cfg.PlaceholderSize, "Placeholder resolution (WxH)")
	fs.StringVar(&cfg.PlaceholderColor, "placeholder-color", cfg.PlaceholderColor, "Placeholder frame color")
	fs.StringVar(&cfg.FFmpegBin, "ffmpeg", cfg.FFmpegBin, "ffmpeg binary name or path")
	fs.StringVar(&cfg.FFprobeBin, "ffprobe", cfg.FFprobeBin, "ffprobe binary name or path")
}

// defineBehaviorFlags registers --force, --dry-run, --no-install.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.force, "force", false, "Overwrite an existing output file")
	fs.BoolVar(&n.force, "f", false, "Same as --force")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Print the ffmpeg command without running it")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&n.noInstall, "no-install", false, "Do not attempt to install ffmpeg when missing")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (tee ffmpeg stderr)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg
// (e.g. force -> SkipExisting=false, noInstall -> InstallTool=false).
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noInstall {
		cfg.InstallTool = false
	}
	if n.force {
		cfg.Force = true
		cfg.SkipExisting = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets InputPath and OutputPath from the two positional
// args. Zero positional args keep the defaults (legacy 4k.mp4 behavior).
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch len(args) {
	case 0:
		return nil
	case 2:
		cfg.InputPath = strings.TrimSpace(args[0])
		cfg.OutputPath = strings.TrimSpace(args[1])
		return nil
	default:
		return fmt.Errorf("need either no positional args or exactly input and output paths")
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "reframe v" + version + " — single-file MP4 re-encoder"},
		{"", ""},
		{"  reframe [OPTIONS] [input.mp4 output.mp4]", ""},
		{"", ""},
		{"Encoding", ""},
		{"  --video-codec <name>", "Video codec (default: libx264)"},
		{"  -p, --preset <name>", "x264 preset (default: medium)"},
		{"  -q, --crf <value>", "Quality setting (default: 23)"},
		{"  --audio-codec <name>", "Audio codec (default: aac)"},
		{"  -b, --audio-bitrate <rate>", "Audio bitrate (default: 192k)"},
		{"", ""},
		{"Placeholder input", ""},
		{"  --placeholder-duration <s>", "Synthetic clip length (default: 5)"},
		{"  --placeholder-size <WxH>", "Synthetic clip resolution (default: 1280x720)"},
		{"  --placeholder-color <name>", "Synthetic frame color (default: blue)"},
		{"", ""},
		{"Behavior", ""},
		{"  -f, --force", "Overwrite an existing output file"},
		{"  -d, --dry-run", "Print the ffmpeg command without running it"},
		{"  --no-install", "Skip the apt-get install attempt"},
		{"  --ffmpeg <path>", "ffmpeg binary (default: ffmpeg)"},
		{"  --ffprobe <path>", "ffprobe binary (default: ffprobe)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, libx264, AAC)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

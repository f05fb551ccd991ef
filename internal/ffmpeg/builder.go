// Package ffmpeg builds and executes the ffmpeg invocations: the fixed
// conversion command and the placeholder-input synthesis command.
package ffmpeg

import (
	"strconv"

	"github.com/backmassage/reframe/internal/config"
)

// BuildConvert constructs the conversion argument slice, with the binary as
// args[0]. The argument order is a fixed contract: input path, video codec,
// preset, CRF, audio codec, audio bitrate, output path. Force mode prepends
// -y so ffmpeg overwrites an existing output instead of prompting.
func BuildConvert(cfg *config.Config) []string {
	args := make([]string, 0, 16)
	args = append(args, cfg.FFmpegBin)
	if cfg.Force {
		args = append(args, "-y")
	}
	args = append(args,
		"-i", cfg.InputPath,
		"-c:v", cfg.VideoCodec,
		"-preset", cfg.Preset,
		"-crf", strconv.Itoa(cfg.CRF),
		"-c:a", cfg.AudioCodec,
		"-b:a", cfg.AudioBitrate,
		cfg.OutputPath,
	)
	return args
}

// BuildSynthesis constructs the placeholder-clip argument slice: a silent
// stereo audio source and a solid-color video source, both limited to the
// configured duration, encoded with the configured codecs and written to the
// input path.
func BuildSynthesis(cfg *config.Config) []string {
	d := strconv.Itoa(cfg.PlaceholderSeconds)
	return []string{
		cfg.FFmpegBin,
		"-hide_banner", "-nostdin", "-y", "-loglevel", "error",
		"-f", "lavfi", "-i", "anullsrc=r=44100:cl=stereo", "-t", d,
		"-f", "lavfi", "-i", "color=c=" + cfg.PlaceholderColor + ":s=" + cfg.PlaceholderSize, "-t", d,
		"-c:v", cfg.VideoCodec,
		"-c:a", cfg.AudioCodec,
		cfg.InputPath,
	}
}

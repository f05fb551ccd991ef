package ffmpeg

import (
	"reflect"
	"strings"
	"testing"

	"github.com/backmassage/reframe/internal/config"
)

func TestBuildConvert_FixedArgumentContract(t *testing.T) {
	cfg := config.DefaultConfig()

	got := BuildConvert(&cfg)
	want := []string{
		"ffmpeg",
		"-i", "4k.mp4",
		"-c:v", "libx264",
		"-preset", "medium",
		"-crf", "23",
		"-c:a", "aac",
		"-b:a", "192k",
		"4k_output.mp4",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildConvert:\n got %v\nwant %v", got, want)
	}
}

func TestBuildConvert_ForceOnlyAddsOverwrite(t *testing.T) {
	cfg := config.DefaultConfig()
	base := BuildConvert(&cfg)

	cfg.Force = true
	forced := BuildConvert(&cfg)

	if len(forced) != len(base)+1 {
		t.Fatalf("force argv length = %d, want %d", len(forced), len(base)+1)
	}
	if forced[0] != cfg.FFmpegBin || forced[1] != "-y" {
		t.Errorf("force argv should start with [%s -y], got %v", cfg.FFmpegBin, forced[:2])
	}
	if !reflect.DeepEqual(forced[2:], base[1:]) {
		t.Errorf("force argv tail differs from the fixed contract:\n got %v\nwant %v", forced[2:], base[1:])
	}
}

func TestBuildConvert_UsesConfiguredValues(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FFmpegBin = "/opt/ffmpeg/bin/ffmpeg"
	cfg.InputPath = "in.mp4"
	cfg.OutputPath = "out.mp4"
	cfg.Preset = "slow"
	cfg.CRF = 18
	cfg.AudioBitrate = "256k"

	got := strings.Join(BuildConvert(&cfg), " ")
	want := "/opt/ffmpeg/bin/ffmpeg -i in.mp4 -c:v libx264 -preset slow -crf 18 -c:a aac -b:a 256k out.mp4"
	if got != want {
		t.Errorf("BuildConvert:\n got %q\nwant %q", got, want)
	}
}

func TestBuildSynthesis_SourcesAndTarget(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputPath = "missing.mp4"

	args := BuildSynthesis(&cfg)

	if args[0] != "ffmpeg" {
		t.Errorf("args[0] = %q, want ffmpeg", args[0])
	}
	if args[len(args)-1] != "missing.mp4" {
		t.Errorf("synthesis target = %q, want missing.mp4 (writes to the input path)", args[len(args)-1])
	}

	joined := strings.Join(args, " ")
	for _, fragment := range []string{
		"-f lavfi -i anullsrc=r=44100:cl=stereo -t 5",
		"-f lavfi -i color=c=blue:s=1280x720 -t 5",
		"-c:v libx264",
		"-c:a aac",
	} {
		if !strings.Contains(joined, fragment) {
			t.Errorf("synthesis argv missing %q:\n%s", fragment, joined)
		}
	}
}

func TestBuildSynthesis_HonorsPlaceholderConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.PlaceholderSeconds = 2
	cfg.PlaceholderSize = "640x360"
	cfg.PlaceholderColor = "black"

	joined := strings.Join(BuildSynthesis(&cfg), " ")
	if !strings.Contains(joined, "color=c=black:s=640x360") {
		t.Errorf("synthesis argv missing configured color source:\n%s", joined)
	}
	if !strings.Contains(joined, "-t 2") {
		t.Errorf("synthesis argv missing configured duration:\n%s", joined)
	}
}

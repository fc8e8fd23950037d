package ffprobe

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleProbeJSON = `{
    "streams": [
        {
            "index": 0,
            "codec_name": "h264",
            "codec_type": "video",
            "profile": "High",
            "level": 40,
            "width": 1920,
            "height": 1080,
            "pix_fmt": "yuv420p",
            "has_b_frames": 2,
            "refs": 4,
            "sample_aspect_ratio": "1:1",
            "r_frame_rate": "30000/1001",
            "avg_frame_rate": "30000/1001",
            "time_base": "1/90000",
            "start_pts": 0,
            "duration_ts": 900900,
            "bit_rate": "4000000",
            "nb_frames": "300",
            "disposition": {"default": 1, "attached_pic": 0},
            "tags": {"language": "und"}
        },
        {
            "index": 1,
            "codec_name": "aac",
            "codec_type": "audio",
            "sample_fmt": "fltp",
            "sample_rate": "48000",
            "channels": 6,
            "channel_layout": "5.1",
            "r_frame_rate": "0/0",
            "time_base": "1/48000",
            "bit_rate": "384000",
            "disposition": {"default": 1, "forced": 1}
        }
    ],
    "format": {
        "filename": "sample.mkv",
        "nb_streams": 2,
        "format_name": "matroska,webm",
        "duration": "10.010000",
        "size": "5000000",
        "bit_rate": "3996003",
        "tags": {"title": "Sample", "creation_time": "2023-05-01T10:00:00.000000Z"}
    }
}`

func writeStubFFprobe(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffprobe")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub ffprobe: %v", err)
	}
	return path
}

func TestInspectDecodesStubOutput(t *testing.T) {
	stub := writeStubFFprobe(t, "#!/bin/sh\ncat <<'JSON'\n"+sampleProbeJSON+"\nJSON\n")

	result, err := Inspect(context.Background(), stub, "/media/sample.mkv")
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}

	if len(result.Streams) != 2 {
		t.Fatalf("expected 2 streams, got %d", len(result.Streams))
	}
	video := result.Streams[0]
	if video.CodecName != "h264" || video.Width != 1920 || video.Height != 1080 {
		t.Fatalf("unexpected video stream: %+v", video)
	}
	if video.Disposition["default"] != 1 {
		t.Fatalf("expected default disposition, got %v", video.Disposition)
	}
	audio := result.Streams[1]
	if audio.Channels != 6 || audio.SampleRate != "48000" {
		t.Fatalf("unexpected audio stream: %+v", audio)
	}
	if result.Format.Tags["creation_time"] != "2023-05-01T10:00:00.000000Z" {
		t.Fatalf("unexpected format tags: %v", result.Format.Tags)
	}
	if len(result.RawJSON()) == 0 {
		t.Fatal("expected raw JSON payload")
	}
}

func TestInspectReportsNotMediaOnNonZeroExit(t *testing.T) {
	stub := writeStubFFprobe(t, "#!/bin/sh\necho 'Invalid data found when processing input' >&2\nexit 1\n")

	_, err := Inspect(context.Background(), stub, "/media/readme.txt")
	if !errors.Is(err, ErrNotMedia) {
		t.Fatalf("expected ErrNotMedia, got %v", err)
	}
	if !strings.Contains(err.Error(), "Invalid data") {
		t.Fatalf("expected ffprobe stderr in error, got %q", err.Error())
	}
}

func TestInspectMissingBinaryIsHardError(t *testing.T) {
	_, err := Inspect(context.Background(), filepath.Join(t.TempDir(), "absent"), "/media/sample.mkv")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if errors.Is(err, ErrNotMedia) {
		t.Fatalf("missing binary must not classify as non-media: %v", err)
	}
}

func TestInspectRejectsMalformedJSON(t *testing.T) {
	stub := writeStubFFprobe(t, "#!/bin/sh\necho 'not json'\n")

	_, err := Inspect(context.Background(), stub, "/media/sample.mkv")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrNotMedia) {
		t.Fatalf("parse failure must not classify as non-media: %v", err)
	}
}

func TestInspectEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestValidateStreams(t *testing.T) {
	ok := Result{Streams: []Stream{{Index: 0, CodecType: "video"}, {Index: 1, CodecType: "audio"}}}
	if err := ok.ValidateStreams(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := Result{Streams: []Stream{{Index: 0, CodecType: "video"}, {Index: 1, CodecType: "  "}}}
	err := bad.ValidateStreams()
	if err == nil {
		t.Fatal("expected error for stream without codec type")
	}
	if !strings.Contains(err.Error(), "stream 1") {
		t.Fatalf("expected offending stream index in error, got %q", err.Error())
	}
}

func TestActiveDispositionsCanonicalOrder(t *testing.T) {
	s := Stream{Disposition: map[string]int{
		"forced":  1,
		"default": 1,
		"dub":     0,
		"novel":   1,
	}}
	got := s.ActiveDispositions()
	want := []string{"default", "forced", "novel"}
	if len(got) != len(want) {
		t.Fatalf("ActiveDispositions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ActiveDispositions = %v, want %v", got, want)
		}
	}

	if got := (Stream{}).ActiveDispositions(); got != nil {
		t.Fatalf("expected nil for empty disposition, got %v", got)
	}
}

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video"},
			{CodecType: "audio"},
			{CodecType: "audio"},
			{CodecType: "subtitle"},
		},
		Format: Format{
			Duration: "123.45",
			Size:     "1000",
			BitRate:  "32000",
		},
	}
	if result.VideoStreamCount() != 1 {
		t.Fatalf("expected 1 video stream, got %d", result.VideoStreamCount())
	}
	if result.AudioStreamCount() != 2 {
		t.Fatalf("expected 2 audio streams, got %d", result.AudioStreamCount())
	}
	if result.SubtitleStreamCount() != 1 {
		t.Fatalf("expected 1 subtitle stream, got %d", result.SubtitleStreamCount())
	}
	if result.DurationSeconds() != 123.45 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
	if result.SizeBytes() != 1000 {
		t.Fatalf("unexpected size: %d", result.SizeBytes())
	}
	if result.BitRate() != 32000 {
		t.Fatalf("unexpected bitrate: %d", result.BitRate())
	}
}

func TestResultHelpersHandleInvalidNumbers(t *testing.T) {
	result := Result{
		Format: Format{
			Duration: "bad",
			Size:     "-1",
			BitRate:  "nope",
		},
	}
	if !math.IsNaN(result.DurationSeconds()) {
		t.Fatalf("expected duration NaN, got %v", result.DurationSeconds())
	}
	if result.SizeBytes() != 0 {
		t.Fatalf("expected size 0, got %d", result.SizeBytes())
	}
	if result.BitRate() != 0 {
		t.Fatalf("expected bitrate 0, got %d", result.BitRate())
	}
}

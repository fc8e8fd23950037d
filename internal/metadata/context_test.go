package metadata

import (
	"fmt"
	"testing"
	"time"

	"metamv/internal/media/ffprobe"
)

func sampleResult() ffprobe.Result {
	return ffprobe.Result{
		Streams: []ffprobe.Stream{
			{
				Index:             0,
				CodecName:         "h264",
				CodecType:         "video",
				Profile:           "High",
				Level:             40,
				Width:             1920,
				Height:            1080,
				PixFmt:            "yuv420p",
				FieldOrder:        "progressive",
				HasBFrames:        2,
				Refs:              4,
				SampleAspectRatio: "1:1",
				ColorRange:        "tv",
				ColorSpace:        "bt709",
				ColorTransfer:     "bt709",
				ColorPrimaries:    "bt709",
				ChromaLocation:    "left",
				RFrameRate:        "30000/1001",
				TimeBase:          "1/90000",
				StartPTS:          0,
				DurationTS:        900900,
				BitRate:           "4000000",
				NBFrames:          "300",
				Disposition:       map[string]int{"default": 1},
			},
			{
				Index:         1,
				CodecName:     "aac",
				CodecType:     "audio",
				SampleFmt:     "fltp",
				SampleRate:    "48000",
				Channels:      6,
				ChannelLayout: "5.1",
				RFrameRate:    "0/0",
				TimeBase:      "1/48000",
				BitRate:       "384000",
				BitsPerSample: 0,
				Disposition:   map[string]int{"default": 1, "forced": 1},
			},
		},
		Format: ffprobe.Format{
			FormatName: "matroska,webm",
			Tags: map[string]string{
				"title":         "Sample",
				"encoder":       "libebml",
				"creation_time": "2023-05-01T10:00:00.000000Z",
			},
		},
	}
}

// localStamp renders the expected local-time form of a UTC instant so the
// assertions hold in any test time zone.
func localStamp(t *testing.T, utc time.Time) string {
	t.Helper()
	local := utc.In(time.Local)
	return fmt.Sprintf("%04d%02d%02d%02d%02d%02d",
		local.Year(), int(local.Month()), local.Day(),
		local.Hour(), local.Minute(), local.Second())
}

func TestExtractBuildsFlatContext(t *testing.T) {
	ctx, err := Extract(sampleResult(), "%Y%m%d%H%M%S")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if ctx["title"] != "Sample" {
		t.Fatalf("title = %v", ctx["title"])
	}
	if ctx["encoder"] != "libebml" {
		t.Fatalf("encoder = %v", ctx["encoder"])
	}

	want := localStamp(t, time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC))
	if ctx["ct"] != want {
		t.Fatalf("ct = %v, want %v", ctx["ct"], want)
	}
	if ctx["creation_time"] != want {
		t.Fatalf("creation_time = %v, want %v", ctx["creation_time"], want)
	}

	streams, ok := ctx["streams"].([]map[string]any)
	if !ok {
		t.Fatalf("streams has type %T", ctx["streams"])
	}
	if len(streams) != 2 {
		t.Fatalf("expected 2 stream entries, got %d", len(streams))
	}
	if streams[0]["index"] != 0 || streams[1]["index"] != 1 {
		t.Fatalf("stream order broken: %v / %v", streams[0]["index"], streams[1]["index"])
	}
}

func TestExtractStreamFields(t *testing.T) {
	ctx, err := Extract(sampleResult(), "%Y%m%d%H%M%S")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	streams := ctx["streams"].([]map[string]any)

	video := streams[0]
	if video["codec"] != "h264" || video["codec_medium"] != "video" {
		t.Fatalf("video codec fields: %v / %v", video["codec"], video["codec_medium"])
	}
	if video["width"] != 1920 || video["height"] != 1080 {
		t.Fatalf("video geometry: %v x %v", video["width"], video["height"])
	}
	if video["rate"] != [2]int64{30000, 1001} {
		t.Fatalf("video rate = %v", video["rate"])
	}
	if video["rate_str"] != "30000/1001" {
		t.Fatalf("video rate_str = %v", video["rate_str"])
	}
	rateFloat, ok := video["rate_float"].(float64)
	if !ok || rateFloat < 29.96 || rateFloat > 29.98 {
		t.Fatalf("video rate_float = %v", video["rate_float"])
	}
	durSec, ok := video["duration_in_sec"].(float64)
	if !ok || durSec < 10.009 || durSec > 10.011 {
		t.Fatalf("duration_in_sec = %v", video["duration_in_sec"])
	}
	if video["frames"] != int64(300) {
		t.Fatalf("frames = %v", video["frames"])
	}
	if video["disposition"] != "default" {
		t.Fatalf("video disposition = %v", video["disposition"])
	}
	if video["discard"] != "default" {
		t.Fatalf("discard = %v", video["discard"])
	}
	if video["has_b_frames"] != true {
		t.Fatalf("has_b_frames = %v", video["has_b_frames"])
	}
	if video["format"] != "yuv420p" {
		t.Fatalf("video format = %v", video["format"])
	}
	if video["aspect_ratio"] != [2]int64{1, 1} {
		t.Fatalf("aspect_ratio = %v", video["aspect_ratio"])
	}
	if video["profile"] != "High" || video["level"] != 40 {
		t.Fatalf("profile/level = %v / %v", video["profile"], video["level"])
	}
	if video["references"] != 4 {
		t.Fatalf("references = %v", video["references"])
	}

	audio := streams[1]
	if audio["rate"] != int64(48000) {
		t.Fatalf("audio rate should be the sample rate, got %v", audio["rate"])
	}
	if audio["rate_str"] != "0/0" {
		t.Fatalf("audio rate_str should keep r_frame_rate, got %v", audio["rate_str"])
	}
	if audio["rate_float"] != float64(0) {
		t.Fatalf("audio rate_float = %v", audio["rate_float"])
	}
	if audio["channels"] != 6 || audio["channel_layout"] != "5.1" {
		t.Fatalf("audio channels: %v / %v", audio["channels"], audio["channel_layout"])
	}
	if audio["format"] != "fltp" {
		t.Fatalf("audio format = %v", audio["format"])
	}
	if audio["disposition"] != "default+forced" {
		t.Fatalf("audio disposition = %v", audio["disposition"])
	}
	if audio["bit_rate"] != int64(384000) {
		t.Fatalf("audio bit_rate = %v", audio["bit_rate"])
	}
	if _, present := audio["width"]; present {
		t.Fatal("audio stream must not carry video fields")
	}
}

func TestExtractAliases(t *testing.T) {
	ctx, err := Extract(sampleResult(), "%Y%m%d%H%M%S")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	v, ok := ctx["v"].(map[string]any)
	if !ok {
		t.Fatalf("v alias missing or wrong type: %T", ctx["v"])
	}
	if v["width"] != 1920 {
		t.Fatalf("v.width = %v", v["width"])
	}
	if video := ctx["video"].(map[string]any); video["width"] != 1920 {
		t.Fatalf("video.width = %v", video["width"])
	}
	if a := ctx["a"].(map[string]any); a["channels"] != 6 {
		t.Fatalf("a.channels = %v", a["channels"])
	}
	if _, present := ctx["s"]; present {
		t.Fatal("subtitle alias must be absent when no subtitle stream exists")
	}
	if _, present := ctx["subtitle"]; present {
		t.Fatal("subtitle alias must be absent when no subtitle stream exists")
	}

	// Aliases are clones: mutating one must not leak into the streams slice.
	v["width"] = 1
	streams := ctx["streams"].([]map[string]any)
	if streams[0]["width"] != 1920 {
		t.Fatalf("alias mutation leaked into streams: %v", streams[0]["width"])
	}
}

func TestExtractFailsOnBadCreationTime(t *testing.T) {
	res := sampleResult()
	res.Format.Tags["creation_time"] = "yesterday"
	if _, err := Extract(res, "%Y%m%d%H%M%S"); err == nil {
		t.Fatal("expected error for malformed creation_time")
	}
}

func TestExtractNoTags(t *testing.T) {
	res := sampleResult()
	res.Format.Tags = nil
	ctx, err := Extract(res, "%Y%m%d%H%M%S")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if _, present := ctx["ct"]; present {
		t.Fatal("ct must be absent without a creation_time tag")
	}
	if len(ctx["streams"].([]map[string]any)) != 2 {
		t.Fatal("streams must still be present")
	}
}

func TestNormalizeDatetime(t *testing.T) {
	want := localStamp(t, time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC))

	got, err := normalizeDatetime("2023-05-01T10:00:00.000000Z", "%Y%m%d%H%M%S")
	if err != nil {
		t.Fatalf("normalizeDatetime returned error: %v", err)
	}
	if got != want {
		t.Fatalf("normalizeDatetime = %q, want %q", got, want)
	}

	// Without fractional seconds.
	got, err = normalizeDatetime("2023-05-01T10:00:00Z", "%Y%m%d%H%M%S")
	if err != nil {
		t.Fatalf("normalizeDatetime returned error: %v", err)
	}
	if got != want {
		t.Fatalf("normalizeDatetime = %q, want %q", got, want)
	}

	if _, err := normalizeDatetime(42, "%Y"); err == nil {
		t.Fatal("expected type mismatch error")
	}
	if _, err := normalizeDatetime("2023-05-01 10:00:00", "%Y"); err == nil {
		t.Fatal("expected parse error for non-RFC3339 input")
	}
}

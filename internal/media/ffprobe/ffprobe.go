package ffprobe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"sort"
	"strconv"
	"strings"
)

// ErrNotMedia reports that ffprobe could not parse the file as a media
// container. Callers treat this as a skip signal, not a failure.
var ErrNotMedia = errors.New("not a media container")

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
	raw     []byte
}

// Stream describes a single stream in the media container. String-typed
// numeric fields mirror the ffprobe wire format, which reports most large
// numbers as strings.
type Stream struct {
	Index              int               `json:"index"`
	CodecName          string            `json:"codec_name"`
	CodecLongName      string            `json:"codec_long_name"`
	CodecType          string            `json:"codec_type"`
	CodecTag           string            `json:"codec_tag_string"`
	Profile            string            `json:"profile"`
	Level              int               `json:"level"`
	Width              int               `json:"width"`
	Height             int               `json:"height"`
	PixFmt             string            `json:"pix_fmt"`
	FieldOrder         string            `json:"field_order"`
	HasBFrames         int               `json:"has_b_frames"`
	Refs               int               `json:"refs"`
	SampleAspectRatio  string            `json:"sample_aspect_ratio"`
	DisplayAspectRatio string            `json:"display_aspect_ratio"`
	ColorRange         string            `json:"color_range"`
	ColorSpace         string            `json:"color_space"`
	ColorTransfer      string            `json:"color_transfer"`
	ColorPrimaries     string            `json:"color_primaries"`
	ChromaLocation     string            `json:"chroma_location"`
	RFrameRate         string            `json:"r_frame_rate"`
	AvgFrameRate       string            `json:"avg_frame_rate"`
	TimeBase           string            `json:"time_base"`
	StartPTS           int64             `json:"start_pts"`
	StartTime          string            `json:"start_time"`
	DurationTS         int64             `json:"duration_ts"`
	Duration           string            `json:"duration"`
	BitRate            string            `json:"bit_rate"`
	MaxBitRate         string            `json:"max_bit_rate"`
	NBFrames           string            `json:"nb_frames"`
	SampleFmt          string            `json:"sample_fmt"`
	SampleRate         string            `json:"sample_rate"`
	Channels           int               `json:"channels"`
	ChannelLayout      string            `json:"channel_layout"`
	BitsPerSample      int               `json:"bits_per_sample"`
	Disposition        map[string]int    `json:"disposition"`
	Tags               map[string]string `json:"tags"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename       string            `json:"filename"`
	NBStreams      int               `json:"nb_streams"`
	FormatName     string            `json:"format_name"`
	FormatLongName string            `json:"format_long_name"`
	Duration       string            `json:"duration"`
	Size           string            `json:"size"`
	BitRate        string            `json:"bit_rate"`
	Tags           map[string]string `json:"tags"`
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// response. A non-zero ffprobe exit means the container could not be parsed
// and is reported as ErrNotMedia; every other failure (missing binary,
// cancelled context, malformed JSON) is a genuine error.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail := strings.TrimSpace(stderr.String())
			if detail == "" {
				detail = err.Error()
			}
			return Result{}, fmt.Errorf("%s: %s: %w", path, detail, ErrNotMedia)
		}
		return Result{}, fmt.Errorf("ffprobe inspect: %w", err)
	}

	var result Result
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	result.raw = append([]byte(nil), stdout.Bytes()...)
	return result, nil
}

// RawJSON returns the raw ffprobe JSON payload.
func (r Result) RawJSON() []byte {
	return append([]byte(nil), r.raw...)
}

// ValidateStreams reports the first stream ffprobe could not classify. A
// stream without a codec type carries no usable codec parameters, which
// makes the whole container unsafe to describe in a filename.
func (r Result) ValidateStreams() error {
	for _, stream := range r.Streams {
		if strings.TrimSpace(stream.CodecType) == "" {
			return fmt.Errorf("stream %d: missing codec parameters", stream.Index)
		}
	}
	return nil
}

// VideoStreamCount returns the number of video streams discovered.
func (r Result) VideoStreamCount() int {
	return r.countStreams("video")
}

// AudioStreamCount returns the number of audio streams discovered.
func (r Result) AudioStreamCount() int {
	return r.countStreams("audio")
}

// SubtitleStreamCount returns the number of subtitle streams discovered.
func (r Result) SubtitleStreamCount() int {
	return r.countStreams("subtitle")
}

func (r Result) countStreams(codecType string) int {
	count := 0
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, codecType) {
			count++
		}
	}
	return count
}

// DurationSeconds returns the container duration in seconds, or 0 when unavailable.
func (r Result) DurationSeconds() float64 {
	return parseFloat(r.Format.Duration)
}

// SizeBytes returns the reported container size in bytes, or 0 when unavailable.
func (r Result) SizeBytes() int64 {
	size := parseFloat(r.Format.Size)
	if math.IsNaN(size) || size < 0 {
		return 0
	}
	return int64(size)
}

// BitRate returns the container bitrate in bits per second, or 0 when unavailable.
func (r Result) BitRate() int64 {
	rate := parseFloat(r.Format.BitRate)
	if math.IsNaN(rate) || rate < 0 {
		return 0
	}
	return int64(rate)
}

// dispositionOrder lists disposition flags in the bit order ffmpeg defines
// them, so joined representations are stable across ffprobe versions.
var dispositionOrder = []string{
	"default",
	"dub",
	"original",
	"comment",
	"lyrics",
	"karaoke",
	"forced",
	"hearing_impaired",
	"visual_impaired",
	"clean_effects",
	"attached_pic",
	"timed_thumbnails",
	"captions",
	"descriptions",
	"metadata",
	"dependent",
	"still_image",
}

// ActiveDispositions returns the names of set disposition flags in ffmpeg's
// canonical order. Flags ffprobe reports that are unknown to this table are
// appended alphabetically after the known ones.
func (s Stream) ActiveDispositions() []string {
	if len(s.Disposition) == 0 {
		return nil
	}
	var active []string
	seen := make(map[string]struct{}, len(s.Disposition))
	for _, name := range dispositionOrder {
		if s.Disposition[name] != 0 {
			active = append(active, name)
			seen[name] = struct{}{}
		}
	}
	var extra []string
	for name, value := range s.Disposition {
		if value == 0 {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		extra = append(extra, name)
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		active = append(active, extra...)
	}
	return active
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}

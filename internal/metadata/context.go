package metadata

import (
	"maps"
	"strconv"
	"strings"

	"metamv/internal/media/ffprobe"
)

// Context is the flat per-file template context. Built fresh for every file
// and discarded after the render.
type Context map[string]any

// Extract builds the template context from a probe result. datetimeFormat is
// the strftime pattern applied to the container's creation_time tag; a tag
// that cannot be normalized fails the whole file.
func Extract(res ffprobe.Result, datetimeFormat string) (Context, error) {
	root := Context{}

	for key, value := range res.Format.Tags {
		if key == "creation_time" {
			normalized, err := normalizeDatetime(value, datetimeFormat)
			if err != nil {
				return nil, err
			}
			root["ct"] = normalized
			root[key] = normalized
			continue
		}
		root[key] = value
	}

	streams := make([]map[string]any, 0, len(res.Streams))
	for _, s := range res.Streams {
		streams = append(streams, streamContext(s))
	}
	root["streams"] = streams

	if pos, ok := BestStream(res.Streams, "video"); ok {
		root["v"] = maps.Clone(streams[pos])
		root["video"] = maps.Clone(streams[pos])
	}
	if pos, ok := BestStream(res.Streams, "audio"); ok {
		root["a"] = maps.Clone(streams[pos])
		root["audio"] = maps.Clone(streams[pos])
	}
	if pos, ok := BestStream(res.Streams, "subtitle"); ok {
		root["s"] = maps.Clone(streams[pos])
		root["subtitle"] = maps.Clone(streams[pos])
	}

	return root, nil
}

// streamContext maps one ffprobe stream onto its context entry. Generic
// fields always appear; video and audio parameter blocks appear only when
// the probe actually reported codec parameters for the stream.
func streamContext(s ffprobe.Stream) map[string]any {
	m := map[string]any{}

	m["index"] = s.Index
	timeBase := putRational(m, "time_base", s.TimeBase)
	m["start_time"] = s.StartPTS
	m["duration_stream_timebase"] = s.DurationTS
	m["duration_in_sec"] = float64(s.DurationTS) * timeBase.Float()
	m["frames"] = parseInt64(s.NBFrames)
	m["disposition"] = strings.Join(s.ActiveDispositions(), "+")
	// A freshly probed container never overrides per-stream discard.
	m["discard"] = "default"
	putRational(m, "rate", s.RFrameRate)
	m["codec_medium"] = s.CodecType
	m["codec"] = s.CodecName

	switch {
	case s.CodecType == "video" && (s.Width > 0 || s.PixFmt != ""):
		m["bit_rate"] = parseInt64(s.BitRate)
		m["max_bit_rate"] = parseInt64(s.MaxBitRate)
		m["width"] = s.Width
		m["height"] = s.Height
		m["format"] = s.PixFmt
		m["has_b_frames"] = s.HasBFrames > 0
		putRational(m, "aspect_ratio", s.SampleAspectRatio)
		m["color_space"] = s.ColorSpace
		m["color_range"] = s.ColorRange
		m["color_primaries"] = s.ColorPrimaries
		m["color_transfer_characteristic"] = s.ColorTransfer
		m["chroma_location"] = s.ChromaLocation
		m["references"] = s.Refs
		m["profile"] = s.Profile
		m["level"] = s.Level
		m["field_order"] = s.FieldOrder
	case s.CodecType == "audio" && (s.Channels > 0 || s.SampleFmt != ""):
		m["bit_rate"] = parseInt64(s.BitRate)
		m["max_bit_rate"] = parseInt64(s.MaxBitRate)
		// Overwrites the rational rate entry with the sample rate; the
		// rate_str and rate_float keys keep the r_frame_rate forms.
		m["rate"] = parseInt64(s.SampleRate)
		m["channels"] = s.Channels
		m["format"] = s.SampleFmt
		m["channel_layout"] = s.ChannelLayout
		m["bits_per_sample"] = s.BitsPerSample
	}

	return m
}

// putRational stores a fraction under three keys: key as a [num, den] pair,
// key_str as "num/den", key_float as the quotient. Unparseable input falls
// back to 0/1, ffmpeg's unknown-ratio value. Returns the stored fraction.
func putRational(m map[string]any, key, raw string) ffprobe.Rational {
	r, ok := ffprobe.ParseRational(raw)
	if !ok {
		r = ffprobe.Rational{Num: 0, Den: 1}
	}
	m[key] = r.Pair()
	m[key+"_str"] = r.String()
	m[key+"_float"] = r.Float()
	return r
}

func parseInt64(value string) int64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

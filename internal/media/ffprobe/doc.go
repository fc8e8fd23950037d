// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no metamv-specific dependencies and could be extracted
// as a standalone library.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual audio/video/subtitle stream properties
//   - Rational: ffprobe's num/den and num:den fraction strings, parsed
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns a parsed Result. A file the
//     probe cannot parse as a media container surfaces as ErrNotMedia so
//     callers can distinguish "not media" from genuine probe failures.
//
// Helper methods on Result provide stream counts, duration parsing, and
// bitrate extraction; Stream.ActiveDispositions reports set disposition
// flags in ffmpeg's canonical order.
package ffprobe

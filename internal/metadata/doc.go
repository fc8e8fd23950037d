// Package metadata turns probe results into the flat context a filename
// template is rendered against.
//
// The context is a plain map: container tags at the top level (creation_time
// additionally normalized and aliased as ct), a streams slice holding one map
// per stream in container order, and v/video, a/audio, s/subtitle aliases for
// the preferred stream of each kind. Rational quantities are stored as a
// [num, den] pair plus _str and _float companions so templates can pick
// whichever form reads best in a filename.
//
// Extraction is pure: it never touches the filesystem and builds a fresh
// context per file.
package metadata

// Package config loads, normalizes, and validates metamv configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI accepts: the ffprobe binary, the default filename template, the datetime
// normalization pattern, and log output shape. Command-line flags override
// file values; no environment variables are consulted.
//
// Always obtain settings through this package so downstream code receives
// sanitized values, canonical log formats, and clear validation errors.
package config

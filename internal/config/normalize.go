package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeProbe(); err != nil {
		return err
	}
	c.normalizeRename()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeProbe() error {
	binary := strings.TrimSpace(c.Probe.FFprobeBinary)
	if binary == "" {
		binary = defaultFFprobeBinary
	}
	// Bare names stay untouched for PATH lookup; anything path-like is
	// expanded so ~/bin/ffprobe works from the config file.
	if strings.ContainsRune(binary, '/') || strings.HasPrefix(binary, "~") {
		expanded, err := expandPath(binary)
		if err != nil {
			return fmt.Errorf("probe.ffprobe_binary: %w", err)
		}
		binary = expanded
	}
	c.Probe.FFprobeBinary = binary
	return nil
}

func (c *Config) normalizeRename() {
	// The template is deliberately left byte-for-byte intact: leading or
	// trailing spaces in a filename template are unusual but legal.
	c.Rename.DatetimeFormat = strings.TrimSpace(c.Rename.DatetimeFormat)
	if c.Rename.DatetimeFormat == "" {
		c.Rename.DatetimeFormat = defaultDatetimeFormat
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

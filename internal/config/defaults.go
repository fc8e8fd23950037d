package config

const (
	defaultFFprobeBinary  = "ffprobe"
	defaultDatetimeFormat = "%Y%m%d%H%M%S"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Probe: Probe{
			FFprobeBinary: defaultFFprobeBinary,
		},
		Rename: Rename{
			DatetimeFormat: defaultDatetimeFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

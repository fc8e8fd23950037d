package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"metamv/internal/config"
	"metamv/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

// ensureConfig loads and validates the configuration once per process. An
// explicitly requested file that does not exist is an error; falling back to
// defaults is reserved for the implicit search paths.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolvedPath, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if path != "" && !exists {
			c.configErr = fmt.Errorf("config file %s not found", resolvedPath)
			return
		}
		c.config = cfg
		c.configPath = resolvedPath
	})
	return c.config, c.configErr
}

// buildLogger constructs the process logger from the configuration with the
// persistent flags taking precedence.
func (c *commandContext) buildLogger(cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if c.logLevelFlag != nil {
		if v := strings.TrimSpace(*c.logLevelFlag); v != "" {
			level = v
		}
	}
	format := cfg.Logging.Format
	if c.logFormatFlag != nil {
		if v := strings.TrimSpace(*c.logFormatFlag); v != "" {
			format = v
		}
	}
	return logging.New(logging.Options{Level: level, Format: format})
}

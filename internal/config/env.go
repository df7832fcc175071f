package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment overrides.
const (
	EnvLogLevel  = "ENDPOINTVIEW_LOG_LEVEL"
	EnvLogFormat = "ENDPOINTVIEW_LOG_FORMAT"
	EnvPageSize  = "ENDPOINTVIEW_PAGE_SIZE"
	EnvOutput    = "ENDPOINTVIEW_OUTPUT"
	EnvNoColor   = "NO_COLOR"
)

// ApplyEnv overrides config values from the environment.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvOutput); ok && v != "" {
		c.Output.Format = strings.ToLower(v)
	}
	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPageSize, err)
		}
		c.Output.PageSize = n
	}
	if _, ok := lookupEnv(EnvNoColor); ok {
		c.Output.Color = false
	}
	return nil
}

package runtime

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	EnvLogLevel     = "CURREX_LOG_LEVEL"
	EnvMaxCallDepth = "CURREX_MAX_CALL_DEPTH"
)

const DefaultMaxCallDepth = 1024

// Config holds the knobs of a Runtime.
type Config struct {
	// Maximum number of nested function calls before a run fails with
	// ErrCallDepthExceeded.
	MaxCallDepth int

	LogLevel LogLevel
}

func DefaultConfig() Config {
	return Config{
		MaxCallDepth: DefaultMaxCallDepth,
		LogLevel:     GetLogLevel(),
	}
}

// LoadConfig builds a Config from the given dotenv files (missing files are an
// error) with the process environment taking precedence over file values.
func LoadConfig(envFiles ...string) (Config, error) {
	cfg := DefaultConfig()
	vars := map[string]string{}
	if len(envFiles) > 0 {
		fileVars, err := godotenv.Read(envFiles...)
		if err != nil {
			return cfg, fmt.Errorf("reading env files %v: %w", envFiles, err)
		}
		vars = fileVars
		Debug("loaded %d settings from %v", len(fileVars), envFiles)
	}
	for _, key := range []string{EnvLogLevel, EnvMaxCallDepth} {
		if val, ok := os.LookupEnv(key); ok {
			vars[key] = val
		}
	}
	return cfg.apply(vars)
}

func (c Config) apply(vars map[string]string) (Config, error) {
	if s, ok := vars[EnvLogLevel]; ok && s != "" {
		level, err := ParseLogLevel(s)
		if err != nil {
			return c, fmt.Errorf("%w: %s: %v", ErrInvalidConfigValue, EnvLogLevel, err)
		}
		c.LogLevel = level
	}
	if s, ok := vars[EnvMaxCallDepth]; ok && s != "" {
		depth, err := strconv.Atoi(s)
		if err != nil || depth <= 0 {
			return c, fmt.Errorf("%w: %s must be a positive integer, got %q", ErrInvalidConfigValue, EnvMaxCallDepth, s)
		}
		c.MaxCallDepth = depth
	}
	return c, nil
}

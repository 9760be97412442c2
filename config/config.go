// Package config provides runtime settings loaded from environment variables
// with defaults and validation, plus the fixed constants of the bot (role
// names, control emojis, default message templates).
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings of the bot.
type Config struct {
	Token     string // DISCORD_TOKEN, required
	DataDir   string // DATA_DIR, directory holding the bolt file
	Prefix    string // COMMAND_PREFIX
	ProbePort string // PROBE_PORT, keep-alive HTTP port
	TZName    string // TZ_NAME, scheduler time zone
	LogLevel  string // LOG_LEVEL
	LogPretty bool   // LOG_PRETTY, console writer instead of JSON
}

// Load reads the configuration from environment variables, applies defaults
// and validates the result.
func Load() (Config, error) {
	cfg := Config{
		Token:     strings.TrimSpace(os.Getenv("DISCORD_TOKEN")),
		DataDir:   getenv("DATA_DIR", "data"),
		Prefix:    getenv("COMMAND_PREFIX", "!"),
		ProbePort: getenv("PROBE_PORT", "8080"),
		TZName:    getenv("TZ_NAME", "Europe/Paris"),
		LogLevel:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty: getbool("LOG_PRETTY", false),
	}

	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}

	if cfg.Token == "" {
		return cfg, errors.New("DISCORD_TOKEN must be set")
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		return cfg, errors.New("DATA_DIR must not be empty")
	}
	if cfg.Prefix == "" {
		return cfg, errors.New("COMMAND_PREFIX must not be empty")
	}
	if _, err := strconv.Atoi(cfg.ProbePort); err != nil {
		return cfg, errors.New("PROBE_PORT must be a port number")
	}
	if _, err := time.LoadLocation(cfg.TZName); err != nil {
		return cfg, errors.New("TZ_NAME must be a valid IANA time zone")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	return cfg, nil
}

// Location resolves the scheduler time zone. Load validated the name.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TZName)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return def
}

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/platter/internal/mealdb"
)

// Config captures where platter fetches from and where it logs.
type Config struct {
	Source Source
	Log    Log
}

// Source describes the upstream catalog endpoint and its record shape.
type Source struct {
	Endpoint   string
	ListKey    string
	IDField    string
	NameField  string
	ImageField string
	UserAgent  string
	// RequestTimeout of zero leaves the transport default in place.
	RequestTimeout time.Duration
	DiscardStale   bool
}

// Log holds the log file location and minimum level.
type Log struct {
	File  string
	Level slog.Level
}

const (
	defaultConfigPath = "~/.config/platter/config.toml"
	defaultLogFile    = "~/.local/state/platter/platter.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Source: Source{
			Endpoint:   mealdb.DefaultEndpoint,
			ListKey:    mealdb.DefaultSchema.ListKey,
			IDField:    mealdb.DefaultSchema.IDField,
			NameField:  mealdb.DefaultSchema.NameField,
			ImageField: mealdb.DefaultSchema.ImageField,
			UserAgent:  mealdb.DefaultUserAgent,
		},
		Log: Log{
			File:  mustExpand(defaultLogFile),
			Level: slog.LevelInfo,
		},
	}
}

// Load locates and parses the platter config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Source struct {
			Endpoint       string `toml:"endpoint"`
			ListKey        string `toml:"list_key"`
			IDField        string `toml:"id_field"`
			NameField      string `toml:"name_field"`
			ImageField     string `toml:"image_field"`
			UserAgent      string `toml:"user_agent"`
			RequestTimeout string `toml:"request_timeout"`
			DiscardStale   bool   `toml:"discard_stale"`
		} `toml:"source"`
		Log struct {
			File  string `toml:"file"`
			Level string `toml:"level"`
		} `toml:"log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	src := &cfg.Source
	src.Endpoint = orDefault(raw.Source.Endpoint, mealdb.DefaultEndpoint)
	src.ListKey = orDefault(raw.Source.ListKey, mealdb.DefaultSchema.ListKey)
	src.IDField = orDefault(raw.Source.IDField, mealdb.DefaultSchema.IDField)
	src.NameField = orDefault(raw.Source.NameField, mealdb.DefaultSchema.NameField)
	src.ImageField = orDefault(raw.Source.ImageField, mealdb.DefaultSchema.ImageField)
	src.UserAgent = orDefault(raw.Source.UserAgent, mealdb.DefaultUserAgent)
	src.DiscardStale = raw.Source.DiscardStale

	if timeout := strings.TrimSpace(raw.Source.RequestTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: source.request_timeout: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("parse config: source.request_timeout must not be negative")
		}
		src.RequestTimeout = d
	}

	cfg.Log.File = mustExpand(orDefault(raw.Log.File, defaultLogFile))
	if level := strings.TrimSpace(raw.Log.Level); level != "" {
		parsed, err := ParseLevel(level)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: log.level: %w", err)
		}
		cfg.Log.Level = parsed
	}

	return cfg, nil
}

// ParseLevel accepts debug, info, warn (or warning) and error, case-insensitively.
func ParseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q", value)
	}
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

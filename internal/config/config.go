// Package config reads server settings from the environment.
//
// Environment variables:
//
//	COLOR_ASSIST_LOG_LEVEL      zerolog level name (default "info")
//	COLOR_ASSIST_SAMPLE_RADIUS  tap sampling radius in pixels (default 3)
//	COLOR_ASSIST_OCR_LANGUAGE   Tesseract language for kit labels (default "eng")
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironsheep/color-assist-mcp/internal/colorspace"
)

// Environment variable names.
const (
	EnvLogLevel     = "COLOR_ASSIST_LOG_LEVEL"
	EnvSampleRadius = "COLOR_ASSIST_SAMPLE_RADIUS"
	EnvOCRLanguage  = "COLOR_ASSIST_OCR_LANGUAGE"
)

// MaxSampleRadius bounds the sampling radius so a single tap stays local.
const MaxSampleRadius = 64

// Config holds the server settings.
type Config struct {
	LogLevel     zerolog.Level
	SampleRadius int
	OCRLanguage  string
}

// Default returns the settings used when no variables are set.
func Default() Config {
	return Config{
		LogLevel:     zerolog.InfoLevel,
		SampleRadius: colorspace.DefaultSampleRadius,
		OCRLanguage:  "eng",
	}
}

// Load reads the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads settings through getenv, so tests can supply their own
// lookup. Unset or blank variables keep their defaults.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v := strings.TrimSpace(getenv(EnvSampleRadius)); v != "" {
		r, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSampleRadius, err)
		}
		if r < 0 || r > MaxSampleRadius {
			return cfg, fmt.Errorf("%s: radius %d out of range [0, %d]", EnvSampleRadius, r, MaxSampleRadius)
		}
		cfg.SampleRadius = r
	}

	if v := strings.TrimSpace(getenv(EnvOCRLanguage)); v != "" {
		cfg.OCRLanguage = v
	}

	return cfg, nil
}

// NewLogger builds a console logger at the configured level. Pass stderr:
// stdout carries the MCP protocol.
func (c Config) NewLogger(w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(out).
		Level(c.LogLevel).
		With().
		Timestamp().
		Logger()
}

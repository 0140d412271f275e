package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Errorf("LogLevel: got %v", cfg.LogLevel)
	}
	if cfg.SampleRadius != 3 {
		t.Errorf("SampleRadius: got %d, want 3", cfg.SampleRadius)
	}
	if cfg.OCRLanguage != "eng" {
		t.Errorf("OCRLanguage: got %q", cfg.OCRLanguage)
	}
}

func TestLoadFrom(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr string
	}{
		{
			name: "empty environment",
			env:  map[string]string{},
			want: Default(),
		},
		{
			name: "all set",
			env: map[string]string{
				EnvLogLevel:     "DEBUG",
				EnvSampleRadius: "5",
				EnvOCRLanguage:  "deu",
			},
			want: Config{LogLevel: zerolog.DebugLevel, SampleRadius: 5, OCRLanguage: "deu"},
		},
		{
			name: "blank values keep defaults",
			env:  map[string]string{EnvLogLevel: "  ", EnvOCRLanguage: ""},
			want: Default(),
		},
		{
			name: "zero radius allowed",
			env:  map[string]string{EnvSampleRadius: "0"},
			want: Config{LogLevel: zerolog.InfoLevel, SampleRadius: 0, OCRLanguage: "eng"},
		},
		{
			name:    "bad level",
			env:     map[string]string{EnvLogLevel: "loud"},
			wantErr: EnvLogLevel,
		},
		{
			name:    "non-numeric radius",
			env:     map[string]string{EnvSampleRadius: "three"},
			wantErr: EnvSampleRadius,
		},
		{
			name:    "negative radius",
			env:     map[string]string{EnvSampleRadius: "-1"},
			wantErr: EnvSampleRadius,
		},
		{
			name:    "radius too large",
			env:     map[string]string{EnvSampleRadius: "1000"},
			wantErr: EnvSampleRadius,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadFrom(envMap(tt.env))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error mentioning %s", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not name %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFrom failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv(EnvSampleRadius, "7")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SampleRadius != 7 {
		t.Errorf("SampleRadius: got %d, want 7", cfg.SampleRadius)
	}
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogLevel = zerolog.WarnLevel
	logger := cfg.NewLogger(&buf)

	logger.Info().Msg("hidden")
	logger.Warn().Str("tool", "color_classify").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "color_classify") {
		t.Errorf("warn message missing: %q", out)
	}
}

package config

import (
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/flow/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.Log.Level != DefaultLogLevel || cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log = %+v, want %s/%s", cfg.Log, DefaultLogLevel, DefaultLogFormat)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be true by default")
	}
	if cfg.Metrics.Path != DefaultMetricsPath {
		t.Errorf("Metrics.Path = %q, want %q", cfg.Metrics.Path, DefaultMetricsPath)
	}
	if cfg.Tracing.Enabled {
		t.Error("Tracing.Enabled should be false by default")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Missing config means defaults
	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error for missing config: %v", err)
	}
	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	configJSON := `{
  "serve": {
    "host": "0.0.0.0",
    "port": 8080
  },
  "log": {
    "level": "debug",
    "format": "json"
  },
  "metrics": {
    "enabled": false
  },
  "tracing": {
    "enabled": true,
    "tracerName": "gallery"
  }
}
`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Serve.Port != 8080 {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, 8080)
	}
	if cfg.Serve.Host != "0.0.0.0" {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, "0.0.0.0")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be false")
	}
	if cfg.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultMetricsNamespace)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.TracerName != "gallery" {
		t.Errorf("Tracing = %+v, want enabled gallery", cfg.Tracing)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	if err := os.WriteFile(configPath, []byte("not valid json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "E120") {
		t.Errorf("Expected E120 error, got: %v", err)
	}
}

func TestLoadFile_ErrorLocation(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
		wantCol  int
	}{
		{"syntax error", "{\n  \"serve\": {,\n}\n", 2, 13},
		{"wrong type", "{\n  \"serve\": {\n    \"port\": \"eighty\"\n  }\n}\n", 3, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), ConfigFileName)
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := LoadFile(configPath)
			var fe *errors.Error
			if !stderrors.As(err, &fe) || fe.Code != "E120" {
				t.Fatalf("error = %v, want E120", err)
			}
			if fe.Location == nil {
				t.Fatal("Location is nil")
			}
			if fe.Location.File != configPath {
				t.Errorf("Location.File = %q, want %q", fe.Location.File, configPath)
			}
			if fe.Location.Line != tt.wantLine || fe.Location.Column != tt.wantCol {
				t.Errorf("Location = %d:%d, want %d:%d", fe.Location.Line, fe.Location.Column, tt.wantLine, tt.wantCol)
			}
			if len(fe.Context) == 0 {
				t.Error("Context should hold the surrounding lines")
			}
			if fe.Example == "" {
				t.Error("Example should show a valid flow.json")
			}
			if fe.Wrapped == nil {
				t.Error("error should wrap the json cause")
			}
		})
	}
}

func TestPosition(t *testing.T) {
	data := []byte("ab\ncd\nef")
	tests := []struct {
		offset    int64
		line, col int
	}{
		{1, 1, 1},
		{2, 1, 2},
		{4, 2, 1},
		{8, 3, 2},
		{0, 1, 1},
		{99, 3, 3},
	}
	for _, tt := range tests {
		line, col := position(data, tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("position(%d) = %d:%d, want %d:%d", tt.offset, line, col, tt.line, tt.col)
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))

	var fe *errors.Error
	if !stderrors.As(err, &fe) || fe.Code != "E120" {
		t.Fatalf("error = %v, want E120", err)
	}
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Error("error should wrap os.ErrNotExist")
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	cfg.Serve.Port = 9000
	cfg.Metrics.Enabled = false

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	loaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Serve.Port != 9000 {
		t.Errorf("Serve.Port = %d, want %d", loaded.Serve.Port, 9000)
	}
	if loaded.Metrics.Enabled {
		t.Error("Metrics.Enabled should survive a round trip as false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Config)
		wantCode string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative port", func(c *Config) { c.Serve.Port = -1 }, "E122"},
		{"port too large", func(c *Config) { c.Serve.Port = 70000 }, "E122"},
		{"port zero", func(c *Config) { c.Serve.Port = 0 }, ""},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "E121"},
		{"upper-case level", func(c *Config) { c.Log.Level = "DEBUG" }, ""},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "E121"},
		{"relative metrics path", func(c *Config) { c.Metrics.Path = "metrics" }, "E120"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var fe *errors.Error
			if !stderrors.As(err, &fe) || fe.Code != tt.wantCode {
				t.Errorf("Validate() = %v, want %s", err, tt.wantCode)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	cfg := New()
	cfg.Serve.Port = 8080
	cfg.Serve.Host = "0.0.0.0"

	if got := cfg.Address(); got != "0.0.0.0:8080" {
		t.Errorf("Address = %q, want %q", got, "0.0.0.0:8080")
	}
	if got := cfg.URL(); got != "http://0.0.0.0:8080" {
		t.Errorf("URL = %q, want %q", got, "http://0.0.0.0:8080")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := New()
		cfg.Log.Level = tt.level
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()

	if Exists(tmpDir) {
		t.Error("Exists should be false for empty directory")
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	if !Exists(tmpDir) {
		t.Error("Exists should be true after creating config")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultMetricsNamespace)
	}
	if cfg.Tracing.TracerName != DefaultTracerName {
		t.Errorf("Tracing.TracerName = %q, want %q", cfg.Tracing.TracerName, DefaultTracerName)
	}
}

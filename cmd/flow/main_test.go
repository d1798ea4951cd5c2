package main

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/flow/internal/config"
	"github.com/vango-dev/flow/internal/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	errors.DisableColors()
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", strings.TrimSpace(out), version)
	}

	out, err = execute(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.Contains(out, "Go version:") {
		t.Errorf("version output missing Go version: %q", out)
	}
}

func TestCodesCmd(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "codes")
		if err != nil {
			t.Fatalf("codes error: %v", err)
		}
		for _, want := range []string{"W001", "W009", "E120", "E144"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %s", want)
			}
		}
	})

	t.Run("json by category", func(t *testing.T) {
		out, err := execute(t, "codes", "--format", "json", "--category", "render")
		if err != nil {
			t.Fatalf("codes error: %v", err)
		}
		var entries []codeEntry
		if err := json.Unmarshal([]byte(out), &entries); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(entries) != 9 {
			t.Errorf("len(entries) = %d, want 9", len(entries))
		}
		for _, e := range entries {
			if e.Severity != "warning" {
				t.Errorf("%s severity = %q, want warning", e.Code, e.Severity)
			}
		}
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := execute(t, "codes", "--format", "yaml")
		if err != nil {
			t.Fatalf("codes error: %v", err)
		}
		var entries []codeEntry
		if err := yaml.Unmarshal([]byte(out), &entries); err != nil {
			t.Fatalf("invalid YAML: %v", err)
		}
		if len(entries) != len(errors.GetAllCodes()) {
			t.Errorf("len(entries) = %d, want %d", len(entries), len(errors.GetAllCodes()))
		}
		if entries[0].Code != "E120" {
			t.Errorf("first code = %q, want E120", entries[0].Code)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := execute(t, "codes", "--format", "xml"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestExplainCmd(t *testing.T) {
	out, err := execute(t, "explain", "w004")
	if err != nil {
		t.Fatalf("explain error: %v", err)
	}
	if !strings.Contains(out, "WARNING W004") {
		t.Errorf("explain output = %q, want WARNING W004 header", out)
	}

	out, err = execute(t, "explain", "E122", "--json")
	if err != nil {
		t.Fatalf("explain error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["code"] != "E122" {
		t.Errorf("code = %v, want E122", decoded["code"])
	}

	_, err = execute(t, "explain", "W999")
	var fe *errors.Error
	if !stderrors.As(err, &fe) || fe.Code != "E144" {
		t.Errorf("explain unknown error = %v, want E144", err)
	}
}

func TestRenderCmd(t *testing.T) {
	dir := t.TempDir()

	t.Run("page", func(t *testing.T) {
		out, err := execute(t, "render", "if-chain", "-c", dir)
		if err != nil {
			t.Fatalf("render error: %v", err)
		}
		if strings.TrimSpace(out) != "<p>Grade C</p>" {
			t.Errorf("render = %q, want <p>Grade C</p>", out)
		}
	})

	t.Run("document to file", func(t *testing.T) {
		path := filepath.Join(dir, "page.html")
		if _, err := execute(t, "render", "let-binding", "-d", "-o", path, "-c", dir); err != nil {
			t.Fatalf("render error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(data), `<html lang="en">`) || !strings.Contains(string(data), "<h1>Let</h1>") {
			t.Errorf("document = %q", data)
		}
	})

	t.Run("warnings are logged", func(t *testing.T) {
		cmd := newRootCmd()
		var out, errOut bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs([]string{"render", "switch-two-defaults", "-c", dir})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("render error: %v", err)
		}
		if !strings.Contains(errOut.String(), "code=W007") {
			t.Errorf("stderr = %q, want code=W007", errOut.String())
		}
	})

	t.Run("list", func(t *testing.T) {
		out, err := execute(t, "render", "--list")
		if err != nil {
			t.Fatalf("render --list error: %v", err)
		}
		if !strings.Contains(out, "for-in-and-of") || !strings.Contains(out, "W001") {
			t.Errorf("list output = %q", out)
		}
	})

	t.Run("check", func(t *testing.T) {
		out, err := execute(t, "render", "--check")
		if err != nil {
			t.Fatalf("render --check error: %v\n%s", err, out)
		}
	})

	t.Run("unknown page", func(t *testing.T) {
		_, err := execute(t, "render", "nope", "-c", dir)
		var fe *errors.Error
		if !stderrors.As(err, &fe) || fe.Code != "E143" {
			t.Errorf("error = %v, want E143", err)
		}
	})

	t.Run("missing page", func(t *testing.T) {
		if _, err := execute(t, "render"); err == nil {
			t.Error("expected error without a page name")
		}
	})
}

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, "init", "-c", dir, "--port", "8080"); err != nil {
		t.Fatalf("init error: %v", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Serve.Port != 8080 {
		t.Errorf("Serve.Port = %d, want 8080", cfg.Serve.Port)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should default to true")
	}

	if _, err := execute(t, "init", "-c", dir); err == nil {
		t.Error("expected error when flow.json exists")
	}
	if _, err := execute(t, "init", "-c", dir, "--force"); err != nil {
		t.Fatalf("init --force error: %v", err)
	}
	cfg, err = config.Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Serve.Port != config.DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, config.DefaultPort)
	}

	_, err = execute(t, "init", "-c", t.TempDir(), "--port", "70000")
	var fe *errors.Error
	if !stderrors.As(err, &fe) || fe.Code != "E122" {
		t.Errorf("error = %v, want E122", err)
	}
}

func TestNoColor(t *testing.T) {
	errors.EnableColors()
	defer errors.DisableColors()

	out, err := execute(t, "render", "--check")
	if err != nil {
		t.Fatalf("render --check error: %v", err)
	}
	if !strings.Contains(out, "\033[32m✓\033[0m for-list") {
		t.Errorf("colored output = %q, want green check", out)
	}

	out, err = execute(t, "render", "--check", "--no-color")
	if err != nil {
		t.Fatalf("render --check error: %v", err)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("output with --no-color contains ANSI escapes: %q", out)
	}
	if !strings.Contains(out, "✓ for-list") {
		t.Errorf("output = %q, want plain check for for-list", out)
	}
}

func TestGlobalOptions_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "flow.json"), []byte(`{"serve":{"port":99999}}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "render", "if-chain", "-c", dir)
	var fe *errors.Error
	if !stderrors.As(err, &fe) || fe.Code != "E122" {
		t.Errorf("error = %v, want E122", err)
	}

	_, err = execute(t, "render", "if-chain", "-c", t.TempDir(), "--log-level", "loud")
	if !stderrors.As(err, &fe) || fe.Code != "E121" {
		t.Errorf("error = %v, want E121", err)
	}
}

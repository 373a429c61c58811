package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSettings(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(body), 0600); err != nil {
		t.Fatalf("write settings: %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	cfg, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SeedCount != 30 || cfg.LabelTemplate != "Task # %d" || cfg.WaterMax != 10 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.UsesGoogle() {
		t.Error("default config should not use Google Tasks")
	}
}

func TestNew_SettingsFile(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, `
seed_count = 5
label_template = "Stretch %d"
water_max = 8
from_list = "Wellness"
`)

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SeedCount != 5 {
		t.Errorf("SeedCount = %d, want 5", cfg.SeedCount)
	}
	if cfg.LabelTemplate != "Stretch %d" {
		t.Errorf("LabelTemplate = %q", cfg.LabelTemplate)
	}
	if cfg.WaterMax != 8 {
		t.Errorf("WaterMax = %d, want 8", cfg.WaterMax)
	}
	if cfg.FromList != "Wellness" || !cfg.UsesGoogle() {
		t.Errorf("FromList = %q", cfg.FromList)
	}
}

func TestNew_SettingsZeroCountKept(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "seed_count = 0\n")

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SeedCount != 0 {
		t.Errorf("SeedCount = %d, want 0", cfg.SeedCount)
	}
}

func TestNew_InvalidSettings(t *testing.T) {
	tests := []struct {
		body string
		msg  string
	}{
		{"seed_count = -1\n", "seed count must not be negative"},
		{"water_max = 0\n", "water max must be at least 1"},
		{"label_template = \"no verb\"\n", "label template must contain %d"},
		{"colour = \"blue\"\n", "unknown key: colour"},
		{"seed_count = \n", SettingsFile},
	}
	for _, tt := range tests {
		dir := t.TempDir()
		writeSettings(t, dir, tt.body)

		_, err := New(dir)
		if !errors.Is(err, ErrInvalidSettings) {
			t.Errorf("body %q: expected ErrInvalidSettings, got %v", tt.body, err)
			continue
		}
		if !strings.Contains(err.Error(), tt.msg) {
			t.Errorf("body %q: error %q does not mention %q", tt.body, err, tt.msg)
		}
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/tmp/xdg", AppName) {
		t.Errorf("DefaultConfigDir() = %q", got)
	}
}

func TestTokenFiles(t *testing.T) {
	cfg, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HasToken() || cfg.HasOAuthClient() {
		t.Fatal("fresh dir should have no credentials")
	}
	if err := os.WriteFile(cfg.TokenPath(), []byte("{}"), 0600); err != nil {
		t.Fatalf("write token: %v", err)
	}
	if !cfg.HasToken() {
		t.Error("HasToken() should be true after writing token")
	}
	if err := cfg.RemoveToken(); err != nil {
		t.Fatalf("RemoveToken: %v", err)
	}
	if cfg.HasToken() {
		t.Error("HasToken() should be false after RemoveToken")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{}
	cfg.Logger(&buf).Print("hidden")
	if buf.Len() != 0 {
		t.Errorf("non-debug logger wrote %q", buf.String())
	}

	cfg.Debug = true
	cfg.Logger(&buf).Print("shown")
	if !strings.Contains(buf.String(), "wellness: ") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug logger wrote %q", buf.String())
	}
}

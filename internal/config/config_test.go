package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 360 {
		t.Errorf("expected height 360, got %d", cfg.Window.Height)
	}
	if cfg.Window.Title == "" {
		t.Error("expected a default window title")
	}

	if cfg.Input.BindingsPath != "bindings.xml" {
		t.Errorf("expected bindings path 'bindings.xml', got %s", cfg.Input.BindingsPath)
	}
	if cfg.Input.SaveOnExit {
		t.Error("expected save_on_exit to be false by default")
	}

	if cfg.Probe.FrameRate != 60 {
		t.Errorf("expected frame rate 60, got %d", cfg.Probe.FrameRate)
	}
	if cfg.Probe.ReportEvery != 30 {
		t.Errorf("expected report_every 30, got %d", cfg.Probe.ReportEvery)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  title: "probe test"
  width: 800
  height: 600

input:
  bindings_path: "custom.xml"
  save_on_exit: true

probe:
  frame_rate: 30

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Window.Title != "probe test" {
		t.Errorf("expected title 'probe test', got %s", cfg.Window.Title)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Input.BindingsPath != "custom.xml" {
		t.Errorf("expected bindings path 'custom.xml', got %s", cfg.Input.BindingsPath)
	}
	if !cfg.Input.SaveOnExit {
		t.Error("expected save_on_exit true")
	}
	if cfg.Probe.FrameRate != 30 {
		t.Errorf("expected frame rate 30, got %d", cfg.Probe.FrameRate)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %s", cfg.Logging.Level)
	}

	// unset fields keep their defaults
	if cfg.Probe.ReportEvery != 30 {
		t.Errorf("expected default report_every 30, got %d", cfg.Probe.ReportEvery)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for explicit missing config path")
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Window.Width = 1024

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Window.Width != 1024 {
		t.Errorf("expected width 1024 after round trip, got %d", loaded.Window.Width)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Touka01/holbertonschool-back-end/pkg/todoapi"
)

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.BaseURL != todoapi.DefaultBaseURL {
		t.Errorf("Expected base URL %s, got %s", todoapi.DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Timeout != todoapi.DefaultTimeout {
		t.Errorf("Expected timeout %s, got %s", todoapi.DefaultTimeout, cfg.Timeout)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn', got '%s'", cfg.LogLevel)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &Config{BaseURL: "http://localhost:8080", Timeout: 3 * time.Second, LogLevel: "debug"}

	if err := SaveFile(want, path); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600, got %o", info.Mode().Perm())
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if *got != *want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestLoadFileEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("base_url: http://from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TASKREPORT_BASE_URL", "http://from-env")
	t.Setenv("TASKREPORT_TIMEOUT", "250ms")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.BaseURL != "http://from-env" {
		t.Errorf("Expected env base URL, got %s", cfg.BaseURL)
	}
	if cfg.Timeout != 250*time.Millisecond {
		t.Errorf("Expected 250ms timeout, got %s", cfg.Timeout)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("base_url: [unclosed\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("Expected error for malformed config")
	}
}

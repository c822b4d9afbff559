package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoader_Load_Defaults(t *testing.T) {
	// Unset env vars to ensure a clean test
	os.Unsetenv("LESSONCTL_API_URL")

	// Mock home directory to avoid polluting user's home
	tmpDir, err := os.MkdirTemp("", "home")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)
	t.Setenv("HOME", tmpDir)

	loader := NewLoader()
	cfg, err := loader.Load()

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.APIURL != "http://localhost:8080" {
		t.Errorf("wrong APIURL: got %s", cfg.APIURL)
	}
	if cfg.TimeoutMS != 30000 {
		t.Errorf("wrong TimeoutMS: got %d", cfg.TimeoutMS)
	}
	if cfg.CacheTTLMS != 30000 {
		t.Errorf("wrong CacheTTLMS: got %d", cfg.CacheTTLMS)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("wrong LogLevel: got %s", cfg.LogLevel)
	}
	if cfg.CredentialsPath == "" {
		t.Error("CredentialsPath should be auto-resolved, but is empty")
	}
	if strings.HasPrefix(cfg.CredentialsPath, "~") {
		t.Errorf("CredentialsPath should be expanded: %s", cfg.CredentialsPath)
	}
}

func TestLoader_Load_FromEnv(t *testing.T) {
	t.Setenv("LESSONCTL_API_URL", "http://env.example.com")
	t.Setenv("LESSONCTL_LOG_LEVEL", "warn")
	t.Setenv("LESSONCTL_TIMEOUT_MS", "5000")

	loader := NewLoader()
	cfg, err := loader.Load()

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.APIURL != "http://env.example.com" {
		t.Errorf("wrong APIURL: got %s", cfg.APIURL)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("wrong LogLevel: got %s", cfg.LogLevel)
	}
	if cfg.TimeoutMS != 5000 {
		t.Errorf("wrong TimeoutMS: got %d", cfg.TimeoutMS)
	}
}

func TestLoader_Validation(t *testing.T) {
	t.Run("missing api_url", func(t *testing.T) {
		loader := NewLoader()
		loader.v.Set("api_url", "")
		_, err := loader.Load()
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
		if !strings.Contains(err.Error(), "api_url") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("bad timeout", func(t *testing.T) {
		loader := NewLoader()
		loader.v.Set("timeout_ms", 0)
		_, err := loader.Load()
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
		if !strings.Contains(err.Error(), "timeout_ms") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("bad log level", func(t *testing.T) {
		loader := NewLoader()
		loader.v.Set("log_level", "loud")
		_, err := loader.Load()
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
		if !strings.Contains(err.Error(), "log_level") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("bad log format", func(t *testing.T) {
		loader := NewLoader()
		loader.v.Set("log_format", "xml")
		_, err := loader.Load()
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
	})
}

func TestLoadWithPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "api_url: http://file.example.com\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadWithPath(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.APIURL != "http://file.example.com" {
		t.Errorf("wrong APIURL: got %s", cfg.APIURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("wrong LogLevel: got %s", cfg.LogLevel)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "home")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)
	t.Setenv("HOME", tmpDir)

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, ".lessonctl", ".lessonctl.yaml")); err != nil {
		t.Errorf("expected config file to exist: %v", err)
	}

	// Second call must refuse to overwrite.
	if err := CreateDefaultConfig(); err == nil {
		t.Fatal("expected an error on existing config, got nil")
	}
}

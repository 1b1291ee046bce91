package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromEnv_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := FromEnv()
	if err == nil {
		t.Fatal("FromEnv() expected error for missing API key, got nil")
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("FromEnv() error = %T, want *ConfigurationError", err)
	}
	if cfgErr.Field != "GEMINI_API_KEY" {
		t.Errorf("ConfigurationError.Field = %q, want %q", cfgErr.Field, "GEMINI_API_KEY")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("WRITEDESK_PORT", "")
	t.Setenv("WRITEDESK_TIMEOUT_SECONDS", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() unexpected error: %v", err)
	}

	if cfg.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "test-key")
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.Timeout() != DefaultRequestTimeout {
		t.Errorf("Timeout() = %v, want %v", cfg.Timeout(), DefaultRequestTimeout)
	}
}

func TestFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("WRITEDESK_PORT", "not-a-number")

	if _, err := FromEnv(); err == nil {
		t.Fatal("FromEnv() expected error for non-numeric port, got nil")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"api_key": "file-key", "port": 9000, "timeout_seconds": 30}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}

	if cfg.APIKey != "file-key" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "file-key")
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", cfg.Timeout())
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() expected error for malformed JSON, got nil")
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadFile() expected error for missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid",
			cfg:     Config{APIKey: "k", Port: 8080, TimeoutSeconds: 60},
			wantErr: false,
		},
		{
			name:    "missing api key",
			cfg:     Config{Port: 8080},
			wantErr: true,
		},
		{
			name:    "port out of range",
			cfg:     Config{APIKey: "k", Port: 70000},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			cfg:     Config{APIKey: "k", TimeoutSeconds: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000}
	defaults := Config{APIKey: "default-key", Port: 8080, TimeoutSeconds: 60}

	merged := cfg.MergeWithDefaults(defaults)

	if merged.APIKey != "default-key" {
		t.Errorf("APIKey = %q, want %q", merged.APIKey, "default-key")
	}
	if merged.Port != 9000 {
		t.Errorf("Port = %d, want 9000 (explicit value should win)", merged.Port)
	}
	if merged.TimeoutSeconds != 60 {
		t.Errorf("TimeoutSeconds = %d, want 60", merged.TimeoutSeconds)
	}
}

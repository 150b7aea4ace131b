package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "console" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "console")
	}
	if cfg.LogSecrets {
		t.Error("LogSecrets = true, want false")
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("MILENAGE_LOG_LEVEL", "debug")
	t.Setenv("MILENAGE_LOG_FORMAT", "json")
	t.Setenv("MILENAGE_LOG_SECRETS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" || !cfg.LogSecrets {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("MILENAGE_LOG_SECRETS", "maybe")
	if _, err := Load(); err == nil {
		t.Error("Load() 应在布尔值无效时返回错误")
	}
}

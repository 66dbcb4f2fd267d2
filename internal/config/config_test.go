package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WATERSIZER_LOG_LEVEL",
		"WATERSIZER_LOG_FORMAT",
		"WATERSIZER_PRESETS",
		"WATERSIZER_SCHEME_FILE",
		"WATERSIZER_MIN_PRESSURE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("missing .env should not fail: %v", err)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "text" {
		t.Errorf("log settings = %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.SchemeFile != "scheme.yaml" {
		t.Errorf("SchemeFile = %q", cfg.SchemeFile)
	}
	if cfg.MinPressure != 10 {
		t.Errorf("MinPressure = %v, want 10", cfg.MinPressure)
	}
	if cfg.PresetsPath != "" {
		t.Errorf("PresetsPath = %q, want empty", cfg.PresetsPath)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WATERSIZER_LOG_LEVEL", "debug")
	t.Setenv("WATERSIZER_MIN_PRESSURE", "15.5")
	t.Setenv("WATERSIZER_PRESETS", "regional.yaml")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" || cfg.MinPressure != 15.5 || cfg.PresetsPath != "regional.yaml" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadEnvFileDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WATERSIZER_LOG_FORMAT", "json")

	path := filepath.Join(t.TempDir(), ".env")
	content := "WATERSIZER_LOG_FORMAT=text\nWATERSIZER_SCHEME_FILE=village.yaml\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, environment should win", cfg.LogFormat)
	}
	if cfg.SchemeFile != "village.yaml" {
		t.Errorf("SchemeFile = %q, want value from .env", cfg.SchemeFile)
	}
}

func TestLoadInvalidMinPressure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")
	for _, v := range []string{"abc", "-1"} {
		clearEnv(t)
		t.Setenv("WATERSIZER_MIN_PRESSURE", v)
		if _, err := Load(missing); err == nil {
			t.Errorf("WATERSIZER_MIN_PRESSURE=%q should fail", v)
		}
	}
}

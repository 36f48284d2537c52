package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("INPUT_DIR", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("DEFAULT_QUALITY", "")

	cfg := Load()

	if cfg.InputDir != "Photos" {
		t.Errorf("Expected default input dir Photos, got %s", cfg.InputDir)
	}
	if cfg.OutputDir != "output" {
		t.Errorf("Expected default output dir output, got %s", cfg.OutputDir)
	}
	if cfg.Quality != 85 {
		t.Errorf("Expected default quality 85, got %d", cfg.Quality)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INPUT_DIR", "incoming")
	t.Setenv("OUTPUT_DIR", "converted")
	t.Setenv("DEFAULT_QUALITY", "60")

	cfg := Load()

	if cfg.InputDir != "incoming" {
		t.Errorf("Expected input dir incoming, got %s", cfg.InputDir)
	}
	if cfg.OutputDir != "converted" {
		t.Errorf("Expected output dir converted, got %s", cfg.OutputDir)
	}
	if cfg.Quality != 60 {
		t.Errorf("Expected quality 60, got %d", cfg.Quality)
	}
}

func TestLoad_InvalidQualityEnvFallsBack(t *testing.T) {
	t.Setenv("DEFAULT_QUALITY", "not-a-number")

	cfg := Load()

	if cfg.Quality != 85 {
		t.Errorf("Expected fallback quality 85, got %d", cfg.Quality)
	}
}

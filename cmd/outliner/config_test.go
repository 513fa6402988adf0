package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inkline/outliner/layout"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "outliner.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestApplyFileConfigOverridesOnlyPresentKeys(t *testing.T) {
	path := writeConfig(t, "minH1SizeRatio: 1.8\nh2IndentThreshold: 30\nminHeadingLength: 3\n")

	cfg := layout.DefaultConfig()
	if err := applyFileConfig(path, &cfg); err != nil {
		t.Fatalf("applyFileConfig() error: %v", err)
	}

	if cfg.MinH1SizeRatio != 1.8 {
		t.Errorf("MinH1SizeRatio = %v, want 1.8", cfg.MinH1SizeRatio)
	}
	if cfg.H2IndentThreshold != 30 {
		t.Errorf("H2IndentThreshold = %v, want 30", cfg.H2IndentThreshold)
	}
	if cfg.MinHeadingLength != 3 {
		t.Errorf("MinHeadingLength = %d, want 3", cfg.MinHeadingLength)
	}
	// Absent keys keep their defaults.
	if cfg.MinH2SizeRatio != 1.3 || cfg.MinH3SizeRatio != 1.1 {
		t.Errorf("untouched ratios = %v/%v, want 1.3/1.1", cfg.MinH2SizeRatio, cfg.MinH3SizeRatio)
	}
	if cfg.MinTitleLength != 4 {
		t.Errorf("MinTitleLength = %d, want default 4", cfg.MinTitleLength)
	}
}

func TestApplyFileConfigEmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	cfg := layout.DefaultConfig()
	if err := applyFileConfig(path, &cfg); err != nil {
		t.Fatalf("applyFileConfig() error: %v", err)
	}
	if cfg != layout.DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults unchanged", cfg)
	}
}

func TestApplyFileConfigErrors(t *testing.T) {
	cfg := layout.DefaultConfig()

	if err := applyFileConfig(filepath.Join(t.TempDir(), "missing.yaml"), &cfg); err == nil {
		t.Error("applyFileConfig() = nil error for missing file")
	}

	bad := writeConfig(t, "minH1SizeRatio: [not, a, number]\n")
	if err := applyFileConfig(bad, &cfg); err == nil {
		t.Error("applyFileConfig() = nil error for malformed value")
	}
}

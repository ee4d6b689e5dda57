package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not fail: %v", err)
	}
	if cfg.Thresholds.MinDimension != 50 || cfg.Thresholds.MinArea != 10000 {
		t.Errorf("unexpected default thresholds: %+v", cfg.Thresholds)
	}
	if cfg.Export.Format != "pdf" {
		t.Errorf("default export format = %q, want pdf", cfg.Export.Format)
	}
}

func TestLoadAppliesFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	data := "thresholds:\n  min_dimension: 80\nexport:\n  format: xlsx\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Thresholds.MinDimension != 80 {
		t.Errorf("min_dimension = %f, want 80", cfg.Thresholds.MinDimension)
	}
	// Unset values still get defaults.
	if cfg.Thresholds.MinArea != 10000 {
		t.Errorf("min_area = %f, want default 10000", cfg.Thresholds.MinArea)
	}
	if cfg.Export.Format != "xlsx" {
		t.Errorf("format = %q, want xlsx", cfg.Export.Format)
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("export:\n  format: docx\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for an unknown export format")
	}
}

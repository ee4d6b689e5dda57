package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sheetlab/freerect/internal/model"
)

func TestSaveAndLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "layout.json")

	layout := model.NewLayout("bench", model.NewSheet("Plywood", 2440, 1220))
	layout.Regions = append(layout.Regions, model.NewRegion("clamp", 0, 0, 100, 50))

	if err := SaveLayout(path, layout); err != nil {
		t.Fatalf("SaveLayout failed: %v", err)
	}

	loaded, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout failed: %v", err)
	}
	if loaded.Name != "bench" {
		t.Errorf("name = %q, want bench", loaded.Name)
	}
	if loaded.Sheet.Width != 2440 || loaded.Sheet.Height != 1220 {
		t.Errorf("sheet size = %fx%f", loaded.Sheet.Width, loaded.Sheet.Height)
	}
	if len(loaded.Regions) != 1 || loaded.Regions[0].Label != "clamp" {
		t.Errorf("regions not round-tripped: %+v", loaded.Regions)
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	if _, err := LoadLayout(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadLayoutRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLayout(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadLayoutRejectsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unversioned.json")
	if err := os.WriteFile(path, []byte(`{"layout":{"sheet":{"width":100,"height":100}}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLayout(path); err == nil {
		t.Error("expected an error for a missing version field")
	}
}

func TestLoadLayoutRejectsZeroAreaSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.json")
	data := `{"version":"1.0.0","layout":{"sheet":{"label":"flat","width":0,"height":100}}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLayout(path); err == nil {
		t.Error("expected an error for a zero-area sheet")
	}
}

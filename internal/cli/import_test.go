package cli

import "testing"

func TestParseSheetSize(t *testing.T) {
	w, h, err := parseSheetSize("2440x1220")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 2440 || h != 1220 {
		t.Errorf("got %v x %v, want 2440 x 1220", w, h)
	}

	if _, _, err := parseSheetSize("1200X600"); err != nil {
		t.Errorf("uppercase separator should parse: %v", err)
	}
	if _, _, err := parseSheetSize("2440"); err == nil {
		t.Error("expected error for missing height")
	}
	if _, _, err := parseSheetSize("0x600"); err == nil {
		t.Error("expected error for zero width")
	}
	if _, _, err := parseSheetSize("axb"); err == nil {
		t.Error("expected error for non-numeric size")
	}
}

func TestDefaultExportPath(t *testing.T) {
	if got := defaultExportPath("shop.json", "pdf"); got != "shop.pdf" {
		t.Errorf("got %q, want shop.pdf", got)
	}
	if got := defaultExportPath("shop.json", "labels"); got != "shop-labels.pdf" {
		t.Errorf("got %q, want shop-labels.pdf", got)
	}
	if got := defaultExportPath("shop.json", "xlsx"); got != "shop.xlsx" {
		t.Errorf("got %q, want shop.xlsx", got)
	}
}

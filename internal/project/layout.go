// Package project persists layout documents as JSON files.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sheetlab/freerect/internal/model"
)

// LayoutDocument is the top-level structure of a saved layout file.
type LayoutDocument struct {
	Version   string       `json:"version"`
	CreatedAt string       `json:"created_at"`
	Layout    model.Layout `json:"layout"`
}

// DefaultDir returns the per-user data directory, ~/.freerect, creating it
// if necessary.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".freerect")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// SaveLayout writes the layout to the specified JSON file, creating parent
// directories if they do not exist.
func SaveLayout(path string, layout model.Layout) error {
	doc := LayoutDocument{
		Version:   "1.0.0",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Layout:    layout,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}
	return nil
}

// LoadLayout reads a layout from the specified JSON file.
func LoadLayout(path string) (model.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	var doc LayoutDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Layout{}, fmt.Errorf("failed to parse layout file: %w", err)
	}
	if doc.Version == "" {
		return model.Layout{}, fmt.Errorf("invalid layout file: missing version field")
	}
	if doc.Layout.Sheet.Width <= 0 || doc.Layout.Sheet.Height <= 0 {
		return model.Layout{}, fmt.Errorf("invalid layout file: sheet has no area")
	}
	return doc.Layout, nil
}

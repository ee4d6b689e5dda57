// Package model defines the sheet layout domain types shared by the
// analyzer, importers, exporters, and the CLI.
package model

import "github.com/google/uuid"

// Sheet represents a stock sheet whose free space is being analyzed.
// Coordinates on a sheet are in mm from the top-left corner, y increasing
// downward (the usual drawing convention for cut diagrams).
type Sheet struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	Width         float64 `json:"width"`  // mm
	Height        float64 `json:"height"` // mm
	PricePerSheet float64 `json:"price_per_sheet,omitempty"`
}

// NewSheet creates a sheet with a generated ID.
func NewSheet(label string, w, h float64) Sheet {
	return Sheet{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Width:  w,
		Height: h,
	}
}

// Area returns the sheet area in square mm.
func (s Sheet) Area() float64 {
	return s.Width * s.Height
}

// Region represents an occupied rectangular zone on a sheet: a placed part,
// a clamp zone, a defect, anything the free-space analysis must avoid.
// Regions may overlap each other and may extend past the sheet edges.
type Region struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	X      float64 `json:"x"`      // mm from left edge
	Y      float64 `json:"y"`      // mm from top edge
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
}

// NewRegion creates a region with a generated ID.
func NewRegion(label string, x, y, w, h float64) Region {
	return Region{
		ID:     uuid.New().String()[:8],
		Label:  label,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	}
}

// Area returns the region area in square mm.
func (r Region) Area() float64 {
	return r.Width * r.Height
}

// ClippedArea returns the area of the region after clipping it to the sheet.
func (r Region) ClippedArea(s Sheet) float64 {
	left := max(r.X, 0)
	top := max(r.Y, 0)
	right := min(r.X+r.Width, s.Width)
	bottom := min(r.Y+r.Height, s.Height)
	if right <= left || bottom <= top {
		return 0
	}
	return (right - left) * (bottom - top)
}

// Layout is a saved analysis document: one sheet and the regions blocking it.
type Layout struct {
	Name    string   `json:"name"`
	Sheet   Sheet    `json:"sheet"`
	Regions []Region `json:"regions"`
}

// NewLayout creates a named layout for the given sheet.
func NewLayout(name string, sheet Sheet) Layout {
	return Layout{Name: name, Sheet: sheet}
}

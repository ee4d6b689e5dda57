package model

import (
	"sort"

	"github.com/google/uuid"
)

// FreeRegion represents a maximal unobstructed rectangular area found on a
// sheet. Unlike a naive strip scan, maximal free regions may overlap each
// other; each one is reported at its full usable extent.
type FreeRegion struct {
	ID            string  `json:"id"`
	SheetLabel    string  `json:"sheet_label"`
	X             float64 `json:"x"`      // mm from left edge
	Y             float64 `json:"y"`      // mm from top edge
	Width         float64 `json:"width"`  // mm
	Height        float64 `json:"height"` // mm
	PricePerSheet float64 `json:"price_per_sheet,omitempty"` // Inherited price proportional to area
}

// NewFreeRegion creates a free region with a generated ID.
func NewFreeRegion(sheetLabel string, x, y, w, h float64) FreeRegion {
	return FreeRegion{
		ID:         uuid.New().String()[:8],
		SheetLabel: sheetLabel,
		X:          x,
		Y:          y,
		Width:      w,
		Height:     h,
	}
}

// Area returns the area of the free region in square mm.
func (f FreeRegion) Area() float64 {
	return f.Width * f.Height
}

// ToSheet converts a free region into a stock sheet so it can be fed back
// into a future analysis as its own parent.
func (f FreeRegion) ToSheet() Sheet {
	sheet := NewSheet("Free "+f.SheetLabel, f.Width, f.Height)
	sheet.PricePerSheet = f.PricePerSheet
	return sheet
}

// MinFreeDimension is the minimum width or height (in mm) for a free region
// to be considered usable. Smaller slivers are reported area, not stock.
const MinFreeDimension = 50.0

// MinFreeArea is the minimum area (in sq mm) for a free region to be
// considered usable.
const MinFreeArea = 10000.0 // 100mm x 100mm equivalent

// FilterUsable returns the regions at least minDim wide and tall with at
// least minArea area, sorted by area descending. Zero thresholds fall back
// to the package defaults.
func FilterUsable(regions []FreeRegion, minDim, minArea float64) []FreeRegion {
	if minDim <= 0 {
		minDim = MinFreeDimension
	}
	if minArea <= 0 {
		minArea = MinFreeArea
	}
	var usable []FreeRegion
	for _, f := range regions {
		if f.Width >= minDim && f.Height >= minDim && f.Area() >= minArea {
			usable = append(usable, f)
		}
	}
	sort.Slice(usable, func(i, j int) bool {
		return usable[i].Area() > usable[j].Area()
	})
	return usable
}

// TotalFreeArea returns the summed area of the given regions in square mm.
// Overlapping regions are counted once per region, so this is an upper bound
// on the distinct free area.
func TotalFreeArea(regions []FreeRegion) float64 {
	var total float64
	for _, f := range regions {
		total += f.Area()
	}
	return total
}

// AssignProportionalPricing distributes the sheet price across free regions
// in proportion to their area. A sheet without pricing leaves regions at 0.
func AssignProportionalPricing(regions []FreeRegion, sheet Sheet) {
	if sheet.PricePerSheet <= 0 || sheet.Area() <= 0 {
		return
	}
	for i := range regions {
		regions[i].PricePerSheet = (regions[i].Area() / sheet.Area()) * sheet.PricePerSheet
	}
}

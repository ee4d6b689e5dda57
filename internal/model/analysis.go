package model

import "fmt"

// AnalysisResult holds the outcome of a free-space analysis for one layout.
type AnalysisResult struct {
	Layout Layout       `json:"layout"`
	Free   []FreeRegion `json:"free"`   // All maximal free regions, area descending
	Usable []FreeRegion `json:"usable"` // Free regions above the usability thresholds

	BlockedArea float64 `json:"blocked_area"` // Blocked area clipped to the sheet (sq mm)
	FreeArea    float64 `json:"free_area"`    // Sheet area minus blocked area (sq mm)
	Utilization float64 `json:"utilization"`  // Blocked fraction of the sheet, 0..100
}

// LargestFree returns the biggest free region, or false if there is none.
func (a AnalysisResult) LargestFree() (FreeRegion, bool) {
	if len(a.Free) == 0 {
		return FreeRegion{}, false
	}
	// Free is kept sorted by area descending.
	return a.Free[0], true
}

// Summary returns a one-paragraph human-readable report.
func (a AnalysisResult) Summary() string {
	s := fmt.Sprintf("Sheet %q (%.0f x %.0f mm): %d regions blocked, %.1f%% used, %.0f sq mm free across %d maximal rectangles (%d usable)",
		a.Layout.Sheet.Label, a.Layout.Sheet.Width, a.Layout.Sheet.Height,
		len(a.Layout.Regions), a.Utilization, a.FreeArea, len(a.Free), len(a.Usable))
	if largest, ok := a.LargestFree(); ok {
		s += fmt.Sprintf("; largest free rectangle %.0f x %.0f mm", largest.Width, largest.Height)
	}
	return s
}

// Package engine runs the free-space analysis: it maps a sheet layout onto
// the discrete coordinate space of the sweep algorithm and turns the maximal
// unobstructed rectangles back into domain free regions with statistics.
package engine

import (
	"math"
	"sort"

	"github.com/sheetlab/freerect"
	"github.com/sheetlab/freerect/internal/model"
)

// Settings holds analyzer configuration.
type Settings struct {
	MinDimension float64 `json:"min_dimension"` // Usability threshold: min width/height in mm
	MinArea      float64 `json:"min_area"`      // Usability threshold: min area in sq mm
}

// DefaultSettings returns the stock thresholds.
func DefaultSettings() Settings {
	return Settings{
		MinDimension: model.MinFreeDimension,
		MinArea:      model.MinFreeArea,
	}
}

// Analyzer computes the free space of sheet layouts.
type Analyzer struct {
	Settings Settings
}

func New(settings Settings) *Analyzer {
	return &Analyzer{Settings: settings}
}

// Analyze returns every maximal free rectangle on the layout's sheet along
// with area statistics. Layout coordinates snap to whole millimetres; sub-mm
// geometry is a precondition violation, not an error. Regions that do not
// intersect the sheet are ignored.
func (a *Analyzer) Analyze(layout model.Layout) model.AnalysisResult {
	result := model.AnalysisResult{Layout: layout}

	sheet := layout.Sheet
	w, h := snap(sheet.Width), snap(sheet.Height)
	if w < 1 || h < 1 {
		return result
	}

	// The sweep works on inclusive integer edges with y increasing upward;
	// the sheet uses mm from the top-left with y increasing downward. One
	// grid cell is one square millimetre.
	parent := freerect.NewRectFromSides(0, w-1, h-1, 0)

	var obstructions []freerect.Rect[int]
	for _, region := range layout.Regions {
		ob, ok := regionToGrid(region, h)
		if !ok {
			continue
		}
		if ob.Right() < 0 || ob.Left() > w-1 || ob.Top() < 0 || ob.Bottom() > h-1 {
			continue // entirely off the sheet
		}
		obstructions = append(obstructions, ob)
	}

	free := freerect.UnobstructedSubrectangles(parent, obstructions)

	for _, r := range free {
		result.Free = append(result.Free, model.NewFreeRegion(
			sheet.Label,
			float64(r.Left()),
			float64(h-1-r.Top()),
			float64(r.Width()),
			float64(r.Height()),
		))
	}
	sort.Slice(result.Free, func(i, j int) bool {
		return result.Free[i].Area() > result.Free[j].Area()
	})

	model.AssignProportionalPricing(result.Free, sheet)
	result.Usable = model.FilterUsable(result.Free, a.Settings.MinDimension, a.Settings.MinArea)

	result.BlockedArea = blockedUnionArea(sheet, layout.Regions)
	result.FreeArea = sheet.Area() - result.BlockedArea
	if sheet.Area() > 0 {
		result.Utilization = result.BlockedArea / sheet.Area() * 100
	}
	return result
}

// snap rounds a mm coordinate to the nearest whole millimetre.
func snap(v float64) int {
	return int(math.Round(v))
}

// regionToGrid converts a region from sheet coordinates (mm, top-left
// origin, y down) to inclusive grid edges (y up). Returns false for regions
// that round to zero size.
func regionToGrid(r model.Region, sheetH int) (freerect.Rect[int], bool) {
	x, y := snap(r.X), snap(r.Y)
	w, h := snap(r.Width), snap(r.Height)
	if w < 1 || h < 1 {
		return freerect.Rect[int]{}, false
	}
	return freerect.NewRectFromSides(x, x+w-1, sheetH-1-y, sheetH-y-h), true
}

// blockedUnionArea measures the union of the regions clipped to the sheet,
// counting overlaps once. It slices the sheet at every vertical region edge
// and merges the covered y intervals inside each slab.
func blockedUnionArea(sheet model.Sheet, regions []model.Region) float64 {
	type box struct{ x0, x1, y0, y1 float64 }
	var boxes []box
	for _, r := range regions {
		b := box{
			x0: max(r.X, 0),
			x1: min(r.X+r.Width, sheet.Width),
			y0: max(r.Y, 0),
			y1: min(r.Y+r.Height, sheet.Height),
		}
		if b.x1 > b.x0 && b.y1 > b.y0 {
			boxes = append(boxes, b)
		}
	}
	if len(boxes) == 0 {
		return 0
	}

	xs := make([]float64, 0, 2*len(boxes))
	for _, b := range boxes {
		xs = append(xs, b.x0, b.x1)
	}
	sort.Float64s(xs)

	var area float64
	for i := 0; i+1 < len(xs); i++ {
		slabW := xs[i+1] - xs[i]
		if slabW <= 0 {
			continue
		}

		// Merge the y intervals of every box spanning this slab.
		type interval struct{ y0, y1 float64 }
		var covered []interval
		for _, b := range boxes {
			if b.x0 <= xs[i] && xs[i+1] <= b.x1 {
				covered = append(covered, interval{b.y0, b.y1})
			}
		}
		sort.Slice(covered, func(a, b int) bool { return covered[a].y0 < covered[b].y0 })

		var height, end float64
		end = math.Inf(-1)
		for _, iv := range covered {
			if iv.y1 <= end {
				continue
			}
			if iv.y0 > end {
				height += iv.y1 - iv.y0
			} else {
				height += iv.y1 - end
			}
			end = iv.y1
		}
		area += slabW * height
	}
	return area
}

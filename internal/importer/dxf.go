package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/sheetlab/freerect/internal/model"
)

// segment is a line segment between two points, used for chaining
// disconnected LINE and ARC entities into closed shapes.
type segment struct {
	x1, y1 float64
	x2, y2 float64
}

// bbox accumulates an axis-aligned bounding box.
type bbox struct {
	minX, minY float64
	maxX, maxY float64
	set        bool
}

func (b *bbox) add(x, y float64) {
	if !b.set {
		b.minX, b.maxX = x, x
		b.minY, b.maxY = y, y
		b.set = true
		return
	}
	b.minX = math.Min(b.minX, x)
	b.maxX = math.Max(b.maxX, x)
	b.minY = math.Min(b.minY, y)
	b.maxY = math.Max(b.maxY, y)
}

// ImportDXF imports blocked regions from a DXF file. Each closed shape
// (LWPOLYLINE, CIRCLE, or chain of connected LINEs/ARCs) becomes one region
// covering the shape's axis-aligned bounding box, at its drawn position.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var boxes []bbox
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			if len(e.Vertices) < 3 {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
				continue
			}
			boxes = append(boxes, lwPolylineBounds(e))

		case *entity.Circle:
			var b bbox
			b.add(e.Center[0]-e.Radius, e.Center[1]-e.Radius)
			b.add(e.Center[0]+e.Radius, e.Center[1]+e.Radius)
			boxes = append(boxes, b)

		case *entity.Arc:
			segments = append(segments, arcToSegments(e, 32)...)

		case *entity.Line:
			segments = append(segments, segment{
				x1: e.Start[0], y1: e.Start[1],
				x2: e.End[0], y2: e.End[1],
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	boxes = append(boxes, chainSegmentBounds(segments, 0.01)...)

	if len(boxes) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	for i, b := range boxes {
		width := b.maxX - b.minX
		height := b.maxY - b.minY
		if width < 0.01 || height < 0.01 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f mm)", width, height))
			continue
		}
		result.Regions = append(result.Regions,
			model.NewRegion(fmt.Sprintf("DXF Region %d", i+1), b.minX, b.minY, width, height))
	}

	return result
}

// lwPolylineBounds computes the bounding box of an LWPOLYLINE, sampling
// bulge arcs so a bulged edge cannot poke outside the reported box.
func lwPolylineBounds(lw *entity.LwPolyline) bbox {
	var b bbox
	for i, v := range lw.Vertices {
		b.add(v[0], v[1])

		if i >= len(lw.Bulges) || math.Abs(lw.Bulges[i]) <= 1e-9 {
			continue
		}
		next := lw.Vertices[(i+1)%len(lw.Vertices)]
		for _, p := range bulgeArcPoints(v[0], v[1], next[0], next[1], lw.Bulges[i], 32) {
			b.add(p[0], p[1])
		}
	}
	return b
}

// bulgeArcPoints samples the arc between two endpoints defined by a DXF
// bulge factor (the tangent of a quarter of the included angle).
func bulgeArcPoints(x1, y1, x2, y2, bulge float64, numSegments int) [][2]float64 {
	dx := x2 - x1
	dy := y2 - y1
	chordLen := math.Sqrt(dx*dx + dy*dy)
	if chordLen < 1e-9 {
		return nil
	}

	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	// Arc center sits on the perpendicular through the chord midpoint.
	perpX := -dy / chordLen
	perpY := dx / chordLen
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := (x1+x2)/2 + perpX*(radius-sagitta)
	cy := (y1+y2)/2 + perpY*(radius-sagitta)

	startAngle := math.Atan2(y1-cy, x1-cx)
	endAngle := math.Atan2(y2-cy, x2-cx)
	if bulge < 0 {
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else {
		if endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
	}

	pts := make([][2]float64, 0, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, [2]float64{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)})
	}
	return pts
}

// arcToSegments converts a DXF ARC entity to chained line segments.
func arcToSegments(a *entity.Arc, numSegments int) []segment {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	segs := make([]segment, 0, numSegments)
	prevX := cx + r*math.Cos(startRad)
	prevY := cy + r*math.Sin(startRad)
	for i := 1; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		segs = append(segs, segment{x1: prevX, y1: prevY, x2: x, y2: y})
		prevX, prevY = x, y
	}
	return segs
}

// chainSegmentBounds connects loose segments into closed chains and returns
// the bounding box of each. tolerance is the maximum distance between
// endpoints to consider them connected. Open chains are discarded.
func chainSegmentBounds(segs []segment, tolerance float64) []bbox {
	used := make([]bool, len(segs))
	var boxes []bbox

	near := func(ax, ay, bx, by float64) bool {
		dx, dy := ax-bx, ay-by
		return math.Sqrt(dx*dx+dy*dy) <= tolerance
	}

	for start := range segs {
		if used[start] {
			continue
		}
		used[start] = true

		var b bbox
		firstX, firstY := segs[start].x1, segs[start].y1
		tailX, tailY := segs[start].x2, segs[start].y2
		b.add(firstX, firstY)
		b.add(tailX, tailY)
		count := 1

		changed := true
		for changed {
			changed = false
			for i, seg := range segs {
				if used[i] {
					continue
				}
				switch {
				case near(tailX, tailY, seg.x1, seg.y1):
					tailX, tailY = seg.x2, seg.y2
				case near(tailX, tailY, seg.x2, seg.y2):
					tailX, tailY = seg.x1, seg.y1
				default:
					continue
				}
				used[i] = true
				b.add(tailX, tailY)
				count++
				changed = true
				break
			}
		}

		if count >= 3 && near(firstX, firstY, tailX, tailY) {
			boxes = append(boxes, b)
		}
	}

	return boxes
}

package freerect

import "sort"

// line is a sweep x-coordinate at which the obstruction set changes shape.
// A line can close candidates (an obstruction begins here), open new ones
// (an obstruction ended just before here), or both when two such events
// land on the same coordinate.
type line[T Unit] struct {
	x      T
	opens  bool
	closes bool
}

// gap is an unobstructed vertical interval [bottom, top] at one x-coordinate.
type gap[T Unit] struct {
	top    T
	bottom T
}

// candidate is a result rectangle whose right edge is not determined yet.
// left is fixed at creation and survives subdivision.
type candidate[T Unit] struct {
	left   T
	top    T
	bottom T
}

// UnobstructedSubrectangles returns every maximal rectangle inside parent
// that intersects no obstruction. Maximal means the rectangle cannot be
// extended in any direction without crossing an obstruction or the parent's
// edge; maximal rectangles may overlap each other. With no obstructions the
// result is the parent itself; with the parent fully covered it is empty.
//
// The order of the returned rectangles is not specified. Obstructions may
// overlap and may extend past the parent. Well-formed edges (Left <= Right,
// Bottom <= Top) on the parent and every obstruction are a precondition;
// inverted or zero-area inputs produce unspecified output. The caller must
// pick a coordinate type wide enough that Right()+1 cannot overflow.
//
// The sweep visits one line per obstruction edge, so the running time is
// O(n^2) in the obstruction count times the number of live candidates, with
// no allocation beyond the line, gap, and candidate slices.
func UnobstructedSubrectangles[T Unit, R Rectangle[T, R]](parent R, obstructions []R) []R {
	// The gap scan walks obstructions top to bottom, so sort a copy once
	// up front. Input order is preserved for the caller.
	sorted := make([]R, len(obstructions))
	copy(sorted, obstructions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Top() > sorted[j].Top()
	})

	var results []R
	var open []candidate[T]

	for _, ln := range sweepLines(parent, sorted) {
		gaps := gapsAt(parent, sorted, ln.x)

		// When a closing and an opening event coincide, close first: a
		// candidate obstructed from this coordinate on must end at x-1
		// before any gap revealed at the same coordinate may start a new
		// one. Processing both events keeps either from shadowing the other.
		if ln.closes {
			open, results = closeObstructed(open, results, gaps, ln.x, parent)
		}
		if ln.opens {
			open = openCandidates(open, gaps, ln.x)
		}
	}

	// Whatever is still open runs through to the parent's right edge.
	for _, c := range open {
		results = append(results, parent.FromSides(c.left, parent.Right(), c.top, c.bottom))
	}
	return results
}

// sweepLines returns the x-coordinates the sweep must inspect, ascending and
// unique, clipped to the parent's horizontal span: one opening line at the
// parent's left edge, and per obstruction a closing line at its left edge
// plus an opening line just past its right edge. Events sharing a coordinate
// merge into a single line carrying both flags.
func sweepLines[T Unit, R Rectangle[T, R]](parent R, obstructions []R) []line[T] {
	lines := make([]line[T], 0, 2*len(obstructions)+1)
	lines = append(lines, line[T]{x: parent.Left(), opens: true})
	for _, ob := range obstructions {
		lines = append(lines, line[T]{x: ob.Left(), closes: true})
		lines = append(lines, line[T]{x: ob.Right() + 1, opens: true})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].x < lines[j].x })

	merged := make([]line[T], 0, len(lines))
	for _, ln := range lines {
		if ln.x < parent.Left() || ln.x > parent.Right() {
			continue
		}
		if n := len(merged); n > 0 && merged[n-1].x == ln.x {
			merged[n-1].opens = merged[n-1].opens || ln.opens
			merged[n-1].closes = merged[n-1].closes || ln.closes
			continue
		}
		merged = append(merged, ln)
	}
	return merged
}

// gapsAt returns the unobstructed vertical intervals at x, ordered top to
// bottom. obstructions must be sorted descending by top edge. Together with
// the obstructions crossing x, the gaps exactly cover the parent's vertical
// extent at that coordinate.
func gapsAt[T Unit, R Rectangle[T, R]](parent R, obstructions []R, x T) []gap[T] {
	var gaps []gap[T]

	// Walk down the obstructions like shingles on a roof: a gap sits
	// wherever the lowest point covered so far is above the next top edge.
	lowest := parent.Top()
	for _, ob := range obstructions {
		if ob.Left() > x || x > ob.Right() {
			continue
		}
		if lowest > ob.Top() {
			gaps = append(gaps, gap[T]{top: lowest, bottom: ob.Top() + 1})
		}
		// Track the lowest covered point, not the last bottom edge: an
		// obstruction nested inside a wider one must not reopen space the
		// outer one already covers.
		if b := ob.Bottom() - 1; b < lowest {
			lowest = b
		}
	}
	if lowest >= parent.Bottom() {
		gaps = append(gaps, gap[T]{top: lowest, bottom: parent.Bottom()})
	}
	return gaps
}

// openCandidates starts a new candidate for each gap at x, unless one with
// the same vertical span is already open. The generator can emit several
// opening lines with no closing line between them, and the span check is
// what stops the later ones from restarting an identical candidate.
func openCandidates[T Unit](open []candidate[T], gaps []gap[T], x T) []candidate[T] {
	for _, g := range gaps {
		if hasSpan(open, g.top, g.bottom) {
			continue
		}
		open = append(open, candidate[T]{left: x, top: g.top, bottom: g.bottom})
	}
	return open
}

// closeObstructed finishes every candidate that no longer fits inside a gap
// at x, emitting it with right edge x-1. A candidate obstructed over only
// part of its height is not discarded outright: it survives as narrower
// candidates, one per gap overlapping its span, each keeping the original
// left edge. Spawned candidates take effect from the next line on.
func closeObstructed[T Unit, R Rectangle[T, R]](
	open []candidate[T], results []R, gaps []gap[T], x T, ctor R,
) ([]candidate[T], []R) {
	kept := open[:0]
	var spawned []candidate[T]

	for _, c := range open {
		if fitsAny(gaps, c) {
			kept = append(kept, c)
			continue
		}
		results = append(results, ctor.FromSides(c.left, x-1, c.top, c.bottom))

		for _, g := range gaps {
			if g.top < c.bottom || c.top < g.bottom {
				continue
			}
			top := min(c.top, g.top)
			bottom := max(c.bottom, g.bottom)
			if hasSpan(kept, top, bottom) || hasSpan(spawned, top, bottom) || pendingSpan(open, kept, top, bottom) {
				continue
			}
			spawned = append(spawned, candidate[T]{left: c.left, top: top, bottom: bottom})
		}
	}
	return append(kept, spawned...), results
}

// fitsAny reports whether the candidate's span lies entirely inside one of
// the gaps.
func fitsAny[T Unit](gaps []gap[T], c candidate[T]) bool {
	for _, g := range gaps {
		if g.top >= c.top && c.bottom >= g.bottom {
			return true
		}
	}
	return false
}

// hasSpan reports whether any candidate has exactly the span [bottom, top].
func hasSpan[T Unit](cs []candidate[T], top, bottom T) bool {
	for _, c := range cs {
		if c.top == top && c.bottom == bottom {
			return true
		}
	}
	return false
}

// pendingSpan reports whether a candidate not yet re-examined this line
// (beyond those already kept) has exactly the span [bottom, top]. kept is a
// reused prefix of open, so only the tail of open still needs checking.
func pendingSpan[T Unit](open, kept []candidate[T], top, bottom T) bool {
	return hasSpan(open[len(kept):], top, bottom)
}

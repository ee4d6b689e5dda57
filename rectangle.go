// Package freerect computes the maximal unobstructed subrectangles of a
// rectangle that is partially covered by a set of blocking rectangles.
//
// Given a parent rectangle and a list of obstructions, the package answers
// the question "what rectangular space is left?": it returns every rectangle
// that contains no obstructed point and cannot be grown in any direction
// without crossing an obstruction or leaving the parent. Obstructions may
// overlap each other and may extend past the parent's edges.
//
// Coordinates are discrete and all four edges of a rectangle are inclusive:
// a rectangle occupies every coordinate in [Left, Right] x [Bottom, Top],
// with the vertical axis increasing upward.
package freerect

import "golang.org/x/exp/constraints"

// Unit is the set of coordinate types the algorithm operates over:
// discrete, totally ordered, with exact comparison.
type Unit interface {
	constraints.Integer
}

// Rectangle is the capability any rectangle-like value must provide.
// The four accessors return inclusive edge coordinates; well-formed
// rectangles satisfy Left <= Right and Bottom <= Top. FromSides constructs
// a new value of the same concrete type from four inclusive edges and must
// round-trip with the accessors. The receiver of FromSides is only used to
// reach the constructor; its own edges are ignored.
type Rectangle[T Unit, R any] interface {
	Left() T
	Right() T
	Top() T
	Bottom() T
	FromSides(left, right, top, bottom T) R
}

// Rect is a basic axis-aligned rectangle storing its top-left corner and
// extents. It implements Rectangle over any Unit type and is the concrete
// type most callers want when they do not bring their own.
type Rect[T Unit] struct {
	x, y          T
	width, height T
}

// NewRect returns a rectangle with top-left corner (x, y) and the given
// width and height. Width and height are counted in coordinates, so a
// 1x1 rectangle occupies exactly one point.
func NewRect[T Unit](x, y, width, height T) Rect[T] {
	return Rect[T]{x: x, y: y, width: width, height: height}
}

// NewRectFromSides returns the rectangle spanning the four inclusive edges.
func NewRectFromSides[T Unit](left, right, top, bottom T) Rect[T] {
	return Rect[T]{}.FromSides(left, right, top, bottom)
}

// Left returns the inclusive left edge.
func (r Rect[T]) Left() T { return r.x }

// Right returns the inclusive right edge.
func (r Rect[T]) Right() T { return r.x + r.width - 1 }

// Top returns the inclusive top edge. Top is the numerically larger
// vertical bound: the axis increases upward.
func (r Rect[T]) Top() T { return r.y }

// Bottom returns the inclusive bottom edge.
func (r Rect[T]) Bottom() T { return r.y - r.height + 1 }

// FromSides constructs a Rect from four inclusive edges.
func (r Rect[T]) FromSides(left, right, top, bottom T) Rect[T] {
	return Rect[T]{
		x:      left,
		y:      top,
		width:  right - left + 1,
		height: top - bottom + 1,
	}
}

// Width returns the horizontal extent in coordinates.
func (r Rect[T]) Width() T { return r.width }

// Height returns the vertical extent in coordinates.
func (r Rect[T]) Height() T { return r.height }

// Area returns Width * Height.
func (r Rect[T]) Area() T { return r.width * r.height }

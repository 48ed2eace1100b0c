package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle described by two inclusive corners.
// The corners may be unordered; see Normalize.
type Rect struct {
	TL, BR Point
}

// R builds a rectangle from two corner coordinates.
func R(x0, y0, x1, y1 uint16) Rect {
	return Rect{TL: Pt(x0, y0), BR: Pt(x1, y1)}
}

// FromXYWH builds a normalized rectangle spanning [x, x+w] × [y, y+h].
// Out-of-range values are clamped to the grid.
func FromXYWH(x, y, w, h int32) Rect {
	r := Rect{
		TL: Point{X: ClampU16(x), Y: ClampU16(y)},
		BR: Point{X: ClampU16(x + w), Y: ClampU16(y + h)},
	}
	return r.Normalize()
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d]-[%d,%d]", r.TL.X, r.TL.Y, r.BR.X, r.BR.Y)
}

// Normalize returns r with TL.X ≤ BR.X and TL.Y ≤ BR.Y.
func (r Rect) Normalize() Rect {
	if r.TL.X > r.BR.X {
		r.TL.X, r.BR.X = r.BR.X, r.TL.X
	}
	if r.TL.Y > r.BR.Y {
		r.TL.Y, r.BR.Y = r.BR.Y, r.TL.Y
	}
	return r
}

// XYWH returns the origin and extent of the normalized rectangle.
func (r Rect) XYWH() (x, y, w, h int32) {
	n := r.Normalize()
	return int32(n.TL.X), int32(n.TL.Y), int32(n.BR.X) - int32(n.TL.X), int32(n.BR.Y) - int32(n.TL.Y)
}

// Width returns BR.X-TL.X of the normalized rectangle.
func (r Rect) Width() uint32 {
	n := r.Normalize()
	return uint32(n.BR.X) - uint32(n.TL.X)
}

// Height returns BR.Y-TL.Y of the normalized rectangle.
func (r Rect) Height() uint32 {
	n := r.Normalize()
	return uint32(n.BR.Y) - uint32(n.TL.Y)
}

// Empty reports whether the rectangle has no width or no height.
func (r Rect) Empty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Area returns Width*Height, or 0 for empty rectangles.
func (r Rect) Area() uint32 {
	if r.Empty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Size returns the extent of the rectangle, or a zero Size when empty.
func (r Rect) Size() Size {
	if r.Empty() {
		return Size{}
	}
	return Size{Width: uint16(r.Width()), Height: uint16(r.Height())}
}

// ContainsPoint reports whether p lies inside r, edges included.
func (r Rect) ContainsPoint(p Point) bool {
	n := r.Normalize()
	return p.X >= n.TL.X && p.X <= n.BR.X && p.Y >= n.TL.Y && p.Y <= n.BR.Y
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	o = o.Normalize()
	return r.ContainsPoint(o.TL) && r.ContainsPoint(o.BR)
}

// Intersects reports whether r and o overlap. Touching edges count.
func (r Rect) Intersects(o Rect) bool {
	a, b := r.Normalize(), o.Normalize()
	if a.BR.X < b.TL.X || b.BR.X < a.TL.X {
		return false
	}
	if a.BR.Y < b.TL.Y || b.BR.Y < a.TL.Y {
		return false
	}
	return true
}

// Intersection returns the overlap of r and o. Disjoint rectangles produce a
// degenerate rectangle with zero area.
func (r Rect) Intersection(o Rect) Rect {
	a, b := r.Normalize(), o.Normalize()
	lx := max(int32(a.TL.X), int32(b.TL.X))
	ty := max(int32(a.TL.Y), int32(b.TL.Y))
	rx := min(int32(a.BR.X), int32(b.BR.X))
	by := min(int32(a.BR.Y), int32(b.BR.Y))
	if rx < lx {
		rx = lx
	}
	if by < ty {
		by = ty
	}
	return rectFrom(lx, ty, rx, by)
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	a, b := r.Normalize(), o.Normalize()
	return Rect{
		TL: Point{X: min(a.TL.X, b.TL.X), Y: min(a.TL.Y, b.TL.Y)},
		BR: Point{X: max(a.BR.X, b.BR.X), Y: max(a.BR.Y, b.BR.Y)},
	}
}

// OverlapArea returns the area of the intersection of r and o.
func (r Rect) OverlapArea(o Rect) uint32 {
	return r.Intersection(o).Area()
}

// Offset translates r by (dx, dy), clamping to the grid.
func (r Rect) Offset(dx, dy int32) Rect {
	n := r.Normalize()
	return Rect{TL: n.TL.Offset(dx, dy), BR: n.BR.Offset(dx, dy)}
}

// Inset shrinks r by the given amounts on each side. Negative amounts grow it.
// The result never inverts; an over-inset rectangle collapses to a line.
func (r Rect) Inset(left, top, right, bottom int32) Rect {
	n := r.Normalize()
	lx := int32(n.TL.X) + left
	ty := int32(n.TL.Y) + top
	rx := int32(n.BR.X) - right
	by := int32(n.BR.Y) - bottom
	if rx < lx {
		rx = lx
	}
	if by < ty {
		by = ty
	}
	return rectFrom(lx, ty, rx, by)
}

// ScaleAboutCenter scales the half-extents of r by (sx, sy) keeping its centre.
func (r Rect) ScaleAboutCenter(sx, sy float32) Rect {
	n := r.Normalize()
	cx := (int32(n.TL.X) + int32(n.BR.X)) / 2
	cy := (int32(n.TL.Y) + int32(n.BR.Y)) / 2
	w := float64(int32(n.BR.X) - int32(n.TL.X))
	h := float64(int32(n.BR.Y) - int32(n.TL.Y))
	hw := int32(math.Floor(w*float64(sx)/2 + 0.5))
	hh := int32(math.Floor(h*float64(sy)/2 + 0.5))
	return rectFrom(cx-hw, cy-hh, cx+hw, cy+hh)
}

// Anchor selects how AlignIn places a child inside its parent. One horizontal
// and one vertical flag may be combined; a missing axis is centred.
type Anchor uint8

const (
	AnchorLeft Anchor = 1 << iota
	AnchorHCenter
	AnchorRight
	AnchorTop
	AnchorVCenter
	AnchorBottom
)

// AlignIn positions r inside parent according to anchor, keeping r's size.
func (r Rect) AlignIn(parent Rect, anchor Anchor) Rect {
	p, c := parent.Normalize(), r.Normalize()
	pw := int32(p.BR.X) - int32(p.TL.X)
	ph := int32(p.BR.Y) - int32(p.TL.Y)
	cw := int32(c.BR.X) - int32(c.TL.X)
	ch := int32(c.BR.Y) - int32(c.TL.Y)

	var nx, ny int32
	switch {
	case anchor&AnchorLeft != 0:
		nx = int32(p.TL.X)
	case anchor&AnchorRight != 0:
		nx = int32(p.BR.X) - cw
	default:
		nx = int32(p.TL.X) + (pw-cw)/2
	}
	switch {
	case anchor&AnchorTop != 0:
		ny = int32(p.TL.Y)
	case anchor&AnchorBottom != 0:
		ny = int32(p.BR.Y) - ch
	default:
		ny = int32(p.TL.Y) + (ph-ch)/2
	}
	return FromXYWH(nx, ny, cw, ch)
}

// ClosestPoint returns the point of r nearest to p; p itself when inside.
func (r Rect) ClosestPoint(p Point) Point {
	n := r.Normalize()
	return Point{
		X: min(max(p.X, n.TL.X), n.BR.X),
		Y: min(max(p.Y, n.TL.Y), n.BR.Y),
	}
}

// DistanceToPoint returns the truncated Euclidean distance from p to r,
// 0 when p is inside.
func (r Rect) DistanceToPoint(p Point) uint32 {
	d := r.ClosestPoint(p).Sub(p)
	return uint32(math.Sqrt(float64(int64(d.X)*int64(d.X) + int64(d.Y)*int64(d.Y))))
}

// ExpandToInclude returns the smallest rectangle containing r and p.
func (r Rect) ExpandToInclude(p Point) Rect {
	return r.Union(Rect{TL: p, BR: p})
}

// ClampToScreen restricts r to [0, w] × [0, h].
func (r Rect) ClampToScreen(w, h uint16) Rect {
	n := r.Normalize()
	n.BR.X = min(n.BR.X, w)
	n.BR.Y = min(n.BR.Y, h)
	if n.BR.X < n.TL.X {
		n.BR.X = n.TL.X
	}
	if n.BR.Y < n.TL.Y {
		n.BR.Y = n.TL.Y
	}
	return n
}

func rectFrom(lx, ty, rx, by int32) Rect {
	return Rect{
		TL: Point{X: ClampU16(lx), Y: ClampU16(ty)},
		BR: Point{X: ClampU16(rx), Y: ClampU16(by)},
	}
}

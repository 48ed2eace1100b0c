package raster

import (
	"github.com/flavioheleno/oledgfx/geom"
)

// quadrant walks the first quadrant of the ellipse with radii a (x) and b
// (y) from (0, b) to (a, 0) using the two-region midpoint algorithm. The
// decision variables are scaled by 4 to stay in integers.
func quadrant(a, b int64, fn func(x, y int32)) {
	if b == 0 {
		for x := int64(0); x <= a; x++ {
			fn(int32(x), 0)
		}
		return
	}
	a2, b2 := a*a, b*b
	x, y := int64(0), b

	// Region 1: slope above -1.
	d1 := 4*b2 + a2*(2-4*b)
	fn(int32(x), int32(y))
	for 2*b2*(x+1) < a2*(2*y-1) {
		if d1 <= 0 {
			d1 += 4 * b2 * (2*x + 3)
		} else {
			d1 += 4*b2*(2*x+3) + 4*a2*(2-2*y)
			y--
		}
		x++
		fn(int32(x), int32(y))
	}

	// Region 2.
	d2 := b2*(2*x+1)*(2*x+1) + 4*a2*(y-1)*(y-1) - 4*a2*b2
	for y > 0 {
		if d2 <= 0 {
			d2 += 4*b2*(2*x+2) + 4*a2*(3-2*y)
			x++
		} else {
			d2 += 4 * a2 * (3 - 2*y)
		}
		y--
		fn(int32(x), int32(y))
	}
}

// Ellipse draws the outline of the axis-aligned ellipse centred on c with
// horizontal radius rx and vertical radius ry.
func Ellipse(t Target, c geom.Point, rx, ry uint16) error {
	b := boxAround(c.X, c.Y, int32(rx), int32(ry))
	p := &pen{t: t}
	p.clear(b)
	cx, cy := int32(c.X), int32(c.Y)
	quadrant(int64(rx), int64(ry), func(x, y int32) {
		p.plot(cx+x, cy+y)
		p.plot(cx-x, cy+y)
		p.plot(cx+x, cy-y)
		p.plot(cx-x, cy-y)
	})
	return p.finish(b)
}

// FillEllipse fills the ellipse with vertical spans.
func FillEllipse(t Target, c geom.Point, rx, ry uint16) error {
	b := boxAround(c.X, c.Y, int32(rx), int32(ry))
	p := &pen{t: t}
	p.clear(b)
	cx, cy := int32(c.X), int32(c.Y)
	quadrant(int64(rx), int64(ry), func(x, y int32) {
		p.vspan(cx+x, cy-y, cy+y)
		p.vspan(cx-x, cy-y, cy+y)
	})
	return p.finish(b)
}

package raster

import (
	"github.com/flavioheleno/oledgfx/geom"
)

// octants calls fn for every point of the midpoint circle of radius r in the
// first octant, starting at (0, r).
func octants(r int32, fn func(x, y int32)) {
	x, y := int32(0), r
	d := 1 - r
	fn(x, y)
	for x < y {
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
		fn(x, y)
	}
}

// Circle draws the outline of the circle of radius r centred on c.
func Circle(t Target, c geom.Point, r uint16) error {
	b := boxAround(c.X, c.Y, int32(r), int32(r))
	p := &pen{t: t}
	p.clear(b)
	cx, cy := int32(c.X), int32(c.Y)
	octants(int32(r), func(x, y int32) {
		p.plot(cx+x, cy+y)
		p.plot(cx-x, cy+y)
		p.plot(cx+x, cy-y)
		p.plot(cx-x, cy-y)
		p.plot(cx+y, cy+x)
		p.plot(cx-y, cy+x)
		p.plot(cx+y, cy-x)
		p.plot(cx-y, cy-x)
	})
	return p.finish(b)
}

// FillCircle fills the circle of radius r centred on c with vertical spans
// between symmetric outline points.
func FillCircle(t Target, c geom.Point, r uint16) error {
	b := boxAround(c.X, c.Y, int32(r), int32(r))
	p := &pen{t: t}
	p.clear(b)
	cx, cy := int32(c.X), int32(c.Y)
	octants(int32(r), func(x, y int32) {
		p.vspan(cx+x, cy-y, cy+y)
		p.vspan(cx-x, cy-y, cy+y)
		p.vspan(cx+y, cy-x, cy+x)
		p.vspan(cx-y, cy-x, cy+x)
	})
	return p.finish(b)
}

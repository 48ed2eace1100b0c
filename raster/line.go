package raster

import (
	"github.com/flavioheleno/oledgfx/geom"
)

// Line draws the segment p0-p1, both ends included. It is the one shape that
// does not clear its bounding box.
func Line(t Target, p0, p1 geom.Point) error {
	p := &pen{t: t}
	p.line(int32(p0.X), int32(p0.Y), int32(p1.X), int32(p1.Y))
	return p.finish(boxOf(p0, p1))
}

func (p *pen) line(x0, y0, x1, y1 int32) {
	switch {
	case x0 == x1:
		p.vspan(x0, min(y0, y1), max(y0, y1))
	case y0 == y1:
		for x := min(x0, x1); x <= max(x0, x1); x++ {
			p.plot(x, y0)
		}
	default:
		p.bresenham(x0, y0, x1, y1)
	}
}

// bresenham walks the first octant only. The endpoints are ordered by x, the
// y axis is mirrored for falling lines and the axes are swapped for steep
// ones; plot undoes both transforms.
func (p *pen) bresenham(x0, y0, x1, y1 int32) {
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	mirrored := y0 > y1
	if mirrored {
		y0, y1 = -y0, -y1
	}
	swapped := y1-y0 > x1-x0
	if swapped {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}

	dx, dy := x1-x0, y1-y0
	incE, incNE := 2*dy, 2*(dy-dx)
	d := 2*dy - dx

	plot := func(x, y int32) {
		if swapped {
			x, y = y, x
		}
		if mirrored {
			y = -y
		}
		p.plot(x, y)
	}

	x, y := x0, y0
	plot(x, y)
	for x < x1 {
		x++
		if d < 0 {
			d += incE
		} else {
			y++
			d += incNE
		}
		plot(x, y)
	}
}

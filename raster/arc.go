package raster

import (
	"math"

	"github.com/flavioheleno/oledgfx/geom"
)

// arcPi is the value of π the angle window is computed with. Points sitting
// exactly on a window edge depend on it.
const arcPi = 3.14

// inWindow reports whether the offset (x, y) lies strictly between start and
// end degrees, measured in [0, 360) with atan2 on screen axes (y grows
// downwards). A start greater than end selects the window that wraps
// through 0°.
func inWindow(x, y int32, start, end int16) bool {
	a := int16(math.Atan2(float64(y), float64(x)) / arcPi * 180)
	if a < 0 {
		a += 360
	}
	if start < end {
		return start < a && a < end
	}
	return a > start || a < end
}

// Arc draws the part of the circle of radius r centred on c whose angle lies
// between start and end degrees.
func Arc(t Target, c geom.Point, r uint16, start, end int16) error {
	b := boxAround(c.X, c.Y, int32(r), int32(r))
	p := &pen{t: t}
	p.clear(b)
	cx, cy := int32(c.X), int32(c.Y)
	at := func(x, y int32) {
		if inWindow(x, y, start, end) {
			p.plot(cx+x, cy+y)
		}
	}
	octants(int32(r), func(x, y int32) {
		at(x, y)
		at(-x, y)
		at(x, -y)
		at(-x, -y)
		at(y, x)
		at(-y, x)
		at(y, -x)
		at(-y, -x)
	})
	return p.finish(b)
}

// FillArc fills the circular sector between start and end degrees.
func FillArc(t Target, c geom.Point, r uint16, start, end int16) error {
	b := boxAround(c.X, c.Y, int32(r), int32(r))
	p := &pen{t: t}
	p.clear(b)
	cx, cy := int32(c.X), int32(c.Y)
	span := func(x, y0, y1 int32) {
		for y := y0; y <= y1; y++ {
			if inWindow(x, y, start, end) {
				p.plot(cx+x, cy+y)
			}
		}
	}
	octants(int32(r), func(x, y int32) {
		span(x, -y, y)
		span(-x, -y, y)
		span(y, -x, x)
		span(-y, -x, x)
	})
	return p.finish(b)
}

package raster

import (
	"github.com/flavioheleno/oledgfx/geom"
)

// Triangle draws the three edges of p1 p2 p3.
func Triangle(t Target, p1, p2, p3 geom.Point) error {
	b := boxOf(p1, p2, p3)
	p := &pen{t: t}
	p.clear(b)
	p.line(int32(p1.X), int32(p1.Y), int32(p2.X), int32(p2.Y))
	p.line(int32(p2.X), int32(p2.Y), int32(p3.X), int32(p3.Y))
	p.line(int32(p3.X), int32(p3.Y), int32(p1.X), int32(p1.Y))
	return p.finish(b)
}

// FillTriangle fills p1 p2 p3 by testing every pixel of the bounding box
// with an even-odd ray cast.
func FillTriangle(t Target, p1, p2, p3 geom.Point) error {
	b := boxOf(p1, p2, p3)
	p := &pen{t: t}
	p.clear(b)
	xs := [3]int32{int32(p1.X), int32(p2.X), int32(p3.X)}
	ys := [3]int32{int32(p1.Y), int32(p2.Y), int32(p3.Y)}
	for y := b.ty; y <= b.by; y++ {
		for x := b.lx; x <= b.rx; x++ {
			if inside(&xs, &ys, x, y) {
				p.plot(x, y)
			}
		}
	}
	return p.finish(b)
}

// inside is the pnpoly crossing test. Edges crossing the horizontal ray to
// the right of (x, y) toggle the result.
func inside(xs, ys *[3]int32, x, y int32) bool {
	in := false
	for i, j := 0, 2; i < 3; j, i = i, i+1 {
		if (ys[i] > y) != (ys[j] > y) &&
			x < (xs[j]-xs[i])*(y-ys[i])/(ys[j]-ys[i])+xs[i] {
			in = !in
		}
	}
	return in
}

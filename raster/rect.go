package raster

import (
	"github.com/flavioheleno/oledgfx/geom"
)

// Rect draws the outline of r. Both corners are inclusive; a rect whose
// corners coincide draws one pixel.
func Rect(t Target, r geom.Rect) error {
	r = r.Normalize()
	b := boxOf(r.TL, r.BR)
	p := &pen{t: t}
	p.clear(b)

	if b.lx == b.rx && b.ty == b.by {
		p.plot(b.lx, b.ty)
		return p.finish(b)
	}
	for x := b.lx; x <= b.rx; x++ {
		p.plot(x, b.ty)
		if b.by != b.ty {
			p.plot(x, b.by)
		}
	}
	for y := b.ty + 1; y < b.by; y++ {
		p.plot(b.lx, y)
		if b.rx != b.lx {
			p.plot(b.rx, y)
		}
	}
	return p.finish(b)
}

// FillRect fills r, corners inclusive.
func FillRect(t Target, r geom.Rect) error {
	r = r.Normalize()
	b := boxOf(r.TL, r.BR)
	p := &pen{t: t}
	p.clear(b)
	for y := b.ty; y <= b.by; y++ {
		for x := b.lx; x <= b.rx; x++ {
			p.plot(x, y)
		}
	}
	return p.finish(b)
}

// Package raster draws lines, rectangles, circles, ellipses, arcs, triangles
// and 1bpp bitmaps on a Target.
//
// Every shape clears its bounding box before drawing, so a shape redrawn at a
// new position does not leave stale pixels inside its new box. When the
// target is in immediate mode the bounding box, and only the bounding box, is
// pushed to the panel afterwards.
//
// Parts of a shape that fall off the panel are skipped. The first other
// error, typically a transport failure, is returned.
package raster

import (
	"errors"

	"github.com/flavioheleno/oledgfx/geom"
	"github.com/flavioheleno/oledgfx/oled"
)

// Target is the drawing surface. *oledgfx.Device implements it.
type Target interface {
	SetPixel(x, y uint16) error
	SetArea(x, y, w, h uint16, src []byte) error
	ClearArea(x, y, w, h uint16) error
	UpdateArea(x, y, w, h uint16) error
	Immediate() bool
}

// box is an inclusive bounding box in signed coordinates.
type box struct {
	lx, ty, rx, by int32
}

func boxAround(cx, cy uint16, rx, ry int32) box {
	return box{int32(cx) - rx, int32(cy) - ry, int32(cx) + rx, int32(cy) + ry}
}

func boxOf(pts ...geom.Point) box {
	b := box{int32(pts[0].X), int32(pts[0].Y), int32(pts[0].X), int32(pts[0].Y)}
	for _, p := range pts[1:] {
		b.lx = min(b.lx, int32(p.X))
		b.ty = min(b.ty, int32(p.Y))
		b.rx = max(b.rx, int32(p.X))
		b.by = max(b.by, int32(p.Y))
	}
	return b
}

// area clamps the box to the coordinate grid and returns it as origin and
// extent.
func (b box) area() (x, y, w, h uint16) {
	lx, ty := max(b.lx, 0), max(b.ty, 0)
	if b.rx < lx || b.by < ty {
		return 0, 0, 0, 0
	}
	return geom.ClampU16(lx), geom.ClampU16(ty), geom.ClampU16(b.rx - lx + 1), geom.ClampU16(b.by - ty + 1)
}

// pen plots through a Target and keeps the first error that matters.
type pen struct {
	t   Target
	err error
}

func (p *pen) keep(err error) {
	if err == nil || p.err != nil || errors.Is(err, oled.ErrOutOfBounds) {
		return
	}
	p.err = err
}

func (p *pen) plot(x, y int32) {
	if x < 0 || y < 0 || x > geom.MaxCoord || y > geom.MaxCoord {
		return
	}
	p.keep(p.t.SetPixel(uint16(x), uint16(y)))
}

// vspan plots x, y0..y1 inclusive.
func (p *pen) vspan(x, y0, y1 int32) {
	for y := y0; y <= y1; y++ {
		p.plot(x, y)
	}
}

func (p *pen) clear(b box) {
	x, y, w, h := b.area()
	if w == 0 || h == 0 {
		return
	}
	p.keep(p.t.ClearArea(x, y, w, h))
}

// finish pushes b when the target is immediate and returns the kept error.
func (p *pen) finish(b box) error {
	if p.t.Immediate() {
		if x, y, w, h := b.area(); w != 0 && h != 0 {
			p.keep(p.t.UpdateArea(x, y, w, h))
		}
	}
	return p.err
}

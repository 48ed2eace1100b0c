package oledgfx

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/embeddedgo/display/pix"
)

// PixDriver adapts a Device to the embeddedgo pix.Driver interface. Drawing
// goes to the GRAM; Flush pushes the union of everything drawn since the
// previous Flush. The first failure is kept until read with Err.
type PixDriver struct {
	dev     *Device
	fill    image.Uniform
	touched image.Rectangle
	err     error
}

// NewPixDriver wraps dev for use with pix.NewDisplay.
func NewPixDriver(dev *Device) *PixDriver {
	return &PixDriver{dev: dev, fill: image.Uniform{C: color.White}}
}

func (p *PixDriver) SetDir(dir int) image.Rectangle {
	return p.dev.Bounds()
}

func (p *PixDriver) Draw(r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op draw.Op) {
	cv, err := p.dev.canvas()
	if err != nil {
		p.setErr(err)
		return
	}
	img := cv.Image()
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.DrawMask(img, r, src, sp, mask, mp, op)
	cv.Touch(r)
	p.touched = p.touched.Union(r)
}

func (p *PixDriver) Fill(r image.Rectangle) {
	p.Draw(r, &p.fill, image.Point{}, nil, image.Point{}, draw.Src)
}

func (p *PixDriver) SetColor(c color.Color) {
	p.fill.C = c
}

func (p *PixDriver) Flush() {
	if p.touched.Empty() {
		return
	}
	r := p.touched
	p.touched = image.Rectangle{}
	p.setErr(p.dev.pushRect(r))
}

func (p *PixDriver) Err(clear bool) error {
	err := p.err
	if clear {
		p.err = nil
	}
	return err
}

func (p *PixDriver) setErr(err error) {
	if p.err == nil {
		p.err = err
	}
}

var _ pix.Driver = (*PixDriver)(nil)

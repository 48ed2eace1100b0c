package oledgfx

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"

	"github.com/flavioheleno/oledgfx/image1bit"
	"github.com/flavioheleno/oledgfx/oled"
)

// canvas returns the bound encoder's GRAM view.
func (d *Device) canvas() (oled.Canvas, error) {
	if d.ops == nil {
		return nil, ErrNotBound
	}
	c, ok := d.ops.(oled.Canvas)
	if !ok {
		return nil, fmt.Errorf("oledgfx: %s has no canvas: %w", d.ops.Capabilities().Name, oled.ErrUnsupported)
	}
	return c, nil
}

// ColorModel returns the GRAM colour model.
func (d *Device) ColorModel() color.Model {
	c, err := d.canvas()
	if err != nil {
		return image1bit.BitModel
	}
	return c.Image().ColorModel()
}

// Bounds returns the logical panel rectangle.
func (d *Device) Bounds() image.Rectangle {
	s := d.ScreenSize()
	return image.Rect(0, 0, int(s.Width), int(s.Height))
}

// Draw copies src into the GRAM and pushes the smallest rectangle of dst that
// actually changed. Pixels that already hold the converted colour are not
// pushed again.
func (d *Device) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	c, err := d.canvas()
	if err != nil {
		return err
	}
	img := c.Image()
	dst = dst.Intersect(img.Bounds())
	if dst.Empty() {
		return nil
	}

	m := img.ColorModel()
	changed := image.Rectangle{}
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			want := m.Convert(src.At(sp.X+x-dst.Min.X, sp.Y+y-dst.Min.Y))
			if sameColor(img.At(x, y), want) {
				continue
			}
			img.Set(x, y, want)
			changed = changed.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	if changed.Empty() {
		return nil
	}
	c.Touch(changed)
	return d.pushRect(changed)
}

// Write replaces the whole GRAM with a 1bpp vertical-LSB frame of
// ceil(H/8) rows of W bytes and pushes it.
func (d *Device) Write(frame []byte) (int, error) {
	s := d.ScreenSize()
	if d.ops == nil {
		return 0, ErrNotBound
	}
	if n := int(s.Width) * ((int(s.Height) + 7) / 8); len(frame) != n {
		return 0, fmt.Errorf("oledgfx: write %d bytes, frame is %d: %w", len(frame), n, oled.ErrInvalidArgument)
	}
	if err := d.SetArea(0, 0, s.Width, s.Height, frame); err != nil {
		return 0, err
	}
	if err := d.Update(); err != nil {
		return 0, err
	}
	return len(frame), nil
}

// Halt powers the panel off.
func (d *Device) Halt() error {
	return d.Close()
}

func (d *Device) String() string {
	if d.ops == nil {
		return "oledgfx.Device{unbound}"
	}
	s := d.ScreenSize()
	return fmt.Sprintf("oledgfx.Device{%s %dx%d}", d.ops.Capabilities().Name, s.Width, s.Height)
}

func (d *Device) pushRect(r image.Rectangle) error {
	return d.UpdateArea(uint16(r.Min.X), uint16(r.Min.Y), uint16(r.Dx()), uint16(r.Dy()))
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

var _ display.Drawer = (*Device)(nil)

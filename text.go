package oledgfx

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/flavioheleno/oledgfx/image4bit"
)

// DrawText renders s with face into the GRAM, the baseline starting at dot.
// The glyphs use the active grey level on greyscale panels and the lit state
// on monochrome ones. The text bounds are marked dirty and, in immediate mode,
// pushed.
func (d *Device) DrawText(face font.Face, dot image.Point, s string) error {
	c, err := d.canvas()
	if err != nil {
		return err
	}
	img := c.Image()

	fd := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(d.ink()),
		Face: face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	b, _ := fd.BoundString(s)
	r := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil()).Intersect(img.Bounds())
	fd.DrawString(s)

	if r.Empty() {
		return nil
	}
	c.Touch(r)
	if d.immediate {
		return d.pushRect(r)
	}
	return nil
}

func (d *Device) ink() color.Color {
	caps := d.Capabilities()
	if caps.BitsPerPixel == 4 {
		return image4bit.Gray4{Y: caps.GreyLevel}
	}
	return color.White
}

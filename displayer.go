package oledgfx

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"tinygo.org/x/drivers"

	"github.com/flavioheleno/oledgfx/oled"
)

// TinyDisplay adapts a Device to the TinyGo drivers.Displayer interface so
// tinyfont and tinydraw can render onto the panel. Pixels land in the GRAM;
// Display pushes what changed.
type TinyDisplay struct {
	dev *Device
}

// Displayer wraps dev for TinyGo drawing libraries.
func Displayer(dev *Device) *TinyDisplay {
	return &TinyDisplay{dev: dev}
}

func (t *TinyDisplay) Size() (x, y int16) {
	s := t.dev.ScreenSize()
	return int16(s.Width), int16(s.Height)
}

// SetPixel writes c converted to the panel colour model. Off-panel
// coordinates are ignored.
func (t *TinyDisplay) SetPixel(x, y int16, c color.RGBA) {
	w, h := t.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	if cv, err := t.dev.canvas(); err == nil {
		cv.Image().Set(int(x), int(y), c)
		cv.Touch(image.Rect(int(x), int(y), int(x)+1, int(y)+1))
		return
	}
	if lit(c) {
		_ = t.dev.SetPixel(uint16(x), uint16(y))
	} else {
		_ = t.dev.ClearArea(uint16(x), uint16(y), 1, 1)
	}
}

// Display pushes the GRAM changes to the panel.
func (t *TinyDisplay) Display() error {
	return t.dev.Flush()
}

// FillRectangle paints a w×h block at (x, y), clipped to the panel.
func (t *TinyDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("oledgfx: fill %dx%d: %w", width, height, oled.ErrInvalidArgument)
	}
	cv, err := t.dev.canvas()
	if err != nil {
		return err
	}
	img := cv.Image()
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Intersect(img.Bounds())
	if r.Empty() {
		return nil
	}
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
	cv.Touch(r)
	return nil
}

// SetRotation accepts only the native orientation.
func (t *TinyDisplay) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return fmt.Errorf("oledgfx: rotation %d: %w", rotation, oled.ErrUnsupported)
	}
	return nil
}

func lit(c color.RGBA) bool {
	return c.R|c.G|c.B != 0 && c.A != 0
}

var _ drivers.Displayer = (*TinyDisplay)(nil)

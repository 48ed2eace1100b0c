// Package image1bit provides a 1-bit monochrome image in the page layout used
// by SSD1306-class OLED controllers.
//
// The panel RAM is split into pages of 8 rows. Each byte holds one column of a
// page, least significant bit on top. VerticalLSB stores pixels exactly that
// way so a page row can be streamed to the controller without conversion.
package image1bit

import (
	"image"
	"image/color"
)

// Bit is a monochrome color: On (lit) or Off.
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA implements color.Color.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit. Anything at or above half intensity
// is On.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image stored in 8-row pages.
//
// The byte for pixel (x, y) is Pix[(y/8)*Stride + x], and the pixel is bit
// y%8 of that byte. Coordinates are relative to Rect.Min.
type VerticalLSB struct {
	Pix    []byte
	Stride int // Bytes per page, equal to the width
	Rect   image.Rectangle
}

// NewVerticalLSB allocates a cleared image. The height is rounded up to a
// whole number of pages.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &VerticalLSB{Rect: r}
	}
	pages := (h + 7) / 8
	return &VerticalLSB{
		Pix:    make([]byte, pages*w),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns BitModel.
func (i *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (i *VerticalLSB) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *VerticalLSB) At(x, y int) color.Color {
	return i.BitAt(x, y)
}

// BitAt returns the pixel at (x, y). Pixels outside the image are Off.
func (i *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return Off
	}
	offset, mask := i.pixOffset(x, y)
	return i.Pix[offset]&mask != 0
}

// Set implements draw.Image.
func (i *VerticalLSB) Set(x, y int, c color.Color) {
	i.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the pixel at (x, y). Pixels outside the image are ignored.
func (i *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return
	}
	offset, mask := i.pixOffset(x, y)
	if b {
		i.Pix[offset] |= mask
	} else {
		i.Pix[offset] &^= mask
	}
}

// Pages returns the number of 8-row pages.
func (i *VerticalLSB) Pages() int {
	return (i.Rect.Dy() + 7) / 8
}

// Page returns the bytes of columns [x0, x1) of page p, aliasing Pix.
func (i *VerticalLSB) Page(p, x0, x1 int) []byte {
	base := p * i.Stride
	return i.Pix[base+x0-i.Rect.Min.X : base+x1-i.Rect.Min.X]
}

// FillRect sets every pixel of r ∩ Bounds to b.
func (i *VerticalLSB) FillRect(r image.Rectangle, b Bit) {
	i.eachMask(r, func(offset int, mask byte) {
		if b {
			i.Pix[offset] |= mask
		} else {
			i.Pix[offset] &^= mask
		}
	})
}

// InvertRect flips every pixel of r ∩ Bounds.
func (i *VerticalLSB) InvertRect(r image.Rectangle) {
	i.eachMask(r, func(offset int, mask byte) {
		i.Pix[offset] ^= mask
	})
}

// eachMask calls fn once per byte touched by r, with the mask of the rows of
// r that fall inside that byte.
func (i *VerticalLSB) eachMask(r image.Rectangle, fn func(offset int, mask byte)) {
	r = r.Intersect(i.Rect)
	if r.Empty() {
		return
	}
	y0 := r.Min.Y - i.Rect.Min.Y
	y1 := r.Max.Y - i.Rect.Min.Y
	for page := y0 / 8; page <= (y1-1)/8; page++ {
		lo := max(y0-page*8, 0)
		hi := min(y1-page*8, 8)
		mask := byte(0xFF<<lo) & byte(0xFF>>(8-hi))
		base := page * i.Stride
		for x := r.Min.X - i.Rect.Min.X; x < r.Max.X-i.Rect.Min.X; x++ {
			fn(base+x, mask)
		}
	}
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
func (i *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	y -= i.Rect.Min.Y
	offset = (y/8)*i.Stride + x - i.Rect.Min.X
	mask = 1 << uint(y&7)
	return
}

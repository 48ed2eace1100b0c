package image4bit

import (
	"image"
	"image/color"
)

// Gray4 is a 4-bit grey level. Only the low nibble of Y is significant.
type Gray4 struct {
	Y uint8
}

// RGBA implements color.Color, scaling the level to 16 bits.
func (c Gray4) RGBA() (r, g, b, a uint32) {
	// 0xF * 0x1111 = 0xFFFF
	y := uint32(c.Y&0x0F) * 0x1111
	return y, y, y, 0xFFFF
}

func toGray4(c color.Color) color.Color {
	if g, ok := c.(Gray4); ok {
		return g
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Gray4{Y: uint8(y >> 12)}
}

// Gray4Model converts colors to Gray4 using luma weights.
var Gray4Model = color.ModelFunc(toGray4)

// HorizontalNibble is a 4-bit image with two pixels per byte. Relative to
// Rect.Min, even columns sit in the high nibble and odd columns in the low
// nibble. An odd width leaves the low nibble of the last byte of each row
// unused.
type HorizontalNibble struct {
	Pix    []byte
	Stride int // Bytes per row, ceil(width/2)
	Rect   image.Rectangle
}

// NewHorizontalNibble allocates a cleared image.
func NewHorizontalNibble(r image.Rectangle) *HorizontalNibble {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &HorizontalNibble{Rect: r}
	}
	stride := (w + 1) / 2
	return &HorizontalNibble{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns Gray4Model.
func (p *HorizontalNibble) ColorModel() color.Model {
	return Gray4Model
}

// Bounds returns the image bounds.
func (p *HorizontalNibble) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *HorizontalNibble) At(x, y int) color.Color {
	return p.Gray4At(x, y)
}

// Gray4At returns the pixel at (x, y), or level 0 outside the image.
func (p *HorizontalNibble) Gray4At(x, y int) Gray4 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Gray4{}
	}
	offset, shift := p.pixOffset(x, y)
	return Gray4{Y: (p.Pix[offset] >> shift) & 0x0F}
}

// Set implements draw.Image.
func (p *HorizontalNibble) Set(x, y int, c color.Color) {
	p.SetGray4(x, y, Gray4Model.Convert(c).(Gray4))
}

// SetGray4 sets the pixel at (x, y), leaving its byte neighbour untouched.
func (p *HorizontalNibble) SetGray4(x, y int, c Gray4) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, shift := p.pixOffset(x, y)
	p.Pix[offset] = (p.Pix[offset] &^ (0x0F << shift)) | ((c.Y & 0x0F) << shift)
}

// Row returns the bytes covering columns [x0, x1) of row y, aliasing Pix.
// The span is widened to whole bytes, so an odd x0 or x1 drags in the
// neighbouring nibble.
func (p *HorizontalNibble) Row(y, x0, x1 int) []byte {
	base := (y - p.Rect.Min.Y) * p.Stride
	c0 := (x0 - p.Rect.Min.X) / 2
	c1 := (x1 - p.Rect.Min.X - 1) / 2
	return p.Pix[base+c0 : base+c1+1]
}

// Fill sets every pixel to c.
func (p *HorizontalNibble) Fill(c Gray4) {
	v := c.Y&0x0F<<4 | c.Y&0x0F
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// FillRect sets every pixel of r ∩ Bounds to c.
func (p *HorizontalNibble) FillRect(r image.Rectangle, c Gray4) {
	r = r.Intersect(p.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p.SetGray4(x, y, c)
		}
	}
}

// InvertRect replaces every level l of r ∩ Bounds with 15-l.
func (p *HorizontalNibble) InvertRect(r image.Rectangle) {
	r = r.Intersect(p.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			offset, shift := p.pixOffset(x, y)
			p.Pix[offset] ^= 0x0F << shift
		}
	}
}

// pixOffset returns the byte offset and nibble shift for (x, y):
// shift 4 for even relative columns, 0 for odd ones.
func (p *HorizontalNibble) pixOffset(x, y int) (offset int, shift uint) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/2
	shift = uint(4 * (1 - (dx & 1)))
	return
}

// Package paged implements the 1bpp page-addressed framebuffer encoder used
// by SSD1306, SSD1309 and SH1106 controllers.
//
// The GRAM mirror is an image1bit.VerticalLSB: ceil(H/8) pages of W bytes,
// bit y%8 of byte [y/8][x] holding pixel (x, y). UpdateArea positions the
// controller cursor at the start of each touched page and streams exactly
// the columns of the area.
package paged

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/flavioheleno/oledgfx/image1bit"
	"github.com/flavioheleno/oledgfx/oled"
	"github.com/flavioheleno/oledgfx/transport"
)

// Opts is the configuration for a paged encoder.
type Opts struct {
	// Timeout bounds every bus transaction. Zero waits forever.
	Timeout time.Duration
}

// Dev is a paged framebuffer encoder bound to one controller.
type Dev struct {
	desc oled.Descriptor
	caps oled.Capabilities
	link *oled.Link

	gram  *image1bit.VerticalLSB
	pages int

	dirty  oled.DirtyRect
	halted bool
}

// New creates an encoder for desc on bus. No bytes are sent until Init.
//
// opts can be nil to use defaults.
func New(bus transport.Bus, desc oled.Descriptor, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if bus == nil {
		return nil, fmt.Errorf("paged: nil bus: %w", oled.ErrInvalidArgument)
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if desc.Layout != oled.LayoutPaged1 {
		return nil, fmt.Errorf("paged: %s has layout %v: %w", desc.Name, desc.Layout, oled.ErrUnsupported)
	}

	gram := image1bit.NewVerticalLSB(image.Rect(0, 0, int(desc.Width), int(desc.Height)))
	return &Dev{
		desc: desc,
		caps: oled.Capabilities{
			Name:         desc.Name,
			Width:        desc.Width,
			Height:       desc.Height,
			BitsPerPixel: 1,
			GreyLevel:    1,
		},
		link:  oled.NewLink(bus, &desc, opts.Timeout),
		gram:  gram,
		pages: gram.Pages(),
	}, nil
}

// Init sends the controller initialisation sequence.
func (d *Dev) Init() error {
	oled.Logger().Debug("paged: init", "device", d.desc.Name, "bytes", len(d.desc.Init))
	if err := d.link.Command("init", d.desc.Init...); err != nil {
		return fmt.Errorf("paged: init: %w", err)
	}
	d.halted = false
	return nil
}

// SetPixel lights (x, y) in GRAM.
func (d *Dev) SetPixel(x, y uint16) error {
	if x >= d.caps.Width || y >= d.caps.Height {
		return oled.ErrOutOfBounds
	}
	d.gram.Pix[int(y/8)*d.gram.Stride+int(x)] |= 1 << (y % 8)
	d.dirty.Add(x, y, 1, 1)
	return nil
}

// SetArea clears the area at (x, y) of extent w×h and blits src into it.
// src holds ceil(h/8) rows of w bytes in vertical-LSB order; the parts that
// fall off the panel are dropped.
func (d *Dev) SetArea(x, y, w, h uint16, src []byte) error {
	if w == 0 || h == 0 {
		return nil
	}
	srcStride := int(w)
	if len(src) < (int(h)+7)/8*srcStride {
		return fmt.Errorf("paged: set area: %d bytes for %dx%d: %w", len(src), w, h, oled.ErrInvalidArgument)
	}
	tw, th, err := d.caps.Truncate(x, y, w, h)
	if err != nil {
		return fmt.Errorf("paged: set area (%d,%d): %w", x, y, err)
	}

	area := image.Rect(int(x), int(y), int(x)+int(tw), int(y)+int(th))
	d.gram.FillRect(area, image1bit.Off)

	pw := pageWriter{gram: d.gram, pages: d.pages, limit: area.Max.Y}
	off := uint(y % 8)
	base := int(y / 8)
	for j := 0; j < (int(th)+7)/8; j++ {
		rows := min(int(th)-j*8, 8)
		keep := byte(0xFF >> (8 - rows))
		for i := 0; i < int(tw); i++ {
			pw.put(base+j, int(x)+i, src[j*srcStride+i]&keep, off)
		}
	}
	d.dirty.Add(x, y, tw, th)
	return nil
}

// Update pushes the whole GRAM.
func (d *Dev) Update() error {
	return d.UpdateArea(0, 0, d.caps.Width, d.caps.Height)
}

// UpdateArea pushes the pages covering the area at (x, y) of extent w×h,
// truncated to the panel.
func (d *Dev) UpdateArea(x, y, w, h uint16) error {
	if d.halted {
		return fmt.Errorf("paged: update: %w", oled.ErrHalted)
	}
	tw, th, err := d.caps.Truncate(x, y, w, h)
	if err != nil {
		return fmt.Errorf("paged: update area (%d,%d): %w", x, y, err)
	}
	if tw == 0 || th == 0 {
		return nil
	}

	col := x + d.desc.ColumnOffset
	for page := int(y / 8); page <= int(y+th-1)/8; page++ {
		if err := d.link.Command("update",
			0xB0|byte(page),
			0x10|byte(col>>4),
			0x00|byte(col&0x0F),
		); err != nil {
			return fmt.Errorf("paged: update page %d: %w", page, err)
		}
		if err := d.link.Data("update", d.gram.Page(page, int(x), int(x+tw))); err != nil {
			return fmt.Errorf("paged: update page %d: %w", page, err)
		}
	}
	d.dirty.Pushed(x, y, tw, th)
	return nil
}

// Clear zeroes the GRAM.
func (d *Dev) Clear() error {
	clear(d.gram.Pix)
	d.dirty.Add(0, 0, d.caps.Width, d.caps.Height)
	return nil
}

// ClearArea zeroes the pixels of the area at (x, y) of extent w×h.
func (d *Dev) ClearArea(x, y, w, h uint16) error {
	r, err := d.area(x, y, w, h)
	if err != nil {
		return fmt.Errorf("paged: clear area (%d,%d): %w", x, y, err)
	}
	d.gram.FillRect(r, image1bit.Off)
	return nil
}

// Revert inverts the GRAM.
func (d *Dev) Revert() error {
	for i := range d.gram.Pix {
		d.gram.Pix[i] ^= 0xFF
	}
	d.dirty.Add(0, 0, d.caps.Width, d.caps.Height)
	return nil
}

// RevertArea inverts the pixels of the area at (x, y) of extent w×h.
func (d *Dev) RevertArea(x, y, w, h uint16) error {
	r, err := d.area(x, y, w, h)
	if err != nil {
		return fmt.Errorf("paged: revert area (%d,%d): %w", x, y, err)
	}
	d.gram.InvertRect(r)
	return nil
}

// Open powers the panel on.
func (d *Dev) Open() error {
	oled.Logger().Debug("paged: open", "device", d.desc.Name)
	if err := d.link.Command("open", d.desc.OpenSeq...); err != nil {
		return fmt.Errorf("paged: open: %w", err)
	}
	d.halted = false
	return nil
}

// Close powers the panel off. Pushes fail with oled.ErrHalted until the
// next Open or Init.
func (d *Dev) Close() error {
	oled.Logger().Debug("paged: close", "device", d.desc.Name)
	d.halted = true
	if err := d.link.Command("close", d.desc.CloseSeq...); err != nil {
		return fmt.Errorf("paged: close: %w", err)
	}
	return nil
}

// Capabilities describes the panel.
func (d *Dev) Capabilities() oled.Capabilities {
	return d.caps
}

// SetContrast sets the panel contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return fmt.Errorf("paged: contrast: %w", oled.ErrHalted)
	}
	if d.desc.ContrastCmd == 0 {
		return fmt.Errorf("paged: contrast: %w", oled.ErrUnsupported)
	}
	return d.link.Command("contrast", d.desc.ContrastCmd, contrast)
}

// Invert switches the panel between normal and inverse display. GRAM is
// left untouched.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return fmt.Errorf("paged: invert: %w", oled.ErrHalted)
	}
	mode := d.desc.NormalCmd
	if invert {
		mode = d.desc.InvertCmd
	}
	return d.link.Command("invert", mode)
}

// Flush pushes the rectangle changed since the last push.
func (d *Dev) Flush() error {
	x, y, w, h, ok := d.dirty.Rect()
	if !ok {
		return nil
	}
	if err := d.UpdateArea(x, y, w, h); err != nil {
		return err
	}
	d.dirty.Reset()
	return nil
}

// Dirty returns the rectangle changed since the last push.
func (d *Dev) Dirty() (x, y, w, h uint16, ok bool) {
	return d.dirty.Rect()
}

// Image exposes the GRAM.
func (d *Dev) Image() draw.Image {
	return d.gram
}

// Touch marks the part of r inside the panel as dirty.
func (d *Dev) Touch(r image.Rectangle) {
	r = r.Intersect(d.gram.Bounds())
	if r.Empty() {
		return
	}
	d.dirty.Add(uint16(r.Min.X), uint16(r.Min.Y), uint16(r.Dx()), uint16(r.Dy()))
}

// GRAM returns the raw page buffer, aliasing the encoder state.
func (d *Dev) GRAM() *image1bit.VerticalLSB {
	return d.gram
}

func (d *Dev) String() string {
	return fmt.Sprintf("paged.Dev{%s %dx%d}", d.desc.Name, d.caps.Width, d.caps.Height)
}

// area truncates an area and marks it dirty.
func (d *Dev) area(x, y, w, h uint16) (image.Rectangle, error) {
	tw, th, err := d.caps.Truncate(x, y, w, h)
	if err != nil {
		return image.Rectangle{}, err
	}
	d.dirty.Add(x, y, tw, th)
	return image.Rect(int(x), int(y), int(x)+int(tw), int(y)+int(th)), nil
}

var (
	_ oled.Operations = (*Dev)(nil)
	_ oled.Tuner      = (*Dev)(nil)
	_ oled.Flusher    = (*Dev)(nil)
	_ oled.Canvas     = (*Dev)(nil)
)

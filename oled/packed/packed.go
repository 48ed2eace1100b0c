// Package packed implements the 4bpp framebuffer encoder used by SSD1327
// and SSD1322 greyscale controllers.
//
// The GRAM mirror is an image4bit.HorizontalNibble: H rows of ceil(W/2)
// bytes, the even column in the high nibble. Drawing writes the active grey
// level; UpdateArea opens a column/row window on the controller and sends
// one data transaction per row.
package packed

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/flavioheleno/oledgfx/image4bit"
	"github.com/flavioheleno/oledgfx/oled"
	"github.com/flavioheleno/oledgfx/transport"
)

// Opts is the configuration for a packed encoder.
type Opts struct {
	// Timeout bounds every bus transaction. Zero waits forever.
	Timeout time.Duration
}

// Dev is a packed framebuffer encoder bound to one controller.
type Dev struct {
	desc oled.Descriptor
	caps oled.Capabilities
	link *oled.Link

	gram   *image4bit.HorizontalNibble
	grey   image4bit.Gray4
	window []byte

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
		return nil, fmt.Errorf("packed: nil bus: %w", oled.ErrInvalidArgument)
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if desc.Layout != oled.LayoutPacked4 {
		return nil, fmt.Errorf("packed: %s has layout %v: %w", desc.Name, desc.Layout, oled.ErrUnsupported)
	}

	grey := desc.GreyLevel & 0x0F
	return &Dev{
		desc: desc,
		caps: oled.Capabilities{
			Name:         desc.Name,
			Width:        desc.Width,
			Height:       desc.Height,
			BitsPerPixel: 4,
			GreyLevel:    grey,
		},
		link:   oled.NewLink(bus, &desc, opts.Timeout),
		gram:   image4bit.NewHorizontalNibble(image.Rect(0, 0, int(desc.Width), int(desc.Height))),
		grey:   image4bit.Gray4{Y: grey},
		window: make([]byte, 6, 6+len(desc.Window.WriteCmd)),
	}, nil
}

// Init sends the controller initialisation sequence.
func (d *Dev) Init() error {
	oled.Logger().Debug("packed: init", "device", d.desc.Name, "bytes", len(d.desc.Init))
	if err := d.link.Command("init", d.desc.Init...); err != nil {
		return fmt.Errorf("packed: init: %w", err)
	}
	d.halted = false
	return nil
}

// SetGreyLevel selects the level used by subsequent drawing. Only the low
// nibble is kept.
func (d *Dev) SetGreyLevel(level uint8) error {
	d.grey = image4bit.Gray4{Y: level & 0x0F}
	d.caps.GreyLevel = d.grey.Y
	return nil
}

// SetPixel writes the active grey level at (x, y) in GRAM.
func (d *Dev) SetPixel(x, y uint16) error {
	if x >= d.caps.Width || y >= d.caps.Height {
		return oled.ErrOutOfBounds
	}
	d.gram.SetGray4(int(x), int(y), d.grey)
	d.dirty.Add(x, y, 1, 1)
	return nil
}

// SetArea clears the area at (x, y) of extent w×h and expands the 1bpp
// vertical-LSB bitmap src into it: set bits take the active grey level,
// clear bits level 0.
func (d *Dev) SetArea(x, y, w, h uint16, src []byte) error {
	if w == 0 || h == 0 {
		return nil
	}
	srcStride := int(w)
	if len(src) < (int(h)+7)/8*srcStride {
		return fmt.Errorf("packed: set area: %d bytes for %dx%d: %w", len(src), w, h, oled.ErrInvalidArgument)
	}
	tw, th, err := d.caps.Truncate(x, y, w, h)
	if err != nil {
		return fmt.Errorf("packed: set area (%d,%d): %w", x, y, err)
	}

	d.gram.FillRect(image.Rect(int(x), int(y), int(x)+int(tw), int(y)+int(th)), image4bit.Gray4{})
	for j := 0; j < int(th); j++ {
		row := src[(j/8)*srcStride:]
		bit := uint(j % 8)
		for i := 0; i < int(tw); i++ {
			if row[i]>>bit&1 != 0 {
				d.gram.SetGray4(int(x)+i, int(y)+j, d.grey)
			}
		}
	}
	d.dirty.Add(x, y, tw, th)
	return nil
}

// Update pushes the whole GRAM.
func (d *Dev) Update() error {
	return d.UpdateArea(0, 0, d.caps.Width, d.caps.Height)
}

// UpdateArea pushes the rows of the area at (x, y) of extent w×h, truncated
// to the panel and widened to whole bytes.
func (d *Dev) UpdateArea(x, y, w, h uint16) error {
	if d.halted {
		return fmt.Errorf("packed: update: %w", oled.ErrHalted)
	}
	tw, th, err := d.caps.Truncate(x, y, w, h)
	if err != nil {
		return fmt.Errorf("packed: update area (%d,%d): %w", x, y, err)
	}
	if tw == 0 || th == 0 {
		return nil
	}

	off := d.desc.ColumnOffset
	colStart := (x + off) / 2
	colEnd := (x + tw - 1 + off) / 2
	win := d.window[:6]
	win[0], win[1], win[2] = d.desc.Window.ColumnCmd, byte(colStart), byte(colEnd)
	win[3], win[4], win[5] = d.desc.Window.RowCmd, byte(y), byte(y+th-1)
	win = append(win, d.desc.Window.WriteCmd...)
	oled.Logger().Debug("packed: window", "device", d.desc.Name, "cols", [2]uint16{colStart, colEnd}, "rows", [2]uint16{y, y + th - 1})
	if err := d.link.Command("window", win...); err != nil {
		return fmt.Errorf("packed: update window: %w", err)
	}

	for row := int(y); row < int(y+th); row++ {
		if err := d.link.Data("update", d.gram.Row(row, int(x), int(x+tw))); err != nil {
			return fmt.Errorf("packed: update row %d: %w", row, err)
		}
	}
	d.dirty.Pushed(x, y, tw, th)
	return nil
}

// Clear sets every pixel to level 0.
func (d *Dev) Clear() error {
	clear(d.gram.Pix)
	d.dirty.Add(0, 0, d.caps.Width, d.caps.Height)
	return nil
}

// ClearArea sets the pixels of the area at (x, y) of extent w×h to level 0.
func (d *Dev) ClearArea(x, y, w, h uint16) error {
	r, err := d.area(x, y, w, h)
	if err != nil {
		return fmt.Errorf("packed: clear area (%d,%d): %w", x, y, err)
	}
	d.gram.FillRect(r, image4bit.Gray4{})
	return nil
}

// Revert replaces every level l with 15-l.
func (d *Dev) Revert() error {
	for i := range d.gram.Pix {
		d.gram.Pix[i] ^= 0xFF
	}
	d.dirty.Add(0, 0, d.caps.Width, d.caps.Height)
	return nil
}

// RevertArea replaces every level l of the area with 15-l.
func (d *Dev) RevertArea(x, y, w, h uint16) error {
	r, err := d.area(x, y, w, h)
	if err != nil {
		return fmt.Errorf("packed: revert area (%d,%d): %w", x, y, err)
	}
	d.gram.InvertRect(r)
	return nil
}

// Open powers the panel on.
func (d *Dev) Open() error {
	oled.Logger().Debug("packed: open", "device", d.desc.Name)
	if err := d.link.Command("open", d.desc.OpenSeq...); err != nil {
		return fmt.Errorf("packed: open: %w", err)
	}
	d.halted = false
	return nil
}

// Close powers the panel off. Pushes fail with oled.ErrHalted until the
// next Open or Init.
func (d *Dev) Close() error {
	oled.Logger().Debug("packed: close", "device", d.desc.Name)
	d.halted = true
	if err := d.link.Command("close", d.desc.CloseSeq...); err != nil {
		return fmt.Errorf("packed: close: %w", err)
	}
	return nil
}

// Capabilities describes the panel and the active grey level.
func (d *Dev) Capabilities() oled.Capabilities {
	return d.caps
}

// SetContrast sets the panel contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return fmt.Errorf("packed: contrast: %w", oled.ErrHalted)
	}
	if d.desc.ContrastCmd == 0 {
		return fmt.Errorf("packed: contrast: %w", oled.ErrUnsupported)
	}
	return d.link.Command("contrast", d.desc.ContrastCmd, contrast)
}

// Invert switches the panel between normal and inverse display.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return fmt.Errorf("packed: invert: %w", oled.ErrHalted)
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

// GRAM returns the raw nibble buffer, aliasing the encoder state.
func (d *Dev) GRAM() *image4bit.HorizontalNibble {
	return d.gram
}

func (d *Dev) String() string {
	return fmt.Sprintf("packed.Dev{%s %dx%d}", d.desc.Name, d.caps.Width, d.caps.Height)
}

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
	_ oled.GreySetter = (*Dev)(nil)
	_ oled.Tuner      = (*Dev)(nil)
	_ oled.Flusher    = (*Dev)(nil)
	_ oled.Canvas     = (*Dev)(nil)
)

package oledgfx

import (
	"errors"
	"fmt"

	"github.com/flavioheleno/oledgfx/geom"
	"github.com/flavioheleno/oledgfx/oled"
)

// ErrNotBound is returned by a Device that has no operation set.
var ErrNotBound = errors.New("oledgfx: no device bound")

// DeviceType tags the operation set bound to a Device.
type DeviceType int

const (
	TypeNone DeviceType = iota
	TypeOLED
)

func (t DeviceType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeOLED:
		return "oled"
	}
	return fmt.Sprintf("DeviceType(%d)", int(t))
}

// Device is the graphics facade the rasterizer draws through. The zero value
// is unbound; see Bind.
//
// In immediate mode every shape pushes its bounding box to the panel as soon
// as it is drawn. In deferred mode nothing reaches the panel until Update,
// UpdateArea or Flush.
type Device struct {
	ops       oled.Operations
	typ       DeviceType
	immediate bool
}

// Ops returns the bound operation set, or nil.
func (d *Device) Ops() oled.Operations {
	return d.ops
}

// Type returns the device-type tag.
func (d *Device) Type() DeviceType {
	return d.typ
}

// Immediate reports whether drawing pushes to the panel right away.
func (d *Device) Immediate() bool {
	return d.immediate
}

// SetImmediate switches between immediate and deferred drawing.
func (d *Device) SetImmediate(immediate bool) {
	d.immediate = immediate
}

// ClearImmediate clears the GRAM and pushes it.
func (d *Device) ClearImmediate() error {
	if err := d.Clear(); err != nil {
		return err
	}
	return d.Update()
}

// ScreenSize returns the logical resolution, or a zero Size when unbound.
func (d *Device) ScreenSize() geom.Size {
	if d.ops == nil {
		return geom.Size{}
	}
	c := d.ops.Capabilities()
	return geom.Size{Width: c.Width, Height: c.Height}
}

// Capabilities returns the bound device's capabilities.
func (d *Device) Capabilities() oled.Capabilities {
	if d.ops == nil {
		return oled.Capabilities{}
	}
	return d.ops.Capabilities()
}

// Query returns one capability by key.
func (d *Device) Query(p oled.Property) (uint32, bool) {
	if d.ops == nil {
		return 0, false
	}
	return oled.Query(d.ops, p)
}

func (d *Device) Init() error {
	if d.ops == nil {
		return ErrNotBound
	}
	return d.ops.Init()
}

func (d *Device) SetPixel(x, y uint16) error {
	if d.ops == nil {
		return ErrNotBound
	}
	return d.ops.SetPixel(x, y)
}

func (d *Device) SetArea(x, y, w, h uint16, src []byte) error {
	if d.ops == nil {
		return ErrNotBound
	}
	return d.ops.SetArea(x, y, w, h, src)
}

func (d *Device) Update() error {
	if d.ops == nil {
		return ErrNotBound
	}
	return d.ops.Update()
}

func (d *Device) Clear() error {
	if d.ops == nil {
		return ErrNotBound
	}
	return d.ops.Clear()
}

func (d *Device) Revert() error {
	if d.ops == nil {
		return ErrNotBound
	}
	return d.ops.Revert()
}

func (d *Device) UpdateArea(x, y, w, h uint16) error {
	if d.ops == nil {
		return ErrNotBound
	}
	return d.ops.UpdateArea(x, y, w, h)
}

func (d *Device) ClearArea(x, y, w, h uint16) error {
	if d.ops == nil {
		return ErrNotBound
	}
	return d.ops.ClearArea(x, y, w, h)
}

func (d *Device) RevertArea(x, y, w, h uint16) error {
	if d.ops == nil {
		return ErrNotBound
	}
	return d.ops.RevertArea(x, y, w, h)
}

func (d *Device) Open() error {
	if d.ops == nil {
		return ErrNotBound
	}
	return d.ops.Open()
}

func (d *Device) Close() error {
	if d.ops == nil {
		return ErrNotBound
	}
	return d.ops.Close()
}

// Flush pushes what changed since the last push. Encoders without dirty
// tracking push the whole GRAM.
func (d *Device) Flush() error {
	if d.ops == nil {
		return ErrNotBound
	}
	if f, ok := d.ops.(oled.Flusher); ok {
		return f.Flush()
	}
	return d.ops.Update()
}

// SetGreyLevel selects the drawing level of a greyscale panel.
func (d *Device) SetGreyLevel(level uint8) error {
	g, ok := d.ops.(oled.GreySetter)
	if !ok {
		return d.unsupported("grey level")
	}
	return g.SetGreyLevel(level)
}

// SetContrast sets the panel contrast (0-255).
func (d *Device) SetContrast(contrast byte) error {
	t, ok := d.ops.(oled.Tuner)
	if !ok {
		return d.unsupported("contrast")
	}
	return t.SetContrast(contrast)
}

// Invert switches the panel between normal and inverse display.
func (d *Device) Invert(invert bool) error {
	t, ok := d.ops.(oled.Tuner)
	if !ok {
		return d.unsupported("invert")
	}
	return t.Invert(invert)
}

func (d *Device) unsupported(what string) error {
	if d.ops == nil {
		return ErrNotBound
	}
	return fmt.Errorf("oledgfx: %s: %w", what, oled.ErrUnsupported)
}

var _ oled.Operations = (*Device)(nil)

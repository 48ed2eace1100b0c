// Package oled defines the operation contract shared by every OLED
// framebuffer encoder, the controller descriptors they are built from, and
// the errors they report.
//
// An encoder owns a GRAM mirror of the panel. Drawing calls mutate the
// mirror only; Update and UpdateArea push it to the controller over a
// transport.Bus.
package oled

import (
	"image"
	"image/draw"
)

// Operations is the device contract. Coordinates are in pixels; areas are
// given as origin plus extent and are truncated to the logical resolution.
// An origin outside the panel is an error.
type Operations interface {
	// Init sends the controller initialisation sequence.
	Init() error
	// SetPixel sets (x, y) to the active drawing state in GRAM.
	SetPixel(x, y uint16) error
	// SetArea blits a 1bpp vertical-LSB bitmap of ceil(h/8) rows of w bytes.
	SetArea(x, y, w, h uint16, src []byte) error

	Update() error
	Clear() error
	Revert() error

	UpdateArea(x, y, w, h uint16) error
	ClearArea(x, y, w, h uint16) error
	RevertArea(x, y, w, h uint16) error

	Open() error
	Close() error

	Capabilities() Capabilities
}

// Capabilities describes a panel.
type Capabilities struct {
	Name         string
	Width        uint16
	Height       uint16
	RGB          bool
	BitsPerPixel uint8
	GreyLevel    uint8 // active drawing level; 1 for monochrome panels
}

// Property keys a single capability for Query.
type Property int

const (
	PropWidth Property = iota
	PropHeight
	PropRGB
	PropGreyLevel
	PropBitsPerPixel
)

func (p Property) String() string {
	switch p {
	case PropWidth:
		return "width"
	case PropHeight:
		return "height"
	case PropRGB:
		return "rgb"
	case PropGreyLevel:
		return "grey-level"
	case PropBitsPerPixel:
		return "bits-per-pixel"
	}
	return "unknown"
}

// Query returns a single capability by key. It reports false for unknown
// keys.
func Query(ops Operations, p Property) (uint32, bool) {
	c := ops.Capabilities()
	switch p {
	case PropWidth:
		return uint32(c.Width), true
	case PropHeight:
		return uint32(c.Height), true
	case PropRGB:
		if c.RGB {
			return 1, true
		}
		return 0, true
	case PropGreyLevel:
		return uint32(c.GreyLevel), true
	case PropBitsPerPixel:
		return uint32(c.BitsPerPixel), true
	}
	return 0, false
}

// GreySetter is implemented by encoders with a selectable drawing level.
type GreySetter interface {
	SetGreyLevel(level uint8) error
}

// Tuner is implemented by encoders whose controller accepts contrast and
// inversion commands.
type Tuner interface {
	SetContrast(contrast byte) error
	Invert(invert bool) error
}

// Flusher is implemented by encoders that track the rectangle touched since
// the last push.
type Flusher interface {
	// Flush pushes the dirty rectangle, if any, and resets it.
	Flush() error
	// Dirty returns the dirty rectangle as origin and extent; ok is false
	// when nothing changed.
	Dirty() (x, y, w, h uint16, ok bool)
}

// Canvas is implemented by encoders whose GRAM is available as an image.
// Writes through the image are not tracked; Touch marks a region dirty so
// that Flush pushes it.
type Canvas interface {
	Image() draw.Image
	Touch(r image.Rectangle)
}

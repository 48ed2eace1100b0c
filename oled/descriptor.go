package oled

import (
	"fmt"
)

// Layout selects the GRAM encoding of a controller.
type Layout int

const (
	// LayoutPaged1 is 1bpp, 8-row pages, one byte per column per page.
	LayoutPaged1 Layout = iota + 1
	// LayoutPacked4 is 4bpp, two horizontally adjacent pixels per byte.
	LayoutPacked4
)

func (l Layout) String() string {
	switch l {
	case LayoutPaged1:
		return "paged-1bpp"
	case LayoutPacked4:
		return "packed-4bpp"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Window holds the addressing commands of a packed controller.
type Window struct {
	ColumnCmd byte
	RowCmd    byte
	WriteCmd  []byte // sent after the window, if any
}

// Descriptor is the static description of a controller and panel.
type Descriptor struct {
	Name   string
	Layout Layout
	Width  uint16
	Height uint16

	// Address is the 7-bit I²C address. SPI transports ignore it.
	Address uint16
	// Selector bytes that precede every command and data payload.
	CommandPrefix byte
	DataPrefix    byte

	Init     []byte
	OpenSeq  []byte
	CloseSeq []byte

	// ColumnOffset is the first visible RAM column, in pixels.
	ColumnOffset uint16
	Window       Window

	// GreyLevel is the initial drawing level of a packed controller.
	GreyLevel uint8

	// Zero ContrastCmd means contrast is not adjustable.
	ContrastCmd byte
	NormalCmd   byte
	InvertCmd   byte
}

// Validate checks the fields every encoder relies on.
func (d *Descriptor) Validate() error {
	if d.Width == 0 || d.Height == 0 {
		return fmt.Errorf("oled: %s: resolution %dx%d: %w", d.Name, d.Width, d.Height, ErrInvalidArgument)
	}
	if d.Address > 0x7F {
		return fmt.Errorf("oled: %s: address %#x is not 7-bit: %w", d.Name, d.Address, ErrInvalidArgument)
	}
	switch d.Layout {
	case LayoutPaged1:
	case LayoutPacked4:
		if d.Window.ColumnCmd == 0 || d.Window.RowCmd == 0 {
			return fmt.Errorf("oled: %s: packed layout needs window commands: %w", d.Name, ErrInvalidArgument)
		}
		if d.ColumnOffset%2 != 0 {
			return fmt.Errorf("oled: %s: packed column offset %d is odd: %w", d.Name, d.ColumnOffset, ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("oled: %s: layout %v: %w", d.Name, d.Layout, ErrUnsupported)
	}
	if d.Name == "ssd1322" {
		return d.validateSSD1322()
	}
	return nil
}

// SSD1306 describes a 128x64 SSD1306 panel at 0x3C in page addressing mode.
func SSD1306() Descriptor {
	return Descriptor{
		Name:          "ssd1306",
		Layout:        LayoutPaged1,
		Width:         128,
		Height:        64,
		Address:       0x3C,
		CommandPrefix: 0x00,
		DataPrefix:    0x40,
		Init: []byte{
			0xAE,       // Display OFF
			0xD5, 0x80, // Clock divider
			0xA8, 0x3F, // MUX ratio
			0xD3, 0x00, // Display offset
			0x40,       // Start line
			0x8D, 0x14, // Charge pump on
			0x20, 0x02, // Page addressing mode
			0xA1,       // Segment remap
			0xC8,       // COM scan descending
			0xDA, 0x12, // COM pins
			0x81, 0xCF, // Contrast
			0xD9, 0xF1, // Pre-charge
			0xDB, 0x40, // VCOMH
			0xA4, // Resume from RAM
			0xA6, // Normal display
			0xAF, // Display ON
		},
		OpenSeq:     []byte{0x8D, 0x14, 0xAF},
		CloseSeq:    []byte{0x8D, 0x10, 0xAE},
		ContrastCmd: 0x81,
		NormalCmd:   0xA6,
		InvertCmd:   0xA7,
	}
}

// SSD1309 describes a 128x64 SSD1309 panel at 0x3C.
func SSD1309() Descriptor {
	return Descriptor{
		Name:          "ssd1309",
		Layout:        LayoutPaged1,
		Width:         128,
		Height:        64,
		Address:       0x3C,
		CommandPrefix: 0x00,
		DataPrefix:    0x40,
		Init: []byte{
			0xAE,       // Display OFF
			0xFD, 0x12, // Unlock
			0xD5, 0xA0, // Clock divider
			0xA8, 0x3F, // MUX ratio
			0xD3, 0x00, // Display offset
			0x40,       // Start line
			0xA1,       // Segment remap
			0xC8,       // COM scan descending
			0xDA, 0x12, // COM pins
			0x81, 0xBF, // Contrast
			0xD9, 0x25, // Pre-charge
			0xDB, 0x34, // VCOMH
			0xA4, // Resume from RAM
			0xA6, // Normal display
			0xAF, // Display ON
		},
		OpenSeq:     []byte{0x8D, 0x14, 0xAF},
		CloseSeq:    []byte{0x8D, 0x10, 0xAE},
		ContrastCmd: 0x81,
		NormalCmd:   0xA6,
		InvertCmd:   0xA7,
	}
}

// SH1106 describes a 128x64 SH1106 panel. Its RAM is 132 columns wide and
// the visible window starts at column 2.
func SH1106() Descriptor {
	return Descriptor{
		Name:          "sh1106",
		Layout:        LayoutPaged1,
		Width:         128,
		Height:        64,
		Address:       0x3C,
		CommandPrefix: 0x00,
		DataPrefix:    0x40,
		Init: []byte{
			0xAE,       // Display OFF
			0xD5, 0x80, // Clock divider
			0xA8, 0x3F, // MUX ratio
			0xD3, 0x00, // Display offset
			0x40,       // Start line
			0xAD, 0x8B, // DC-DC on
			0xA1,       // Segment remap
			0xC8,       // COM scan descending
			0xDA, 0x12, // COM pins
			0x81, 0x80, // Contrast
			0xD9, 0x22, // Pre-charge
			0xDB, 0x35, // VCOMH
			0xA4, // Resume from RAM
			0xA6, // Normal display
			0xAF, // Display ON
		},
		OpenSeq:      []byte{0xAD, 0x8B, 0xAF},
		CloseSeq:     []byte{0xAD, 0x8A, 0xAE},
		ColumnOffset: 2,
		ContrastCmd:  0x81,
		NormalCmd:    0xA6,
		InvertCmd:    0xA7,
	}
}

// SSD1327 describes a 128x96 SSD1327 greyscale panel at 0x3C.
func SSD1327() Descriptor {
	return Descriptor{
		Name:          "ssd1327",
		Layout:        LayoutPacked4,
		Width:         128,
		Height:        96,
		Address:       0x3C,
		CommandPrefix: 0x00,
		DataPrefix:    0x40,
		Init: []byte{
			0xAE,       // Display OFF
			0xA0, 0x51, // Remap
			0xA1, 0x00, // Start line
			0xA2, 0x20, // Display offset
			0xA4,       // Normal display
			0xA8, 0x5F, // MUX ratio
			0xAB, 0x01, // Internal VDD
			0x81, 0x77, // Contrast
			0xB1, 0x31, // Phase length
			0xB3, 0xB1, // Clock divider
			0xB5, 0x03, // GPIO
			0xB6, 0x0D, // Second pre-charge
			0xBC, 0x07, // Pre-charge voltage
			0xBE, 0x07, // VCOMH
			0xD5, 0x02, // Function selection B
			0xAF, // Display ON
		},
		OpenSeq:     []byte{0xAF},
		CloseSeq:    []byte{0xAE},
		Window:      Window{ColumnCmd: 0x15, RowCmd: 0x75},
		GreyLevel:   0x05,
		ContrastCmd: 0x81,
		NormalCmd:   0xA4,
		InvertCmd:   0xA7,
	}
}

// SSD1322 describes a w×h SSD1322 panel, typically driven over SPI. The
// panel is centred in the controller's 480-column RAM. Width must be even
// and at most 480, height at most 128.
func SSD1322(w, h uint16) Descriptor {
	d := Descriptor{
		Name:          "ssd1322",
		Layout:        LayoutPacked4,
		Width:         w,
		Height:        h,
		CommandPrefix: 0x00,
		DataPrefix:    0x40,
		OpenSeq:       []byte{0xAF},
		CloseSeq:      []byte{0xAE},
		Window:        Window{ColumnCmd: 0x15, RowCmd: 0x75, WriteCmd: []byte{0x5C}},
		GreyLevel:     0x0F,
		ContrastCmd:   0xC1,
		NormalCmd:     0xA6,
		InvertCmd:     0xA7,
	}
	if w <= 480 {
		// Packed columns are addressed in byte pairs; keep the offset even.
		d.ColumnOffset = (480 - w) / 2 &^ 1
	}
	mux := byte(0)
	if h > 0 {
		mux = byte(h - 1)
	}
	d.Init = []byte{
		0xFD, 0x12, // Unlock command codes
		0xAE,       // Display OFF
		0xB3, 0xF2, // Clock divider and oscillator frequency
		0xCA, mux, // MUX ratio
		0xA2, 0x00, // Display offset
		0xA1, 0x00, // Start line
		0xA0, 0x14, 0x11, // Remap and dual COM mode
		0xAB, 0x01, // Internal VDD
		0xB4, 0xA0, 0xFD, // VSL
		0xC1, 0xFF, // Contrast
		0xC7, 0x0F, // Master contrast
		0xB9,       // Default grayscale table
		0xB1, 0xE2, // Phase length
		0xD1, 0x82, 0x20, // Display enhancements
		0xBB, 0x1F, // Pre-charge voltage
		0xB6, 0x08, // Second pre-charge period
		0xBE, 0x07, // VCOMH voltage
		0xA6, // Normal display mode
		0xA9, // Exit partial display mode
		0xAF, // Display ON
	}
	return d
}

// validateSSD1322 applies the 480x128 RAM limits of the SSD1322.
func (d *Descriptor) validateSSD1322() error {
	if d.Width%2 != 0 || d.Width > 480 {
		return fmt.Errorf("oled: ssd1322: width must be even and between 2 and 480: %w", ErrInvalidArgument)
	}
	if d.Height > 128 {
		return fmt.Errorf("oled: ssd1322: height must be between 1 and 128: %w", ErrInvalidArgument)
	}
	return nil
}

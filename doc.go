// Package oledgfx draws on small monochrome and greyscale OLED panels.
//
// A Device is the facade every drawing routine goes through. It forwards to
// an oled.Operations encoder, which keeps a GRAM mirror of the panel and
// turns pushes into controller commands on a transport.Bus. The raster
// package draws shapes and bitmaps on a Device.
//
// # Supported Controllers
//
//	SSD1306, SSD1309  128×64 1bpp, paged (oled/paged)
//	SH1106            132-column RAM, 128×64 visible, paged
//	SSD1327           128×96 4bpp, packed (oled/packed)
//	SSD1322           up to 480×128 4bpp, packed, centred in the 480-column RAM
//
// # Hardware Connection
//
// I²C panels need only SDA, SCL and power. The selector byte of every
// transaction tells command (0x00) from data (0x40).
//
// SPI panels use a separate data/command line:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset, see transport.Reset
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/oledgfx"
//		"github.com/flavioheleno/oledgfx/geom"
//		"github.com/flavioheleno/oledgfx/oled"
//		"github.com/flavioheleno/oledgfx/raster"
//		"github.com/flavioheleno/oledgfx/transport"
//	)
//
//	func main() {
//		host.Init()
//		b, _ := i2creg.Open("")
//		defer b.Close()
//
//		dev, _ := oledgfx.New(transport.NewI2C(b), oled.SSD1306(), &oledgfx.Opts{InitNow: true})
//		defer dev.Halt()
//
//		raster.FillCircle(dev, geom.Point{X: 64, Y: 32}, 10)
//		dev.Flush()
//	}
//
// # Drawing Modes
//
// In immediate mode (SetImmediate(true)) every shape pushes its bounding box
// as soon as it is drawn. In deferred mode shapes only change the GRAM; Flush
// pushes the bounding box of everything changed since the last push, Update
// pushes the whole GRAM.
//
// # Other Drawing Libraries
//
// Device implements the periph.io display.Drawer interface; Draw only pushes
// the pixels that changed. Displayer adapts a Device to TinyGo's
// drivers.Displayer so tinyfont can write on it, NewPixDriver to an
// embeddedgo pix.Driver, and DrawText renders any golang.org/x/image font.Face.
//
// # Greyscale
//
// Packed panels draw with an active level from 0 to 15, set with
// SetGreyLevel. Standard Go colours drawn through an image are converted to
// image4bit.Gray4.
package oledgfx

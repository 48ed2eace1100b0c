package oledgfx

import (
	"fmt"
	"time"

	"github.com/flavioheleno/oledgfx/oled"
	"github.com/flavioheleno/oledgfx/oled/packed"
	"github.com/flavioheleno/oledgfx/oled/paged"
	"github.com/flavioheleno/oledgfx/transport"
)

// Opts is the configuration for NewOLED and New.
type Opts struct {
	// Timeout bounds every bus transaction. Zero waits forever.
	Timeout time.Duration
	// InitNow sends the init sequence, clears the GRAM and pushes it before
	// returning.
	InitNow bool
	// Immediate selects immediate drawing on the Device returned by New.
	Immediate bool
}

// NewOLED builds the framebuffer encoder matching desc.Layout.
//
// opts can be nil to use defaults.
func NewOLED(bus transport.Bus, desc oled.Descriptor, opts *Opts) (oled.Operations, error) {
	if opts == nil {
		opts = &Opts{}
	}

	var ops oled.Operations
	switch desc.Layout {
	case oled.LayoutPaged1:
		d, err := paged.New(bus, desc, &paged.Opts{Timeout: opts.Timeout})
		if err != nil {
			return nil, err
		}
		ops = d
	case oled.LayoutPacked4:
		d, err := packed.New(bus, desc, &packed.Opts{Timeout: opts.Timeout})
		if err != nil {
			return nil, err
		}
		ops = d
	default:
		return nil, fmt.Errorf("oledgfx: %s: layout %v: %w", desc.Name, desc.Layout, oled.ErrUnsupported)
	}

	if opts.InitNow {
		if err := ops.Init(); err != nil {
			return nil, err
		}
		if err := ops.Clear(); err != nil {
			return nil, err
		}
		if err := ops.Update(); err != nil {
			return nil, err
		}
	}
	return ops, nil
}

// New builds the encoder for desc and binds it to a fresh Device.
func New(bus transport.Bus, desc oled.Descriptor, opts *Opts) (*Device, error) {
	if opts == nil {
		opts = &Opts{}
	}
	ops, err := NewOLED(bus, desc, opts)
	if err != nil {
		return nil, err
	}
	dev := &Device{}
	Bind(dev, TypeOLED, ops)
	dev.SetImmediate(opts.Immediate)
	return dev, nil
}

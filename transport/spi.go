package transport

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPI adapts a 4-wire SPI connection to Bus.
//
// The selector byte of each transaction is not clocked out. It drives the
// Data/Command pin instead: high when it equals the data prefix, low
// otherwise. The payload follows in a single Tx.
type SPI struct {
	c          conn.Conn
	dc         gpio.PinOut
	dataPrefix byte
}

// NewSPI wraps an established SPI connection and its D/C pin.
func NewSPI(c conn.Conn, dc gpio.PinOut, dataPrefix byte) *SPI {
	return &SPI{c: c, dc: dc, dataPrefix: dataPrefix}
}

// OpenSPI connects to p at 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit words.
func OpenSPI(p spi.Port, dc gpio.PinOut, dataPrefix byte) (*SPI, error) {
	if dc == nil {
		return nil, fmt.Errorf("transport: D/C pin is required: %w", ErrInvalidArgument)
	}
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("transport: spi connect: %w", err)
	}
	return NewSPI(c, dc, dataPrefix), nil
}

func (s *SPI) String() string {
	return fmt.Sprintf("transport.SPI{%s}", s.c)
}

// Transfer implements Bus. The address is ignored; chip select is owned by
// the connection. Reads are not supported.
func (s *SPI) Transfer(msgs []Message, _ time.Duration) Status {
	if len(msgs) == 0 || len(msgs[0].Buf) == 0 {
		return StatusInvalidArgument
	}
	for _, m := range msgs {
		if m.Read() {
			return StatusInvalidArgument
		}
	}

	level := gpio.Low
	if msgs[0].Buf[0] == s.dataPrefix {
		level = gpio.High
	}
	if err := s.dc.Out(level); err != nil {
		return StatusIOError
	}

	if rest := msgs[0].Buf[1:]; len(rest) > 0 {
		if err := s.c.Tx(rest, nil); err != nil {
			return StatusOf(err)
		}
	}
	for _, m := range msgs[1:] {
		if len(m.Buf) == 0 {
			continue
		}
		if err := s.c.Tx(m.Buf, nil); err != nil {
			return StatusOf(err)
		}
	}
	return StatusOK
}

// Reset pulses rst low then high, holding each level for hold.
func Reset(rst gpio.PinOut, hold time.Duration) error {
	if err := rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("transport: failed to pull RST low: %w", err)
	}
	time.Sleep(hold)
	if err := rst.Out(gpio.High); err != nil {
		return fmt.Errorf("transport: failed to pull RST high: %w", err)
	}
	time.Sleep(hold)
	return nil
}

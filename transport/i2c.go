package transport

import (
	"fmt"
	"sync/atomic"
	"time"

	"periph.io/x/conn/v3/i2c"
	"tinygo.org/x/drivers"
)

// txer is the single method periph.io and TinyGo I²C buses have in common.
type txer interface {
	Tx(addr uint16, w, r []byte) error
}

// I2C adapts a byte-oriented I²C bus to Bus.
//
// Consecutive write messages are merged into one bus write, so the selector
// byte and its payload go out in a single START/STOP frame. A trailing read
// message is issued with a repeated start in the same Tx call.
//
// Transfers are not reentrant. When a transfer exceeds its timeout the
// adapter returns StatusTimeout and reports StatusBusy until the abandoned
// bus transaction finishes.
type I2C struct {
	name    string
	bus     txer
	scratch []byte
	busy    atomic.Bool
}

// NewI2C wraps a periph.io I²C bus.
func NewI2C(b i2c.Bus) *I2C {
	return &I2C{name: b.String(), bus: b}
}

// NewTinyGoI2C wraps a TinyGo machine I²C peripheral.
func NewTinyGoI2C(b drivers.I2C) *I2C {
	return &I2C{name: "tinygo-i2c", bus: b}
}

func (t *I2C) String() string {
	return fmt.Sprintf("transport.I2C{%s}", t.name)
}

// Transfer implements Bus.
func (t *I2C) Transfer(msgs []Message, timeout time.Duration) Status {
	if !t.busy.CompareAndSwap(false, true) {
		return StatusBusy
	}
	// scratch belongs to the in-flight Tx until busy is released.
	addr, w, r, st := t.frame(msgs)
	if st != StatusOK {
		t.busy.Store(false)
		return st
	}

	if timeout <= 0 {
		err := t.bus.Tx(addr, w, r)
		t.busy.Store(false)
		return StatusOf(err)
	}

	done := make(chan error, 1)
	go func() {
		err := t.bus.Tx(addr, w, r)
		t.busy.Store(false)
		done <- err
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case err := <-done:
		return StatusOf(err)
	case <-timer.C:
		return StatusTimeout
	}
}

// frame validates msgs and flattens them into one write buffer and an
// optional read buffer.
func (t *I2C) frame(msgs []Message) (addr uint16, w, r []byte, st Status) {
	if len(msgs) == 0 {
		return 0, nil, nil, StatusInvalidArgument
	}
	addr = msgs[0].Addr
	if addr > 0x7F {
		return 0, nil, nil, StatusInvalidArgument
	}

	t.scratch = t.scratch[:0]
	for i, m := range msgs {
		if m.Addr != addr {
			return 0, nil, nil, StatusInvalidArgument
		}
		if m.Read() {
			if i != len(msgs)-1 || len(m.Buf) == 0 {
				return 0, nil, nil, StatusInvalidArgument
			}
			r = m.Buf
			continue
		}
		t.scratch = append(t.scratch, m.Buf...)
	}
	if len(t.scratch) > 0 {
		w = t.scratch
	}
	return addr, w, r, StatusOK
}

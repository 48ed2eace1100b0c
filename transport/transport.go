// Package transport defines the message-transfer primitive the framebuffer
// encoders talk through, and adapters from periph.io and TinyGo buses to it.
//
// A transaction is a short list of messages addressed to one device. The OLED
// encoders always send two: a one-byte selector (the controller's command or
// data prefix) followed by the payload.
package transport

import (
	"errors"
	"time"
)

// Flag qualifies a Message.
type Flag uint16

const (
	// FlagRead marks a message that reads from the device into Buf.
	FlagRead Flag = 0x0001
)

// Message is one segment of a bus transaction.
type Message struct {
	Addr  uint16 // 7-bit device address
	Flags Flag
	Buf   []byte
}

// Read reports whether m reads from the device.
func (m Message) Read() bool {
	return m.Flags&FlagRead != 0
}

// Status is the outcome of a Transfer. The set of values is closed.
type Status int

const (
	StatusOK Status = iota
	StatusTimeout
	StatusNACK
	StatusBusy
	StatusIOError
	StatusInvalidArgument
)

var (
	ErrTimeout         = errors.New("transport: timeout")
	ErrNACK            = errors.New("transport: no acknowledge")
	ErrBusy            = errors.New("transport: busy")
	ErrIO              = errors.New("transport: i/o error")
	ErrInvalidArgument = errors.New("transport: invalid argument")
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusTimeout:
		return "timeout"
	case StatusNACK:
		return "nack"
	case StatusBusy:
		return "busy"
	case StatusIOError:
		return "io-error"
	case StatusInvalidArgument:
		return "invalid-argument"
	}
	return "unknown"
}

// Err returns the sentinel error for s, or nil for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusTimeout:
		return ErrTimeout
	case StatusNACK:
		return ErrNACK
	case StatusBusy:
		return ErrBusy
	case StatusInvalidArgument:
		return ErrInvalidArgument
	}
	return ErrIO
}

// StatusOf maps an error back onto the closed status set.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrTimeout):
		return StatusTimeout
	case errors.Is(err, ErrNACK):
		return StatusNACK
	case errors.Is(err, ErrBusy):
		return StatusBusy
	case errors.Is(err, ErrInvalidArgument):
		return StatusInvalidArgument
	}
	return StatusIOError
}

// Bus transfers a transaction. A zero timeout waits forever. There is no
// cancellation: a stuck bus blocks the caller up to timeout.
type Bus interface {
	Transfer(msgs []Message, timeout time.Duration) Status
}

// BusFunc adapts a function to the Bus interface.
type BusFunc func(msgs []Message, timeout time.Duration) Status

// Transfer calls f.
func (f BusFunc) Transfer(msgs []Message, timeout time.Duration) Status {
	return f(msgs, timeout)
}

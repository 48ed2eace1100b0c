package oled

import (
	"errors"
	"fmt"

	"github.com/flavioheleno/oledgfx/transport"
)

var (
	// ErrOutOfBounds is returned when a coordinate or area origin lies outside
	// the logical resolution.
	ErrOutOfBounds = errors.New("oled: out of bounds")
	// ErrUnsupported is returned for layouts or operations the encoder lacks.
	ErrUnsupported = errors.New("oled: unsupported")
	// ErrHalted is returned by every operation after Close.
	ErrHalted = errors.New("oled: halted")
	// ErrInvalidArgument is returned for malformed descriptors or buffers.
	ErrInvalidArgument = errors.New("oled: invalid argument")
)

// TransportError reports a failed bus transaction.
type TransportError struct {
	Op     string
	Status transport.Status
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("oled: %s: transport %s", e.Op, e.Status)
}

// Unwrap returns the transport sentinel for the status.
func (e *TransportError) Unwrap() error {
	return e.Status.Err()
}

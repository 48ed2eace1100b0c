package oled

import (
	"time"

	"github.com/flavioheleno/oledgfx/transport"
)

// Link frames commands and pixel data for one controller. Every call is a
// single two-message transaction: the selector byte, then the payload.
type Link struct {
	bus     transport.Bus
	addr    uint16
	cmd     [1]byte
	data    [1]byte
	msgs    [2]transport.Message
	timeout time.Duration
	name    string
}

// NewLink binds bus to the controller described by d. A zero timeout waits
// forever.
func NewLink(bus transport.Bus, d *Descriptor, timeout time.Duration) *Link {
	return &Link{
		bus:     bus,
		addr:    d.Address,
		cmd:     [1]byte{d.CommandPrefix},
		data:    [1]byte{d.DataPrefix},
		timeout: timeout,
		name:    d.Name,
	}
}

// Command sends cmds as one command transaction. op names the caller in
// errors and logs.
func (l *Link) Command(op string, cmds ...byte) error {
	return l.send(op, l.cmd[:], cmds)
}

// Data sends b as one data transaction.
func (l *Link) Data(op string, b []byte) error {
	return l.send(op, l.data[:], b)
}

func (l *Link) send(op string, selector, payload []byte) error {
	l.msgs[0] = transport.Message{Addr: l.addr, Buf: selector}
	l.msgs[1] = transport.Message{Addr: l.addr, Buf: payload}
	if st := l.bus.Transfer(l.msgs[:], l.timeout); st != transport.StatusOK {
		Logger().Warn("oled: transfer failed", "device", l.name, "op", op, "status", st.String())
		return &TransportError{Op: op, Status: st}
	}
	return nil
}

package oledtest

import (
	"image"
	"testing"

	"github.com/flavioheleno/oledgfx/oled"
	"github.com/flavioheleno/oledgfx/transport"
)

func send(p *Panel, sel byte, payload ...byte) transport.Status {
	return p.Transfer([]transport.Message{
		{Addr: p.desc.Address, Buf: []byte{sel}},
		{Addr: p.desc.Address, Buf: payload},
	}, 0)
}

func TestPagedCursor(t *testing.T) {
	p := NewPanel(oled.SSD1309())
	if st := send(p, 0x00, 0xB2, 0x11, 0x03); st != transport.StatusOK {
		t.Fatal(st)
	}
	if st := send(p, 0x40, 0x01, 0x80); st != transport.StatusOK {
		t.Fatal(st)
	}
	// Column 0x13, page 2: bit 0 is row 16, bit 7 is row 23.
	if p.Level(0x13, 16) != 0x0F || p.Level(0x14, 23) != 0x0F {
		t.Error("data did not land at the cursor")
	}
	if got, want := p.Touched(), image.Rect(0x13, 16, 0x15, 24); got != want {
		t.Errorf("Touched() = %v, want %v", got, want)
	}
}

func TestPagedOutOfRange(t *testing.T) {
	p := NewPanel(oled.SSD1309())
	send(p, 0x00, 0xB0, 0x17, 0x0E) // column 126
	send(p, 0x40, 1, 2, 3, 4)
	if n := p.OutOfRange(); n != 2 {
		t.Errorf("OutOfRange() = %d, want 2", n)
	}
}

func TestPackedWindowWraps(t *testing.T) {
	p := NewPanel(oled.SSD1327())
	send(p, 0x00, 0x15, 0x01, 0x02, 0x75, 0x04, 0x05)
	send(p, 0x40, 0x12, 0x34, 0x56, 0x78)
	tests := []struct {
		x, y int
		want uint8
	}{
		{2, 4, 1}, {3, 4, 2}, {4, 4, 3}, {5, 4, 4},
		{2, 5, 5}, {3, 5, 6}, {4, 5, 7}, {5, 5, 8},
	}
	for _, tt := range tests {
		if got := p.Level(tt.x, tt.y); got != tt.want {
			t.Errorf("Level(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRejectsForeignAddressAndSelector(t *testing.T) {
	p := NewPanel(oled.SSD1309())
	st := p.Transfer([]transport.Message{{Addr: 0x3D, Buf: []byte{0x00, 0xAF}}}, 0)
	if st != transport.StatusNACK {
		t.Errorf("foreign address = %v, want nack", st)
	}
	if st := send(p, 0x80, 0xAF); st != transport.StatusInvalidArgument {
		t.Errorf("unknown selector = %v, want invalid-argument", st)
	}
}

func TestFailAt(t *testing.T) {
	p := NewPanel(oled.SSD1309())
	p.FailAt, p.FailStatus = 2, transport.StatusTimeout
	if st := send(p, 0x00, 0xAF); st != transport.StatusOK {
		t.Fatalf("first = %v", st)
	}
	if st := send(p, 0x00, 0xAE); st != transport.StatusTimeout {
		t.Errorf("second = %v, want timeout", st)
	}
	if !p.On() {
		t.Error("failed transfer must not be decoded")
	}
}

func TestChecksumDetectsChange(t *testing.T) {
	p := NewPanel(oled.SSD1327())
	r := image.Rect(0, 0, 8, 8)
	before := p.Checksum(r)
	send(p, 0x00, 0x15, 0x00, 0x00, 0x75, 0x00, 0x00)
	send(p, 0x40, 0x10)
	if p.Checksum(r) == before {
		t.Error("checksum unchanged after a pixel write")
	}
	if p.Checksum(image.Rect(2, 0, 8, 8)) != NewPanel(oled.SSD1327()).Checksum(image.Rect(2, 0, 8, 8)) {
		t.Error("checksum of an untouched region differs from a fresh panel")
	}
	if got := p.Snapshot().GrayAt(0, 0).Y; got != 0x11 {
		t.Errorf("Snapshot (0,0) = %#x, want 0x11", got)
	}
}

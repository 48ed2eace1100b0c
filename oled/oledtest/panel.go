// Package oledtest provides an emulated OLED controller for tests and
// simulators.
//
// A Panel is a transport.Bus. It decodes the command and data transactions
// sent by the paged and packed encoders into its own panel RAM, so tests can
// assert on what actually reached the controller instead of on encoder
// internals.
package oledtest

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/sigurn/crc8"

	"github.com/flavioheleno/oledgfx/image1bit"
	"github.com/flavioheleno/oledgfx/image4bit"
	"github.com/flavioheleno/oledgfx/oled"
	"github.com/flavioheleno/oledgfx/transport"
)

var crcTable = crc8.MakeTable(crc8.CRC8)

// Tx is one decoded transaction.
type Tx struct {
	Data    bool // false for a command transaction
	Payload []byte
}

// Panel emulates the controller described by a Descriptor.
type Panel struct {
	mu   sync.Mutex
	desc oled.Descriptor

	mono *image1bit.VerticalLSB
	grey *image4bit.HorizontalNibble

	// Paged cursor.
	page, col int
	// Packed window and cursor.
	c0, c1, r0, r1 int
	wc, wr         int

	txs        []Tx
	touched    image.Rectangle
	outOfRange int
	on         bool

	// FailAt makes the FailAt-th transfer (1-based) return FailStatus.
	FailAt     int
	FailStatus transport.Status
	transfers  int
}

// NewPanel creates a powered-off panel with cleared RAM.
func NewPanel(desc oled.Descriptor) *Panel {
	r := image.Rect(0, 0, int(desc.Width), int(desc.Height))
	p := &Panel{desc: desc}
	switch desc.Layout {
	case oled.LayoutPacked4:
		p.grey = image4bit.NewHorizontalNibble(r)
	default:
		p.mono = image1bit.NewVerticalLSB(r)
	}
	return p
}

func (p *Panel) String() string {
	return fmt.Sprintf("oledtest.Panel{%s %dx%d}", p.desc.Name, p.desc.Width, p.desc.Height)
}

// Transfer implements transport.Bus.
func (p *Panel) Transfer(msgs []transport.Message, _ time.Duration) transport.Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.transfers++
	if p.FailAt != 0 && p.transfers == p.FailAt {
		return p.FailStatus
	}
	if len(msgs) == 0 || len(msgs[0].Buf) == 0 {
		return transport.StatusInvalidArgument
	}
	for _, m := range msgs {
		if m.Addr != p.desc.Address || m.Read() {
			return transport.StatusNACK
		}
	}

	sel := msgs[0].Buf[0]
	payload := append([]byte(nil), msgs[0].Buf[1:]...)
	for _, m := range msgs[1:] {
		payload = append(payload, m.Buf...)
	}

	switch sel {
	case p.desc.CommandPrefix:
		p.txs = append(p.txs, Tx{Payload: payload})
		p.command(payload)
	case p.desc.DataPrefix:
		p.txs = append(p.txs, Tx{Data: true, Payload: payload})
		if p.grey != nil {
			p.writePacked(payload)
		} else {
			p.writePaged(payload)
		}
	default:
		return transport.StatusInvalidArgument
	}
	return transport.StatusOK
}

func (p *Panel) command(c []byte) {
	switch {
	case len(c) == 3 && c[0]&0xF0 == 0xB0 && c[1]&0xF0 == 0x10 && c[2]&0xF0 == 0x00:
		p.page = int(c[0] & 0x0F)
		p.col = int(c[1]&0x0F)<<4 | int(c[2]&0x0F)
		return
	case len(c) >= 6 && c[0] == p.desc.Window.ColumnCmd && c[3] == p.desc.Window.RowCmd:
		p.c0, p.c1 = int(c[1]), int(c[2])
		p.r0, p.r1 = int(c[4]), int(c[5])
		p.wc, p.wr = p.c0, p.r0
		return
	}
	if len(c) > 0 {
		switch c[len(c)-1] {
		case 0xAF:
			p.on = true
		case 0xAE:
			p.on = false
		}
	}
}

func (p *Panel) writePaged(b []byte) {
	for _, v := range b {
		x := p.col - int(p.desc.ColumnOffset)
		p.col++
		if x < 0 || x >= int(p.desc.Width) || p.page >= p.mono.Pages() {
			p.outOfRange++
			continue
		}
		p.mono.Pix[p.page*p.mono.Stride+x] = v
		y0 := p.page * 8
		p.touch(image.Rect(x, y0, x+1, min(y0+8, int(p.desc.Height))))
	}
}

func (p *Panel) writePacked(b []byte) {
	colBase := int(p.desc.ColumnOffset) / 2
	for _, v := range b {
		bx, y := p.wc-colBase, p.wr
		p.wc++
		if p.wc > p.c1 {
			p.wc = p.c0
			p.wr++
		}
		if bx < 0 || bx >= p.grey.Stride || y < 0 || y >= int(p.desc.Height) {
			p.outOfRange++
			continue
		}
		p.grey.Pix[y*p.grey.Stride+bx] = v
		p.touch(image.Rect(bx*2, y, min(bx*2+2, int(p.desc.Width)), y+1))
	}
}

func (p *Panel) touch(r image.Rectangle) {
	if p.touched.Empty() {
		p.touched = r
		return
	}
	p.touched = p.touched.Union(r)
}

// Transactions returns a copy of the decoded transaction log.
func (p *Panel) Transactions() []Tx {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Tx(nil), p.txs...)
}

// Touched returns the bounding box of every pixel written by data
// transactions, widened to whole pages or byte pairs.
func (p *Panel) Touched() image.Rectangle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.touched
}

// OutOfRange returns the number of data bytes that fell outside the panel.
func (p *Panel) OutOfRange() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outOfRange
}

// On reports whether the last power command switched the panel on.
func (p *Panel) On() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.on
}

// ResetLog clears the transaction log and the touched box, keeping RAM.
func (p *Panel) ResetLog() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.txs = nil
	p.touched = image.Rectangle{}
	p.outOfRange = 0
}

// Level returns the grey level of (x, y): 0 or 15 on a monochrome panel.
func (p *Panel) Level(x, y int) uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level(x, y)
}

func (p *Panel) level(x, y int) uint8 {
	if p.grey != nil {
		return p.grey.Gray4At(x, y).Y
	}
	if p.mono.BitAt(x, y) {
		return 0x0F
	}
	return 0
}

// Snapshot copies the panel RAM into a greyscale image.
func (p *Panel) Snapshot() *image.Gray {
	p.mu.Lock()
	defer p.mu.Unlock()
	img := image.NewGray(image.Rect(0, 0, int(p.desc.Width), int(p.desc.Height)))
	for y := 0; y < int(p.desc.Height); y++ {
		for x := 0; x < int(p.desc.Width); x++ {
			img.SetGray(x, y, color.Gray{Y: p.level(x, y) * 0x11})
		}
	}
	return img
}

// Checksum returns the CRC-8 of the levels of r, row by row.
func (p *Panel) Checksum(r image.Rectangle) uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	r = r.Intersect(image.Rect(0, 0, int(p.desc.Width), int(p.desc.Height)))
	row := make([]byte, 0, r.Dx())
	crc := crc8.Init(crcTable)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row = row[:0]
		for x := r.Min.X; x < r.Max.X; x++ {
			row = append(row, p.level(x, y))
		}
		crc = crc8.Update(crc, row, crcTable)
	}
	return crc8.Complete(crc, crcTable)
}

var _ transport.Bus = (*Panel)(nil)

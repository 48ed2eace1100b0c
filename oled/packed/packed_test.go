package packed

import (
	"bytes"
	"errors"
	"image"
	"math/rand"
	"testing"

	"github.com/flavioheleno/oledgfx/image4bit"
	"github.com/flavioheleno/oledgfx/oled"
	"github.com/flavioheleno/oledgfx/oled/oledtest"
)

func newDev(t *testing.T, desc oled.Descriptor) (*Dev, *oledtest.Panel) {
	t.Helper()
	panel := oledtest.NewPanel(desc)
	d, err := New(panel, desc, nil)
	if err != nil {
		t.Fatal(err)
	}
	return d, panel
}

func TestNewRejectsPagedDescriptor(t *testing.T) {
	panel := oledtest.NewPanel(oled.SSD1327())
	if _, err := New(panel, oled.SSD1309(), nil); !errors.Is(err, oled.ErrUnsupported) {
		t.Errorf("New(paged descriptor) = %v, want ErrUnsupported", err)
	}
}

func TestGreyLevel(t *testing.T) {
	d, _ := newDev(t, oled.SSD1327())
	if got := d.Capabilities().GreyLevel; got != 0x05 {
		t.Errorf("default grey level = %#x, want 0x05", got)
	}
	if err := d.SetGreyLevel(0x1A); err != nil {
		t.Fatal(err)
	}
	if got, _ := oled.Query(d, oled.PropGreyLevel); got != 0x0A {
		t.Errorf("grey level after SetGreyLevel(0x1A) = %#x, want 0x0A", got)
	}
	if err := d.SetPixel(0, 0); err != nil {
		t.Fatal(err)
	}
	if got := d.gram.Pix[0]; got != 0xA0 {
		t.Errorf("Pix[0] = %#x, want 0xa0", got)
	}
}

func TestSetPixelNibbles(t *testing.T) {
	d, _ := newDev(t, oled.SSD1327())
	_ = d.SetPixel(4, 1)
	_ = d.SetPixel(7, 1)
	row := d.gram.Pix[64:68]
	if want := []byte{0x00, 0x00, 0x50, 0x05}; !bytes.Equal(row, want) {
		t.Errorf("row 1 = % x, want % x", row, want)
	}
	if err := d.SetPixel(128, 0); !errors.Is(err, oled.ErrOutOfBounds) {
		t.Errorf("SetPixel(128,0) = %v, want ErrOutOfBounds", err)
	}
}

func TestNibbleIsolation(t *testing.T) {
	d, panel := newDev(t, oled.SSD1327())
	rng := rand.New(rand.NewSource(6))
	rng.Read(d.gram.Pix)
	if err := d.Update(); err != nil {
		t.Fatal(err)
	}

	right := image.Rect(64, 0, 128, 96)
	before := panel.Checksum(right)
	neighbour := image.Rect(62, 0, 63, 96)
	beforeNeighbour := panel.Checksum(neighbour)

	// Touch only odd column 63, the low nibble of byte 31.
	for y := uint16(0); y < 96; y += 3 {
		_ = d.SetPixel(63, y)
	}
	_ = d.RevertArea(63, 10, 1, 20)
	_ = d.ClearArea(63, 40, 1, 5)
	if err := d.UpdateArea(0, 0, 64, 96); err != nil {
		t.Fatal(err)
	}

	if got := panel.Checksum(right); got != before {
		t.Errorf("right half checksum changed: %#x -> %#x", before, got)
	}
	if got := panel.Checksum(neighbour); got != beforeNeighbour {
		t.Errorf("even neighbour column checksum changed: %#x -> %#x", beforeNeighbour, got)
	}
	if got := panel.Level(63, 0); got != 0x05 {
		t.Errorf("(63,0) = %d, want 5", got)
	}
}

func TestSetAreaDemux(t *testing.T) {
	d, _ := newDev(t, oled.SSD1327())
	_ = d.SetGreyLevel(0x0C)
	// 3 columns, 10 rows: two source rows of 3 bytes.
	src := []byte{
		0x01, 0x80, 0xFF,
		0x02, 0x00, 0x03,
	}
	if err := d.SetArea(2, 5, 3, 10, src); err != nil {
		t.Fatal(err)
	}
	for j := 0; j < 10; j++ {
		for i := 0; i < 3; i++ {
			want := uint8(0)
			if src[(j/8)*3+i]>>(j%8)&1 != 0 {
				want = 0x0C
			}
			if got := d.gram.Gray4At(2+i, 5+j).Y; got != want {
				t.Errorf("(%d,%d) = %#x, want %#x", 2+i, 5+j, got, want)
			}
		}
	}
	// Column 1 and 5 share bytes with the area but are outside it.
	if d.gram.Gray4At(1, 5).Y != 0 || d.gram.Gray4At(5, 5).Y != 0 {
		t.Error("pixels beside the area were written")
	}
}

func TestSetAreaClearsAndTruncates(t *testing.T) {
	d, _ := newDev(t, oled.SSD1327())
	d.gram.Fill(image4bit.Gray4{Y: 9})
	if err := d.SetArea(126, 94, 4, 4, make([]byte, 4)); err != nil {
		t.Fatal(err)
	}
	for y := 90; y < 96; y++ {
		for x := 120; x < 128; x++ {
			want := uint8(9)
			if x >= 126 && y >= 94 {
				want = 0
			}
			if got := d.gram.Gray4At(x, y).Y; got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestUpdateAreaWindow(t *testing.T) {
	tests := []struct {
		name       string
		desc       oled.Descriptor
		x, y, w, h uint16
		window     []byte
		rowBytes   int
		touched    image.Rectangle
	}{
		{
			name: "even aligned", desc: oled.SSD1327(),
			x: 4, y: 0, w: 4, h: 1,
			window:   []byte{0x15, 0x02, 0x03, 0x75, 0x00, 0x00},
			rowBytes: 2, touched: image.Rect(4, 0, 8, 1),
		},
		{
			name: "odd origin and width", desc: oled.SSD1327(),
			x: 3, y: 10, w: 4, h: 2,
			window:   []byte{0x15, 0x01, 0x03, 0x75, 0x0A, 0x0B},
			rowBytes: 3, touched: image.Rect(2, 10, 8, 12),
		},
		{
			name: "truncated", desc: oled.SSD1327(),
			x: 125, y: 90, w: 10, h: 10,
			window:   []byte{0x15, 0x3E, 0x3F, 0x75, 0x5A, 0x5F},
			rowBytes: 2, touched: image.Rect(124, 90, 128, 96),
		},
		{
			name: "ssd1322 centred", desc: oled.SSD1322(256, 64),
			x: 0, y: 0, w: 2, h: 1,
			window:   []byte{0x15, 0x38, 0x38, 0x75, 0x00, 0x00, 0x5C},
			rowBytes: 1, touched: image.Rect(0, 0, 2, 1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, panel := newDev(t, tt.desc)
			if err := d.UpdateArea(tt.x, tt.y, tt.w, tt.h); err != nil {
				t.Fatal(err)
			}
			txs := panel.Transactions()
			if len(txs) == 0 || txs[0].Data || !bytes.Equal(txs[0].Payload, tt.window) {
				t.Fatalf("window = %+v, want command % x", txs, tt.window)
			}
			rows := int(tt.window[5]) - int(tt.window[4]) + 1
			if len(txs) != 1+rows {
				t.Fatalf("got %d transactions, want 1 window + %d rows", len(txs), rows)
			}
			for _, tx := range txs[1:] {
				if !tx.Data || len(tx.Payload) != tt.rowBytes {
					t.Errorf("row tx = %+v, want %d data bytes", tx, tt.rowBytes)
				}
			}
			if got := panel.Touched(); got != tt.touched {
				t.Errorf("touched %v, want %v", got, tt.touched)
			}
			if n := panel.OutOfRange(); n != 0 {
				t.Errorf("%d bytes written outside the panel", n)
			}
		})
	}
}

func TestUpdateMirrorsGRAM(t *testing.T) {
	for _, desc := range []oled.Descriptor{oled.SSD1327(), oled.SSD1322(128, 64), oled.SSD1322(256, 64)} {
		t.Run(desc.Name, func(t *testing.T) {
			d, panel := newDev(t, desc)
			rng := rand.New(rand.NewSource(7))
			rng.Read(d.gram.Pix)
			if err := d.Update(); err != nil {
				t.Fatal(err)
			}
			for y := 0; y < int(desc.Height); y++ {
				for x := 0; x < int(desc.Width); x++ {
					if got, want := panel.Level(x, y), d.gram.Gray4At(x, y).Y; got != want {
						t.Fatalf("panel (%d,%d) = %d, want %d", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestRevert(t *testing.T) {
	d, _ := newDev(t, oled.SSD1327())
	d.gram.SetGray4(0, 0, image4bit.Gray4{Y: 3})
	d.gram.SetGray4(9, 9, image4bit.Gray4{Y: 12})
	if err := d.Revert(); err != nil {
		t.Fatal(err)
	}
	if got := d.gram.Gray4At(0, 0).Y; got != 12 {
		t.Errorf("(0,0) = %d, want 12", got)
	}
	if got := d.gram.Gray4At(1, 0).Y; got != 15 {
		t.Errorf("(1,0) = %d, want 15", got)
	}
	if err := d.RevertArea(9, 9, 1, 1); err != nil {
		t.Fatal(err)
	}
	if got := d.gram.Gray4At(9, 9).Y; got != 12 {
		t.Errorf("(9,9) = %d, want 12", got)
	}
	if err := d.RevertArea(200, 0, 1, 1); !errors.Is(err, oled.ErrOutOfBounds) {
		t.Errorf("RevertArea off panel = %v, want ErrOutOfBounds", err)
	}
}

func TestOpenCloseSequences(t *testing.T) {
	d, panel := newDev(t, oled.SSD1327())
	if err := d.Open(); err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	txs := panel.Transactions()
	if !bytes.Equal(txs[0].Payload, []byte{0xAF}) || !bytes.Equal(txs[1].Payload, []byte{0xAE}) {
		t.Errorf("open/close = % x / % x", txs[0].Payload, txs[1].Payload)
	}
	if err := d.Flush(); err != nil {
		t.Errorf("Flush with nothing dirty = %v", err)
	}
	_ = d.SetPixel(1, 1)
	if err := d.Flush(); !errors.Is(err, oled.ErrHalted) {
		t.Errorf("Flush after Close = %v, want ErrHalted", err)
	}
	if err := d.Invert(true); !errors.Is(err, oled.ErrHalted) {
		t.Errorf("Invert after Close = %v, want ErrHalted", err)
	}
}

func TestSSD1322Tuner(t *testing.T) {
	d, panel := newDev(t, oled.SSD1322(256, 64))
	_ = d.SetContrast(0x80)
	_ = d.Invert(true)
	txs := panel.Transactions()
	if !bytes.Equal(txs[0].Payload, []byte{0xC1, 0x80}) || !bytes.Equal(txs[1].Payload, []byte{0xA7}) {
		t.Errorf("tuner commands = % x / % x", txs[0].Payload, txs[1].Payload)
	}
}

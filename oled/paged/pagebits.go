package paged

import "github.com/flavioheleno/oledgfx/image1bit"

// pageWriter ORs source bytes into a paged GRAM at a vertical offset that is
// not a multiple of 8. Each byte splits across two pages: the low part lands
// in page p shifted up by off, the high part carries into page p+1.
type pageWriter struct {
	gram  *image1bit.VerticalLSB
	pages int
	limit int // exclusive row bound of the target area
}

// put writes b at column x, page p, row offset off (0-7).
func (w pageWriter) put(p, x int, b byte, off uint) {
	if p >= w.pages {
		return
	}
	w.gram.Pix[p*w.gram.Stride+x] |= b << off
	if off == 0 {
		return
	}
	next := p + 1
	if next >= w.pages || next*8 >= w.limit {
		return
	}
	w.gram.Pix[next*w.gram.Stride+x] |= b >> (8 - off)
}

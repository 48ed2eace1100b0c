package raster

import (
	"fmt"

	"github.com/flavioheleno/oledgfx/geom"
	"github.com/flavioheleno/oledgfx/oled"
)

// batchSize is the scratch buffer of BitmapClipped.
const batchSize = 64

// Bitmap blits a 1bpp vertical-LSB image of ceil(size.Height/8) rows of
// size.Width bytes with its top-left corner at at.
func Bitmap(t Target, at geom.Point, size geom.Size, src []byte) error {
	if size.Empty() {
		return nil
	}
	p := &pen{t: t}
	p.keep(t.SetArea(at.X, at.Y, size.Width, size.Height, src))
	if p.err != nil {
		return p.err
	}
	return p.finish(box{int32(at.X), int32(at.Y), int32(at.X) + int32(size.Width) - 1, int32(at.Y) + int32(size.Height) - 1})
}

// BitmapClipped blits the part of the image that lies inside clip. The clip
// bottom-right corner is exclusive.
//
// The visible part is repacked a few columns at a time through a fixed
// 64-byte buffer; each batch is blitted, and pushed in immediate mode, on its
// own.
func BitmapClipped(t Target, at geom.Point, size geom.Size, src []byte, clip geom.Rect) error {
	if size.Empty() {
		return nil
	}
	w, h := int32(size.Width), int32(size.Height)
	srcRows := (h + 7) / 8
	if int32(len(src)) < srcRows*w {
		return fmt.Errorf("raster: bitmap %dx%d needs %d bytes, got %d: %w", w, h, srcRows*w, len(src), oled.ErrInvalidArgument)
	}

	clip = clip.Normalize()
	il, it := int32(at.X), int32(at.Y)
	ir, ib := il+w, it+h
	cl, ct, cr, cb := int32(clip.TL.X), int32(clip.TL.Y), int32(clip.BR.X), int32(clip.BR.Y)
	if ir <= cl || il >= cr || ib <= ct || it >= cb {
		return nil
	}
	vl, vt := max(il, cl), max(it, ct)
	vr, vb := min(ir, cr), min(ib, cb)
	if vl == il && vt == it && vr == ir && vb == ib {
		return Bitmap(t, at, size, src)
	}

	vw, vh := vr-vl, vb-vt
	offX, offY := vl-il, vt-it
	rows := (vh + 7) / 8
	if rows > batchSize {
		return fmt.Errorf("raster: clipped bitmap height %d: %w", vh, oled.ErrInvalidArgument)
	}
	perBatch := batchSize / rows
	shift := uint(offY % 8)

	var buf [batchSize]byte
	p := &pen{t: t}
	for start := int32(0); start < vw; start += perBatch {
		cols := min(perBatch, vw-start)
		for c := int32(0); c < cols; c++ {
			sx := offX + start + c
			for r := int32(0); r < rows; r++ {
				sr := offY/8 + r
				var v byte
				if sr < srcRows {
					v = src[sr*w+sx] >> shift
					if shift != 0 && sr+1 < srcRows {
						v |= src[(sr+1)*w+sx] << (8 - shift)
					}
				}
				buf[r*cols+c] = v
			}
		}

		bx := vl + start
		p.keep(t.SetArea(uint16(bx), uint16(vt), uint16(cols), uint16(vh), buf[:rows*cols]))
		if p.err != nil {
			return p.err
		}
		if err := p.finish(box{bx, vt, bx + cols - 1, vb - 1}); err != nil {
			return err
		}
	}
	return p.err
}

package geom

// outcode bits for Cohen–Sutherland clipping.
const (
	outLeft = 1 << iota
	outRight
	outBottom
	outTop
)

func outcode(r Rect, x, y int32) int {
	code := 0
	if x < int32(r.TL.X) {
		code |= outLeft
	} else if x > int32(r.BR.X) {
		code |= outRight
	}
	if y < int32(r.TL.Y) {
		code |= outTop
	} else if y > int32(r.BR.Y) {
		code |= outBottom
	}
	return code
}

// ClipLine clips the segment p0-p1 against r using Cohen–Sutherland.
//
// It reports whether any part of the segment remains visible. Only when it
// returns true are p0 and p1 updated to the visible endpoints; callers must
// check the result before drawing.
func (r Rect) ClipLine(p0, p1 *Point) bool {
	n := r.Normalize()
	x0, y0 := int32(p0.X), int32(p0.Y)
	x1, y1 := int32(p1.X), int32(p1.Y)
	code0 := outcode(n, x0, y0)
	code1 := outcode(n, x1, y1)

	for {
		if code0|code1 == 0 {
			break
		}
		if code0&code1 != 0 {
			return false
		}

		out := code0
		if out == 0 {
			out = code1
		}

		var nx, ny int32
		switch {
		case out&outTop != 0:
			ny = int32(n.TL.Y)
			nx = x0 + int32(float64(x1-x0)*float64(ny-y0)/float64(y1-y0))
		case out&outBottom != 0:
			ny = int32(n.BR.Y)
			nx = x0 + int32(float64(x1-x0)*float64(ny-y0)/float64(y1-y0))
		case out&outRight != 0:
			nx = int32(n.BR.X)
			ny = y0 + int32(float64(y1-y0)*float64(nx-x0)/float64(x1-x0))
		case out&outLeft != 0:
			nx = int32(n.TL.X)
			ny = y0 + int32(float64(y1-y0)*float64(nx-x0)/float64(x1-x0))
		}

		if out == code0 {
			x0, y0 = nx, ny
			code0 = outcode(n, x0, y0)
		} else {
			x1, y1 = nx, ny
			code1 = outcode(n, x1, y1)
		}
	}

	*p0 = Point{X: ClampU16(x0), Y: ClampU16(y0)}
	*p1 = Point{X: ClampU16(x1), Y: ClampU16(y1)}
	return true
}

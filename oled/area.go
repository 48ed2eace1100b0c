package oled

// Truncate clips the area at (x, y) of extent w×h to the logical resolution.
// It returns ErrOutOfBounds when the origin itself is off the panel.
func (c Capabilities) Truncate(x, y, w, h uint16) (uint16, uint16, error) {
	if x >= c.Width || y >= c.Height {
		return 0, 0, ErrOutOfBounds
	}
	if uint32(x)+uint32(w) > uint32(c.Width) {
		w = c.Width - x
	}
	if uint32(y)+uint32(h) > uint32(c.Height) {
		h = c.Height - y
	}
	return w, h, nil
}

// DirtyRect accumulates the bounding box of GRAM changes between pushes.
type DirtyRect struct {
	minCol, maxCol uint16
	minRow, maxRow uint16
	set            bool
}

// Add grows the box to include the area at (x, y) of extent w×h.
func (d *DirtyRect) Add(x, y, w, h uint16) {
	if w == 0 || h == 0 {
		return
	}
	x1, y1 := x+w-1, y+h-1
	if !d.set {
		d.minCol, d.maxCol, d.minRow, d.maxRow = x, x1, y, y1
		d.set = true
		return
	}
	d.minCol = min(d.minCol, x)
	d.maxCol = max(d.maxCol, x1)
	d.minRow = min(d.minRow, y)
	d.maxRow = max(d.maxRow, y1)
}

// Rect returns the box as origin and extent; ok is false when empty.
func (d *DirtyRect) Rect() (x, y, w, h uint16, ok bool) {
	if !d.set {
		return 0, 0, 0, 0, false
	}
	return d.minCol, d.minRow, d.maxCol - d.minCol + 1, d.maxRow - d.minRow + 1, true
}

// Pushed resets the box if the area at (x, y) of extent w×h covers it.
func (d *DirtyRect) Pushed(x, y, w, h uint16) {
	if !d.set || w == 0 || h == 0 {
		return
	}
	if x <= d.minCol && y <= d.minRow &&
		uint32(x)+uint32(w) > uint32(d.maxCol) && uint32(y)+uint32(h) > uint32(d.maxRow) {
		d.Reset()
	}
}

// Reset empties the box.
func (d *DirtyRect) Reset() {
	*d = DirtyRect{}
}

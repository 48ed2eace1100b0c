package geom

import "math"

// MaxCoord is the largest representable coordinate.
const MaxCoord = math.MaxUint16

// Point is a position on the screen grid.
type Point struct {
	X, Y uint16
}

// Vec2 is a signed displacement between two points.
type Vec2 struct {
	X, Y int32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y uint16) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q, saturating each component at MaxCoord.
func (p Point) Add(q Point) Point {
	x := uint32(p.X) + uint32(q.X)
	y := uint32(p.Y) + uint32(q.Y)
	if x > MaxCoord {
		x = MaxCoord
	}
	if y > MaxCoord {
		y = MaxCoord
	}
	return Point{X: uint16(x), Y: uint16(y)}
}

// Sub returns the displacement p-q.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: int32(p.X) - int32(q.X), Y: int32(p.Y) - int32(q.Y)}
}

// Offset moves p by (dx, dy), clamping the result to the grid.
func (p Point) Offset(dx, dy int32) Point {
	return Point{X: ClampU16(int32(p.X) + dx), Y: ClampU16(int32(p.Y) + dy)}
}

// ClampU16 saturates v into [0, MaxCoord].
func ClampU16(v int32) uint16 {
	if v < 0 {
		return 0
	}
	if v > MaxCoord {
		return MaxCoord
	}
	return uint16(v)
}

// Size is a width/height pair.
type Size struct {
	Width, Height uint16
}

// Empty reports whether either dimension is zero.
func (s Size) Empty() bool {
	return s.Width == 0 || s.Height == 0
}

package geom

import (
	"math/rand"
	"testing"
)

func randomRect(rng *rand.Rand) Rect {
	return R(uint16(rng.Intn(300)), uint16(rng.Intn(300)), uint16(rng.Intn(300)), uint16(rng.Intn(300)))
}

func TestPointAddSaturates(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Point
	}{
		{"plain", Pt(1, 2), Pt(3, 4), Pt(4, 6)},
		{"x saturates", Pt(0xFFF0, 1), Pt(0x20, 1), Pt(0xFFFF, 2)},
		{"both saturate", Pt(0xFFFF, 0xFFFF), Pt(1, 1), Pt(0xFFFF, 0xFFFF)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); got != tt.want {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPointSubIsSigned(t *testing.T) {
	got := Pt(2, 10).Sub(Pt(5, 3))
	if want := (Vec2{X: -3, Y: 7}); got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
}

func TestClampU16(t *testing.T) {
	tests := []struct {
		in   int32
		want uint16
	}{
		{-5, 0},
		{0, 0},
		{1234, 1234},
		{0xFFFF, 0xFFFF},
		{0x10000, 0xFFFF},
	}
	for _, tt := range tests {
		if got := ClampU16(tt.in); got != tt.want {
			t.Errorf("ClampU16(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		r := randomRect(rng)
		n := r.Normalize()
		if n.TL.X > n.BR.X || n.TL.Y > n.BR.Y {
			t.Fatalf("Normalize(%v) = %v is not ordered", r, n)
		}
		if nn := n.Normalize(); nn != n {
			t.Fatalf("Normalize is not idempotent: %v -> %v", n, nn)
		}
	}
}

func TestFromXYWH(t *testing.T) {
	tests := []struct {
		x, y, w, h int32
	}{
		{0, 0, 1, 1},
		{10, 20, 30, 40},
		{100, 3, 7, 200},
	}
	for _, tt := range tests {
		r := FromXYWH(tt.x, tt.y, tt.w, tt.h)
		if r.Width() != uint32(tt.w) || r.Height() != uint32(tt.h) {
			t.Errorf("FromXYWH(%d,%d,%d,%d) = %v, size %dx%d", tt.x, tt.y, tt.w, tt.h, r, r.Width(), r.Height())
		}
		x, y, w, h := r.XYWH()
		if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
			t.Errorf("XYWH() = %d,%d,%d,%d, want %d,%d,%d,%d", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
		}
	}
}

func TestFromXYWHClamps(t *testing.T) {
	r := FromXYWH(-10, -10, 20, 0x20000)
	if want := R(0, 0, 10, 0xFFFF); r != want {
		t.Errorf("FromXYWH clamped = %v, want %v", r, want)
	}
}

func TestAreaOfEmpty(t *testing.T) {
	if a := R(5, 5, 5, 40).Area(); a != 0 {
		t.Errorf("Area of zero-width rect = %d, want 0", a)
	}
	if s := R(5, 5, 40, 5).Size(); s != (Size{}) {
		t.Errorf("Size of zero-height rect = %v, want zero", s)
	}
	if a := R(10, 10, 0, 0).Area(); a != 100 {
		t.Errorf("Area of unordered 10x10 = %d, want 100", a)
	}
}

func TestDisjointIntersectionHasZeroArea(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
	}{
		{"side by side", R(0, 0, 10, 10), R(20, 0, 30, 10)},
		{"stacked", R(0, 0, 10, 10), R(0, 40, 10, 50)},
		{"diagonal unordered", R(10, 10, 0, 0), R(50, 50, 40, 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a.Intersects(tt.b) {
				t.Fatalf("%v and %v should not intersect", tt.a, tt.b)
			}
			if area := tt.a.Intersection(tt.b).Area(); area != 0 {
				t.Errorf("Intersection area = %d, want 0", area)
			}
		})
	}
}

func TestUnionContainsBoth(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		a, b := randomRect(rng), randomRect(rng)
		u := a.Union(b)
		if !u.Contains(a) || !u.Contains(b) {
			t.Fatalf("Union(%v, %v) = %v does not contain both", a, b, u)
		}
	}
}

func TestIntersection(t *testing.T) {
	got := R(0, 0, 10, 10).Intersection(R(5, 5, 20, 20))
	if want := R(5, 5, 10, 10); got != want {
		t.Errorf("Intersection = %v, want %v", got, want)
	}
	if area := R(0, 0, 10, 10).OverlapArea(R(5, 5, 20, 20)); area != 25 {
		t.Errorf("OverlapArea = %d, want 25", area)
	}
}

func TestOffsetAndInset(t *testing.T) {
	r := R(10, 10, 20, 20)
	if got, want := r.Offset(-15, 5), R(0, 15, 5, 25); got != want {
		t.Errorf("Offset = %v, want %v", got, want)
	}
	if got, want := r.Inset(2, 3, 4, 5), R(12, 13, 16, 15); got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
	if got, want := r.Inset(8, 0, 8, 0), R(18, 10, 18, 20); got != want {
		t.Errorf("over-inset = %v, want %v", got, want)
	}
}

func TestScaleAboutCenter(t *testing.T) {
	got := R(10, 10, 30, 30).ScaleAboutCenter(2, 0.5)
	if want := R(0, 15, 40, 25); got != want {
		t.Errorf("ScaleAboutCenter = %v, want %v", got, want)
	}
}

func TestAlignIn(t *testing.T) {
	parent := R(0, 0, 100, 50)
	child := R(0, 0, 20, 10)
	tests := []struct {
		name   string
		anchor Anchor
		want   Rect
	}{
		{"centre", 0, R(40, 20, 60, 30)},
		{"top left", AnchorLeft | AnchorTop, R(0, 0, 20, 10)},
		{"bottom right", AnchorRight | AnchorBottom, R(80, 40, 100, 50)},
		{"right vcenter", AnchorRight | AnchorVCenter, R(80, 20, 100, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := child.AlignIn(parent, tt.anchor); got != tt.want {
				t.Errorf("AlignIn = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClosestPointAndDistance(t *testing.T) {
	r := R(10, 10, 20, 20)
	tests := []struct {
		p       Point
		closest Point
		dist    uint32
	}{
		{Pt(15, 15), Pt(15, 15), 0},
		{Pt(0, 15), Pt(10, 15), 10},
		{Pt(23, 24), Pt(20, 20), 5},
	}
	for _, tt := range tests {
		if got := r.ClosestPoint(tt.p); got != tt.closest {
			t.Errorf("ClosestPoint(%v) = %v, want %v", tt.p, got, tt.closest)
		}
		if got := r.DistanceToPoint(tt.p); got != tt.dist {
			t.Errorf("DistanceToPoint(%v) = %d, want %d", tt.p, got, tt.dist)
		}
	}
}

func TestExpandToInclude(t *testing.T) {
	got := R(10, 10, 20, 20).ExpandToInclude(Pt(5, 30))
	if want := R(5, 10, 20, 30); got != want {
		t.Errorf("ExpandToInclude = %v, want %v", got, want)
	}
}

func TestClampToScreen(t *testing.T) {
	got := R(100, 10, 200, 90).ClampToScreen(128, 64)
	if want := R(100, 10, 128, 64); got != want {
		t.Errorf("ClampToScreen = %v, want %v", got, want)
	}
}

func TestClipLine(t *testing.T) {
	r := R(10, 10, 20, 20)
	tests := []struct {
		name    string
		p0, p1  Point
		visible bool
		w0, w1  Point
	}{
		{"inside untouched", Pt(12, 12), Pt(18, 15), true, Pt(12, 12), Pt(18, 15)},
		{"horizontal through", Pt(0, 15), Pt(30, 15), true, Pt(10, 15), Pt(20, 15)},
		{"diagonal through", Pt(0, 0), Pt(30, 30), true, Pt(10, 10), Pt(20, 20)},
		{"vertical through", Pt(15, 0), Pt(15, 40), true, Pt(15, 10), Pt(15, 20)},
		{"fully outside", Pt(0, 0), Pt(5, 5), false, Pt(0, 0), Pt(5, 5)},
		{"outside same side", Pt(25, 0), Pt(30, 40), false, Pt(25, 0), Pt(30, 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p0, p1 := tt.p0, tt.p1
			if got := r.ClipLine(&p0, &p1); got != tt.visible {
				t.Fatalf("ClipLine visible = %v, want %v", got, tt.visible)
			}
			if p0 != tt.w0 || p1 != tt.w1 {
				t.Errorf("ClipLine endpoints = %v,%v, want %v,%v", p0, p1, tt.w0, tt.w1)
			}
		})
	}
}

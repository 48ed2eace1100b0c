// Package geom provides the screen-space value types used by the rasterizer
// and the framebuffer encoders.
//
// Coordinates live on an unsigned 16-bit grid, matching the addressing range of
// small OLED controllers. Arithmetic never wraps: additions saturate at 0xFFFF
// and subtractions that need a sign produce a Vec2.
//
// Rectangles are stored as two inclusive corners which are not required to be
// ordered. Every rectangle operation normalizes its inputs first, so callers
// never need to pre-sort corners:
//
//	r := geom.Rect{TL: geom.Pt(10, 10), BR: geom.Pt(2, 4)}
//	r.Normalize() // {(2,4) (10,10)}
//	r.Width()     // 8
package geom

package tilepaint

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the frame color drawn around empty tiles.
var ColorBlack = Color{0, 0, 0, 1}

// RGBA8 builds a Color from 8-bit channel values.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// toRGBA converts to a premultiplied color.RGBA suitable for image.Fill.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Point is a window-relative pixel position.
type Point struct {
	X, Y int
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// Rect is an axis-aligned pixel rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Grow expands r symmetrically by percent of its width: the size grows by
// W*percent/100 and the origin moves by half that. A negative percent shrinks.
func (r Rect) Grow(percent int) Rect {
	dw := r.W * percent / 100
	dx := r.W * percent / 200
	return Rect{X: r.X - dx, Y: r.Y - dx, W: r.W + dw, H: r.H + dw}
}

// Inset returns r shrunk by n pixels on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Flip is the mirror state of a tile.
type Flip uint8

const (
	FlipNone       Flip = iota // drawn as authored
	FlipHorizontal             // mirrored left-right
	FlipVertical               // mirrored top-bottom
)

// flipNext is the cycle applied by the flip key.
var flipNext = [...]Flip{
	FlipNone:       FlipHorizontal,
	FlipHorizontal: FlipVertical,
	FlipVertical:   FlipNone,
}

// Next returns the following state in the None, Horizontal, Vertical cycle.
// Unknown values reset to FlipNone.
func (f Flip) Next() Flip {
	if int(f) >= len(flipNext) {
		return FlipNone
	}
	return flipNext[f]
}

// Valid reports whether f is one of the defined flip states.
func (f Flip) Valid() bool {
	return f <= FlipVertical
}

func (f Flip) String() string {
	switch f {
	case FlipNone:
		return "none"
	case FlipHorizontal:
		return "horizontal"
	case FlipVertical:
		return "vertical"
	default:
		return "invalid"
	}
}

package tilepaint

// DrawKind identifies what a Drawable paints.
type DrawKind uint8

const (
	DrawFill  DrawKind = iota // solid Color over Rect
	DrawAsset                 // bitmap Asset stretched over Rect
)

// Drawable is a single draw instruction produced by the panel and the grid.
// The Renderer turns a slice of these into pixels, in order.
type Drawable struct {
	Kind  DrawKind
	Rect  Rect
	Color Color   // DrawFill only
	Asset string  // DrawAsset only
	Angle float64 // degrees clockwise around the rect center
	Flip  Flip
}

func fillDrawable(r Rect, c Color) Drawable {
	return Drawable{Kind: DrawFill, Rect: r, Color: c}
}

func assetDrawable(r Rect, asset string) Drawable {
	return Drawable{Kind: DrawAsset, Rect: r, Asset: asset}
}

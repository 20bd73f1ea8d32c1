package tilepaint

import (
	"fmt"
	"math"
)

// Default panel tuning.
const (
	DefaultScrollDamping      = 5  // pixels per frame
	DefaultHoverGrowthPercent = 10 // percent of thumbnail width
)

// PanelOptions tunes the browser panel's scroll and hover behavior. Zero
// fields fall back to the defaults.
type PanelOptions struct {
	// ScrollDamping is the per-frame correction applied when the thumbnail
	// column is pulled past either end. Offsets within one step snap to 0.
	ScrollDamping int
	// HoverGrowthPercent enlarges the hovered thumbnail; the selected
	// thumbnail is shrunk by the same ratio.
	HoverGrowthPercent int
}

func (o PanelOptions) withDefaults() PanelOptions {
	if o.ScrollDamping <= 0 {
		o.ScrollDamping = DefaultScrollDamping
	}
	if o.HoverGrowthPercent <= 0 {
		o.HoverGrowthPercent = DefaultHoverGrowthPercent
	}
	return o
}

// Thumbnail is the square a single asset occupies in the panel.
type Thumbnail struct {
	Rect  Rect
	Asset string
}

// selection is an optional asset index. Identity is the index, so two
// identical paths could never alias each other.
type selection struct {
	index int
	ok    bool
}

// Panel is the vertical asset browser pinned to the left edge of the window.
// It owns its geometry, the scroll offset, hover state and the single
// selected asset. All rectangles are recomputed by Update every frame.
type Panel struct {
	widthMultiplier float64
	color           Color
	opts            PanelOptions

	rect     Rect
	scroll   int
	selected selection

	assets  []string
	thumbs  []Thumbnail
	hovered []bool

	sink EventSink
}

// NewPanel scans dir for bitmap assets and lays out one thumbnail per asset.
// It fails with ErrInvalidPath if dir cannot be listed and ErrNoAssets if it
// holds no bitmaps.
func NewPanel(win Size, widthMultiplier float64, col Color, dir string, opts PanelOptions) (*Panel, error) {
	assets, err := ScanAssets(dir)
	if err != nil {
		return nil, fmt.Errorf("browser: %w", err)
	}
	return newPanel(win, widthMultiplier, col, assets, opts)
}

// newPanel builds a panel over an already scanned asset list.
func newPanel(win Size, widthMultiplier float64, col Color, assets []string, opts PanelOptions) (*Panel, error) {
	p := &Panel{
		widthMultiplier: widthMultiplier,
		color:           col,
		opts:            opts.withDefaults(),
		assets:          assets,
		thumbs:          make([]Thumbnail, len(assets)),
		hovered:         make([]bool, len(assets)),
	}
	for i, a := range assets {
		p.thumbs[i].Asset = a
	}
	p.resize(win)
	if err := p.layout(); err != nil {
		return nil, err
	}
	return p, nil
}

// Update advances the panel by one frame: scroll, elastic correction,
// geometry, then hover and selection.
func (p *Panel) Update(in FrameInput) error {
	if in.Mouse.X >= 0 && in.Mouse.X <= p.rect.W {
		p.scroll += in.Scroll
	}
	p.correctScroll()
	p.resize(in.Window)
	if err := p.layout(); err != nil {
		return err
	}

	clicked := false
	for i := range p.thumbs {
		t := p.thumbs[i].Rect
		p.hovered[i] = in.Mouse.X >= 0 && in.Mouse.X <= p.rect.W &&
			in.Mouse.Y >= t.Y && in.Mouse.Y <= t.Y+t.H
		if p.hovered[i] && in.Click && !clicked {
			// Adjacent thumbnails share an edge row; only the first takes the click.
			clicked = true
			p.toggle(i)
		}
	}
	return nil
}

// correctScroll pulls the thumbnail column back toward its bounds by one
// damping step per frame and snaps small offsets to zero. A column shorter
// than the panel violates both bounds; the top edge wins so it settles at 0.
func (p *Panel) correctScroll() {
	step := p.opts.ScrollDamping
	top := p.scroll
	bottom := len(p.assets)*p.rect.W + p.scroll
	if top > 0 {
		p.scroll -= step
	} else if bottom < p.rect.H {
		p.scroll += step
	}
	if p.scroll >= -step && p.scroll <= step {
		p.scroll = 0
	}
}

// widthEpsilon keeps W*multiplier from truncating one pixel short, as in
// 100*0.29.
const widthEpsilon = 1e-9

func (p *Panel) resize(win Size) {
	p.rect = Rect{
		W: int(math.Floor(float64(win.W)*p.widthMultiplier + widthEpsilon)),
		H: win.H,
	}
}

func (p *Panel) layout() error {
	if len(p.thumbs) == 0 {
		return fmt.Errorf("browser: %w", ErrEmptyGridState)
	}
	w := p.rect.W
	for i := range p.thumbs {
		p.thumbs[i].Rect = Rect{X: 0, Y: i*w + p.scroll, W: w, H: w}
	}
	return nil
}

func (p *Panel) toggle(i int) {
	if p.selected.ok && p.selected.index == i {
		p.selected = selection{}
		emit(p.sink, EditorEvent{Type: EventAssetDeselected, Tile: -1, Asset: p.assets[i]})
		return
	}
	p.selected = selection{index: i, ok: true}
	emit(p.sink, EditorEvent{Type: EventAssetSelected, Tile: -1, Asset: p.assets[i]})
}

// RenderData returns the panel background followed by every thumbnail in
// scan order. The hovered thumbnail is enlarged and the selected one shrunk.
// A thumbnail that is both comes back to its stored size.
func (p *Panel) RenderData() []Drawable {
	data := make([]Drawable, 0, len(p.thumbs)+1)
	data = append(data, fillDrawable(p.rect, p.color))
	for i, t := range p.thumbs {
		r := t.Rect
		if p.hovered[i] {
			r = r.Grow(p.opts.HoverGrowthPercent)
		}
		if p.selected.ok && p.selected.index == i {
			r = r.Grow(-p.opts.HoverGrowthPercent)
		}
		data = append(data, assetDrawable(r, t.Asset))
	}
	return data
}

// SelectedAsset returns the selected asset, if any.
func (p *Panel) SelectedAsset() (string, bool) {
	if !p.selected.ok {
		return "", false
	}
	return p.assets[p.selected.index], true
}

// Width returns the current panel width in pixels.
func (p *Panel) Width() int { return p.rect.W }

// Rect returns the panel rectangle.
func (p *Panel) Rect() Rect { return p.rect }

// Scroll returns the current scroll offset in pixels.
func (p *Panel) Scroll() int { return p.scroll }

// Assets returns the scanned asset list. The returned slice MUST NOT be mutated.
func (p *Panel) Assets() []string { return p.assets }

// Thumbnails returns a copy of the current thumbnail layout, without hover
// or selection adjustments.
func (p *Panel) Thumbnails() []Thumbnail {
	out := make([]Thumbnail, len(p.thumbs))
	copy(out, p.thumbs)
	return out
}

// Hovered reports whether thumbnail i was under the cursor last frame.
func (p *Panel) Hovered(i int) bool {
	return i >= 0 && i < len(p.hovered) && p.hovered[i]
}

package tilepaint

import (
	"errors"
	"fmt"
)

// Tile is one cell of the paintable grid.
type Tile struct {
	Rect Rect
	// Asset is the painted (or previewed, while unlocked) asset. Empty means
	// the tile is unpainted.
	Asset string
	// Locked is set once the tile has been clicked. Hovering no longer
	// changes a locked tile's asset; only another click does.
	Locked bool
	// Angle accumulates 90 degrees per rotate press and is never wrapped.
	Angle float64
	Flip  Flip
}

// GridInput is the per-frame input the grid consumes.
type GridInput struct {
	Mouse      Point
	Click      bool
	Selected   string // asset currently selected in the panel, empty if none
	PanelWidth int
	Flip       bool
	Rotate     bool
	Save       bool
}

// Grid is a fixed rows x cols grid of tiles laid out immediately to the right
// of the panel. Tiles are stored row-major.
type Grid struct {
	rows, cols int
	size       int
	bg         Color
	tiles      []Tile

	store LayoutStore
	sink  EventSink
}

// NewGrid allocates rows*cols unpainted tiles and lays them out against a
// panel of width panelW.
func NewGrid(rows, cols, size int, bg Color, panelW int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || size <= 0 {
		return nil, fmt.Errorf("grid: invalid dimensions %dx%d with tile size %d", rows, cols, size)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		size:  size,
		bg:    bg,
		tiles: make([]Tile, rows*cols),
	}
	if err := g.layout(panelW); err != nil {
		return nil, err
	}
	return g, nil
}

// SetStore sets where the save key writes the layout.
func (g *Grid) SetStore(store LayoutStore) {
	g.store = store
}

func (g *Grid) layout(panelW int) error {
	if len(g.tiles) == 0 {
		return fmt.Errorf("grid: %w", ErrEmptyGridState)
	}
	for i := range g.tiles {
		row, col := i/g.cols, i%g.cols
		g.tiles[i].Rect = Rect{
			X: col*g.size + panelW,
			Y: row * g.size,
			W: g.size,
			H: g.size,
		}
	}
	return nil
}

// Update advances the grid by one frame. The grid follows the panel width,
// previews the selected asset on the hovered tile, applies rotate, flip and
// click to it, and saves on the save edge. A failed save returns an error
// wrapping ErrPersistenceWrite with tile state untouched.
func (g *Grid) Update(in GridInput) error {
	if err := g.layout(in.PanelWidth); err != nil {
		return err
	}

	for i := range g.tiles {
		t := &g.tiles[i]
		if !t.Rect.Contains(in.Mouse.X, in.Mouse.Y) {
			if !t.Locked {
				t.Asset = ""
			}
			continue
		}

		if !t.Locked {
			t.Asset = in.Selected
		}
		if in.Rotate {
			t.Angle += 90
			emit(g.sink, EditorEvent{Type: EventTileRotated, Tile: i, Asset: t.Asset, Angle: t.Angle, Flip: t.Flip})
		}
		if in.Flip {
			t.Flip = t.Flip.Next()
			emit(g.sink, EditorEvent{Type: EventTileFlipped, Tile: i, Asset: t.Asset, Angle: t.Angle, Flip: t.Flip})
		}
		if in.Click {
			t.Locked = true
			t.Asset = in.Selected
			emit(g.sink, EditorEvent{Type: EventTilePainted, Tile: i, Asset: t.Asset, Angle: t.Angle, Flip: t.Flip})
		}
	}

	if in.Save {
		return g.Save()
	}
	return nil
}

// Save writes the current layout to the grid's store.
func (g *Grid) Save() error {
	if g.store == nil {
		return fmt.Errorf("grid: %w: no layout store configured", ErrPersistenceWrite)
	}
	if err := g.store.SaveLayout(g.Layout()); err != nil {
		if errors.Is(err, ErrPersistenceWrite) {
			return fmt.Errorf("grid: %w", err)
		}
		return fmt.Errorf("grid: %w: %v", ErrPersistenceWrite, err)
	}
	emit(g.sink, EditorEvent{Type: EventLayoutSaved, Tile: -1})
	return nil
}

// RenderData returns the draw records for every tile in row-major order.
// Painted tiles draw their asset; empty tiles draw a black frame around a
// background-colored inset.
func (g *Grid) RenderData() []Drawable {
	data := make([]Drawable, 0, len(g.tiles)*2)
	for _, t := range g.tiles {
		if t.Asset != "" {
			d := assetDrawable(t.Rect, t.Asset)
			d.Angle = t.Angle
			d.Flip = t.Flip
			data = append(data, d)
			continue
		}
		data = append(data,
			fillDrawable(t.Rect, ColorBlack),
			fillDrawable(t.Rect.Inset(1), g.bg),
		)
	}
	return data
}

// Rows returns the number of tile rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of tile columns.
func (g *Grid) Cols() int { return g.cols }

// TileSize returns the edge length of a tile in pixels.
func (g *Grid) TileSize() int { return g.size }

// Tiles returns a copy of all tiles in row-major order.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Tile returns the tile at (row, col). ok is false when out of range.
func (g *Grid) Tile(row, col int) (Tile, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Tile{}, false
	}
	return g.tiles[row*g.cols+col], true
}

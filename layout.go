package tilepaint

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LayoutStore persists grid layouts.
type LayoutStore interface {
	SaveLayout(l Layout) error
}

// Layout is the on-disk form of a grid.
type Layout struct {
	Rows     int          `json:"rows"`
	Cols     int          `json:"cols"`
	TileSize int          `json:"tile_size"`
	Tiles    []LayoutTile `json:"tiles"`
}

// LayoutTile is one saved tile. Geometry is informational: the next relayout
// overwrites it. Flip is stored by its numeric code.
type LayoutTile struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	W     int     `json:"w"`
	H     int     `json:"h"`
	Asset string  `json:"path_to_bmp"`
	Angle float64 `json:"angle"`
	Flip  Flip    `json:"flip"`
}

// Layout snapshots the grid in row-major order. Only committed paint is
// recorded; an unlocked tile's hover preview is written as empty.
func (g *Grid) Layout() Layout {
	l := Layout{
		Rows:     g.rows,
		Cols:     g.cols,
		TileSize: g.size,
		Tiles:    make([]LayoutTile, len(g.tiles)),
	}
	for i, t := range g.tiles {
		asset := t.Asset
		if !t.Locked {
			asset = ""
		}
		l.Tiles[i] = LayoutTile{
			X: t.Rect.X, Y: t.Rect.Y, W: t.Rect.W, H: t.Rect.H,
			Asset: asset,
			Angle: t.Angle,
			Flip:  t.Flip,
		}
	}
	return l
}

// ApplyLayout restores asset, angle and flip for every tile from l. Tiles with
// an asset come back locked. The tile count must match the grid.
func (g *Grid) ApplyLayout(l Layout) error {
	if len(l.Tiles) != len(g.tiles) {
		return fmt.Errorf("grid: layout has %d tiles, grid has %d", len(l.Tiles), len(g.tiles))
	}
	for i, lt := range l.Tiles {
		if !lt.Flip.Valid() {
			return fmt.Errorf("grid: tile %d has invalid flip code %d", i, lt.Flip)
		}
	}
	for i, lt := range l.Tiles {
		t := &g.tiles[i]
		t.Asset = lt.Asset
		t.Locked = lt.Asset != ""
		t.Angle = lt.Angle
		t.Flip = lt.Flip
	}
	return nil
}

// EncodeLayout writes l as indented JSON.
func EncodeLayout(w io.Writer, l Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}

// DecodeLayout parses a layout written by EncodeLayout.
func DecodeLayout(r io.Reader) (Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	return l, nil
}

// FileStore saves layouts as JSON files at Path.
type FileStore struct {
	Path string
}

// SaveLayout implements LayoutStore. Errors wrap ErrPersistenceWrite.
func (s FileStore) SaveLayout(l Layout) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrPersistenceWrite, s.Path, err)
	}
	if err := EncodeLayout(f, l); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", ErrPersistenceWrite, s.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrPersistenceWrite, s.Path, err)
	}
	return nil
}

// LoadLayout reads the layout at Path.
func (s FileStore) LoadLayout() (Layout, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return Layout{}, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()
	return DecodeLayout(f)
}

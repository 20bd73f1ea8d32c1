package tilepaint

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// tileState is the persisted part of a tile.
type tileState struct {
	Asset  string
	Locked bool
	Angle  float64
	Flip   Flip
}

func tileStates(g *Grid) []tileState {
	tiles := g.Tiles()
	out := make([]tileState, len(tiles))
	for i, t := range tiles {
		out[i] = tileState{t.Asset, t.Locked, t.Angle, t.Flip}
	}
	return out
}

func TestFileStore_RoundTrip(t *testing.T) {
	g := newTestGrid(t)
	paints := []struct {
		at      Point
		asset   string
		rotates int
		flips   int
	}{
		{Point{85, 5}, "/assets/a.bmp", 1, 1},
		{Point{220, 30}, "/assets/b.bmp", 0, 2},
		{Point{100, 100}, "/assets/c.bmp", 3, 0},
		{Point{300, 240}, "/assets/a.bmp", 6, 3},
		{Point{170, 170}, "/assets/d e.bmp", 2, 1},
	}
	for _, p := range paints {
		step(t, g, GridInput{Mouse: p.at, Click: true, Selected: p.asset})
		for i := 0; i < p.rotates; i++ {
			step(t, g, GridInput{Mouse: p.at, Rotate: true})
		}
		for i := 0; i < p.flips; i++ {
			step(t, g, GridInput{Mouse: p.at, Flip: true})
		}
	}
	// A rotated but never painted tile keeps its transform.
	step(t, g, GridInput{Mouse: Point{290, 100}, Rotate: true, Flip: true})
	step(t, g, GridInput{Mouse: Point{400, 400}})
	want := tileStates(g)

	store := FileStore{Path: filepath.Join(t.TempDir(), "layout.json")}
	if err := store.SaveLayout(g.Layout()); err != nil {
		t.Fatalf("SaveLayout: %v", err)
	}
	l, err := store.LoadLayout()
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}

	restored := newTestGrid(t)
	if err := restored.ApplyLayout(l); err != nil {
		t.Fatalf("ApplyLayout: %v", err)
	}
	got := tileStates(restored)
	painted := 0
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tile %d = %+v, want %+v", i, got[i], want[i])
		}
		if want[i].Asset != "" {
			painted++
		}
	}
	if painted != len(paints) {
		t.Errorf("painted tiles = %d, want %d", painted, len(paints))
	}
}

func TestGrid_SaveDuringPreview(t *testing.T) {
	g := newTestGrid(t)
	store := &memStore{}
	g.SetStore(store)

	// Tile (0,1) is committed; tile (0,0) only shows a preview when saved.
	step(t, g, GridInput{Mouse: Point{150, 5}, Click: true, Selected: "b.bmp"})
	step(t, g, GridInput{Mouse: Point{85, 5}, Selected: "a.bmp", Rotate: true, Save: true})

	if len(store.saved) != 1 {
		t.Fatalf("saves = %d, want 1", len(store.saved))
	}
	l := store.saved[0]
	if l.Tiles[0].Asset != "" {
		t.Errorf("preview saved as %q, want empty", l.Tiles[0].Asset)
	}
	if l.Tiles[0].Angle != 90 {
		t.Errorf("preview tile angle = %v, want 90", l.Tiles[0].Angle)
	}
	if l.Tiles[1].Asset != "b.bmp" {
		t.Errorf("committed tile = %q, want b.bmp", l.Tiles[1].Asset)
	}

	restored := newTestGrid(t)
	if err := restored.ApplyLayout(l); err != nil {
		t.Fatal(err)
	}
	tile, _ := restored.Tile(0, 0)
	if tile.Asset != "" || tile.Locked {
		t.Errorf("restored preview tile = %+v, want empty and unlocked", tile)
	}
	tile, _ = restored.Tile(0, 1)
	if tile.Asset != "b.bmp" || !tile.Locked {
		t.Errorf("restored committed tile = %+v", tile)
	}
}

func TestEncodeLayout_FieldNames(t *testing.T) {
	l := Layout{
		Rows: 1, Cols: 1, TileSize: 32,
		Tiles: []LayoutTile{{X: 80, Y: 0, W: 32, H: 32, Asset: "a.bmp", Angle: 180, Flip: FlipVertical}},
	}
	var buf bytes.Buffer
	if err := EncodeLayout(&buf, l); err != nil {
		t.Fatal(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"rows", "cols", "tile_size", "tiles"} {
		if _, ok := raw[k]; !ok {
			t.Errorf("missing top-level key %q in %s", k, buf.String())
		}
	}
	tile := raw["tiles"].([]any)[0].(map[string]any)
	want := map[string]any{
		"x": 80.0, "y": 0.0, "w": 32.0, "h": 32.0,
		"path_to_bmp": "a.bmp", "angle": 180.0, "flip": 2.0,
	}
	for k, v := range want {
		if tile[k] != v {
			t.Errorf("tile[%q] = %v, want %v", k, tile[k], v)
		}
	}
}

func TestDecodeLayout_Invalid(t *testing.T) {
	if _, err := DecodeLayout(strings.NewReader("{")); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestApplyLayout_Errors(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
	}{
		{"tile count", Layout{Rows: 1, Cols: 1, Tiles: make([]LayoutTile, 1)}},
		{"flip code", Layout{Tiles: func() []LayoutTile {
			ts := make([]LayoutTile, 16)
			ts[7].Flip = Flip(9)
			return ts
		}()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGrid(t)
			step(t, g, GridInput{Mouse: Point{85, 5}, Click: true, Selected: "a.bmp"})
			if err := g.ApplyLayout(tt.layout); err == nil {
				t.Fatal("expected error")
			}
			tile, _ := g.Tile(0, 0)
			if tile.Asset != "a.bmp" {
				t.Errorf("rejected layout modified the grid: %+v", tile)
			}
		})
	}
}

func TestFileStore_CreateFailure(t *testing.T) {
	store := FileStore{Path: filepath.Join(t.TempDir(), "missing", "layout.json")}
	err := store.SaveLayout(Layout{})
	if !errors.Is(err, ErrPersistenceWrite) {
		t.Errorf("err = %v, want ErrPersistenceWrite", err)
	}
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := FileStore{Path: filepath.Join(t.TempDir(), "none.json")}
	_, err := store.LoadLayout()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestGrid_SaveToFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	g := newTestGrid(t)
	g.SetStore(FileStore{Path: path})
	step(t, g, GridInput{Mouse: Point{85, 5}, Click: true, Selected: "a.bmp"})
	step(t, g, GridInput{Mouse: Point{400, 400}, Save: true})

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	l, err := DecodeLayout(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Tiles) != 16 || l.Tiles[0].Asset != "a.bmp" {
		t.Errorf("saved layout = %+v", l)
	}
}

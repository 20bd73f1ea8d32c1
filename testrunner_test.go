package tilepaint

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "click", "x": 10, "y": 100},
			{"action": "scroll", "x": 10, "y": 10, "amount": -20, "frames": 3},
			{"action": "wait", "frames": 3},
			{"action": "screenshot", "label": "after-paint"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "click" || runner.steps[0].X != 10 || runner.steps[0].Y != 100 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Amount != -20 || runner.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[3].Label != "after-paint" {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
	}
	for _, tt := range tests {
		if _, err := LoadScript([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func idle() FrameInput { return FrameInput{Mouse: Point{-1, -1}} }

// runScript advances e until the runner is done or limit frames pass.
func runScript(t *testing.T, e *Editor, r *TestRunner, limit int) int {
	t.Helper()
	e.SetTestRunner(r)
	for i := 0; i < limit; i++ {
		if r.Done() {
			return i
		}
		if err := e.advance(idle); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	t.Fatalf("script not done after %d frames", limit)
	return limit
}

func TestRunner_PaintAndSave(t *testing.T) {
	e, cfg := newTestEditor(t, nil)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 10, "y": 170},
		{"action": "click", "x": 150, "y": 70},
		{"action": "rotate"},
		{"action": "flip"},
		{"action": "save"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, e, r, 20)

	tile, _ := e.Grid().Tile(1, 1)
	if filepath.Base(tile.Asset) != "c.bmp" || !tile.Locked || tile.Angle != 90 || tile.Flip != FlipHorizontal {
		t.Errorf("tile = %+v", tile)
	}
	if _, err := os.Stat(cfg.LayoutPath); err != nil {
		t.Errorf("layout not saved: %v", err)
	}
}

func TestRunner_Wait(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	r, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 4}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if frames := runScript(t, e, r, 20); frames != 5 {
		t.Errorf("wait finished after %d frames, want 5", frames)
	}
}

func TestRunner_ScrollAndResize(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "resize", "w": 1000, "h": 500},
		{"action": "scroll", "x": 10, "y": 10, "amount": 30, "frames": 2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	e.SetTestRunner(r)
	for i := 0; i < 3; i++ {
		if err := e.advance(idle); err != nil {
			t.Fatal(err)
		}
	}
	if e.Panel().Width() != 100 {
		t.Errorf("panel width = %d, want 100", e.Panel().Width())
	}
	if e.Panel().Scroll() <= 0 {
		t.Errorf("scroll = %d, want pulled down", e.Panel().Scroll())
	}
}

func TestRunner_Screenshot(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	r, err := LoadScript([]byte(`{"steps": [{"action": "screenshot", "label": "empty grid"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, e, r, 5)
	if len(e.screenshotQueue) != 1 || e.screenshotQueue[0] != "empty grid" {
		t.Errorf("queue = %v", e.screenshotQueue)
	}
}

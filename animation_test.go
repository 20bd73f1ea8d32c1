package tilepaint

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestStatusFlash_Fades(t *testing.T) {
	f := NewStatusFlash("saved", 1.0, ease.Linear)
	if f.Alpha != 1 || f.Done {
		t.Fatalf("initial = %v, done %v", f.Alpha, f.Done)
	}

	f.Update(0.5)
	if math.Abs(f.Alpha-0.5) > 0.01 {
		t.Errorf("alpha at half time = %f, want ~0.5", f.Alpha)
	}
	if f.Done {
		t.Error("done too early")
	}

	f.Update(0.5)
	if !f.Done {
		t.Fatal("expected Done after full duration")
	}
	if f.Alpha > 0.01 {
		t.Errorf("alpha = %f, want ~0", f.Alpha)
	}

	// Further updates are ignored.
	f.Update(1)
	if !f.Done || f.Alpha > 0.01 {
		t.Errorf("after done: alpha %f done %v", f.Alpha, f.Done)
	}
}

func TestEditor_FlashExpires(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.flash("hello")
	for i := 0; i < 200 && e.status != nil; i++ {
		run(t, e, FrameInput{Mouse: Point{-1, -1}})
	}
	if e.status != nil {
		t.Error("status flash never expired")
	}
}

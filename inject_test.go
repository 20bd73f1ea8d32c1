package tilepaint

import "testing"

func TestInject_QueueOrder(t *testing.T) {
	e := &Editor{}
	e.InjectMove(10, 20)
	e.InjectClick(30, 40)
	e.InjectRotate()
	e.InjectFlip()
	e.InjectScroll(5, 6, -12)
	e.InjectSave()
	e.InjectScreenshot()
	e.InjectResize(1024, 768)
	e.InjectIdle(2)

	want := []FrameInput{
		{Mouse: Point{10, 20}},
		{Mouse: Point{30, 40}, Click: true},
		{Mouse: Point{30, 40}, Rotate: true},
		{Mouse: Point{30, 40}, Flip: true},
		{Mouse: Point{5, 6}, Scroll: -12},
		{Mouse: Point{5, 6}, Save: true},
		{Mouse: Point{5, 6}, Screenshot: true},
		{Mouse: Point{5, 6}, Window: Size{1024, 768}},
		{Mouse: Point{5, 6}},
		{Mouse: Point{5, 6}},
	}
	for i, w := range want {
		got, ok := e.popInjected()
		if !ok {
			t.Fatalf("queue empty at %d", i)
		}
		if got != w {
			t.Errorf("frame %d = %+v, want %+v", i, got, w)
		}
	}
	if _, ok := e.popInjected(); ok {
		t.Error("expected empty queue")
	}
}

func TestInject_RotatePaintedTile(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.InjectClick(10, 10)
	e.InjectClick(85, 5)
	e.InjectRotate()
	e.InjectRotate()
	e.InjectFlip()
	for len(e.injectQueue) > 0 {
		if err := e.advance(func() FrameInput { t.Fatal("live input read"); return FrameInput{} }); err != nil {
			t.Fatal(err)
		}
	}
	tile, _ := e.Grid().Tile(0, 0)
	if tile.Angle != 180 || tile.Flip != FlipHorizontal || !tile.Locked {
		t.Errorf("tile = %+v", tile)
	}
}

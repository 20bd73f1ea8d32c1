package tilepaint

// Injected frames replace live input one frame at a time. Coordinates are
// window-relative, the same space as ebiten.CursorPosition. Frames that do
// not move the cursor reuse the last injected position.

// InjectMove queues a frame with the cursor at (x, y) and nothing pressed.
func (e *Editor) InjectMove(x, y int) {
	e.injectCursor = Point{x, y}
	e.inject(FrameInput{})
}

// InjectClick queues a frame with the cursor at (x, y) and a left-click edge.
func (e *Editor) InjectClick(x, y int) {
	e.injectCursor = Point{x, y}
	e.inject(FrameInput{Click: true})
}

// InjectScroll queues a frame with the cursor at (x, y) scrolling by amount.
func (e *Editor) InjectScroll(x, y, amount int) {
	e.injectCursor = Point{x, y}
	e.inject(FrameInput{Scroll: amount})
}

// InjectRotate queues a rotate-key edge at the current injected cursor.
func (e *Editor) InjectRotate() { e.inject(FrameInput{Rotate: true}) }

// InjectFlip queues a flip-key edge at the current injected cursor.
func (e *Editor) InjectFlip() { e.inject(FrameInput{Flip: true}) }

// InjectSave queues a save-key edge.
func (e *Editor) InjectSave() { e.inject(FrameInput{Save: true}) }

// InjectScreenshot queues a screenshot-key edge.
func (e *Editor) InjectScreenshot() { e.inject(FrameInput{Screenshot: true}) }

// InjectResize queues an idle frame with a new window size.
func (e *Editor) InjectResize(w, h int) {
	e.inject(FrameInput{Window: Size{w, h}})
}

// InjectIdle queues n frames with no input besides the cursor position.
func (e *Editor) InjectIdle(n int) {
	for i := 0; i < n; i++ {
		e.inject(FrameInput{})
	}
}

func (e *Editor) inject(in FrameInput) {
	in.Mouse = e.injectCursor
	e.injectQueue = append(e.injectQueue, in)
}

// popInjected removes and returns the oldest injected frame.
func (e *Editor) popInjected() (FrameInput, bool) {
	if len(e.injectQueue) == 0 {
		return FrameInput{}, false
	}
	in := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]
	return in, true
}

package tilepaint

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	defaultScrollStep = 12 // pixels of scroll speed per wheel notch
	maxScrollSpeed    = 60 // clamp for fast wheels / trackpads
)

// Key bindings for the editor's one-shot actions.
var (
	KeyRotate     = ebiten.KeyR
	KeyFlip       = ebiten.KeyF
	KeySave       = ebiten.KeyS
	KeyScreenshot = ebiten.KeyF12
	KeyQuit       = ebiten.KeyEscape
)

// FrameInput is the per-frame input snapshot consumed by the panel and grid.
// Every bool is an edge: true only on the frame the button or key went down.
type FrameInput struct {
	Window Size
	Mouse  Point
	// Scroll is the signed scroll speed for this frame. It decays toward zero
	// once the wheel stops.
	Scroll int

	Click      bool
	Rotate     bool
	Flip       bool
	Save       bool
	Screenshot bool
	Quit       bool
}

// gridInput projects the frame input onto what the grid consumes.
func (in FrameInput) gridInput(selected string, panelW int) GridInput {
	return GridInput{
		Mouse:      in.Mouse,
		Click:      in.Click,
		Selected:   selected,
		PanelWidth: panelW,
		Flip:       in.Flip,
		Rotate:     in.Rotate,
		Save:       in.Save,
	}
}

// --- Scroll speed ---

// scrollTracker turns discrete wheel notches into a speed that keeps the
// column gliding for a few frames after the wheel stops.
type scrollTracker struct {
	step  int
	speed int
}

// update feeds this frame's wheel offset and returns the scroll speed.
func (s *scrollTracker) update(wheelY float64) int {
	step := s.step
	if step <= 0 {
		step = defaultScrollStep
	}
	if wheelY != 0 {
		s.speed += int(math.Round(wheelY * float64(step)))
		if s.speed > maxScrollSpeed {
			s.speed = maxScrollSpeed
		} else if s.speed < -maxScrollSpeed {
			s.speed = -maxScrollSpeed
		}
		return s.speed
	}
	switch {
	case s.speed > 0:
		s.speed--
	case s.speed < 0:
		s.speed++
	}
	return s.speed
}

// --- Live input ---

// readFrameInput samples Ebitengine's mouse, wheel and keyboard state.
func readFrameInput(win Size, scroll *scrollTracker) FrameInput {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return FrameInput{
		Window:     win,
		Mouse:      Point{mx, my},
		Scroll:     scroll.update(wy),
		Click:      inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Rotate:     inpututil.IsKeyJustPressed(KeyRotate),
		Flip:       inpututil.IsKeyJustPressed(KeyFlip),
		Save:       inpututil.IsKeyJustPressed(KeySave),
		Screenshot: inpututil.IsKeyJustPressed(KeyScreenshot),
		Quit:       inpututil.IsKeyJustPressed(KeyQuit),
	}
}

package tilepaint

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	flashDuration = 1.5 // seconds
	flashW        = 320
	flashH        = 16
)

// StatusFlash is a one-line message that fades out after a save or a
// screenshot. Call Update(dt) each frame; once Done it draws nothing.
type StatusFlash struct {
	Text  string
	Alpha float64
	Done  bool

	tween *gween.Tween
	img   *ebiten.Image
}

// NewStatusFlash starts a fully opaque message that fades over duration
// seconds using the easing function.
func NewStatusFlash(text string, duration float32, fn ease.TweenFunc) *StatusFlash {
	return &StatusFlash{
		Text:  text,
		Alpha: 1,
		tween: gween.New(1, 0, duration, fn),
	}
}

// Update advances the fade by dt seconds.
func (f *StatusFlash) Update(dt float32) {
	if f.Done {
		return
	}
	val, finished := f.tween.Update(dt)
	f.Alpha = float64(val)
	f.Done = finished
}

// Draw renders the message in the bottom-right corner of dst.
func (f *StatusFlash) Draw(dst *ebiten.Image) {
	if f.Done || f.Alpha <= 0 {
		return
	}
	if f.img == nil {
		f.img = ebiten.NewImage(flashW, flashH)
		ebitenutil.DebugPrint(f.img, f.Text)
	}
	b := dst.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(b.Dx()-flashW), float64(b.Dy()-flashH))
	op.ColorScale.ScaleAlpha(float32(f.Alpha))
	dst.DrawImage(f.img, &op)
}

package tilepaint

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const geoEpsilon = 1e-9

func applyNear(t *testing.T, m ebiten.GeoM, x, y, wantX, wantY float64) {
	t.Helper()
	gx, gy := m.Apply(x, y)
	if math.Abs(gx-wantX) > geoEpsilon || math.Abs(gy-wantY) > geoEpsilon {
		t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", x, y, gx, gy, wantX, wantY)
	}
}

func TestFillGeoM(t *testing.T) {
	m := fillGeoM(Rect{10, 20, 30, 40})
	applyNear(t, m, 0, 0, 10, 20)
	applyNear(t, m, 1, 1, 40, 60)
}

func TestAssetGeoM(t *testing.T) {
	rect := Rect{80, 0, 64, 64}
	tests := []struct {
		name    string
		angle   float64
		flip    Flip
		topLeft [2]float64 // where the source (0,0) lands
		botRght [2]float64 // where the source (16,16) lands
	}{
		{"identity", 0, FlipNone, [2]float64{80, 0}, [2]float64{144, 64}},
		{"horizontal", 0, FlipHorizontal, [2]float64{144, 0}, [2]float64{80, 64}},
		{"vertical", 0, FlipVertical, [2]float64{80, 64}, [2]float64{144, 0}},
		{"quarter turn", 90, FlipNone, [2]float64{144, 0}, [2]float64{80, 64}},
		{"half turn", 180, FlipNone, [2]float64{144, 64}, [2]float64{80, 0}},
		{"wrapped angle", 450, FlipNone, [2]float64{144, 0}, [2]float64{80, 64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := assetGeoM(rect, tt.angle, tt.flip, 16, 16)
			applyNear(t, m, 0, 0, tt.topLeft[0], tt.topLeft[1])
			applyNear(t, m, 16, 16, tt.botRght[0], tt.botRght[1])
		})
	}
}

func TestAssetGeoM_ScalesNonSquareSource(t *testing.T) {
	m := assetGeoM(Rect{0, 0, 64, 64}, 0, FlipNone, 32, 8)
	applyNear(t, m, 32, 8, 64, 64)
}

func TestAssetGeoM_EmptySource(t *testing.T) {
	m := assetGeoM(Rect{10, 10, 64, 64}, 90, FlipHorizontal, 0, 16)
	applyNear(t, m, 3, 4, 3, 4)
}

func TestTextureCache_Placeholder(t *testing.T) {
	var logs logBuffer
	c := NewTextureCache(&logs)
	img := c.Get("/does/not/exist.bmp")
	if img != ensureMagentaImage() {
		t.Error("missing asset should resolve to the magenta placeholder")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
	// Cached: a second lookup does not log again.
	c.Get("/does/not/exist.bmp")
	if logs.lines != 1 {
		t.Errorf("logged %d failures, want 1", logs.lines)
	}
}

type logBuffer struct{ lines int }

func (b *logBuffer) Write(p []byte) (int, error) {
	b.lines++
	return len(p), nil
}

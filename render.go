package tilepaint

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	_ "golang.org/x/image/bmp" // register the BMP decoder for image.Decode
)

// TextureCache loads each asset once and keeps the GPU image for the rest of
// the run. Missing or undecodable assets are replaced by a magenta
// placeholder so a bad file never stops the editor.
type TextureCache struct {
	images map[string]*ebiten.Image
	log    io.Writer
}

// NewTextureCache creates an empty cache that reports load failures to log.
func NewTextureCache(log io.Writer) *TextureCache {
	return &TextureCache{images: make(map[string]*ebiten.Image), log: log}
}

// Preload decodes every asset up front.
func (c *TextureCache) Preload(assets []string) {
	for _, a := range assets {
		c.Get(a)
	}
}

// Get returns the image for asset, loading it on first use.
func (c *TextureCache) Get(asset string) *ebiten.Image {
	if img, ok := c.images[asset]; ok {
		return img
	}
	img, err := loadImage(asset)
	if err != nil {
		logf(c.log, "texture: %v, using placeholder", err)
		img = ensureMagentaImage()
	}
	c.images[asset] = img
	return img
}

// Len returns the number of cached assets, placeholders included.
func (c *TextureCache) Len() int { return len(c.images) }

func loadImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(src), nil
}

// magentaImage stands in for assets that fail to load.
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// whitePixel is a 1x1 white image scaled and tinted for solid fills.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Renderer draws Drawable records onto an Ebitengine image.
type Renderer struct {
	textures *TextureCache
}

// NewRenderer creates a renderer backed by the given texture cache.
func NewRenderer(textures *TextureCache) *Renderer {
	return &Renderer{textures: textures}
}

// Draw submits records to dst in order; later records paint over earlier ones.
func (r *Renderer) Draw(dst *ebiten.Image, records []Drawable) {
	for i := range records {
		d := &records[i]
		switch d.Kind {
		case DrawFill:
			var op ebiten.DrawImageOptions
			op.GeoM = fillGeoM(d.Rect)
			c := d.Color
			op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
			dst.DrawImage(ensureWhitePixel(), &op)
		case DrawAsset:
			img := r.textures.Get(d.Asset)
			b := img.Bounds()
			var op ebiten.DrawImageOptions
			op.GeoM = assetGeoM(d.Rect, d.Angle, d.Flip, b.Dx(), b.Dy())
			dst.DrawImage(img, &op)
		}
	}
}

// fillGeoM maps the unit square onto rect.
func fillGeoM(rect Rect) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(float64(rect.W), float64(rect.H))
	m.Translate(float64(rect.X), float64(rect.Y))
	return m
}

// assetGeoM maps a srcW x srcH image onto rect, mirrored by flip and rotated
// by angle degrees clockwise around the rect center.
func assetGeoM(rect Rect, angle float64, flip Flip, srcW, srcH int) ebiten.GeoM {
	var m ebiten.GeoM
	if srcW == 0 || srcH == 0 {
		return m
	}
	m.Translate(-float64(srcW)/2, -float64(srcH)/2)
	switch flip {
	case FlipHorizontal:
		m.Scale(-1, 1)
	case FlipVertical:
		m.Scale(1, -1)
	}
	m.Scale(float64(rect.W)/float64(srcW), float64(rect.H)/float64(srcH))
	if angle != 0 {
		m.Rotate(math.Mod(angle, 360) * math.Pi / 180)
	}
	m.Translate(float64(rect.X)+float64(rect.W)/2, float64(rect.Y)+float64(rect.H)/2)
	return m
}

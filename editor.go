package tilepaint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Editor is the top-level object that owns the panel, the grid, input state
// and the renderer. It implements ebiten.Game.
type Editor struct {
	panel    *Panel
	grid     *Grid
	textures *TextureCache
	renderer *Renderer
	store    FileStore

	title      string
	win        Size
	background Color
	scroll     scrollTracker

	// Input injection
	injectQueue  []FrameInput
	injectCursor Point
	testRunner   *TestRunner

	log   io.Writer
	debug bool
	stats debugStats

	fps             *fpsWidget
	status          *StatusFlash
	preloaded       bool
	screenshotDir   string
	screenshotQueue []string
}

// NewEditor scans the asset directory and builds the panel and grid. Startup
// errors wrap ErrInvalidPath or ErrNoAssets.
func NewEditor(cfg Config) (*Editor, error) {
	win := Size{cfg.Width, cfg.Height}
	panel, err := NewPanel(win, cfg.PanelWidth, cfg.PanelColor, cfg.AssetDir, cfg.Panel)
	if err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Rows, cfg.Cols, cfg.TileSize, cfg.TileBackground, panel.Width())
	if err != nil {
		return nil, err
	}
	store := FileStore{Path: cfg.LayoutPath}
	grid.SetStore(store)

	e := &Editor{
		panel:         panel,
		grid:          grid,
		textures:      NewTextureCache(cfg.LogOutput),
		store:         store,
		title:         cfg.Title,
		win:           win,
		background:    cfg.Background,
		scroll:        scrollTracker{step: cfg.ScrollStep},
		log:           cfg.LogOutput,
		debug:         cfg.Debug,
		screenshotDir: cfg.ScreenshotDir,
	}
	e.renderer = NewRenderer(e.textures)
	if cfg.ShowFPS {
		e.fps = newFPSWidget()
	}
	logf(e.log, "%d assets found in %s", len(panel.Assets()), cfg.AssetDir)

	if cfg.LoadLayout {
		if err := e.loadLayout(); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Editor) loadLayout() error {
	l, err := e.store.LoadLayout()
	if errors.Is(err, os.ErrNotExist) {
		logf(e.log, "no layout at %s, starting empty", e.store.Path)
		return nil
	}
	if err != nil {
		return err
	}
	if err := e.grid.ApplyLayout(l); err != nil {
		return fmt.Errorf("load %s: %w", e.store.Path, err)
	}
	logf(e.log, "layout loaded from %s", e.store.Path)
	return nil
}

// Panel returns the asset browser.
func (e *Editor) Panel() *Panel { return e.panel }

// Grid returns the tile grid.
func (e *Editor) Grid() *Grid { return e.grid }

// SetEventSink forwards selection, paint and save events to sink.
func (e *Editor) SetEventSink(sink EventSink) {
	e.panel.sink = sink
	e.grid.sink = sink
}

// Update reads one frame of input and advances the editor. Injected input
// takes precedence over the live mouse and keyboard.
func (e *Editor) Update() error {
	return e.advance(func() FrameInput {
		return readFrameInput(e.win, &e.scroll)
	})
}

// advance runs the test runner, picks this frame's input and steps the
// editor. live supplies input when nothing was injected.
func (e *Editor) advance(live func() FrameInput) error {
	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	in, ok := e.popInjected()
	if !ok {
		in = live()
	}
	return e.Frame(in)
}

// Frame advances the panel and grid by one frame with the given input.
// Persistence failures are logged and editing continues; any other error is
// returned and stops the game loop.
func (e *Editor) Frame(in FrameInput) error {
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	if in.Quit {
		return ebiten.Termination
	}
	if in.Window == (Size{}) {
		in.Window = e.win
	}
	e.win = in.Window

	if err := e.panel.Update(in); err != nil {
		return err
	}
	selected, _ := e.panel.SelectedAsset()
	err := e.grid.Update(in.gridInput(selected, e.panel.Width()))
	switch {
	case errors.Is(err, ErrPersistenceWrite):
		logf(e.log, "save failed: %v", err)
		e.flash("save failed")
	case err != nil:
		return err
	case in.Save:
		logf(e.log, "layout saved to %s", e.store.Path)
		e.flash(fmt.Sprintf("saved %s", e.store.Path))
	}
	if in.Screenshot {
		e.Screenshot("layout")
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	if e.status != nil {
		e.status.Update(dt)
		if e.status.Done {
			e.status = nil
		}
	}
	if e.fps != nil {
		e.fps.update(float64(dt))
	}

	if e.debug {
		e.stats.updateTime = time.Since(t0)
	}
	return nil
}

// flash shows a fading status message.
func (e *Editor) flash(text string) {
	e.status = NewStatusFlash(text, flashDuration, ease.InQuad)
}

// Draw clears the screen and renders the panel, then the grid, then overlays.
func (e *Editor) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}
	if !e.preloaded {
		e.textures.Preload(e.panel.Assets())
		e.preloaded = true
	}

	screen.Fill(e.background.toRGBA())
	panelData := e.panel.RenderData()
	gridData := e.grid.RenderData()
	e.renderer.Draw(screen, panelData)
	e.renderer.Draw(screen, gridData)

	if e.fps != nil {
		e.fps.draw(screen)
	}
	if e.status != nil {
		e.status.Draw(screen)
	}
	e.flushScreenshots(screen)

	if e.debug {
		e.stats.drawTime = time.Since(t0)
		e.stats.panelCmds = len(panelData)
		e.stats.gridCmds = len(gridData)
		pf, pa := countKinds(panelData)
		gf, ga := countKinds(gridData)
		e.stats.fills, e.stats.assets = pf+gf, pa+ga
		e.debugLog(e.stats)
	}
}

// Layout tracks the outside size so the panel follows window resizes.
func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.win = Size{outsideWidth, outsideHeight}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and runs the editor until it quits. Escape
// ends the loop without an error.
func Run(e *Editor) error {
	ebiten.SetWindowSize(e.win.W, e.win.H)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

package tilepaint

import "io"

// Config holds everything needed to build and run an Editor. Start from
// DefaultConfig and override fields.
type Config struct {
	Title  string
	Width  int // initial window width
	Height int // initial window height

	// AssetDir is scanned once at startup for *.bmp files.
	AssetDir string
	// PanelWidth is the panel width as a fraction of the window width.
	PanelWidth float64
	PanelColor Color
	// Background clears the window behind everything else.
	Background Color
	// TileBackground fills the inside of empty tiles.
	TileBackground Color
	Panel          PanelOptions

	Rows     int
	Cols     int
	TileSize int

	// LayoutPath is where the save key writes the grid.
	LayoutPath string
	// LoadLayout restores LayoutPath at startup when the file exists.
	LoadLayout bool

	// ScrollStep is the scroll speed added per wheel notch.
	ScrollStep int

	ScreenshotDir string
	ShowFPS       bool
	// Debug logs per-frame timing and record counts.
	Debug bool
	// LogOutput receives "[tilepaint]" log lines. nil discards them.
	LogOutput io.Writer
}

// DefaultConfig returns the stock editor configuration: an 800x600 window,
// a panel a tenth of the window wide and a 4x4 grid of 64 pixel tiles.
func DefaultConfig() Config {
	return Config{
		Title:          "tilepaint",
		Width:          800,
		Height:         600,
		AssetDir:       "assets",
		PanelWidth:     0.1,
		PanelColor:     RGBA8(100, 100, 100, 255),
		Background:     RGBA8(30, 70, 70, 255),
		TileBackground: RGBA8(100, 100, 100, 255),
		Panel: PanelOptions{
			ScrollDamping:      DefaultScrollDamping,
			HoverGrowthPercent: DefaultHoverGrowthPercent,
		},
		Rows:          4,
		Cols:          4,
		TileSize:      64,
		LayoutPath:    "layout.json",
		ScrollStep:    defaultScrollStep,
		ScreenshotDir: "screenshots",
	}
}

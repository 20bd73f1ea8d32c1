package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/phanxgames/tilepaint"
)

const (
	envAssets  = "TILEPAINT_ASSETS"
	envLayout  = "TILEPAINT_LAYOUT"
	envRows    = "TILEPAINT_ROWS"
	envCols    = "TILEPAINT_COLS"
	envTile    = "TILEPAINT_TILE_SIZE"
	envDebug   = "TILEPAINT_DEBUG"
	envShowFPS = "TILEPAINT_FPS"
)

// options is the parsed command line.
type options struct {
	Editor tilepaint.Config
	Script string
}

// LoadArgs parses flags, falling back to TILEPAINT_* environment variables
// and then to tilepaint.DefaultConfig.
func LoadArgs(args []string, environ []string) (options, error) {
	env := parseEnv(environ)
	def := tilepaint.DefaultConfig()

	fs := flag.NewFlagSet("tilepaint", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	assets := fs.String("assets", envOrDefault(env, envAssets, def.AssetDir), "directory scanned for .bmp assets")
	layout := fs.String("layout", envOrDefault(env, envLayout, def.LayoutPath), "file the save key writes the grid to")
	load := fs.Bool("load", false, "restore the layout file at startup if it exists")
	rows := fs.Int("rows", envOrInt(env, envRows, def.Rows), "grid rows")
	cols := fs.Int("cols", envOrInt(env, envCols, def.Cols), "grid columns")
	tile := fs.Int("tile", envOrInt(env, envTile, def.TileSize), "tile size in pixels")
	width := fs.Int("width", def.Width, "initial window width")
	height := fs.Int("height", def.Height, "initial window height")
	panel := fs.Float64("panel", def.PanelWidth, "panel width as a fraction of the window width")
	damping := fs.Int("damping", def.Panel.ScrollDamping, "scroll correction step in pixels")
	growth := fs.Int("hover-growth", def.Panel.HoverGrowthPercent, "hovered thumbnail growth in percent")
	shots := fs.String("screenshots", def.ScreenshotDir, "directory for F12 screenshots")
	fps := fs.Bool("fps", envOrBool(env, envShowFPS, false), "show the FPS overlay")
	debug := fs.Bool("debug", envOrBool(env, envDebug, false), "log per-frame stats")
	quiet := fs.Bool("quiet", false, "disable log output")
	script := fs.String("script", "", "JSON input script to replay")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *rows <= 0 || *cols <= 0 {
		return options{}, fmt.Errorf("grid must be at least 1x1 (got %dx%d)", *rows, *cols)
	}
	if *tile <= 0 {
		return options{}, fmt.Errorf("tile size must be > 0 (got %d)", *tile)
	}
	if *width <= 0 || *height <= 0 {
		return options{}, fmt.Errorf("window size must be positive (got %dx%d)", *width, *height)
	}
	if *panel <= 0 || *panel >= 1 {
		return options{}, fmt.Errorf("panel must be between 0 and 1 (got %v)", *panel)
	}

	cfg := def
	cfg.AssetDir = *assets
	cfg.LayoutPath = *layout
	cfg.LoadLayout = *load
	cfg.Rows, cfg.Cols, cfg.TileSize = *rows, *cols, *tile
	cfg.Width, cfg.Height = *width, *height
	cfg.PanelWidth = *panel
	cfg.Panel.ScrollDamping = *damping
	cfg.Panel.HoverGrowthPercent = *growth
	cfg.ScreenshotDir = *shots
	cfg.ShowFPS = *fps
	cfg.Debug = *debug
	if !*quiet {
		cfg.LogOutput = os.Stderr
	}

	return options{Editor: cfg, Script: *script}, nil
}

func parseEnv(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}
	return env
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v := strings.TrimSpace(env[key]); v != "" {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	if v := strings.TrimSpace(env[key]); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	if v := strings.TrimSpace(env[key]); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// Package tilepaint is a 2D tile-map level editor for [Ebitengine].
//
// A panel on the left edge of the window lists every bitmap in an asset
// directory. Clicking a thumbnail selects it; clicking it again clears the
// selection. To the right of the panel sits a fixed grid of tiles. Hovering a
// tile previews the selected asset, clicking commits it, R rotates the hovered
// tile by 90 degrees, F cycles its flip and S saves the whole grid as JSON.
//
// # Quick start
//
//	cfg := tilepaint.DefaultConfig()
//	cfg.AssetDir = "assets"
//	editor, err := tilepaint.NewEditor(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := tilepaint.Run(editor); err != nil {
//		log.Fatal(err)
//	}
//
// # State and drawing
//
// [Panel] and [Grid] are plain state machines. Each frame they take a
// [FrameInput] and recompute every rectangle from canonical state (scroll
// offset, selection, tile locks, angles and flips). [Panel.RenderData] and
// [Grid.RenderData] project that state into [Drawable] records which the
// [Renderer] turns into pixels. Neither touches Ebitengine, so both can be
// driven headlessly with [Editor.Frame] or a scripted [TestRunner].
//
// # Persistence
//
// [Grid.Layout] and [Grid.ApplyLayout] convert to and from [Layout], which
// [FileStore] writes as indented JSON. A failed save wraps
// [ErrPersistenceWrite] and leaves the grid untouched.
//
// # Events
//
// [Editor.SetEventSink] forwards [EditorEvent] values to any [EventSink];
// the ecs subpackage publishes them into a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
package tilepaint

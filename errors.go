package tilepaint

import "errors"

// Errors reported by the editor. Call sites wrap them with context; match
// with errors.Is.
var (
	// ErrInvalidPath means the asset directory could not be listed.
	ErrInvalidPath = errors.New("invalid asset path")
	// ErrNoAssets means the asset directory holds no bitmap files.
	ErrNoAssets = errors.New("no bitmap assets found")
	// ErrEmptyGridState means a layout pass ran with nothing to lay out.
	ErrEmptyGridState = errors.New("layout with no elements")
	// ErrPersistenceWrite means the tile layout could not be saved. Tile
	// state in memory is left as it was.
	ErrPersistenceWrite = errors.New("layout write failed")
)

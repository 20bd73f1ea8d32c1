package tilepaint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AssetExt is the file extension recognized as a browsable bitmap asset.
// Matching is case-sensitive.
const AssetExt = ".bmp"

// ScanAssets lists the bitmap assets directly inside dir. Subdirectories are
// not descended into and directory entries are skipped even when their name
// ends in AssetExt. Identifiers are absolute paths.
//
// Entries come back in os.ReadDir order (sorted by file name). Callers should
// only rely on that order being stable within a run.
func ScanAssets(dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, dir, err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, dir, err)
	}

	var assets []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), AssetExt) {
			continue
		}
		assets = append(assets, filepath.Join(abs, entry.Name()))
	}
	if len(assets) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoAssets, dir)
	}
	return assets, nil
}

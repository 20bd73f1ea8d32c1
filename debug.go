package tilepaint

import (
	"fmt"
	"io"
	"time"
)

// logf writes a single prefixed line to w. A nil writer discards.
func logf(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "[tilepaint] "+format+"\n", args...)
}

// debugStats holds per-frame timing and draw metrics.
// Only populated when the editor runs in debug mode.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	panelCmds  int
	gridCmds   int
	fills      int
	assets     int
}

// debugLog prints timing and draw stats.
func (e *Editor) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	logf(e.log, "update: %v | draw: %v | total: %v",
		stats.updateTime, stats.drawTime, stats.updateTime+stats.drawTime)
	logf(e.log, "records: panel %d + grid %d | fills: %d | assets: %d",
		stats.panelCmds, stats.gridCmds, stats.fills, stats.assets)
}

// countKinds counts fill and asset records.
func countKinds(records []Drawable) (fills, assets int) {
	for i := range records {
		switch records[i].Kind {
		case DrawFill:
			fills++
		case DrawAsset:
			assets++
		}
	}
	return fills, assets
}

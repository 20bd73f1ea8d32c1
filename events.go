package tilepaint

// EventSink is the interface for optional event forwarding, e.g. into an ECS.
// When set on an Editor, selection, painting and save events are emitted to it.
type EventSink interface {
	EmitEvent(event EditorEvent)
}

// EventType identifies a kind of editor event.
type EventType uint8

const (
	EventAssetSelected   EventType = iota // a thumbnail was clicked and is now selected
	EventAssetDeselected                  // the selected thumbnail was clicked again
	EventTilePainted                      // a tile was committed with an asset
	EventTileRotated                      // a tile's angle advanced by 90 degrees
	EventTileFlipped                      // a tile's flip state advanced
	EventLayoutSaved                      // the grid was written to its store
)

func (t EventType) String() string {
	switch t {
	case EventAssetSelected:
		return "asset-selected"
	case EventAssetDeselected:
		return "asset-deselected"
	case EventTilePainted:
		return "tile-painted"
	case EventTileRotated:
		return "tile-rotated"
	case EventTileFlipped:
		return "tile-flipped"
	case EventLayoutSaved:
		return "layout-saved"
	default:
		return "unknown"
	}
}

// EditorEvent carries event data. Tile is -1 for events not tied to a tile.
type EditorEvent struct {
	Type  EventType
	Tile  int
	Asset string
	Angle float64
	Flip  Flip
}

func emit(sink EventSink, event EditorEvent) {
	if sink == nil {
		return
	}
	sink.EmitEvent(event)
}

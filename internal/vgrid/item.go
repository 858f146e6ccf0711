package vgrid

// Item is a single virtual item placed in the grid layout.
type Item struct {
	Index  int // index in the photo list
	Row    int
	Column int
	Start  float64 // top edge, in content coordinates
	Width  float64
	Height float64
}

// End returns the bottom edge of the item.
func (it Item) End() float64 { return it.Start + it.Height }

// Center returns the vertical center of the item.
func (it Item) Center() float64 { return it.Start + it.Height/2 }

// Visible reports whether the item overlaps [viewportStart, viewportEnd).
func (it Item) Visible(viewportStart, viewportEnd float64) bool {
	return it.Start < viewportEnd && it.End() > viewportStart
}

// Zone classifies an item relative to the viewport.
type Zone int

const (
	// ZoneVisible items overlap the viewport.
	ZoneVisible Zone = iota
	// ZoneOverscan items are within the overscan margin above or below.
	ZoneOverscan
	// ZoneOutside items are beyond both.
	ZoneOutside
)

func (z Zone) String() string {
	switch z {
	case ZoneVisible:
		return "visible"
	case ZoneOverscan:
		return "overscan"
	default:
		return "outside"
	}
}

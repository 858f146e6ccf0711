// Package vgrid implements UI-agnostic virtual scrolling for the photo grid:
// which items are on screen for a given viewport, scroll offset and zoom.
package vgrid

// Zoom bounds for the grid and loupe views.
const (
	MinZoom     = 0.1
	MaxZoom     = 10.0
	DefaultZoom = 1.0
)

// Viewport is the visible scrolling area.
type Viewport struct {
	Width        float64
	Height       float64
	ScrollOffset float64 // vertical offset from the top of the content
	Zoom         float64
}

// NewViewport creates a viewport with no scroll and default zoom.
func NewViewport(width, height float64) Viewport {
	return Viewport{Width: width, Height: height, Zoom: DefaultZoom}
}

// VisibleStart returns the top of the visible area.
func (v Viewport) VisibleStart() float64 { return v.ScrollOffset }

// VisibleEnd returns the bottom of the visible area.
func (v Viewport) VisibleEnd() float64 { return v.ScrollOffset + v.Height }

// Intersects reports whether the vertical range [start, end) overlaps the
// visible area.
func (v Viewport) Intersects(start, end float64) bool {
	return start < v.VisibleEnd() && end > v.VisibleStart()
}

// WithSize returns a copy with new dimensions.
func (v Viewport) WithSize(width, height float64) Viewport {
	v.Width = width
	v.Height = height
	return v
}

// WithScroll returns a copy scrolled to offset, clamped at zero.
func (v Viewport) WithScroll(offset float64) Viewport {
	if offset < 0 {
		offset = 0
	}
	v.ScrollOffset = offset
	return v
}

// WithZoom returns a copy with zoom clamped to [MinZoom, MaxZoom].
func (v Viewport) WithZoom(zoom float64) Viewport {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	v.Zoom = zoom
	return v
}

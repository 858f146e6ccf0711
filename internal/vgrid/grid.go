package vgrid

import "math"

// Layout defaults, shared with the grid page.
const (
	DefaultColumns      = 4
	DefaultGap          = 8.0
	DefaultItemEstimate = 200.0
	DefaultOverscanRows = 2
)

// Options configures a Grid.
type Options struct {
	// Count is the total number of items.
	Count int
	// Columns in the layout. Defaults to DefaultColumns.
	Columns int
	// Gap between items, in pixels. Defaults to DefaultGap.
	Gap float64
	// EstimateSize gives the expected height of an item before measurement.
	// Defaults to a constant DefaultItemEstimate.
	EstimateSize func(index int) float64
	// OverscanRows are rendered above and below the visible range.
	OverscanRows int
}

func (o Options) withDefaults() Options {
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
	}
	if o.Gap < 0 {
		o.Gap = DefaultGap
	}
	if o.EstimateSize == nil {
		o.EstimateSize = func(int) float64 { return DefaultItemEstimate }
	}
	if o.OverscanRows < 0 {
		o.OverscanRows = DefaultOverscanRows
	}
	return o
}

// Grid lays items out in fixed columns with per-row heights and answers
// which items are visible for the current viewport.
type Grid struct {
	opts     Options
	viewport Viewport
	measured map[int]float64
}

// New creates a Grid.
func New(opts Options) *Grid {
	return &Grid{
		opts:     opts.withDefaults(),
		viewport: NewViewport(0, 0),
		measured: make(map[int]float64),
	}
}

// SetViewport replaces the viewport.
func (g *Grid) SetViewport(v Viewport) { g.viewport = v }

// Viewport returns the current viewport.
func (g *Grid) Viewport() Viewport { return g.viewport }

// SetCount updates the item count, dropping measurements past the end.
func (g *Grid) SetCount(count int) {
	g.opts.Count = count
	for idx := range g.measured {
		if idx >= count {
			delete(g.measured, idx)
		}
	}
}

// Measure records the actual height of an item, overriding the estimate.
func (g *Grid) Measure(index int, size float64) {
	if index < 0 || index >= g.opts.Count || size <= 0 {
		return
	}
	g.measured[index] = size
}

func (g *Grid) itemSize(index int) float64 {
	if size, ok := g.measured[index]; ok {
		return size
	}
	return g.opts.EstimateSize(index)
}

// RowCount returns the number of layout rows.
func (g *Grid) RowCount() int {
	if g.opts.Count == 0 {
		return 0
	}
	return (g.opts.Count + g.opts.Columns - 1) / g.opts.Columns
}

// rowHeight is the tallest item in the row.
func (g *Grid) rowHeight(row int) float64 {
	first := row * g.opts.Columns
	last := first + g.opts.Columns
	if last > g.opts.Count {
		last = g.opts.Count
	}
	height := 0.0
	for i := first; i < last; i++ {
		if s := g.itemSize(i); s > height {
			height = s
		}
	}
	return height
}

// rowStart is the top edge of a row in content coordinates.
func (g *Grid) rowStart(row int) float64 {
	start := 0.0
	for r := 0; r < row; r++ {
		start += g.rowHeight(r) + g.opts.Gap
	}
	return start
}

// TotalSize returns the full content height, scaled by the viewport zoom.
func (g *Grid) TotalSize() float64 {
	rows := g.RowCount()
	if rows == 0 {
		return 0
	}
	total := 0.0
	for r := 0; r < rows; r++ {
		total += g.rowHeight(r)
	}
	total += g.opts.Gap * float64(rows-1)
	return total * g.viewport.Zoom
}

// itemWidth divides the viewport width between columns.
func (g *Grid) itemWidth() float64 {
	cols := float64(g.opts.Columns)
	w := (g.viewport.Width - g.opts.Gap*(cols-1)) / cols
	if w < 0 {
		return 0
	}
	return w
}

// item builds the laid-out Item for an index, in zoomed content coordinates.
func (g *Grid) item(index int) Item {
	row := index / g.opts.Columns
	col := index % g.opts.Columns
	zoom := g.viewport.Zoom
	return Item{
		Index:  index,
		Row:    row,
		Column: col,
		Start:  g.rowStart(row) * zoom,
		Width:  g.itemWidth() * zoom,
		Height: g.rowHeight(row) * zoom,
	}
}

// VisibleItems returns the items in the visible rows plus the overscan rows
// on either side, in index order.
func (g *Grid) VisibleItems() []Item {
	rows := g.RowCount()
	if rows == 0 || g.viewport.Height <= 0 {
		return nil
	}

	firstRow, lastRow := -1, -1
	for r := 0; r < rows; r++ {
		start := g.rowStart(r) * g.viewport.Zoom
		end := start + g.rowHeight(r)*g.viewport.Zoom
		if g.viewport.Intersects(start, end) {
			if firstRow == -1 {
				firstRow = r
			}
			lastRow = r
		} else if firstRow != -1 {
			break // rows are ordered; once past the viewport we are done
		}
	}
	if firstRow == -1 {
		return nil
	}

	firstRow -= g.opts.OverscanRows
	lastRow += g.opts.OverscanRows
	if firstRow < 0 {
		firstRow = 0
	}
	if lastRow >= rows {
		lastRow = rows - 1
	}

	var items []Item
	for idx := firstRow * g.opts.Columns; idx < (lastRow+1)*g.opts.Columns && idx < g.opts.Count; idx++ {
		items = append(items, g.item(idx))
	}
	return items
}

// ZoneOf classifies index relative to the current viewport, counting the
// overscan margin as rows' worth of estimated height.
func (g *Grid) ZoneOf(index int) Zone {
	if index < 0 || index >= g.opts.Count {
		return ZoneOutside
	}
	it := g.item(index)
	if it.Visible(g.viewport.VisibleStart(), g.viewport.VisibleEnd()) {
		return ZoneVisible
	}
	margin := float64(g.opts.OverscanRows) * (g.itemSize(index) + g.opts.Gap) * g.viewport.Zoom
	if it.Visible(g.viewport.VisibleStart()-margin, g.viewport.VisibleEnd()+margin) {
		return ZoneOverscan
	}
	return ZoneOutside
}

// OffsetForIndex returns the scroll offset that brings index fully into view
// with minimal movement: no movement if already visible, otherwise aligned to
// the nearer edge.
func (g *Grid) OffsetForIndex(index int) float64 {
	if index < 0 || index >= g.opts.Count {
		return g.viewport.ScrollOffset
	}
	it := g.item(index)

	switch {
	case it.Start >= g.viewport.VisibleStart() && it.End() <= g.viewport.VisibleEnd():
		return g.viewport.ScrollOffset
	case it.Start < g.viewport.VisibleStart():
		return it.Start
	default:
		return math.Max(0, it.End()-g.viewport.Height)
	}
}

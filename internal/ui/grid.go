package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"lightbox/internal/state"
	"lightbox/internal/vgrid"
)

// gridPage shows the album as a scrolling wall of thumbnails. Layout math
// lives in vgrid; this page only asks it which cells deserve a decoded
// thumbnail right now.
type gridPage struct {
	app     *App
	content fyne.CanvasObject

	header *widget.Label
	scroll *container.Scroll
	cells  *fyne.Container

	layout *vgrid.Grid
	thumbs *ThumbLoader
	items  []*photoCell

	lastAlbum string
	lastCount int
}

func newGridPage(a *App) *gridPage {
	p := &gridPage{app: a}

	p.layout = vgrid.New(vgrid.Options{
		Columns:      a.cfg.GridColumns,
		Gap:          a.cfg.GridGap,
		OverscanRows: vgrid.DefaultOverscanRows,
	})
	p.thumbs = NewThumbLoader(a.services.Images, a.cfg.ThumbnailSize, func(message string) {
		if a.logs != nil {
			fyne.Do(func() { a.logs.AddMessage(message) })
		}
	})

	p.header = widget.NewLabel("")
	p.header.Truncation = fyne.TextTruncateEllipsis
	back := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), a.router.Back)
	top := container.NewBorder(nil, nil, back, nil, p.header)

	cellEstimate := float32(vgrid.DefaultItemEstimate)
	p.cells = container.New(layout.NewGridWrapLayout(fyne.NewSize(cellEstimate, cellEstimate+30)))
	p.scroll = container.NewVScroll(p.cells)
	p.scroll.OnScrolled = func(pos fyne.Position) {
		p.layout.SetViewport(p.layout.Viewport().WithScroll(float64(pos.Y)))
		p.requestThumbnails()
	}

	p.content = container.NewBorder(top, nil, nil, nil, p.scroll)
	return p
}

// Refresh rebuilds the cell list when the album changes and keeps the
// layout in sync with the photo count.
func (p *gridPage) Refresh(s state.AppState) {
	p.header.SetText(albumHeader(s))

	if s.Photos.AlbumPath == p.lastAlbum && len(s.Photos.Photos) == p.lastCount {
		return
	}
	p.lastAlbum = s.Photos.AlbumPath
	p.lastCount = len(s.Photos.Photos)

	p.items = p.items[:0]
	p.cells.RemoveAll()
	for i, photo := range s.Photos.Photos {
		index := i
		cell := newPhotoCell(func() { p.open(index) })
		cell.SetPhoto(photo.Filename)
		p.items = append(p.items, cell)
		p.cells.Add(cell)
	}
	p.cells.Refresh()

	// The first refresh can land before layout; fall back to the initial
	// window size so the top rows still get thumbnails.
	size := p.scroll.Size()
	w, h := float64(size.Width), float64(size.Height)
	if w <= 0 || h <= 0 {
		w, h = 1200, 800
	}
	p.layout.SetViewport(vgrid.NewViewport(w, h))
	p.layout.SetCount(p.lastCount)
	p.requestThumbnails()
}

func (p *gridPage) open(index int) {
	p.app.store.Dispatch(state.SelectPhoto{Index: index})
	p.app.router.NavigateTo(state.PageLoupe)
}

// requestThumbnails kicks off decodes for the visible and overscan cells.
func (p *gridPage) requestThumbnails() {
	photos := p.app.store.State().Photos.Photos
	for _, item := range p.layout.VisibleItems() {
		if item.Index >= len(p.items) || item.Index >= len(photos) {
			continue
		}
		cell := p.items[item.Index]
		p.thumbs.Load(photos[item.Index].Path, cell.SetThumbnail)
	}
}

func albumHeader(s state.AppState) string {
	if s.Photos.AlbumPath == "" {
		return "No album loaded"
	}
	return fmt.Sprintf("%s (%d photos)", s.Photos.AlbumPath, len(s.Photos.Photos))
}

package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"lightbox/internal/state"
)

// loupePage shows a single photo full-window with zoom and pan, plus the
// slideshow controls.
type loupePage struct {
	app     *App
	content fyne.CanvasObject

	viewer   *ZoomPanArea
	caption  *widget.Label
	playBtn  *widget.Button
	lastPath string
}

func newLoupePage(a *App) *loupePage {
	p := &loupePage{app: a}
	p.viewer = NewZoomPanArea()

	p.caption = widget.NewLabel("")
	p.caption.Alignment = fyne.TextAlignCenter
	p.caption.Truncation = fyne.TextTruncateEllipsis

	back := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), a.router.Back)
	prev := widget.NewButtonWithIcon("", theme.MediaSkipPreviousIcon(), func() {
		a.store.Dispatch(state.PreviousPhoto{})
	})
	next := widget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), func() {
		a.store.Dispatch(state.NextPhoto{})
	})
	zoomIn := widget.NewButtonWithIcon("", theme.ZoomInIcon(), p.viewer.ZoomIn)
	zoomOut := widget.NewButtonWithIcon("", theme.ZoomOutIcon(), p.viewer.ZoomOut)
	fit := widget.NewButtonWithIcon("", theme.ZoomFitIcon(), p.viewer.Reset)
	p.playBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), p.togglePlay)

	toolbar := container.NewHBox(
		back, prev, next,
		widget.NewSeparator(),
		zoomOut, fit, zoomIn,
		widget.NewSeparator(),
		p.playBtn,
	)
	top := container.NewBorder(nil, nil, toolbar, nil, p.caption)

	p.content = container.NewBorder(top, nil, nil, nil, p.viewer)
	return p
}

func (p *loupePage) togglePlay() {
	p.app.slideshow.TogglePlayPause()
	p.refreshPlayIcon()
}

func (p *loupePage) refreshPlayIcon() {
	if p.app.slideshow.IsPaused() {
		p.playBtn.SetIcon(theme.MediaPlayIcon())
	} else {
		p.playBtn.SetIcon(theme.MediaPauseIcon())
	}
}

// Refresh loads the selected photo when it changes.
func (p *loupePage) Refresh(s state.AppState) {
	p.refreshPlayIcon()

	photos := s.Photos.Photos
	if len(photos) == 0 || s.Photos.CurrentIndex < 0 || s.Photos.CurrentIndex >= len(photos) {
		p.caption.SetText("")
		p.lastPath = ""
		p.viewer.SetImage(nil)
		return
	}

	photo := photos[s.Photos.CurrentIndex]
	p.caption.SetText(fmt.Sprintf("%s  (%d of %d)", photo.Filename, s.Photos.CurrentIndex+1, len(photos)))

	if photo.Path == p.lastPath {
		return
	}
	p.lastPath = photo.Path
	p.loadAsync(photo.Path)
}

// loadAsync decodes off the UI thread and drops the result if the user has
// moved on to another photo.
func (p *loupePage) loadAsync(path string) {
	go func() {
		img, err := p.app.services.Images.Load(path)
		fyne.Do(func() {
			if p.lastPath != path {
				return
			}
			if err != nil {
				if p.app.logs != nil {
					p.app.logs.AddMessage(fmt.Sprintf("Could not load %s: %v", path, err))
				}
				p.viewer.SetImage(nil)
				return
			}
			p.viewer.SetImage(img)
		})
	}()
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"lightbox/internal/state"
)

// importPage lets the user pick the album directory.
type importPage struct {
	app     *App
	content fyne.CanvasObject

	pathEntry *widget.Entry
}

func newImportPage(a *App) *importPage {
	p := &importPage{app: a}

	p.pathEntry = widget.NewEntry()
	p.pathEntry.SetPlaceHolder("Path to a folder of photos")
	p.pathEntry.OnSubmitted = func(path string) { p.load(path) }

	browse := widget.NewButtonWithIcon("Browse...", theme.FolderIcon(), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			p.pathEntry.SetText(uri.Path())
		}, a.MainWin)
	})

	load := widget.NewButtonWithIcon("Load Photos", theme.MediaPhotoIcon(), func() {
		p.load(p.pathEntry.Text)
	})
	load.Importance = widget.HighImportance

	back := widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), func() {
		a.router.Back()
	})

	form := container.NewBorder(nil, nil, nil, browse, p.pathEntry)
	p.content = container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle("Open an album", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		form,
		container.NewHBox(back, load),
	))
	return p
}

func (p *importPage) load(path string) {
	if path == "" {
		return
	}
	p.app.openAlbum(path)
}

// Refresh mirrors the current album path into the entry so revisiting the
// page shows what is loaded.
func (p *importPage) Refresh(s state.AppState) {
	if s.Photos.AlbumPath != "" && p.pathEntry.Text == "" {
		p.pathEntry.SetText(s.Photos.AlbumPath)
	}
}

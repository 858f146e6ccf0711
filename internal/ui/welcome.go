package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"lightbox/internal/state"
)

// welcomePage is the landing screen shown before any album is open.
type welcomePage struct {
	app     *App
	content fyne.CanvasObject
}

func newWelcomePage(a *App) *welcomePage {
	p := &welcomePage{app: a}

	title := widget.NewLabelWithStyle("Lightbox", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle("A fast viewer for folders full of photos",
		fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	open := widget.NewButtonWithIcon("Open Album...", theme.FolderOpenIcon(), func() {
		a.router.NavigateTo(state.PageImport)
	})
	open.Importance = widget.HighImportance

	p.content = container.NewCenter(container.NewVBox(title, subtitle, open))
	return p
}

// Refresh is a no-op; the welcome page renders nothing from state.
func (p *welcomePage) Refresh(state.AppState) {}

package ui

import (
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"lightbox/internal/state"
)

// buildKeyboardShortcuts registers the global key bindings on the main
// window.
func (a *App) buildKeyboardShortcuts() {
	a.mainModKey = fyne.KeyModifierControl
	if runtime.GOOS == "darwin" {
		a.mainModKey = fyne.KeyModifierSuper
	}

	a.MainWin.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName: fyne.KeyQ, Modifier: a.mainModKey,
	}, func(fyne.Shortcut) { a.quit() })

	a.MainWin.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		page := a.router.CurrentPage()

		switch ev.Name {
		case fyne.KeyEscape, fyne.KeyBackspace:
			a.router.Back()
		case fyne.KeyRight:
			if page == state.PageLoupe {
				a.store.Dispatch(state.NextPhoto{})
			}
		case fyne.KeyLeft:
			if page == state.PageLoupe {
				a.store.Dispatch(state.PreviousPhoto{})
			}
		case fyne.KeyHome:
			if page == state.PageLoupe {
				a.store.Dispatch(state.SelectPhoto{Index: 0})
			}
		case fyne.KeyEnd:
			if page == state.PageLoupe {
				count := len(a.store.State().Photos.Photos)
				if count > 0 {
					a.store.Dispatch(state.SelectPhoto{Index: count - 1})
				}
			}
		case fyne.KeySpace:
			if page == state.PageLoupe {
				a.slideshow.TogglePlayPause()
			}
		case fyne.KeyReturn, fyne.KeyEnter:
			if page == state.PageGrid {
				a.router.NavigateTo(state.PageLoupe)
			}
		}
	})
}

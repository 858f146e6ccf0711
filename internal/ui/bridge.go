package ui

import (
	"fyne.io/fyne/v2"

	"lightbox/internal/state"
)

// Bridge is the one-way link from store to screen. It subscribes to the
// store and projects every committed snapshot onto the Fyne widgets on the
// UI thread. Widgets never read the store directly.
type Bridge struct {
	store *state.Store
	app   *App
	sub   *state.Subscription
}

// NewBridge wires a bridge to the given store and application shell.
func NewBridge(store *state.Store, app *App) *Bridge {
	return &Bridge{store: store, app: app}
}

// Start renders the current snapshot and subscribes for every later commit.
func (b *Bridge) Start() {
	b.render(b.store.State())
	b.sub = b.store.Subscribe(func(s state.AppState) {
		b.render(s)
	})
}

// Stop detaches from the store. Safe to call more than once.
func (b *Bridge) Stop() {
	if b.sub != nil {
		b.sub.Unsubscribe()
		b.sub = nil
	}
}

// render moves the snapshot onto the UI thread and applies it.
func (b *Bridge) render(s state.AppState) {
	fyne.Do(func() { b.apply(s) })
}

func (b *Bridge) apply(s state.AppState) {
	for page, obj := range b.app.pages {
		if page == s.Navigation.Page {
			obj.Show()
		} else {
			obj.Hide()
		}
	}
	if view, ok := b.app.pageViews[s.Navigation.Page]; ok {
		view.Refresh(s)
	}

	b.app.statusLoading.SetLoading(s.UI.IsLoading)
	b.app.errorBanner.SetMessage(s.UI.ErrorMessage)
}

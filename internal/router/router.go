// Package router is a thin navigation helper over the store. All transitions
// still go through Dispatch; this only names the common ones.
package router

import "lightbox/internal/state"

// Router dispatches navigation actions and answers navigation queries.
type Router struct {
	store *state.Store
}

// New creates a Router bound to store.
func New(store *state.Store) *Router {
	return &Router{store: store}
}

// NavigateTo switches to page.
func (r *Router) NavigateTo(page state.Page) {
	r.store.Dispatch(state.NavigateTo{Page: page})
}

// Back pops the navigation history.
func (r *Router) Back() {
	r.store.Dispatch(state.GoBack{})
}

// CurrentPage returns the page currently showing.
func (r *Router) CurrentPage() state.Page {
	return r.store.State().Navigation.Page
}

// CanGoBack reports whether the history stack is non-empty.
func (r *Router) CanGoBack() bool {
	return len(r.store.State().Navigation.History) > 0
}

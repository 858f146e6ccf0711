package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lightbox/internal/state"
)

func TestRouterNavigation(t *testing.T) {
	store := state.NewStore()
	r := New(store)

	assert.Equal(t, state.PageWelcome, r.CurrentPage())
	assert.False(t, r.CanGoBack())

	r.NavigateTo(state.PageGrid)
	assert.Equal(t, state.PageGrid, r.CurrentPage())
	assert.True(t, r.CanGoBack())

	r.NavigateTo(state.PageLoupe)
	r.Back()
	assert.Equal(t, state.PageGrid, r.CurrentPage())

	r.Back()
	assert.Equal(t, state.PageWelcome, r.CurrentPage())
	assert.False(t, r.CanGoBack())

	// Back on an empty stack stays put.
	r.Back()
	assert.Equal(t, state.PageWelcome, r.CurrentPage())
}

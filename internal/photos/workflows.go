// Package photos contains the async workflows that call the services and
// drive the store. Workflows sequence actions; they never hold state of
// their own beyond staleness bookkeeping.
package photos

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"lightbox/internal/service"
	"lightbox/internal/slideshow"
	"lightbox/internal/state"
)

// Loader runs album loads against the store. Each load gets a generation
// number; a load that finishes after a newer one started dispatches nothing,
// so stale results can never clobber a fresh album.
type Loader struct {
	store      *state.Store
	fs         service.FileSystem
	logger     service.LoggerFunc
	generation atomic.Uint64
}

// NewLoader creates a Loader. logger may be nil.
func NewLoader(store *state.Store, fs service.FileSystem, logger service.LoggerFunc) *Loader {
	if logger == nil {
		logger = func(string) {}
	}
	return &Loader{store: store, fs: fs, logger: logger}
}

// LoadAlbum validates dir, then runs the load sequence:
// SetAlbumPath -> LoadPhotosStart + ShowLoading -> scan ->
// LoadPhotosSuccess/Failure + HideLoading -> NavigateTo(Grid) or ShowError.
// It blocks until done; callers wanting async run it on a goroutine.
func (l *Loader) LoadAlbum(ctx context.Context, dir string) {
	if !l.fs.IsValidDir(dir) {
		l.logger(fmt.Sprintf("album path rejected: %s", dir))
		l.store.Dispatch(state.ShowError{Message: fmt.Sprintf("Invalid path: %s", dir)})
		return
	}

	gen := l.generation.Add(1)
	l.logger(fmt.Sprintf("loading album: %s", dir))

	l.store.Dispatch(state.SetAlbumPath{Path: dir})
	l.store.Dispatch(state.LoadPhotosStart{})
	l.store.Dispatch(state.ShowLoading{})

	records, err := l.fs.LoadPhotos(ctx, dir)

	if l.generation.Load() != gen {
		l.logger(fmt.Sprintf("discarding stale load of %s", dir))
		return
	}

	if err != nil {
		l.logger(fmt.Sprintf("album load failed: %v", err))
		l.store.Dispatch(state.LoadPhotosFailure{})
		l.store.Dispatch(state.HideLoading{})
		l.store.Dispatch(state.ShowError{Message: fmt.Sprintf("Failed to load photos: %v", err)})
		return
	}

	l.store.Dispatch(state.LoadPhotosSuccess{Photos: records})
	l.store.Dispatch(state.HideLoading{})

	if len(records) > 0 {
		l.store.Dispatch(state.NavigateTo{Page: state.PageGrid})
	} else {
		l.store.Dispatch(state.ShowError{Message: "No photos found in the selected directory"})
	}
}

// PrefetchDimensions fills in Width/Height for every photo in the current
// album that does not have them yet. It runs until done or ctx is canceled.
// The photo list may be replaced mid-flight; a record whose path no longer
// matches is skipped.
func PrefetchDimensions(ctx context.Context, store *state.Store, images service.Images) {
	snapshot := store.State().Photos
	for i, photo := range snapshot.Photos {
		if ctx.Err() != nil {
			return
		}
		if photo.Width > 0 && photo.Height > 0 {
			continue
		}
		w, h, err := images.Dimensions(photo.Path)
		if err != nil {
			continue
		}

		current := store.State().Photos
		if i >= len(current.Photos) || current.Photos[i].Path != photo.Path {
			continue
		}
		store.Dispatch(state.SetPhotoDimensions{Index: i, Width: w, Height: h})
	}
}

// RunSlideshow advances the current photo on a ticker while the loupe page is
// showing and the manager is not paused. It wraps from the last photo back to
// the first, and returns when ctx is canceled.
func RunSlideshow(ctx context.Context, store *state.Store, manager *slideshow.Manager) {
	ticker := time.NewTicker(manager.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if manager.IsPaused() {
			continue
		}

		snap := store.State()
		if snap.Navigation.Page != state.PageLoupe || len(snap.Photos.Photos) == 0 {
			continue
		}
		if snap.Photos.CurrentIndex >= len(snap.Photos.Photos)-1 {
			store.Dispatch(state.SelectPhoto{Index: 0})
		} else {
			store.Dispatch(state.NextPhoto{})
		}
	}
}

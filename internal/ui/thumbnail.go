package ui

import (
	"fmt"
	"image"
	"sync"

	"fyne.io/fyne/v2"

	"lightbox/internal/service"
)

// thumbWorkers bounds concurrent decodes so a large album does not spawn a
// goroutine per cell.
const thumbWorkers = 4

// ThumbLoader fetches thumbnails through the image service off the UI
// thread and delivers them back on it. Requests for a path already in
// flight are dropped.
type ThumbLoader struct {
	images service.Images
	size   int
	logger service.LoggerFunc

	sem chan struct{}

	mu       sync.Mutex
	inflight map[string]bool
}

// NewThumbLoader creates a loader producing thumbnails bounded by size.
func NewThumbLoader(images service.Images, size int, logger service.LoggerFunc) *ThumbLoader {
	if size <= 0 {
		size = service.DefaultThumbnailSize
	}
	return &ThumbLoader{
		images:   images,
		size:     size,
		logger:   logger,
		sem:      make(chan struct{}, thumbWorkers),
		inflight: make(map[string]bool),
	}
}

// Load fetches the thumbnail for path and calls onReady with it on the UI
// thread. Failures are logged and onReady is not called.
func (t *ThumbLoader) Load(path string, onReady func(img image.Image)) {
	t.mu.Lock()
	if t.inflight[path] {
		t.mu.Unlock()
		return
	}
	t.inflight[path] = true
	t.mu.Unlock()

	go func() {
		t.sem <- struct{}{}
		defer func() {
			<-t.sem
			t.mu.Lock()
			delete(t.inflight, path)
			t.mu.Unlock()
		}()

		img, err := t.images.Thumbnail(path, t.size)
		if err != nil {
			if t.logger != nil {
				t.logger(fmt.Sprintf("Thumbnail failed for %s: %v", path, err))
			}
			return
		}
		fyne.Do(func() { onReady(img) })
	}()
}

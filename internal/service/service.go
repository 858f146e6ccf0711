// Package service provides the external collaborators the workflows call:
// filesystem browsing and image decoding/thumbnailing, bundled in a Container.
package service

import (
	"context"
	"fmt"
	"image"
	"log"

	"lightbox/internal/state"
)

// LoggerFunc defines a function signature for logging messages. The UI
// provides its own mechanism; the CLI and tests provide theirs.
type LoggerFunc func(message string)

// FileSystem abstracts album browsing for easier testing and decoupling.
type FileSystem interface {
	// LoadPhotos returns the album's photos sorted by filename.
	LoadPhotos(ctx context.Context, dir string) ([]state.PhotoRecord, error)
	// IsValidDir reports whether path exists and is a directory.
	IsValidDir(path string) bool
}

// Images abstracts image decoding and thumbnail generation.
type Images interface {
	// Dimensions reads the image header without decoding the pixels.
	Dimensions(path string) (width, height int, err error)
	// Load decodes the full image.
	Load(path string) (image.Image, error)
	// Thumbnail returns a cached or freshly generated thumbnail no larger
	// than maxSize in either dimension.
	Thumbnail(path string, maxSize int) (image.Image, error)
}

// Container bundles the services the workflows and UI depend on.
type Container struct {
	FS     FileSystem
	Images Images
	Cache  *ThumbCache
	Logger LoggerFunc
}

// NewContainer wires the real service implementations. cacheDir may be empty
// to use the per-user default.
func NewContainer(cacheDir string, logger LoggerFunc) (*Container, error) {
	if logger == nil {
		logger = func(msg string) { log.Print(msg) }
	}
	cache, err := NewThumbCache(cacheDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening thumbnail cache: %w", err)
	}
	return &Container{
		FS:     &FileSystemImpl{Logger: logger},
		Images: &ImagesImpl{Cache: cache, Logger: logger},
		Cache:  cache,
		Logger: logger,
	}, nil
}

// Close releases the container's resources.
func (c *Container) Close() error {
	if c.Cache != nil {
		return c.Cache.Close()
	}
	return nil
}

package service

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"

	// imaging registers jpeg/png/gif/bmp decoders; webp needs its own.
	_ "golang.org/x/image/webp"
)

// DefaultThumbnailSize is the bounding box for generated thumbnails when the
// caller does not specify one.
const DefaultThumbnailSize = 256

// ImagesImpl decodes images from disk and generates cached thumbnails.
type ImagesImpl struct {
	Cache  *ThumbCache
	Logger LoggerFunc
}

// Dimensions reads the image header only; the pixel data is not decoded.
func (im *ImagesImpl) Dimensions(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening image %q: %w", path, err)
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("reading image header %q: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Load decodes the full image.
func (im *ImagesImpl) Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decoding image %q: %w", path, err)
	}
	return img, nil
}

// Thumbnail returns a thumbnail fitting within maxSize x maxSize, preserving
// aspect ratio and never upscaling. Results are cached on disk keyed by the
// source file's path, size and mtime, so an edited file misses the cache.
func (im *ImagesImpl) Thumbnail(path string, maxSize int) (image.Image, error) {
	if maxSize <= 0 {
		maxSize = DefaultThumbnailSize
	}

	if im.Cache != nil {
		if thumb, ok := im.Cache.Get(path, maxSize); ok {
			return thumb, nil
		}
	}

	img, err := im.Load(path)
	if err != nil {
		return nil, err
	}

	thumb := img
	bounds := img.Bounds()
	if bounds.Dx() > maxSize || bounds.Dy() > maxSize {
		thumb = imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
	}

	if im.Cache != nil {
		if err := im.Cache.Put(path, maxSize, thumb); err != nil {
			im.log(fmt.Sprintf("thumbnail cache write failed for %s: %v", path, err))
		}
	}
	return thumb, nil
}

func (im *ImagesImpl) log(msg string) {
	if im.Logger != nil {
		im.Logger(msg)
	}
}

package service

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
}

func testLogger(t *testing.T) LoggerFunc {
	return func(msg string) { t.Logf("service: %s", msg) }
}

func TestLoadPhotosSortedByFilename(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "charlie.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "alpha.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "bravo.png"), 4, 4)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	fs := &FileSystemImpl{Logger: testLogger(t)}
	photos, err := fs.LoadPhotos(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, photos, 3)
	assert.Equal(t, "alpha.png", photos[0].Filename)
	assert.Equal(t, "bravo.png", photos[1].Filename)
	assert.Equal(t, "charlie.png", photos[2].Filename)
	for _, p := range photos {
		assert.True(t, filepath.IsAbs(p.Path))
		assert.Positive(t, p.SizeBytes)
		assert.Zero(t, p.Width, "dimensions are filled lazily")
	}
}

func TestLoadPhotosRejectsBadPaths(t *testing.T) {
	fs := &FileSystemImpl{}

	_, err := fs.LoadPhotos(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "photo.png")
	writePNG(t, file, 2, 2)
	_, err = fs.LoadPhotos(context.Background(), file)
	assert.Error(t, err)
}

func TestLoadPhotosCanceledContext(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 2, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fs := &FileSystemImpl{}
	_, err := fs.LoadPhotos(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsValidDir(t *testing.T) {
	fs := &FileSystemImpl{}
	dir := t.TempDir()
	assert.True(t, fs.IsValidDir(dir))
	assert.False(t, fs.IsValidDir(filepath.Join(dir, "missing")))

	file := filepath.Join(dir, "photo.png")
	writePNG(t, file, 2, 2)
	assert.False(t, fs.IsValidDir(file))
}

func TestDimensionsReadsHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dims.png")
	writePNG(t, path, 32, 16)

	im := &ImagesImpl{}
	w, h, err := im.Dimensions(path)
	require.NoError(t, err)
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)

	_, _, err = im.Dimensions(path + ".missing")
	assert.Error(t, err)
}

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	c, err := NewContainer(t.TempDir(), testLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestThumbnailDownscalesPreservingAspect(t *testing.T) {
	c := newTestContainer(t)
	path := filepath.Join(t.TempDir(), "big.png")
	writePNG(t, path, 400, 200)

	thumb, err := c.Images.Thumbnail(path, 100)
	require.NoError(t, err)

	bounds := thumb.Bounds()
	assert.Equal(t, 100, bounds.Dx())
	assert.Equal(t, 50, bounds.Dy())
}

func TestThumbnailNeverUpscales(t *testing.T) {
	c := newTestContainer(t)
	path := filepath.Join(t.TempDir(), "small.png")
	writePNG(t, path, 20, 10)

	thumb, err := c.Images.Thumbnail(path, 100)
	require.NoError(t, err)

	bounds := thumb.Bounds()
	assert.Equal(t, 20, bounds.Dx())
	assert.Equal(t, 10, bounds.Dy())
}

func TestThumbnailUsesCache(t *testing.T) {
	c := newTestContainer(t)
	path := filepath.Join(t.TempDir(), "cached.png")
	writePNG(t, path, 300, 300)

	_, err := c.Images.Thumbnail(path, 64)
	require.NoError(t, err)

	entries, size, err := c.Cache.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, entries)
	assert.Positive(t, size)

	// Second request must not add a second entry.
	thumb, err := c.Images.Thumbnail(path, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, thumb.Bounds().Dx())

	entries, _, err = c.Cache.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, entries)

	// A different bound is a different cache entry.
	_, err = c.Images.Thumbnail(path, 32)
	require.NoError(t, err)
	entries, _, err = c.Cache.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, entries)
}

func TestThumbCacheClear(t *testing.T) {
	c := newTestContainer(t)
	path := filepath.Join(t.TempDir(), "img.png")
	writePNG(t, path, 128, 128)

	_, err := c.Images.Thumbnail(path, 64)
	require.NoError(t, err)

	require.NoError(t, c.Cache.Clear())
	entries, size, err := c.Cache.Stats()
	require.NoError(t, err)
	assert.Zero(t, entries)
	assert.Zero(t, size)
}

func TestThumbCacheMissAfterFileChange(t *testing.T) {
	c := newTestContainer(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "mutable.png")
	writePNG(t, path, 200, 200)

	_, err := c.Images.Thumbnail(path, 64)
	require.NoError(t, err)

	// Rewriting the file changes size/mtime, so the old key no longer matches.
	writePNG(t, path, 220, 220)
	_, ok := c.Cache.Get(path, 64)
	assert.False(t, ok)
}

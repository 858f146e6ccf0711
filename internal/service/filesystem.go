package service

import (
	"context"
	"fmt"
	"os"
	"sort"

	"lightbox/internal/scan"
	"lightbox/internal/state"
)

// FileSystemImpl loads albums from the local filesystem via internal/scan.
type FileSystemImpl struct {
	Logger LoggerFunc
}

// LoadPhotos scans dir and returns one PhotoRecord per supported image,
// sorted by filename. Dimensions are left zero; they are filled lazily by the
// image service.
func (f *FileSystemImpl) LoadPhotos(ctx context.Context, dir string) ([]state.PhotoRecord, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("path does not exist: %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %q", dir)
	}

	var photos []state.PhotoRecord
	items := scan.Run(dir, scan.LoggerFunc(f.log))
	for item := range items {
		if ctx.Err() != nil {
			// Keep draining so the scanner goroutine can finish.
			continue
		}
		photos = append(photos, state.PhotoRecord{
			Path:      item.Path,
			Filename:  item.Info.Name(),
			SizeBytes: item.Info.Size(),
		})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(photos, func(i, j int) bool { return photos[i].Filename < photos[j].Filename })
	f.log(fmt.Sprintf("loaded %d photos from %s", len(photos), dir))
	return photos, nil
}

// IsValidDir reports whether path exists and is a directory.
func (f *FileSystemImpl) IsValidDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (f *FileSystemImpl) log(msg string) {
	if f.Logger != nil {
		f.Logger(msg)
	}
}

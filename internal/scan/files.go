// Package scan finds image files under an album directory.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MaxDirectoryDepth limits how far below the album root the scanner descends.
// Depth 0 is the album root itself.
const MaxDirectoryDepth = 1

// LoggerFunc receives progress and warning messages from the scanner.
type LoggerFunc func(message string)

// FileItem is one image file found during a scan.
type FileItem struct {
	Path string
	Info fs.FileInfo
}

// FileItems is a slice of FileItem.
type FileItems []FileItem

// NewFileItem creates a new FileItem.
func NewFileItem(path string, info fs.FileInfo) FileItem {
	return FileItem{Path: path, Info: info}
}

// IsImage reports whether the filename has a supported image extension.
func IsImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp":
		return true
	default:
		return false
	}
}

// Run walks dir and sends every supported, non-empty image file on the
// returned channel as an absolute path. The channel is closed when the walk
// finishes. Errors on individual entries are logged and skipped.
func Run(dir string, logger LoggerFunc) <-chan FileItem {
	if logger == nil {
		logger = func(string) {}
	}
	items := make(chan FileItem)

	go func() {
		defer close(items)

		root, err := filepath.Abs(dir)
		if err != nil {
			logger("scan: cannot resolve " + dir + ": " + err.Error())
			return
		}

		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				logger("scan: skipping " + p + ": " + err.Error())
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if depthBelow(root, p) > MaxDirectoryDepth {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() || !IsImage(p) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				logger("scan: stat failed for " + p + ": " + err.Error())
				return nil
			}
			if info.Size() == 0 {
				return nil
			}

			items <- NewFileItem(p, info)
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			logger("scan: walk failed: " + err.Error())
		}
	}()

	return items
}

// depthBelow counts directory levels of p under root.
func depthBelow(root, p string) int {
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == "." {
		return 0
	}
	return len(strings.Split(rel, string(filepath.Separator)))
}

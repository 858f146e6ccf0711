package scan

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

func TestNewFileItem(t *testing.T) {
	path := "test/path"
	dummyInfo, err := os.Stat(".")
	if err != nil {
		t.Fatalf("Failed to create dummy FileInfo: %v", err)
	}
	item := NewFileItem(path, dummyInfo)
	if item.Path != path {
		t.Errorf("expected Path %s, got %s", path, item.Path)
	}
	if item.Info == nil {
		t.Errorf("expected Info to be non-nil, got nil")
	}
}

func TestIsImage(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"image.PNG", true},
		{"image.jpg", true},
		{"image.jpeg", true},
		{"image.gif", true},
		{"image.bmp", true},
		{"image.WEBP", true},
		{"image.txt", false},
		{"image", false},
		{".jpeg", true}, // only an extension
	}

	for _, test := range tests {
		result := IsImage(test.name)
		if result != test.expected {
			t.Errorf("IsImage(%s) = %v; want %v", test.name, result, test.expected)
		}
	}
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	content := make([]byte, size)
	if size > 0 {
		content[0] = 'a'
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write test file %s: %v", path, err)
	}
}

func collect(t *testing.T, items <-chan FileItem) FileItems {
	t.Helper()
	var found FileItems
	timeout := time.After(5 * time.Second)
	for {
		select {
		case item, ok := <-items:
			if !ok {
				return found
			}
			found = append(found, item)
		case <-timeout:
			t.Fatal("timed out waiting for items from channel")
		}
	}
}

func TestRun(t *testing.T) {
	rootDir := t.TempDir()

	subDir := filepath.Join(rootDir, "sub1")
	if err := os.Mkdir(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}
	// One level deeper than MaxDirectoryDepth: must be skipped.
	deepDir := filepath.Join(subDir, "deep")
	if err := os.Mkdir(deepDir, 0755); err != nil {
		t.Fatalf("Failed to create deep dir: %v", err)
	}

	topImage1 := filepath.Join(rootDir, "image1.png")
	topImage2 := filepath.Join(rootDir, "image2.JPG") // case-insensitive extension
	topText := filepath.Join(rootDir, "document.txt")
	topEmpty := filepath.Join(rootDir, "empty.gif") // 0-byte, skipped
	subImage := filepath.Join(subDir, "image3.jpeg")
	subText := filepath.Join(subDir, "notes.md")
	deepImage := filepath.Join(deepDir, "image4.png") // beyond depth limit

	writeFile(t, topImage1, 10)
	writeFile(t, topImage2, 10)
	writeFile(t, topText, 10)
	writeFile(t, topEmpty, 0)
	writeFile(t, subImage, 10)
	writeFile(t, subText, 10)
	writeFile(t, deepImage, 10)

	expected := []string{topImage1, topImage2, subImage}
	sort.Strings(expected)

	testLogger := func(message string) { t.Logf("ScanTestLogger: %s", message) }
	found := collect(t, Run(rootDir, testLogger))

	var actual []string
	for _, item := range found {
		actual = append(actual, item.Path)
		if item.Info == nil {
			t.Errorf("FileItem for %s has nil FileInfo", item.Path)
			continue
		}
		if item.Info.IsDir() {
			t.Errorf("FileItem for %s is a directory, should be a file", item.Path)
		}
		if item.Info.Size() == 0 {
			t.Errorf("FileItem for %s has 0 size, should have been skipped", item.Path)
		}
		if !filepath.IsAbs(item.Path) {
			t.Errorf("FileItem path %s is not absolute", item.Path)
		}
	}
	sort.Strings(actual)

	if len(actual) != len(expected) {
		t.Fatalf("Run() found %d image files, want %d\nexpected: %v\nactual:   %v",
			len(actual), len(expected), expected, actual)
	}
	for i := range actual {
		if actual[i] != expected[i] {
			t.Errorf("Mismatch in found paths.\nExpected: %v\nGot:      %v", expected, actual)
			break
		}
	}
}

func TestRunMissingDirectory(t *testing.T) {
	found := collect(t, Run(filepath.Join(t.TempDir(), "does-not-exist"), nil))
	if len(found) != 0 {
		t.Errorf("expected no items from missing directory, got %d", len(found))
	}
}

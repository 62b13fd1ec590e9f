package gallery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"galleria/internal/textutil"
)

// scanSections lists the immediate subdirectories of the photos root in
// natural order. A missing photos root yields an empty list and a warning.
func (b *Builder) scanSections() ([]string, error) {
	entries, err := os.ReadDir(b.paths.PhotosRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.logger.Warn("photos directory missing", "path", b.paths.PhotosRoot)
			return nil, nil
		}
		return nil, fmt.Errorf("read photos directory: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !isDirectory(entry, filepath.Join(b.paths.PhotosRoot, name)) {
			continue
		}
		dirs = append(dirs, name)
	}
	textutil.SortNatural(dirs)
	return dirs, nil
}

// isDirectory reports whether entry is a directory, following symlinks.
func isDirectory(entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isRegularFile reports whether entry is a regular file, following symlinks.
func isRegularFile(entry fs.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

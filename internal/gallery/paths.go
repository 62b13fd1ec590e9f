package gallery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"galleria/internal/config"
)

// ErrRootUnreadable reports that the project root cannot be read.
// Generation cannot proceed past it.
var ErrRootUnreadable = errors.New("project root is not readable")

// Paths holds the resolved filesystem locations for one generation run.
type Paths struct {
	Root       string
	PhotosRoot string
	Output     string
}

// Resolve derives the absolute root, photos, and output paths from cfg and
// verifies the root is readable. A missing photos directory is not an error
// here; the scanner recovers from it.
func Resolve(cfg *config.Config) (Paths, error) {
	root := cfg.Paths.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Paths{}, fmt.Errorf("determine working directory: %w", err)
		}
		root = wd
	}

	if err := unix.Access(root, unix.R_OK); err != nil {
		return Paths{}, fmt.Errorf("%w: %s: %v", ErrRootUnreadable, root, err)
	}

	photos := cfg.Paths.PhotosDir
	if !filepath.IsAbs(photos) {
		photos = filepath.Join(root, photos)
	}
	output := cfg.Paths.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, output)
	}

	return Paths{Root: root, PhotosRoot: photos, Output: output}, nil
}

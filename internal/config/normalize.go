package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMedia()
	c.normalizeLogging()
	c.normalizeHistory()
	return nil
}

func (c *Config) normalizePaths() error {
	root := strings.TrimSpace(c.Paths.Root)
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("paths.root: determine working directory: %w", err)
		}
		root = wd
	}
	expanded, err := ExpandPath(root)
	if err != nil {
		return fmt.Errorf("paths.root: %w", err)
	}
	c.Paths.Root = expanded

	if strings.TrimSpace(c.Paths.PhotosDir) == "" {
		c.Paths.PhotosDir = defaultPhotosDir
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		c.Paths.Output = defaultOutput
	}

	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	} else {
		c.Paths.LogDir = ""
	}
	return nil
}

func (c *Config) normalizeMedia() {
	c.Media.ImageExtensions = normalizeExtensions(c.Media.ImageExtensions)
	c.Media.VideoExtensions = normalizeExtensions(c.Media.VideoExtensions)
	c.Media.PosterExtensions = normalizeExtensions(c.Media.PosterExtensions)
	c.Media.LinksFile = strings.TrimSpace(c.Media.LinksFile)
	c.Media.NotesFile = strings.TrimSpace(c.Media.NotesFile)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeHistory() {
	path := strings.TrimSpace(c.History.Path)
	if path == "" {
		c.History.Path = filepath.Join(c.Paths.Root, defaultHistoryFile)
		return
	}
	if expanded, err := ExpandPath(path); err == nil {
		c.History.Path = expanded
	}
}

// normalizeExtensions lowercases, trims, and dot-prefixes extension lists,
// dropping empty elements and duplicates while preserving order.
func normalizeExtensions(exts []string) []string {
	seen := make(map[string]struct{}, len(exts))
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Site contains presentation settings for the generated page.
type Site struct {
	Title  string `toml:"title"`
	Footer string `toml:"footer"`
}

// Paths contains filesystem locations. PhotosDir and Output may be relative,
// in which case they resolve against Root.
type Paths struct {
	Root      string `toml:"root"`
	PhotosDir string `toml:"photos_dir"`
	Output    string `toml:"output"`
	LogDir    string `toml:"log_dir"`
}

// Media controls how files inside a section directory are classified.
type Media struct {
	ImageExtensions  []string `toml:"image_extensions"`
	VideoExtensions  []string `toml:"video_extensions"`
	PosterExtensions []string `toml:"poster_extensions"`
	LinksFile        string   `toml:"links_file"`
	NotesFile        string   `toml:"notes_file"`
}

// Slideshow tunes the embedded client player.
type Slideshow struct {
	// AutoAdvanceSeconds is the still-image advance interval; 0 disables
	// the timer entirely.
	AutoAdvanceSeconds int `toml:"auto_advance_seconds"`
	EmbedHeight        int `toml:"embed_height"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// History controls the SQLite generation journal.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Config encapsulates all configuration values for galleria.
type Config struct {
	Site      Site      `toml:"site"`
	Paths     Paths     `toml:"paths"`
	Media     Media     `toml:"media"`
	Slideshow Slideshow `toml:"slideshow"`
	Logging   Logging   `toml:"logging"`
	History   History   `toml:"history"`
}

// DefaultConfigPath returns the project-local configuration file location.
func DefaultConfigPath() (string, error) {
	return filepath.Abs("galleria.toml")
}

// Load locates, parses, and validates a configuration file. An absent file is
// not an error; defaults apply. The returned config has all path fields
// expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	projectPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return projectPath, false, nil
}

// ExpandPath resolves ~ shortcuts and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSite(); err != nil {
		return err
	}
	if err := c.validateMedia(); err != nil {
		return err
	}
	if err := c.validateSlideshow(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSite() error {
	if strings.TrimSpace(c.Site.Title) == "" {
		return errors.New("site.title must not be empty")
	}
	return nil
}

func (c *Config) validateMedia() error {
	if len(c.Media.ImageExtensions) == 0 {
		return errors.New("media.image_extensions must not be empty")
	}
	if len(c.Media.VideoExtensions) == 0 {
		return errors.New("media.video_extensions must not be empty")
	}
	if c.Media.LinksFile == "" {
		return errors.New("media.links_file must not be empty")
	}
	if strings.ContainsAny(c.Media.LinksFile, "/\\") {
		return fmt.Errorf("media.links_file must be a plain file name, got %q", c.Media.LinksFile)
	}
	if c.Media.NotesFile == "" {
		return errors.New("media.notes_file must not be empty")
	}
	if strings.ContainsAny(c.Media.NotesFile, "/\\") {
		return fmt.Errorf("media.notes_file must be a plain file name, got %q", c.Media.NotesFile)
	}
	return nil
}

func (c *Config) validateSlideshow() error {
	if c.Slideshow.AutoAdvanceSeconds < 0 {
		return errors.New("slideshow.auto_advance_seconds must not be negative")
	}
	if c.Slideshow.EmbedHeight <= 0 {
		return errors.New("slideshow.embed_height must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

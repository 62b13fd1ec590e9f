package gallery

import (
	"log/slog"
	"path/filepath"

	"galleria/internal/config"
	"galleria/internal/textutil"
)

// Builder assembles the gallery model from a filesystem snapshot.
type Builder struct {
	paths   Paths
	media   config.Media
	version string
	logger  *slog.Logger
}

// NewBuilder prepares a Builder. version is the cache-busting token shared
// by every src in the run.
func NewBuilder(cfg *config.Config, paths Paths, version string, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{
		paths:   paths,
		media:   cfg.Media,
		version: version,
		logger:  logger,
	}
}

// Build scans the photos tree once and assembles the model. Unreadable
// sections are skipped with a warning; only an unreadable photos root that
// exists is fatal.
func (b *Builder) Build() (Model, error) {
	dirs, err := b.scanSections()
	if err != nil {
		return Model{}, err
	}

	var sections []Section
	for _, dir := range dirs {
		sectionDir := filepath.Join(b.paths.PhotosRoot, dir)
		items, err := b.buildEntries(sectionDir)
		if err != nil {
			b.logger.Warn("skipping unreadable section", "section", dir, "error", err)
			continue
		}
		if len(items) == 0 {
			b.logger.Debug("section has no media", "section", dir)
			continue
		}
		sections = append(sections, Section{
			ID:        textutil.Slug(dir),
			Title:     textutil.Title(dir),
			Items:     items,
			NotesHTML: b.sectionNotes(sectionDir, dir),
		})
	}

	if len(sections) == 0 {
		b.logger.Warn("no media found", "photos", b.paths.PhotosRoot)
	}
	return Model{Sections: sections}, nil
}

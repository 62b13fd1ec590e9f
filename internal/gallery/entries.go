package gallery

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"galleria/internal/fileutil"
	"galleria/internal/textutil"
)

// buildEntries produces the ordered entry list for one section directory:
// local media first in natural filename order, external embeds after, in
// links-file order.
func (b *Builder) buildEntries(sectionDir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(sectionDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if !isRegularFile(entry, filepath.Join(sectionDir, entry.Name())) {
			continue
		}
		names = append(names, entry.Name())
	}
	textutil.SortNatural(names)

	var items []Entry
	for _, name := range names {
		ext := strings.ToLower(filepath.Ext(name))
		abs := filepath.Join(sectionDir, name)
		switch {
		case slices.Contains(b.media.VideoExtensions, ext):
			base := strings.TrimSuffix(name, filepath.Ext(name))
			entry := Entry{Kind: KindVideo, Src: b.webSrc(abs), Label: base}
			if poster := b.findPoster(sectionDir, base); poster != "" {
				entry.Poster = b.webSrc(poster)
			}
			items = append(items, entry)
		case slices.Contains(b.media.ImageExtensions, ext):
			items = append(items, Entry{Kind: KindImage, Src: b.webSrc(abs), Label: name})
		}
	}

	items = append(items, b.linkEntries(sectionDir)...)
	return items, nil
}

// findPoster returns the first same-basename image in preference order, or
// "" when the video has no poster. Posters stay in the listing as image
// entries of their own.
func (b *Builder) findPoster(sectionDir, base string) string {
	for _, ext := range b.media.PosterExtensions {
		candidate := filepath.Join(sectionDir, base+ext)
		if fileutil.Exists(candidate) {
			return candidate
		}
	}
	return ""
}

// webSrc converts an absolute media path into a URL relative to the output
// document, forward slashes regardless of host OS, with the run's version
// token appended.
func (b *Builder) webSrc(abs string) string {
	base := filepath.Dir(b.paths.Output)
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		rel = abs
	}
	return filepath.ToSlash(rel) + "?v=" + b.version
}

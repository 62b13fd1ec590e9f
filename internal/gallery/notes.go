package gallery

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
)

// sectionNotes renders the section's optional markdown notes file to an HTML
// fragment. A missing file yields no notes; an unreadable one is warned
// about and skipped.
func (b *Builder) sectionNotes(sectionDir, name string) string {
	path := filepath.Join(sectionDir, b.media.NotesFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			b.logger.Warn("cannot read notes file", "section", name, "error", err)
		}
		return ""
	}
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML(data, nil, renderer))
}

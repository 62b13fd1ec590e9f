package gallery

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// linkEntries reads the section's links file, one URL per line, and turns
// each non-empty line into an external-embed entry. Lines that are not
// recognizable provider URLs pass through unchanged; the page simply embeds
// whatever was written.
func (b *Builder) linkEntries(sectionDir string) []Entry {
	path := filepath.Join(sectionDir, b.media.LinksFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			b.logger.Warn("cannot read links file", "path", path, "error", err)
		}
		return nil
	}

	var items []Entry
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, Entry{
			Kind:     KindEmbed,
			Src:      line,
			Label:    line,
			EmbedURL: CanonicalEmbedURL(line),
		})
	}
	return items
}

// CanonicalEmbedURL rewrites YouTube watch/short URLs and Vimeo video pages
// to their provider embed form. Anything else is returned unchanged.
func CanonicalEmbedURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	host := strings.ToLower(u.Host)
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")

	switch host {
	case "youtube.com":
		if u.Path == "/watch" {
			if id := u.Query().Get("v"); id != "" {
				return "https://www.youtube.com/embed/" + id
			}
		}
	case "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" && !strings.Contains(id, "/") {
			return "https://www.youtube.com/embed/" + id
		}
	case "vimeo.com":
		if id := strings.Trim(u.Path, "/"); isAllDigits(id) {
			return "https://player.vimeo.com/video/" + id
		}
	}
	return raw
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

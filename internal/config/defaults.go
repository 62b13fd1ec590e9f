package config

const (
	defaultSiteTitle          = "Society Function — Gallery"
	defaultSiteFooter         = "© Your Society"
	defaultPhotosDir          = "photos"
	defaultOutput             = "index.html"
	defaultLinksFile          = "links.txt"
	defaultNotesFile          = "notes.md"
	defaultAutoAdvanceSeconds = 5
	defaultEmbedHeight        = 400
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultHistoryFile        = ".galleria/history.db"
)

func defaultImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}
}

func defaultVideoExtensions() []string {
	return []string{".mp4", ".m4v", ".mov", ".webm"}
}

// Poster preference order is fixed; the first matching sibling wins.
func defaultPosterExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".webp"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Site: Site{
			Title:  defaultSiteTitle,
			Footer: defaultSiteFooter,
		},
		Paths: Paths{
			PhotosDir: defaultPhotosDir,
			Output:    defaultOutput,
		},
		Media: Media{
			ImageExtensions:  defaultImageExtensions(),
			VideoExtensions:  defaultVideoExtensions(),
			PosterExtensions: defaultPosterExtensions(),
			LinksFile:        defaultLinksFile,
			NotesFile:        defaultNotesFile,
		},
		Slideshow: Slideshow{
			AutoAdvanceSeconds: defaultAutoAdvanceSeconds,
			EmbedHeight:        defaultEmbedHeight,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
		},
	}
}

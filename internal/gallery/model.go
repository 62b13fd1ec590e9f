package gallery

// Kind classifies a gallery entry.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindEmbed Kind = "external-embed"
)

// Entry is one renderable unit: a local image, a local video, or a
// third-party embed. Src for local entries is a forward-slash URL relative
// to the output document, carrying the cache-busting version token; for
// embeds it is the original link line.
type Entry struct {
	Kind     Kind   `json:"kind"`
	Src      string `json:"src"`
	Label    string `json:"label"`
	Poster   string `json:"poster,omitempty"`
	EmbedURL string `json:"embedUrl,omitempty"`
}

// Section groups the media of one photos subdirectory.
type Section struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Items []Entry `json:"items"`

	// NotesHTML is rendered into the page server-side and never enters
	// the embedded JSON model.
	NotesHTML string `json:"-"`
}

// Model is the fully assembled gallery, ordered by natural section name.
type Model struct {
	Sections []Section
}

// Empty reports whether the model contains no sections.
func (m Model) Empty() bool { return len(m.Sections) == 0 }

// ItemCount returns the total number of entries across all sections.
func (m Model) ItemCount() int {
	total := 0
	for _, s := range m.Sections {
		total += len(s.Items)
	}
	return total
}

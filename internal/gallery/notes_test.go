package gallery_test

import (
	"strings"
	"testing"
)

func TestSectionNotesRendered(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"photos/show/a.jpg":    "x",
		"photos/show/notes.md": "# Opening\n\nA *short* write-up.\n",
	})

	model := buildModel(t, root)
	sec := model.Sections[0]
	if !strings.Contains(sec.NotesHTML, "<h1") || !strings.Contains(sec.NotesHTML, "<em>short</em>") {
		t.Fatalf("notes not rendered: %q", sec.NotesHTML)
	}
	// The notes file itself must never be classified as media.
	for _, item := range sec.Items {
		if strings.Contains(item.Src, "notes.md") {
			t.Fatalf("notes file leaked into items: %+v", item)
		}
	}
}

func TestSectionWithoutNotes(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"photos/plain/a.jpg": "x",
	})

	model := buildModel(t, root)
	if model.Sections[0].NotesHTML != "" {
		t.Fatalf("expected empty notes, got %q", model.Sections[0].NotesHTML)
	}
}

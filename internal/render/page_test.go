package render_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"galleria/internal/gallery"
	"galleria/internal/render"
)

var testOpts = render.Options{
	Title:              "Society Function — Gallery",
	Footer:             "© Your Society",
	Version:            "2026-08-29",
	GeneratedAt:        time.Date(2026, 8, 29, 18, 30, 0, 0, time.UTC),
	EmbedHeight:        400,
	AutoAdvanceSeconds: 5,
}

func testModel() gallery.Model {
	return gallery.Model{Sections: []gallery.Section{
		{
			ID:    "flag",
			Title: "Flag",
			Items: []gallery.Entry{
				{Kind: gallery.KindImage, Src: "photos/flag/1.jpg?v=2026-08-29", Label: "1.jpg"},
				{Kind: gallery.KindVideo, Src: "photos/flag/clip.mp4?v=2026-08-29", Label: "clip", Poster: "photos/flag/clip.jpg?v=2026-08-29"},
			},
		},
		{
			ID:    "links",
			Title: "Links",
			Items: []gallery.Entry{
				{Kind: gallery.KindEmbed, Src: "https://youtu.be/XYZ", Label: "https://youtu.be/XYZ", EmbedURL: "https://www.youtube.com/embed/XYZ"},
			},
		},
	}}
}

func renderDoc(t *testing.T, model gallery.Model) (*goquery.Document, []byte) {
	t.Helper()
	data, err := render.Document(testOpts, model)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return doc, data
}

func TestDocumentStructure(t *testing.T) {
	doc, _ := renderDoc(t, testModel())

	if got := doc.Find("head title").Text(); got != testOpts.Title {
		t.Fatalf("title %q", got)
	}
	if doc.Find(`meta[name="color-scheme"]`).Length() != 1 {
		t.Fatal("missing color-scheme meta")
	}

	nav := doc.Find("nav.nav a")
	if nav.Length() != 2 {
		t.Fatalf("expected 2 nav anchors, got %d", nav.Length())
	}
	if href, _ := nav.First().Attr("href"); href != "#flag" {
		t.Fatalf("nav href %q", href)
	}
	if nav.First().Text() != "Flag" {
		t.Fatalf("nav text %q", nav.First().Text())
	}

	if doc.Find("section#flag").Length() != 1 || doc.Find("section#links").Length() != 1 {
		t.Fatal("missing section elements")
	}
	for _, id := range []string{"player-0", "caption-0", "meta-0", "list-0", "player-1"} {
		if doc.Find("#"+id).Length() != 1 {
			t.Fatalf("missing #%s", id)
		}
	}

	if v, _ := doc.Find(`button[data-prev]`).First().Attr("data-prev"); v != "0" {
		t.Fatalf("data-prev %q", v)
	}
	if v, _ := doc.Find("section#links button[data-next]").Attr("data-next"); v != "1" {
		t.Fatalf("data-next %q", v)
	}
	if doc.Find("button[data-reload]").Length() != 2 {
		t.Fatal("expected one reload button per section")
	}

	if h2 := doc.Find("section#flag h2").Text(); h2 != "Flag" {
		t.Fatalf("section heading %q", h2)
	}
	if !strings.Contains(doc.Find("header p").Text(), "Cache version: 2026-08-29") {
		t.Fatalf("header line %q", doc.Find("header p").Text())
	}
	if !strings.Contains(doc.Find("footer").Text(), "© Your Society") {
		t.Fatal("footer missing site footer text")
	}
}

func TestDocumentEmptyModel(t *testing.T) {
	doc, data := renderDoc(t, gallery.Model{})

	if doc.Find("nav.nav a").Length() != 0 {
		t.Fatal("expected empty nav")
	}
	if doc.Find("section").Length() != 0 {
		t.Fatal("expected no section elements")
	}
	if doc.Find("header h1").Length() != 1 || doc.Find("footer").Length() != 1 {
		t.Fatal("skeleton incomplete")
	}
	if !strings.Contains(string(data), "const sections = []") {
		t.Fatal("expected empty sections array in script")
	}
}

func TestSectionsJSONRoundTrip(t *testing.T) {
	model := testModel()
	_, data := renderDoc(t, model)

	re := regexp.MustCompile(`(?s)const sections = (.*?);\nconst state`)
	m := re.FindSubmatch(data)
	if m == nil {
		t.Fatal("sections constant not found in script")
	}
	var decoded []gallery.Section
	if err := json.Unmarshal(m[1], &decoded); err != nil {
		t.Fatalf("embedded sections JSON does not parse: %v", err)
	}
	if !reflect.DeepEqual(decoded, model.Sections) {
		t.Fatalf("embedded model differs:\n got %+v\nwant %+v", decoded, model.Sections)
	}
}

func TestDocumentDeterministic(t *testing.T) {
	first, err := render.Document(testOpts, testModel())
	if err != nil {
		t.Fatal(err)
	}
	second, err := render.Document(testOpts, testModel())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("identical inputs produced different documents")
	}
}

func TestStateMachineScript(t *testing.T) {
	_, data := renderDoc(t, testModel())
	script := string(data)

	for _, want := range []string{
		"state[si] = (state[si] + 1) % n",
		"state[si] = (state[si] - 1 + n) % n",
		`"t=" + Date.now()`,
		`active.tagName === "VIDEO" || active.tagName === "IFRAME"`,
		"const AUTO_ADVANCE_MS = 5000;",
		"const EMBED_HEIGHT = 400;",
		`const VERSION = "2026-08-29";`,
		"accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q", want)
		}
	}
}

func TestAutoAdvanceDisabled(t *testing.T) {
	opts := testOpts
	opts.AutoAdvanceSeconds = 0
	data, err := render.Document(opts, testModel())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "const AUTO_ADVANCE_MS = 0;") {
		t.Fatal("expected timer constant of 0")
	}
}

func TestNotesEmbeddedUnescaped(t *testing.T) {
	model := testModel()
	model.Sections[0].NotesHTML = "<p>An <em>evening</em> to remember.</p>"
	doc, _ := renderDoc(t, model)

	notes := doc.Find("section#flag .notes em")
	if notes.Length() != 1 || notes.Text() != "evening" {
		t.Fatal("notes HTML was escaped or dropped")
	}
}

func TestWriteFileReplacesOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := render.WriteFile(path, []byte("<!doctype html>")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<!doctype html>" {
		t.Fatalf("unexpected content %q", got)
	}
}

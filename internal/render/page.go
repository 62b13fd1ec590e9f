package render

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"galleria/internal/fileutil"
	"galleria/internal/gallery"
)

//go:embed page.tmpl.html
var pageTemplate string

var tpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"safe": func(s string) template.HTML { return template.HTML(s) },
}).Parse(pageTemplate))

// Options carries the presentation knobs for one generation run.
type Options struct {
	Title              string
	Footer             string
	Version            string
	GeneratedAt        time.Time
	EmbedHeight        int
	AutoAdvanceSeconds int
}

type pageData struct {
	Title         string
	Footer        string
	GeneratedAt   string
	Version       string
	EmbedHeight   int
	AutoAdvanceMS int
	Sections      []gallery.Section
	SectionsJSON  template.JS
}

// Document renders the complete HTML page for model. An empty model still
// produces the full skeleton with an empty nav and no section cards.
func Document(opts Options, model gallery.Model) ([]byte, error) {
	sections := model.Sections
	if sections == nil {
		sections = []gallery.Section{}
	}
	payload, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sections: %w", err)
	}

	data := pageData{
		Title:         opts.Title,
		Footer:        opts.Footer,
		GeneratedAt:   opts.GeneratedAt.Format("1/2/2006, 3:04:05 PM"),
		Version:       opts.Version,
		EmbedHeight:   opts.EmbedHeight,
		AutoAdvanceMS: opts.AutoAdvanceSeconds * 1000,
		Sections:      sections,
		SectionsJSON:  template.JS(payload),
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile replaces path with doc atomically.
func WriteFile(path string, doc []byte) error {
	if err := fileutil.WriteFileAtomic(path, doc, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

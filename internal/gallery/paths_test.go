package gallery_test

import (
	"path/filepath"
	"testing"

	"galleria/internal/config"
	"galleria/internal/gallery"
)

func TestResolveJoinsRelativePaths(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Root = root

	paths, err := gallery.Resolve(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if paths.Root != root {
		t.Fatalf("root %q, want %q", paths.Root, root)
	}
	if want := filepath.Join(root, "photos"); paths.PhotosRoot != want {
		t.Fatalf("photos root %q, want %q", paths.PhotosRoot, want)
	}
	if want := filepath.Join(root, "index.html"); paths.Output != want {
		t.Fatalf("output %q, want %q", paths.Output, want)
	}
}

func TestResolveKeepsAbsolutePaths(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Root = root
	cfg.Paths.PhotosDir = filepath.Join(other, "media")
	cfg.Paths.Output = filepath.Join(other, "out.html")

	paths, err := gallery.Resolve(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if paths.PhotosRoot != filepath.Join(other, "media") {
		t.Fatalf("photos root %q", paths.PhotosRoot)
	}
	if paths.Output != filepath.Join(other, "out.html") {
		t.Fatalf("output %q", paths.Output)
	}
}

func TestResolveDefaultsToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg := config.Default()
	paths, err := gallery.Resolve(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(paths.Root) {
		t.Fatalf("expected absolute root, got %q", paths.Root)
	}
}

package main

import (
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)

	out, err := runCLI(t, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("missing confirmation: %q", out)
	}
	if !fileExists(t, root, "galleria.toml") {
		t.Fatal("sample config not written")
	}

	// A second init without --overwrite must refuse.
	if _, err := runCLI(t, "config", "init"); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if out, err := runCLI(t, "config", "init", "--overwrite"); err != nil {
		t.Fatalf("overwrite failed: %v\n%s", err, out)
	}
}

func TestConfigValidateDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("missing validation line: %q", out)
	}
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, map[string]string{
		"galleria.toml": "[slideshow]\nembed_height = -3\n",
	})
	t.Chdir(root)

	if _, err := runCLI(t, "config", "validate"); err == nil {
		t.Fatal("expected validation failure")
	}
}

func TestHistoryCommandEmpty(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCLI(t, "history")
	if err != nil {
		t.Fatalf("history failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No generation runs recorded yet.") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestHistoryCommandAfterGenerate(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, map[string]string{"photos/a/1.jpg": "x"})
	t.Chdir(root)

	if out, err := runCLI(t, "generate"); err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}
	out, err := runCLI(t, "history")
	if err != nil {
		t.Fatalf("history failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "index.html") {
		t.Fatalf("history table missing run row: %q", out)
	}
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andrewsipe/FontCore/internal/config"
)

func TestParseAllPreservesOrderAndTracksAdvisories(t *testing.T) {
	paths := []string{
		filepath.Join("fonts", "Lato-Bold.ttf"),
		filepath.Join("fonts", "Arial-Italic.ttf"),
		filepath.Join("fonts", "Lato-Light.ttf"),
	}

	fonts, tracker := parseAll(paths)
	if len(fonts) != len(paths) {
		t.Fatalf("got %d fonts, want %d", len(fonts), len(paths))
	}
	for i := range paths {
		if fonts[i].Path != paths[i] {
			t.Errorf("fonts[%d].Path = %q, want %q", i, fonts[i].Path, paths[i])
		}
	}
	if tracker == nil {
		t.Fatal("parseAll returned nil tracker")
	}
	if tracker.Len() != 0 {
		t.Errorf("clean filenames produced advisories: %v", tracker.All())
	}
}

func TestWriteReport(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvFontcoreHome, home)

	body := []byte("Lato-Bold.ttf\nLato-Light.ttf\n")
	path, err := writeReport("library.txt", body)
	if err != nil {
		t.Fatalf("writeReport failed: %v", err)
	}
	if want := filepath.Join(home, "reports", "library.txt"); path != want {
		t.Errorf("report path = %q, want %q", path, want)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("report body = %q, want %q", got, body)
	}
}

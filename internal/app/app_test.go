package app

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/wrapped/internal/deck"
	"github.com/five82/wrapped/internal/location"
)

func TestStartFragmentPriority(t *testing.T) {
	store := location.NewStore(t.TempDir(), "talk.toml")
	if err := store.Replace("#5"); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	cases := []struct {
		name   string
		at     string
		suffix string
		want   string
	}{
		{"explicit wins", "3", "#2", "#3"},
		{"explicit with hash", "#4", "", "#4"},
		{"suffix over saved", "", "#2", "#2"},
		{"saved position", "", "", "#5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := startFragment(tc.at, tc.suffix, store); got != tc.want {
				t.Fatalf("startFragment = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "  ", "Slate", "Nightfox"); got != "Slate" {
		t.Fatalf("firstNonEmpty = %q, want Slate", got)
	}
	if got := firstNonEmpty(); got != "" {
		t.Fatalf("firstNonEmpty() = %q, want empty", got)
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrapped.log")
	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	log.Printf("hello")
	closeLog()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestListSlidesBuiltinDeck(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	if err := ListSlides(&buf, filepath.Join(t.TempDir(), "missing.toml"), ""); err != nil {
		t.Fatalf("ListSlides: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "34 slides") {
		t.Fatalf("summary missing slide count:\n%s", out)
	}
	if !strings.Contains(out, "2.8s") {
		t.Fatalf("first slide duration missing:\n%s", out)
	}
}

func TestListSlidesIgnoresFragment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "deck.toml")
	data := "title = \"Mini\"\n[[slides]]\ntitle = \"One\"\nduration_ms = 1500\n[[slides]]\ntitle = \"Two\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var buf bytes.Buffer
	if err := ListSlides(&buf, filepath.Join(t.TempDir(), "missing.toml"), path+"#1"); err != nil {
		t.Fatalf("ListSlides: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Mini: 2 slides, 5.5s total", "One", "Two", "1.5s", "4.0s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestListSlidesMissingDeck(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	err := ListSlides(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.toml"), filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "load deck") {
		t.Fatalf("err = %v, want load deck error", err)
	}
}

func TestSlideTableUntitled(t *testing.T) {
	reg, err := deck.Parse([]byte("[[slides]]\ntitle = \"Only\"\n"), 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out := SlideTable(reg); !strings.Contains(out, "Untitled deck: 1 slides") {
		t.Fatalf("SlideTable = %q", out)
	}
}

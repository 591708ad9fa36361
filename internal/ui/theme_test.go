package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Nightfox": "Kanagawa",
		"Kanagawa": "Slate",
		"Slate":    "Nightfox",
		"Unknown":  "Nightfox",
	}
	for current, want := range cases {
		if got := NextTheme(current); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", current, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Name != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, th.Name)
		}
		if th.CodeTheme == "" {
			t.Fatalf("theme %s has no code theme", name)
		}
	}

	if unknown := GetTheme("Unknown"); unknown.Name != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", unknown.Name)
	}
}

func TestMarkdownStylesCarryCodeTheme(t *testing.T) {
	th := GetTheme("Slate")
	if got := th.Markdown(true).CodeTheme; got != th.CodeTheme {
		t.Fatalf("Markdown(true).CodeTheme = %q, want %q", got, th.CodeTheme)
	}
	if got := th.Markdown(false).CodeTheme; got != th.CodeTheme {
		t.Fatalf("Markdown(false).CodeTheme = %q, want %q", got, th.CodeTheme)
	}
}

func TestInactiveMarkdownDropsSyntaxColours(t *testing.T) {
	th := GetTheme("Kanagawa")
	if th.Markdown(true).PlainCode {
		t.Fatal("active slide code is drawn plain")
	}
	inactive := th.Markdown(false)
	if !inactive.PlainCode {
		t.Fatal("inactive slide code keeps syntax colours")
	}
	if got := inactive.Code.GetForeground(); got != lipgloss.Color(th.Faint) {
		t.Fatalf("inactive code foreground = %v, want %v", got, th.Faint)
	}
}

func TestBgStyleRenderKeepsText(t *testing.T) {
	bg := NewBgStyle("#000000")
	th := GetTheme("Nightfox")

	if got := ansi.Strip(bg.Render("two  words", th.Styles().Text)); got != "two  words" {
		t.Fatalf("Render = %q, want %q", got, "two  words")
	}
	if bg.Render("", th.Styles().Text) != "" {
		t.Fatal("Render of empty text produced output")
	}
	if got := ansi.StringWidth(bg.FillLine("abc", 10)); got != 10 {
		t.Fatalf("FillLine width = %d, want 10", got)
	}
}

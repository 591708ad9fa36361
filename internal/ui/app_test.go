package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/wrapped/internal/clock"
	"github.com/five82/wrapped/internal/deck"
	"github.com/five82/wrapped/internal/prefs"
)

type testUI struct {
	model   Model
	deck    *deck.Deck
	clock   *clock.Manual
	surface *deck.Surface
	prefs   string
}

func newTestUI(t *testing.T, opts Options) *testUI {
	t.Helper()
	slides := make([]deck.Slide, 5)
	for i := range slides {
		slides[i] = deck.Slide{
			Index:    i,
			Title:    "Slide " + string(rune('A'+i)),
			Body:     "Body of slide **" + string(rune('A'+i)) + "**",
			Duration: time.Second,
		}
	}
	reg, err := deck.NewRegistry("Test Deck", slides)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	c := clock.NewManual(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 16*time.Millisecond)
	surface := &deck.Surface{}
	d := deck.New(reg, surface, c, deck.Options{})
	d.Start("")

	opts.Deck = d
	opts.Surface = surface
	if opts.PrefsPath == "" {
		opts.PrefsPath = filepath.Join(t.TempDir(), "prefs.toml")
	}

	tu := &testUI{model: New(opts), deck: d, clock: c, surface: surface, prefs: opts.PrefsPath}
	tu.send(tea.WindowSizeMsg{Width: 100, Height: 24})
	return tu
}

func (tu *testUI) send(msg tea.Msg) tea.Cmd {
	next, cmd := tu.model.Update(msg)
	tu.model = next.(Model)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWindowSizeResizesViewport(t *testing.T) {
	tu := newTestUI(t, Options{})
	if got := tu.surface.Height(); got != 21 {
		t.Fatalf("surface height = %d, want 21", got)
	}

	// Digit 3 selects the third slide, index 2.
	tu.deck.Jump(3)
	tu.clock.Advance(time.Second)
	tu.send(tea.WindowSizeMsg{Width: 100, Height: 34})
	if got := tu.surface.ScrollTop(); got != 2*31 {
		t.Fatalf("ScrollTop after resize = %v, want %d", got, 2*31)
	}
}

func TestKeysDriveTheDeck(t *testing.T) {
	tu := newTestUI(t, Options{})

	tu.send(runes("j"))
	if got := tu.deck.State().Target; got != 1 {
		t.Fatalf("target after j = %d, want 1", got)
	}
	tu.send(tea.KeyMsg{Type: tea.KeyDown})
	if got := tu.deck.State().Target; got != 2 {
		t.Fatalf("target after down = %d, want 2", got)
	}
	tu.send(tea.KeyMsg{Type: tea.KeyPgUp})
	if got := tu.deck.State().Target; got != 1 {
		t.Fatalf("target after pgup = %d, want 1", got)
	}
	tu.send(runes("4"))
	if got := tu.deck.State().Target; got != 3 {
		t.Fatalf("target after 4 = %d, want 3", got)
	}
	tu.send(runes("9"))
	if got := tu.deck.State().Target; got != 4 {
		t.Fatalf("target after 9 = %d, want 4", got)
	}
}

func TestAltDigitIsIgnored(t *testing.T) {
	tu := newTestUI(t, Options{})
	tu.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3"), Alt: true})
	if got := tu.deck.State().Target; got != 0 {
		t.Fatalf("alt+3 moved to %d", got)
	}
}

func TestSpaceTogglesPlayback(t *testing.T) {
	tu := newTestUI(t, Options{})

	tu.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if !tu.deck.State().Playing {
		t.Fatal("space did not start playback")
	}
	tu.clock.Advance(time.Second)
	if got := tu.deck.State().Current; got != 1 {
		t.Fatalf("auto-advance current = %d, want 1", got)
	}

	tu.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if tu.deck.State().Playing {
		t.Fatal("space did not pause playback")
	}
}

func TestAutoplayStartsOnFirstResize(t *testing.T) {
	tu := newTestUI(t, Options{Autoplay: true})
	if !tu.deck.State().Playing {
		t.Fatal("autoplay did not start")
	}

	tu.send(runes("k"))
	tu.send(tea.WindowSizeMsg{Width: 90, Height: 20})
	if tu.deck.State().Playing {
		t.Fatal("later resize restarted playback")
	}
}

func TestQuit(t *testing.T) {
	tu := newTestUI(t, Options{})
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		cmd := tu.send(msg)
		if cmd == nil {
			t.Fatalf("%s returned no command", msg)
		}
		if !containsQuit(cmd()) {
			t.Fatalf("%s did not quit", msg)
		}
	}
}

func containsQuit(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, cmd := range msg {
			if cmd != nil && containsQuit(cmd()) {
				return true
			}
		}
	}
	return false
}

func TestHelpOverlay(t *testing.T) {
	tu := newTestUI(t, Options{})

	tu.send(runes("?"))
	if !tu.model.showHelp {
		t.Fatal("? did not open help")
	}
	view := ansi.Strip(tu.model.View())
	if !strings.Contains(view, "Keyboard Shortcuts") || !strings.Contains(view, "5 slides, 0:05") {
		t.Fatalf("help overlay missing content:\n%s", view)
	}

	tu.send(runes("j"))
	if tu.model.showHelp {
		t.Fatal("key did not close help")
	}
	if got := tu.deck.State().Target; got != 0 {
		t.Fatalf("closing help also navigated to %d", got)
	}
}

func TestThemeAndMutePersist(t *testing.T) {
	tu := newTestUI(t, Options{ThemeName: "Nightfox"})

	tu.send(runes("T"))
	if tu.model.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", tu.model.theme.Name)
	}
	tu.send(runes("m"))
	if !tu.model.muted {
		t.Fatal("m did not mute")
	}

	saved, err := prefs.Load(tu.prefs)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Theme != "Kanagawa" || !saved.Muted {
		t.Fatalf("saved prefs = %+v, want {Kanagawa true}", saved)
	}
}

func TestMouseWheelAndSwipe(t *testing.T) {
	tu := newTestUI(t, Options{})

	tu.send(tea.MouseMsg{X: 10, Y: 10, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := tu.deck.State().Target; got != 1 {
		t.Fatalf("target after wheel down = %d, want 1", got)
	}
	tu.send(tea.MouseMsg{X: 10, Y: 10, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if got := tu.deck.State().Target; got != 0 {
		t.Fatalf("target after wheel up = %d, want 0", got)
	}

	// Drag up ten rows: 160px vertical, no horizontal travel.
	tu.send(tea.MouseMsg{X: 20, Y: 15, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	tu.send(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionRelease})
	if got := tu.deck.State().Target; got != 1 {
		t.Fatalf("target after swipe = %d, want 1", got)
	}

	// Mostly sideways drag is not a swipe.
	tu.send(tea.MouseMsg{X: 10, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	tu.send(tea.MouseMsg{X: 40, Y: 6, Action: tea.MouseActionRelease})
	if got := tu.deck.State().Target; got != 1 {
		t.Fatalf("diagonal drag moved to %d", got)
	}
}

func TestClickDot(t *testing.T) {
	tu := newTestUI(t, Options{})

	// 5 dots centred in 21 body rows start at row 8; the body starts at
	// screen row 2.
	x := 100 - 2
	tu.send(tea.MouseMsg{X: x, Y: bodyTop + 8 + 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	tu.send(tea.MouseMsg{X: x, Y: bodyTop + 8 + 3, Action: tea.MouseActionRelease})
	if got := tu.deck.State().Target; got != 3 {
		t.Fatalf("target after dot click = %d, want 3", got)
	}

	// Clicks outside the dot column do nothing.
	tu.send(tea.MouseMsg{X: 5, Y: bodyTop + 8, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	tu.send(tea.MouseMsg{X: 5, Y: bodyTop + 8, Action: tea.MouseActionRelease})
	if got := tu.deck.State().Target; got != 3 {
		t.Fatalf("click outside the dots moved to %d", got)
	}
}

func TestDotLayoutSpans(t *testing.T) {
	l := newDotLayout(5, 21)
	if _, _, ok := l.span(7); ok {
		t.Fatal("row above the dots mapped to a slide")
	}
	if first, last, ok := l.span(8); !ok || first != 0 || last != 0 {
		t.Fatalf("span(8) = %d,%d,%v", first, last, ok)
	}
	if _, _, ok := l.span(13); ok {
		t.Fatal("row below the dots mapped to a slide")
	}

	dense := newDotLayout(34, 10)
	covered := 0
	for row := 0; row < 10; row++ {
		first, last, ok := dense.span(row)
		if !ok {
			t.Fatalf("dense row %d empty", row)
		}
		if first != covered {
			t.Fatalf("dense row %d starts at %d, want %d", row, first, covered)
		}
		covered = last + 1
	}
	if covered != 34 {
		t.Fatalf("dense rows cover %d slides, want 34", covered)
	}
}

func TestViewShowsHeaderAndSlide(t *testing.T) {
	tu := newTestUI(t, Options{})

	view := ansi.Strip(tu.model.View())
	lines := strings.Split(view, "\n")
	if len(lines) != 24 {
		t.Fatalf("view has %d lines, want 24", len(lines))
	}
	for _, want := range []string{"wrapped", "Test Deck", "1/5", "Slide A", "Body of slide A"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Body of slide B") {
		t.Fatal("resting view shows the next slide")
	}
}

func TestViewMidTransitionShowsBothSlides(t *testing.T) {
	tu := newTestUI(t, Options{})

	tu.send(runes("j"))
	tu.clock.Advance(400 * time.Millisecond)
	view := ansi.Strip(tu.model.View())
	if !strings.Contains(view, "2/5") {
		t.Fatalf("header does not show the new slide:\n%s", view)
	}
	if got := tu.surface.ScrollTop(); got <= 0 || got >= 21 {
		t.Fatalf("ScrollTop = %v, want mid-flight", got)
	}
	if !strings.Contains(view, "Slide B") {
		t.Fatalf("incoming slide not visible:\n%s", view)
	}
}

func TestWindowTitleFollowsSlide(t *testing.T) {
	tu := newTestUI(t, Options{})
	if tu.model.title != "Test Deck #0" {
		t.Fatalf("title = %q, want %q", tu.model.title, "Test Deck #0")
	}
	tu.send(runes("3"))
	if tu.model.title != "Test Deck #2" {
		t.Fatalf("title = %q, want %q", tu.model.title, "Test Deck #2")
	}
}

func TestFireMsgWithoutLoopIsIgnored(t *testing.T) {
	tu := newTestUI(t, Options{})
	if cmd := tu.send(clock.FireMsg{}); cmd != nil {
		if msg := cmd(); containsQuit(msg) {
			t.Fatal("FireMsg produced a quit")
		}
	}
}

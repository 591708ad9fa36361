package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/wrapped/internal/clock"
	"github.com/five82/wrapped/internal/deck"
	"github.com/five82/wrapped/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Deck    *deck.Deck
	Surface *deck.Surface
	// Loop delivers engine timers; nil when the scheduler is driven
	// elsewhere, as in tests.
	Loop *clock.Loop

	// Source describes where the deck came from; empty for the built-in deck.
	Source    string
	ThemeName string
	PrefsPath string
	Muted     bool

	// Autoplay starts playback once the screen has a size.
	Autoplay bool

	// CellWidth and CellHeight scale mouse drags into pixels.
	CellWidth  float64
	CellHeight float64
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Engine
	deck    *deck.Deck
	surface *deck.Surface
	loop    *clock.Loop

	// Configuration
	source    string
	prefsPath string
	autoplay  bool
	cellW     float64
	cellH     float64

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	progress progress.Model
	slides   *slideCache
	width    int
	height   int
	ready    bool
	showHelp bool
	muted    bool
	title    string
	drag     dragState
}

// dragState tracks a left-button press until its release.
type dragState struct {
	active bool
	x, y   int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	cellW, cellH := opts.CellWidth, opts.CellHeight
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}

	m := Model{
		deck:      opts.Deck,
		surface:   opts.Surface,
		loop:      opts.Loop,
		source:    opts.Source,
		prefsPath: prefsPath,
		autoplay:  opts.Autoplay,
		cellW:     cellW,
		cellH:     cellH,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		slides:    newSlideCache(),
		muted:     opts.Muted,
	}
	m.applyTheme(GetTheme(themeName))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.windowTitle())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)

	// Every handled message may have moved the deck.
	if title := m.windowTitle(); title != m.title {
		m.title = title
		cmd = tea.Batch(cmd, tea.SetWindowTitle(title))
	}
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if !m.ready {
			m.ready = true
			if m.autoplay {
				m.deck.Play()
			}
		}
		return m, nil

	case clock.FireMsg:
		if m.loop != nil {
			m.loop.Dispatch(msg)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// layout resizes the viewport and widgets to the terminal.
func (m *Model) layout() {
	m.surface.Resize(bodyRows(m.height))
	m.deck.Resize()
	m.progress.Width = max(1, m.width-2)
	m.help.Width = max(1, m.width-2)
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	m.progress = progress.New(
		progress.WithSolidFill(t.Accent),
		progress.WithoutPercentage(),
		progress.WithWidth(max(1, m.width-2)),
	)
	m.progress.EmptyColor = t.SurfaceAlt

	m.help.Styles.ShortKey = m.theme.Styles().WarningText
	m.help.Styles.ShortDesc = m.theme.Styles().MutedText
	m.help.Styles.ShortSeparator = m.theme.Styles().FaintText
	m.help.Styles.FullKey = m.theme.Styles().WarningText
	m.help.Styles.FullDesc = m.theme.Styles().Text
	m.help.Styles.FullSeparator = m.theme.Styles().FaintText
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
	m.savePrefs()
}

func (m *Model) toggleMute() {
	m.muted = !m.muted
	m.savePrefs()
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Muted: m.muted}); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

func (m Model) windowTitle() string {
	st := m.deck.State()
	return fmt.Sprintf("%s #%d", m.deck.Registry().Title(), st.Current)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	rows := make([]string, 0, m.height)
	rows = append(rows, m.renderHeader())
	rows = append(rows, m.renderProgress())
	rows = append(rows, m.renderBody()...)
	rows = append(rows, m.renderFooter())
	return strings.Join(rows, "\n")
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if opts.Loop != nil {
		opts.Loop.Bind(p.Send)
	}
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/wrapped/internal/deck"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Any other key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Mute):
		m.toggleMute()

	case key.Matches(msg, m.keys.Play):
		m.deck.TogglePlay()

	case key.Matches(msg, m.keys.Next):
		m.deck.Next()

	case key.Matches(msg, m.keys.Prev):
		m.deck.Previous()

	case key.Matches(msg, m.keys.Jump):
		// Alt-modified digits never match: their String() is "alt+N".
		m.deck.Jump(int(msg.Runes[0] - '0'))
	}

	return m, nil
}

// handleMouse maps wheel, drag and dot clicks onto the deck.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.deck.Wheel(1)

	case msg.Button == tea.MouseButtonWheelUp:
		m.deck.Wheel(-1)

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.drag = dragState{active: true, x: msg.X, y: msg.Y}

	case msg.Action == tea.MouseActionRelease && m.drag.active:
		start := m.drag
		m.drag = dragState{}
		if start.x == msg.X && start.y == msg.Y {
			if index, ok := m.dotAt(msg.X, msg.Y); ok {
				m.deck.ClickDot(index)
			}
			return m, nil
		}
		m.deck.Swipe(deck.Gesture{
			StartX: float64(start.x) * m.cellW,
			StartY: float64(start.y) * m.cellH,
			EndX:   float64(msg.X) * m.cellW,
			EndY:   float64(msg.Y) * m.cellH,
		})
	}

	return m, nil
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: logo, titles, position and playback.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)

	st := m.deck.State()
	reg := m.deck.Registry()

	left := []string{bg.Render(logoText(compact), styles.Logo)}
	if !compact && reg.Title() != "" {
		left = append(left, bg.Render(reg.Title(), styles.Text.Bold(true)))
	}
	left = append(left, bg.Render(fmt.Sprintf("%d/%d", st.Current+1, st.Count), styles.AccentText))
	if !compact {
		left = append(left, bg.Render(truncate(reg.Slide(st.Current).Title, 40), styles.MutedText))
	}

	right := []string{m.playbackLabel(styles, bg), m.muteLabel(styles, bg)}

	leftStr := bg.Join(left, "  ")
	rightStr := strings.Join(right, sep)
	gap := m.width - 2 - lipgloss.Width(leftStr) - lipgloss.Width(rightStr)
	content := leftStr + bg.Spaces(max(1, gap)) + rightStr

	return styles.Header.Width(m.width).MaxWidth(m.width).Render(content)
}

func (m Model) playbackLabel(styles Styles, bg BgStyle) string {
	st := m.deck.State()
	switch {
	case st.PendingLoopRestart:
		return bg.Render("↺ restarting", styles.InfoText)
	case st.Playing:
		return bg.Render("▶ playing", styles.SuccessText)
	case st.Current == st.Count-1:
		return bg.Render("■ end", styles.MutedText)
	default:
		return bg.Render("⏸ paused", styles.WarningText)
	}
}

func (m Model) muteLabel(styles Styles, bg BgStyle) string {
	if m.muted {
		return bg.Render("♪ muted", styles.FaintText)
	}
	return bg.Render("♪ on", styles.MutedText)
}

// renderProgress renders the auto-play progress bar, or a blank row while
// idle so the slide viewport keeps its height.
func (m Model) renderProgress() string {
	bg := NewBgStyle(m.theme.Background)
	st := m.deck.State()
	if !st.Playing {
		return bg.FillLine("", m.width)
	}
	return bg.FillLine(" "+m.progress.ViewAs(st.Progress), m.width)
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).MaxWidth(m.width).Render(m.help.View(m.keys))
}

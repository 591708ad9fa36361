package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/wrapped/internal/config"
	"github.com/five82/wrapped/internal/deck"
	"github.com/five82/wrapped/internal/location"
)

// ListSlides prints the slides of a deck with their auto-play durations and
// the total runtime. An empty ref falls back to the configured deck.
func ListSlides(w io.Writer, configPath, ref string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if strings.TrimSpace(ref) == "" {
		ref = cfg.Deck
	}
	path, _ := location.Split(ref)

	reg, err := deck.Load(path, cfg.DefaultSlide)
	if err != nil {
		return fmt.Errorf("load deck: %w", err)
	}

	_, err = fmt.Fprintln(w, SlideTable(reg))
	return err
}

// SlideTable renders reg as a table of index, title and duration.
func SlideTable(reg *deck.Registry) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Title", "Duration").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for i := 0; i < reg.Count(); i++ {
		s := reg.Slide(i)
		t.Row(strconv.Itoa(s.Index), s.Title, formatDuration(s.Duration))
	}

	title := reg.Title()
	if title == "" {
		title = "Untitled deck"
	}
	summary := fmt.Sprintf("%s: %d slides, %s total", title, reg.Count(), formatDuration(reg.TotalDuration()))
	return t.Render() + "\n" + summary
}

func formatDuration(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 1, 64) + "s"
}

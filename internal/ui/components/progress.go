package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tlevesque/amfprep/internal/ui/theme"
)

// ProgressBar is a one-line horizontal gauge. Width is the full budget
// for label, bar, and the optional percent suffix together.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0.0 - 1.0
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the gauge.
func (p ProgressBar) View() string {
	prefix := ""
	if p.Label != "" {
		prefix = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := ""
	suffixWidth := 0
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %3.0f%%", p.Percent*100))
		suffixWidth = 7
	}

	barWidth := p.Width - lipgloss.Width(prefix) - suffixWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth)*p.Percent + 0.5)
	switch {
	case filled < 0:
		filled = 0
	case filled > barWidth:
		filled = barWidth
	}

	bar := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).
			Render(strings.Repeat("░", barWidth-filled))

	return prefix + bar + suffix
}

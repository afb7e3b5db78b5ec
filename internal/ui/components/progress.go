package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/amical-najul/SumasRestas/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
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

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// TimerBar renders the remaining time as a draining bar. The bar and the
// seconds counter turn red when remaining falls to warnAt or below.
type TimerBar struct {
	Remaining int
	Limit     int
	WarnAt    int
	Width     int
}

// NewTimerBar creates a timer bar with a 3-second warning threshold.
func NewTimerBar(remaining, limit, width int) TimerBar {
	return TimerBar{
		Remaining: remaining,
		Limit:     limit,
		WarnAt:    3,
		Width:     width,
	}
}

// View renders the timer bar.
func (t TimerBar) View() string {
	if t.Limit <= 0 {
		return ""
	}

	counterStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	fillColor := theme.Secondary
	if t.Remaining <= t.WarnAt {
		counterStyle = theme.TimerLow
		fillColor = theme.Error
	}

	counter := counterStyle.Render(fmt.Sprintf("%2ds", t.Remaining))

	barWidth := t.Width - lipgloss.Width(counter) - 2
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * t.Remaining / t.Limit
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().Background(fillColor).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))

	return counter + "  " + bar
}

package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// panel styles are rebuilt whenever the theme changes.
type styleSet struct {
	title     lipgloss.Style
	panel     lipgloss.Style
	panelName lipgloss.Style
	galaxy    lipgloss.Style
	spiral    lipgloss.Style
	ratio     lipgloss.Style
	accent    lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	recording lipgloss.Style
}

func newStyleSet(t Theme) styleSet {
	return styleSet{
		title: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		panelName: lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		galaxy:    lipgloss.NewStyle().Foreground(t.Galaxy),
		spiral:    lipgloss.NewStyle().Foreground(t.Spiral),
		ratio:     lipgloss.NewStyle().Foreground(t.Ratio),
		accent:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		text:      lipgloss.NewStyle().Foreground(t.Text),
		muted:     lipgloss.NewStyle().Foreground(t.Muted),
		recording: lipgloss.NewStyle().Bold(true).Foreground(t.Recording).Blink(true),
	}
}

// ProgressBar renders the sequence position as a filled bar.
func ProgressBar(percent float64, width int, s styleSet) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return s.accent.Render(bar)
}

// Sparkline renders values as a one-line mini chart.
func Sparkline(values []float64, width int, s styleSet) string {
	if len(values) == 0 || width < 1 {
		return s.muted.Render(strings.Repeat("─", width))
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		b.WriteRune(chars[idx])
	}
	return s.ratio.Render(b.String())
}

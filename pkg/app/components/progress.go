package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/mkpdf/pkg/app/styles"
	"github.com/kerbaras/mkpdf/pkg/services"
)

// MergeTracker renders composer progress, both inline during a CLI run and
// inside the TUI.
type MergeTracker struct {
	current services.Progress
	width   int
}

func NewMergeTracker(width int) *MergeTracker {
	return &MergeTracker{width: width}
}

func (m *MergeTracker) Update(progress services.Progress) {
	m.current = progress
}

func (m *MergeTracker) Active() bool {
	return m.current.Stage != "" && m.current.Stage != "complete"
}

func (m *MergeTracker) View() string {
	if m.current.Stage == "" {
		return ""
	}

	var b strings.Builder

	statusText := m.current.Stage
	if m.current.Total > 0 {
		percentage := float64(m.current.Current) / float64(m.current.Total) * 100
		statusText = fmt.Sprintf("%s (%d/%d - %.0f%%)",
			m.current.Stage, m.current.Current, m.current.Total, percentage)

		bar := renderProgressBar(m.current.Current, m.current.Total, m.width-4)
		b.WriteString(bar)
		b.WriteString("\n")
	}

	b.WriteString(styles.StatusStyle(m.current.Stage).Render(statusText))

	if m.current.Err != nil {
		b.WriteString("\n")
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", m.current.Err)))
	}

	return b.String()
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
	return bar
}

// SimpleProgress renders a bare progress bar for inline CLI output.
func SimpleProgress(current, total, width int) string {
	return renderProgressBar(current, total, width)
}

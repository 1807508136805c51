package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mkpdf/pkg/app/styles"
	"github.com/kerbaras/mkpdf/pkg/data"
)

// PlanTree renders the merge plan as a navigable indented tree.
type PlanTree struct {
	Entries       []*data.Entry
	SelectedIndex int
	Width         int
	Height        int
	offset        int
}

func NewPlanTree() *PlanTree {
	return &PlanTree{
		Entries: []*data.Entry{},
		Width:   80,
		Height:  20,
	}
}

func (p *PlanTree) SetEntries(entries []*data.Entry) {
	p.Entries = entries
	if p.SelectedIndex >= len(entries) {
		p.SelectedIndex = 0
	}
	p.offset = 0
}

func (p *PlanTree) Next() {
	if len(p.Entries) == 0 {
		return
	}
	p.SelectedIndex++
	if p.SelectedIndex >= len(p.Entries) {
		p.SelectedIndex = 0
	}
	p.scrollToSelection()
}

func (p *PlanTree) Prev() {
	if len(p.Entries) == 0 {
		return
	}
	p.SelectedIndex--
	if p.SelectedIndex < 0 {
		p.SelectedIndex = len(p.Entries) - 1
	}
	p.scrollToSelection()
}

func (p *PlanTree) Selected() *data.Entry {
	if len(p.Entries) == 0 || p.SelectedIndex >= len(p.Entries) {
		return nil
	}
	return p.Entries[p.SelectedIndex]
}

func (p *PlanTree) scrollToSelection() {
	if p.SelectedIndex < p.offset {
		p.offset = p.SelectedIndex
	}
	if p.SelectedIndex >= p.offset+p.Height {
		p.offset = p.SelectedIndex - p.Height + 1
	}
}

func (p *PlanTree) View() string {
	if len(p.Entries) == 0 {
		emptyMsg := styles.MutedStyle.Render("Nothing to merge")
		return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	end := p.offset + p.Height
	if end > len(p.Entries) {
		end = len(p.Entries)
	}

	var b strings.Builder
	for i := p.offset; i < end; i++ {
		entry := p.Entries[i]

		line := fmt.Sprintf("%s%s %s", strings.Repeat("  ", entry.Depth), entryIcon(entry), entry.Label)
		if entry.IsFile() {
			line += styles.MutedStyle.Render(fmt.Sprintf("  (%s)", entry.Type))
		}

		if i == p.SelectedIndex {
			b.WriteString(styles.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(styles.TextStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func entryIcon(entry *data.Entry) string {
	switch entry.Type {
	case data.TypeFolder:
		return "📁"
	case data.TypePDF:
		return "📄"
	default:
		return "🖼️"
	}
}

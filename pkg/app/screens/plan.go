package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mkpdf/pkg/app/components"
	"github.com/kerbaras/mkpdf/pkg/app/styles"
	"github.com/kerbaras/mkpdf/pkg/data"
)

// PlanScreen is a read-only browser for the merge plan. It never writes the
// output document.
type PlanScreen struct {
	plan   *data.Plan
	tree   *components.PlanTree
	width  int
	height int
}

func NewPlanScreen(plan *data.Plan) *PlanScreen {
	tree := components.NewPlanTree()
	tree.SetEntries(plan.Entries)

	return &PlanScreen{
		plan: plan,
		tree: tree,
	}
}

func (s *PlanScreen) Init() tea.Cmd {
	return nil
}

func (s *PlanScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.tree.Width = msg.Width - 4
		s.tree.Height = msg.Height - 8

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return s, tea.Quit
		case "up", "k":
			s.tree.Prev()
		case "down", "j":
			s.tree.Next()
		}
	}

	return s, nil
}

func (s *PlanScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("📑 Merge Plan")
	summary := styles.SubtitleStyle.Render(
		fmt.Sprintf("%s (%d files)", s.plan.Root, len(s.plan.Files())),
	)

	var selected string
	if entry := s.tree.Selected(); entry != nil {
		selected = styles.MutedStyle.Render(entry.Path)
	}

	help := styles.HelpStyle.Render("↑/k: up • ↓/j: down • q: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n%s", header, summary, s.tree.View(), selected, help)
}

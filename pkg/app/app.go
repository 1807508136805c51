package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mkpdf/pkg/app/screens"
	"github.com/kerbaras/mkpdf/pkg/data"
)

type App struct {
	plan *data.Plan
}

// NewApp creates the interactive merge plan browser.
func NewApp(plan *data.Plan) *App {
	return &App{plan: plan}
}

func (a *App) Run() error {
	model := screens.NewPlanScreen(a.plan)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

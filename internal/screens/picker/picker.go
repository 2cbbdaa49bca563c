// Package picker implements the question set selection screen.
package picker

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/praclab/internal/router"
	"github.com/abhisek/praclab/internal/screen"
	"github.com/abhisek/praclab/internal/ui/components"
	"github.com/abhisek/praclab/internal/ui/layout"
	"github.com/abhisek/praclab/internal/ui/theme"
)

// Lister lists the available question sets.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// ChosenMsg is sent to the screen below the picker once a set is chosen.
type ChosenMsg struct {
	ID string
}

// listedMsg carries the result of listing the question directory.
type listedMsg struct {
	IDs []string
	Err error
}

// PickerScreen shows a menu of question sets.
type PickerScreen struct {
	lister Lister
	active string
	menu   components.Menu
	loaded bool
	err    error
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a picker that marks active as the current set.
func New(lister Lister, active string) *PickerScreen {
	return &PickerScreen{lister: lister, active: active}
}

func (p *PickerScreen) Init() tea.Cmd {
	lister := p.lister
	return func() tea.Msg {
		ids, err := lister.List(context.Background())
		return listedMsg{IDs: ids, Err: err}
	}
}

func (p *PickerScreen) Title() string {
	return "Choose a question set"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listedMsg:
		p.loaded = true
		p.err = msg.Err
		p.menu = p.buildMenu(msg.IDs)
		return p, nil

	case tea.KeyPressMsg:
		var cmd tea.Cmd
		p.menu, cmd = p.menu.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PickerScreen) buildMenu(ids []string) components.Menu {
	items := make([]components.MenuItem, 0, len(ids))
	selected := 0
	for i, id := range ids {
		item := components.MenuItem{Label: id, Action: choose(id)}
		if id == p.active {
			item.Detail = "(current)"
			selected = i
		}
		items = append(items, item)
	}
	menu := components.NewMenu(items)
	menu.Select(selected)
	return menu
}

// choose pops the picker and then delivers the choice to the screen below.
func choose(id string) func() tea.Cmd {
	return func() tea.Cmd {
		return tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return ChosenMsg{ID: id} },
		)
	}
}

func (p *PickerScreen) View(width, height int) string {
	var body string
	switch {
	case !p.loaded:
		body = theme.Hint.Render("Loading question sets...")
	case p.err != nil:
		body = theme.Incorrect.Render("Could not list question sets") + "\n\n" +
			theme.Body.Render(p.err.Error())
	case len(p.menu.Items) == 0:
		body = theme.Body.Render("No question files found.")
	default:
		body = p.menu.View()
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(body))
}

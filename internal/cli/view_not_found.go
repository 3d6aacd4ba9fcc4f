package cli

import (
	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/alexanderramin/planhub/internal/route"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// notFoundView is shown for any route that names no page.
type notFoundView struct {
	state *SharedState
	path  string
}

func newNotFoundView(state *SharedState, path string) *notFoundView {
	return &notFoundView{state: state, path: path}
}

func (v *notFoundView) ID() ViewID    { return ViewNotFound }
func (v *notFoundView) Title() string { return route.NotFound.Title() }
func (v *notFoundView) Init() tea.Cmd { return nil }

// Route keeps the unknown path in the location bar.
func (v *notFoundView) Route() route.Route {
	return route.Route{Kind: route.NotFound, Path: v.path}
}

func (v *notFoundView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "home")),
	}
}

func (v *notFoundView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		return v, navigate(route.Parse("/"))
	}
	return v, nil
}

func (v *notFoundView) View() string {
	return "\n" + indent(formatter.FormatNotFound(v.path))
}

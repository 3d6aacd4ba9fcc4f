package cli

import (
	"strings"

	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/alexanderramin/planhub/internal/route"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// homeView is the landing page: hero copy, subject cards, features and the
// getting-started timeline. It always sits at the bottom of the stack.
type homeView struct {
	state  *SharedState
	cursor int
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) ID() ViewID         { return ViewHome }
func (v *homeView) Title() string      { return route.Home.Title() }
func (v *homeView) Route() route.Route { return route.Parse("/") }
func (v *homeView) Init() tea.Cmd      { return nil }

// Selected returns the subject card under the cursor.
func (v *homeView) Selected() domain.Subject {
	return domain.SubjectCards[v.cursor].Subject
}

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "browse subject")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "plans")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "create")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload")),
	}
}

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(domain.SubjectCards)-1 {
			v.cursor++
		}
	case "enter":
		return v, navigate(route.PlansForSubject(v.Selected()))
	case "p":
		return v, navigate(route.Parse("/plans"))
	case "c":
		return v, navigate(route.Parse("/create"))
	case "u":
		return v, navigate(route.Parse("/upload"))
	}
	return v, nil
}

func (v *homeView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(indent(formatter.FormatHero()) + "\n\n")
	b.WriteString(indent(formatter.Header("熱門科目")) + "\n")
	b.WriteString(indent(formatter.FormatSubjectCards(v.cursor)) + "\n\n")
	b.WriteString(indent(formatter.Header("平台功能")) + "\n")
	b.WriteString(indent(formatter.FormatFeatures()) + "\n\n")
	b.WriteString(indent(formatter.Header("如何開始")) + "\n")
	b.WriteString(indent(formatter.FormatJourney()) + "\n")
	return b.String()
}

// indent prefixes every line of s with two spaces.
func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

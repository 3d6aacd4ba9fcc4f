package cli

import (
	"fmt"

	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/alexanderramin/planhub/internal/route"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// planDetailView shows the full card of one plan.
type planDetailView struct {
	state *SharedState
	plan  *domain.Plan
}

func newPlanDetailView(state *SharedState, p *domain.Plan) *planDetailView {
	return &planDetailView{state: state, plan: p}
}

func (v *planDetailView) ID() ViewID    { return ViewPlanDetail }
func (v *planDetailView) Title() string { return fmt.Sprintf("#%d", v.plan.ID) }
func (v *planDetailView) Init() tea.Cmd { return nil }

func (v *planDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "more in subject")),
	}
}

func (v *planDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "s" {
		// The card gives way to the subject's catalog.
		return v, replaceView(newPlansView(v.state, route.PlansForSubject(v.plan.Subject).Selection()))
	}
	return v, nil
}

func (v *planDetailView) View() string {
	return "\n" + indent(formatter.FormatPlanCard(v.plan, v.state.ContentWidth()-4))
}

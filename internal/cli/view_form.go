package cli

import (
	"strings"

	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formView hosts a huh.Form on the stack. The view underneath keeps the
// values the form writes into and picks them up in onSubmit.
type formView struct {
	state    *SharedState
	form     *huh.Form
	heading  string
	onSubmit func() tea.Cmd
}

func newFormView(state *SharedState, heading string, form *huh.Form, onSubmit func() tea.Cmd) *formView {
	return &formView{state: state, form: form, heading: heading, onSubmit: onSubmit}
}

func (v *formView) Init() tea.Cmd { return v.form.Init() }

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyEsc {
		notice := formatter.Dim(v.heading + " 已取消")
		return v, func() tea.Msg { return wizardCompleteOutput(notice) }
	}

	next, cmd := v.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State != huh.StateCompleted {
		return v, cmd
	}

	var then tea.Cmd
	if v.onSubmit != nil {
		then = v.onSubmit()
	}
	return v, func() tea.Msg {
		return wizardCompleteMsg{nextCmd: tea.Batch(cmd, then)}
	}
}

func (v *formView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header(v.heading))
	b.WriteString("\n\n")
	b.WriteString(v.form.View())
	return b.String()
}

func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.heading }

func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// pushFormCmd opens form on top of the stack. A nil form submits at once.
func pushFormCmd(state *SharedState, heading string, form *huh.Form, onSubmit func() tea.Cmd) tea.Cmd {
	if form != nil {
		return pushView(newFormView(state, heading, form, onSubmit))
	}
	if onSubmit != nil {
		return onSubmit()
	}
	return nil
}

// wizardCompleteOutput closes the form and shows msg in the output area.
func wizardCompleteOutput(msg string) tea.Msg {
	return wizardCompleteMsg{nextCmd: outputCmd(msg)}
}

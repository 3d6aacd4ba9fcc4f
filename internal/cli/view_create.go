package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/alexanderramin/planhub/internal/route"
	"github.com/alexanderramin/planhub/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// planSubmittedMsg carries the outcome of an asynchronous submission.
type planSubmittedMsg struct {
	view    *createView
	title   string
	receipt string
	err     error
}

func (m planSubmittedMsg) target() View { return m.view }

// createView drives the plan creation wizard. Step 1 is edited through a huh
// form; the list steps edit one entry at a time in a text input.
type createView struct {
	state   *SharedState
	machine *wizard.Machine
	editor  textinput.Model
	spinner spinner.Model

	// focus is the entry being edited on a list step. On the last step the
	// slot after the final entry is the notes field.
	focus int

	notice string
	err    error
}

func newCreateView(state *SharedState) *createView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200
	ti.Placeholder = "輸入內容"

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(formatter.StyleYellow))

	return &createView{
		state:   state,
		machine: wizard.New(),
		editor:  ti,
		spinner: sp,
	}
}

func (v *createView) ID() ViewID         { return ViewCreate }
func (v *createView) Title() string      { return route.Create.Title() }
func (v *createView) Route() route.Route { return route.Parse("/create") }
func (v *createView) Init() tea.Cmd      { return nil }

// capturingInput reports whether typed characters belong to the entry editor.
func (v *createView) capturingInput() bool {
	return v.onListStep()
}

func (v *createView) onListStep() bool {
	m := v.machine
	return !m.InPreview() && !m.Pending() && m.Step() > 1
}

func (v *createView) ShortHelp() []key.Binding {
	m := v.machine
	next := "next"
	if !m.CurrentStepValid() {
		next = "next (incomplete)"
	}
	switch {
	case m.Pending():
		return nil
	case m.InPreview():
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		}
	case m.Step() == 1:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit basics")),
			key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", next)),
		}
	default:
		return []key.Binding{
			key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab/shift+tab", "focus")),
			key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "add")),
			key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
			key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "back")),
			key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", next)),
		}
	}
}

func (v *createView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planSubmittedMsg:
		v.machine.FinishSubmit(msg.err)
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.notice = formatter.FormatSubmitted(msg.title, msg.receipt)
		return v, v.syncEditor()

	case spinner.TickMsg:
		if !v.machine.Pending() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch {
		case v.machine.Pending():
			return v, nil
		case v.machine.InPreview():
			return v.updatePreview(msg)
		case v.machine.Step() == 1:
			return v.updateBasics(msg)
		default:
			return v.updateList(msg)
		}
	}

	if v.onListStep() {
		var cmd tea.Cmd
		v.editor, cmd = v.editor.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *createView) updateBasics(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "e":
		v.notice = ""
		info := basicInfoFrom(v.machine.Draft())
		return v, pushFormCmd(v.state, "基本信息", wizardBasicInfo(info), func() tea.Cmd {
			v.applyBasicInfo(info)
			return nil
		})
	case "ctrl+n":
		return v, v.advance()
	}
	return v, nil
}

// applyBasicInfo copies the step-1 form values into the wizard.
func (v *createView) applyBasicInfo(info *basicInfo) {
	m := v.machine
	for _, err := range []error{
		m.SetTitle(strings.TrimSpace(info.Title)),
		m.SetSubject(info.Subject),
		m.SetLevel(info.Level),
		m.SetDuration(info.Duration),
	} {
		if err != nil {
			v.err = err
			return
		}
	}
	v.err = nil
}

func (v *createView) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := v.field()
	switch msg.String() {
	case "esc":
		return v, popView()
	case "ctrl+n":
		return v, v.advance()
	case "ctrl+b":
		if v.machine.Retreat() {
			return v, v.syncEditor()
		}
		return v, nil
	case "tab", "down":
		return v, v.focusEntry(v.focus + 1)
	case "shift+tab", "up":
		return v, v.focusEntry(v.focus - 1)
	case "ctrl+a", "enter":
		if err := v.machine.AppendEntry(field); err != nil {
			v.err = err
			return v, nil
		}
		return v, v.focusEntry(len(v.entries()) - 1)
	case "ctrl+d":
		if v.onNotes() {
			return v, nil
		}
		if err := v.machine.RemoveEntry(field, v.focus); err != nil {
			v.err = err
			return v, nil
		}
		return v, v.focusEntry(v.focus)
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	if v.onNotes() {
		v.err = v.machine.SetNotes(v.editor.Value())
	} else {
		v.err = v.machine.UpdateEntry(field, v.focus, v.editor.Value())
	}
	return v, cmd
}

func (v *createView) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e", "ctrl+b":
		if v.machine.BackToEdit() {
			return v, v.syncEditor()
		}
	case "enter":
		return v, v.submit()
	}
	return v, nil
}

// advance moves to the next step when the current one is complete.
func (v *createView) advance() tea.Cmd {
	v.notice = ""
	if !v.machine.Advance() {
		return nil
	}
	v.err = nil
	return v.syncEditor()
}

// syncEditor points the editor at the first entry of a list step, or blurs
// it anywhere else.
func (v *createView) syncEditor() tea.Cmd {
	if v.onListStep() {
		return v.focusEntry(0)
	}
	v.focus = 0
	v.editor.Blur()
	return nil
}

// submit starts the asynchronous submission of the previewed draft.
func (v *createView) submit() tea.Cmd {
	draft, err := v.machine.BeginSubmit()
	if err != nil {
		v.err = err
		return nil
	}
	v.err = nil
	submitter := v.state.App.Submitter
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		receipt, err := submitter.Submit(context.Background(), draft)
		return planSubmittedMsg{view: v, title: draft.Title, receipt: receipt, err: err}
	})
}

// field returns the list field owned by the current step.
func (v *createView) field() domain.ListField {
	switch v.machine.Step() {
	case 2:
		return domain.FieldObjectives
	case 3:
		return domain.FieldResources
	default:
		return domain.FieldSchedule
	}
}

func (v *createView) entries() []string {
	d := v.machine.Draft()
	return d.List(v.field())
}

func (v *createView) slots() int {
	n := len(v.entries())
	if v.machine.Step() == wizard.StepCount {
		n++
	}
	return n
}

func (v *createView) onNotes() bool {
	return v.machine.Step() == wizard.StepCount && v.focus == len(v.entries())
}

// focusEntry moves the editor to slot i, clamped to the current step.
func (v *createView) focusEntry(i int) tea.Cmd {
	n := v.slots()
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	v.focus = i
	if v.onNotes() {
		v.editor.SetValue(v.machine.Draft().Notes)
	} else {
		v.editor.SetValue(v.entries()[i])
	}
	v.editor.CursorEnd()
	return v.editor.Focus()
}

func (v *createView) View() string {
	m := v.machine
	var b strings.Builder
	b.WriteString("\n")
	if v.notice != "" {
		b.WriteString(indent(v.notice) + "\n\n")
	}
	b.WriteString("  " + formatter.FormatStepStrip(m) + "\n\n")

	switch {
	case m.InPreview():
		b.WriteString(indent(formatter.FormatDraftPreview(m.Preview())) + "\n")
		if m.Pending() {
			b.WriteString("\n  " + v.spinner.View() + " " + formatter.StyleYellow.Render("提交中...") + "\n")
		}
	case m.Step() == 1:
		b.WriteString(v.viewBasics())
	default:
		b.WriteString(v.viewList())
	}

	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	}
	if !m.InPreview() && !m.CurrentStepValid() {
		b.WriteString("\n  " + formatter.Dim("請填寫所有必填欄位後再進入下一步") + "\n")
	}
	return b.String()
}

func (v *createView) viewBasics() string {
	d := v.machine.Draft()
	step := wizard.Steps[0]
	var b strings.Builder
	b.WriteString("  " + formatter.StyleHeader.Render(step.Title) + "  " + formatter.Dim(step.Description) + "\n\n")
	rows := [][2]string{
		{"計劃標題", d.Title},
		{"科目", d.Subject},
		{"難度", d.Level},
		{"時長", d.Duration},
	}
	for _, r := range rows {
		val := r[1]
		if domain.IsBlank(val) {
			val = formatter.Dim("未填寫")
		}
		b.WriteString(fmt.Sprintf("    %s  %s\n", formatter.Dim(formatter.PadRight(r[0], 8)), val))
	}
	b.WriteString("\n  " + formatter.Dim("按 enter 編輯基本信息") + "\n")
	return b.String()
}

func (v *createView) viewList() string {
	step := wizard.Steps[v.machine.Step()-1]
	var b strings.Builder
	b.WriteString("  " + formatter.StyleHeader.Render(step.Title) + "  " + formatter.Dim(step.Description) + "\n\n")
	for i, e := range v.entries() {
		num := formatter.Dim(fmt.Sprintf("%d.", i+1))
		if i == v.focus && !v.onNotes() {
			b.WriteString(fmt.Sprintf("  %s%s %s\n", formatter.StyleGreen.Render("▸ "), num, v.editor.View()))
			continue
		}
		if domain.IsBlank(e) {
			e = formatter.Dim("(空白)")
		}
		b.WriteString(fmt.Sprintf("    %s %s\n", num, e))
	}
	if v.machine.Step() == wizard.StepCount {
		label := formatter.Dim("備註")
		if v.onNotes() {
			b.WriteString(fmt.Sprintf("\n  %s%s %s\n", formatter.StyleGreen.Render("▸ "), label, v.editor.View()))
		} else {
			b.WriteString(fmt.Sprintf("\n    %s %s\n", label, v.machine.Draft().Notes))
		}
	}
	return b.String()
}

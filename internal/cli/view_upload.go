package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/alexanderramin/planhub/internal/route"
	"github.com/alexanderramin/planhub/internal/upload"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// uploadDoneMsg carries the outcome of an asynchronous upload.
type uploadDoneMsg struct {
	view *uploadView
	err  error
}

func (m uploadDoneMsg) target() View { return m.view }

// uploadResetMsg clears a completed upload. gen ties it to the upload that
// scheduled it.
type uploadResetMsg struct {
	view *uploadView
	gen  int
}

func (m uploadResetMsg) target() View { return m.view }

// uploadView selects files and tags and runs the simulated upload.
type uploadView struct {
	state   *SharedState
	session *upload.Session
	cursor  int
	spinner spinner.Model

	tagging  bool
	tagInput textinput.Model

	gen int
	err error
}

func newUploadView(state *SharedState) *uploadView {
	ti := textinput.New()
	ti.Prompt = "# "
	ti.CharLimit = 40
	ti.Placeholder = "新增標籤"

	return &uploadView{
		state:    state,
		session:  upload.NewSession(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(formatter.StyleYellow)),
		tagInput: ti,
	}
}

func (v *uploadView) ID() ViewID         { return ViewUpload }
func (v *uploadView) Title() string      { return route.Upload.Title() }
func (v *uploadView) Route() route.Route { return route.Parse("/upload") }
func (v *uploadView) Init() tea.Cmd      { return nil }

func (v *uploadView) capturingInput() bool { return v.tagging }

func (v *uploadView) ShortHelp() []key.Binding {
	if v.tagging {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add tag")),
			key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "remove last")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		}
	}
	if v.session.State() == upload.StateUploading {
		return nil
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add files")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tags")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload")),
	}
}

func (v *uploadView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadDoneMsg:
		v.session.FinishUpload(msg.err)
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		return v, v.scheduleReset()

	case uploadResetMsg:
		if msg.gen == v.gen && v.session.State() == upload.StateComplete {
			v.session.Clear()
			v.cursor = 0
		}
		return v, nil

	case spinner.TickMsg:
		if v.session.State() != upload.StateUploading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.tagging {
			return v.updateTags(msg)
		}
		if v.session.State() == upload.StateUploading {
			return v, nil
		}
		return v.updateKeys(msg)
	}

	if v.tagging {
		var cmd tea.Cmd
		v.tagInput, cmd = v.tagInput.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *uploadView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	files := v.session.Files()
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(files)-1 {
			v.cursor++
		}
	case "a":
		in := &uploadInput{}
		return v, pushFormCmd(v.state, "選擇檔案", wizardUploadFiles(in), func() tea.Cmd {
			v.addFiles(splitList(in.Paths)...)
			v.addTags(splitList(in.Tags)...)
			return nil
		})
	case "t":
		v.tagging = true
		v.tagInput.Reset()
		return v, v.tagInput.Focus()
	case "d":
		if v.cursor < len(files) {
			v.session.RemoveFile(files[v.cursor].ID)
			if v.cursor > 0 && v.cursor >= len(files)-1 {
				v.cursor--
			}
		}
	case "u":
		return v, v.startUpload()
	}
	return v, nil
}

func (v *uploadView) updateTags(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.tagging = false
		v.tagInput.Blur()
		return v, nil
	case tea.KeyEnter:
		v.addTags(v.tagInput.Value())
		v.tagInput.Reset()
		return v, nil
	case tea.KeyBackspace:
		if v.tagInput.Value() == "" {
			v.session.PopTag()
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.tagInput, cmd = v.tagInput.Update(msg)
	return v, cmd
}

// addFiles appends files to the selection. A finished upload is cleared
// first so the new selection starts a new upload.
func (v *uploadView) addFiles(paths ...string) {
	if v.session.State() == upload.StateComplete {
		v.gen++
		v.session.Clear()
	}
	if _, err := v.session.AddFiles(paths...); err != nil {
		v.err = err
		return
	}
	v.err = nil
}

func (v *uploadView) addTags(tags ...string) {
	for _, t := range tags {
		v.session.AddTag(t)
	}
}

// startUpload begins the asynchronous upload of the current selection.
func (v *uploadView) startUpload() tea.Cmd {
	files, err := v.session.BeginUpload()
	if err != nil {
		if errors.Is(err, upload.ErrNoFiles) {
			v.err = errors.New("請先選擇要上傳的檔案")
		} else {
			v.err = err
		}
		return nil
	}
	v.err = nil
	v.gen++
	tags := v.session.Tags()
	uploads := v.state.App.Uploads
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		err := uploads.Upload(context.Background(), files, tags)
		return uploadDoneMsg{view: v, err: err}
	})
}

// scheduleReset clears the finished upload after the configured delay.
// A non-positive delay keeps it on screen.
func (v *uploadView) scheduleReset() tea.Cmd {
	after := v.state.App.UploadResetAfter
	if after <= 0 {
		return nil
	}
	gen := v.gen
	return tea.Tick(after, func(time.Time) tea.Msg {
		return uploadResetMsg{view: v, gen: gen}
	})
}

func (v *uploadView) View() string {
	files := v.session.Files()
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.StyleHeader.Render("上傳檔案") + "  " +
		formatter.Dim("支援 PDF、Word、Excel、PowerPoint 與圖片") + "\n\n")

	cursor := v.cursor
	if v.session.State() != upload.StateIdle {
		cursor = -1
	}
	b.WriteString(indent(formatter.FormatFileList(files, cursor)) + "\n\n")

	b.WriteString("  " + formatter.Dim("標籤:") + " " + formatter.FormatTags(v.session.Tags()) + "\n")
	if v.tagging {
		b.WriteString("  " + v.tagInput.View() + "\n")
	}

	switch v.session.State() {
	case upload.StateUploading:
		b.WriteString("\n  " + v.spinner.View() + " " + formatter.FormatUploadState(upload.StateUploading, 0, len(files)) + "\n")
	case upload.StateComplete:
		b.WriteString("\n  " + formatter.FormatUploadState(upload.StateComplete, len(files), len(files)) + "\n")
	}

	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	}
	return b.String()
}

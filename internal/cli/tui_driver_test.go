package cli

import (
	"testing"

	"github.com/alexanderramin/planhub/internal/route"
	"github.com/alexanderramin/planhub/internal/teatest"
	"github.com/charmbracelet/x/ansi"
)

// stripANSI removes terminal escape sequences so assertions can match text.
func stripANSI(s string) string {
	return ansi.Strip(s)
}

// TestDriver wraps teatest.Driver with planhub-specific inspection methods.
// It provides access to appModel internals (view stack, shared state,
// command bar focus) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App, starting at home.
// It constructs the appModel, sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	return NewTestDriverAt(t, app, "/")
}

// NewTestDriverAt starts the TUI at target. Catalog data loads synchronously
// from in-memory SQLite while Init() drains.
func NewTestDriverAt(t *testing.T, app *App, target string) *TestDriver {
	t.Helper()

	m := newAppModel(app, route.Parse(target))
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Command focuses the command bar with ':', types the command, and presses Enter.
// After execution, it blurs the command bar (via Esc) so subsequent key presses
// route to the active view rather than the text input.
// Routes auto-blur via navigation, but output-only commands (help) leave the
// bar focused. This helper normalizes to blurred so tests can interact with
// views immediately after.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.PressEnter()
	// Blur if the bar is still focused (output-only commands don't auto-blur).
	if d.CmdBarFocused() {
		d.PressEsc()
	}
}

// PlainView returns the rendered screen without escape sequences.
func (d *TestDriver) PlainView() string {
	return stripANSI(d.View())
}

// ── planhub-specific inspection ──────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
// Checks model.quitting (q/Ctrl+C/quitMsg) and the driver's Quitting flag
// (tea.QuitMsg via tea.Quit).
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// CmdBarFocused returns whether the command bar currently has focus.
func (d *TestDriver) CmdBarFocused() bool {
	m := d.appModel()
	return m.cmdBar.Focused()
}

// LastOutput returns the last command output displayed in the content area.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}

// Location returns the route mirrored in the header.
func (d *TestDriver) Location() string {
	return d.appModel().state.Location.String()
}

// activeAs returns the top view as V, failing the test otherwise.
func activeAs[V View](d *TestDriver) V {
	d.T.Helper()
	m := d.appModel()
	v, ok := m.activeView().(V)
	if !ok {
		d.T.Fatalf("active view is %T", m.activeView())
	}
	return v
}

// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and every returned Cmd is run to completion
// before the next input, so a test reads like a scripted key session with
// no goroutines of its own. Timer-backed Cmds (cursor blink, spinner ticks,
// tea.Tick) block far longer than real work does; they are cut off after a
// short timeout and their messages dropped.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds one input may trigger.
const MaxDrainDepth = 100

// cmdTimeout separates immediate Cmds (SQLite reads, message factories,
// zero-delay submissions) from ones waiting on a timer.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg comes out of a drained Cmd. The
	// runtime normally swallows it, so models rarely record it themselves.
	Quitting bool

	// Seen lists every message delivered to Update, in order.
	Seen []tea.Msg
}

// New creates a Driver for model and applies opts.
// Call DrainInit afterwards to run the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Option configures a Driver during construction.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		d.deliver(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// DrainInit runs the model's Init command and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.Drain(d.Model.Init())
}

// Drain runs cmd and feeds the resulting messages back through Update.
func (d *Driver) Drain(cmd tea.Cmd) {
	d.T.Helper()
	d.drainCmd(cmd, 0)
}

// Send dispatches msg through Update and drains the returned Cmd.
// Nothing is delivered after the model has quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.drainCmd(d.deliver(msg), 0)
}

func (d *Driver) deliver(msg tea.Msg) tea.Cmd {
	d.Seen = append(d.Seen, msg)
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	return cmd
}

// ── keys ─────────────────────────────────────────────────────────────────────

// SendKey sends a tea.KeyMsg through the model.
func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// PressKey sends a single character.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressType sends a non-character key such as tea.KeyTab or tea.KeyCtrlN.
func (d *Driver) PressType(k tea.KeyType) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: k})
}

func (d *Driver) PressEnter()     { d.T.Helper(); d.PressType(tea.KeyEnter) }
func (d *Driver) PressEsc()       { d.T.Helper(); d.PressType(tea.KeyEsc) }
func (d *Driver) PressCtrlC()     { d.T.Helper(); d.PressType(tea.KeyCtrlC) }
func (d *Driver) PressUp()        { d.T.Helper(); d.PressType(tea.KeyUp) }
func (d *Driver) PressDown()      { d.T.Helper(); d.PressType(tea.KeyDown) }
func (d *Driver) PressTab()       { d.T.Helper(); d.PressType(tea.KeyTab) }
func (d *Driver) PressShiftTab()  { d.T.Helper(); d.PressType(tea.KeyShiftTab) }
func (d *Driver) PressBackspace() { d.T.Helper(); d.PressType(tea.KeyBackspace) }

// Type sends s one character at a time. Spaces go out as tea.KeySpace, the
// way a terminal reports them.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		if r == ' ' {
			d.SendKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		d.PressKey(r)
	}
}

// View returns the model's rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

// SeenOfType counts delivered messages whose dynamic type matches sample.
func (d *Driver) SeenOfType(sample tea.Msg) int {
	want := fmt.Sprintf("%T", sample)
	n := 0
	for _, m := range d.Seen {
		if fmt.Sprintf("%T", m) == want {
			n++
		}
	}
	return n
}

// ── draining ─────────────────────────────────────────────────────────────────

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drainCmd(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.deliver(msg)
	default:
		d.drainCmd(d.deliver(msg), depth+1)
	}
}

// execCmdWithTimeout runs cmd and returns its message, or nil when it does
// not finish within cmdTimeout.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink messages of bubbles/cursor,
// which chain into timer Cmds when delivered.
func isCursorBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}

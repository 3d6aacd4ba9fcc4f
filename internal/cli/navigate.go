package cli

import (
	"github.com/alexanderramin/planhub/internal/route"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// navigateMsg opens the page for a route. Home clears the stack.
type navigateMsg struct {
	route route.Route
}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the current view.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// quitMsg signals the app to quit.
type quitMsg struct{}

// viewMsg is an async result addressed to the view that started it.
type viewMsg interface {
	target() View
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// navigate returns a tea.Cmd that opens the page for r.
func navigate(r route.Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{route: r} }
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// viewForRoute builds the page view for a route.
func viewForRoute(state *SharedState, r route.Route) View {
	switch r.Kind {
	case route.Home:
		return newHomeView(state)
	case route.Plans:
		return newPlansView(state, r.Selection())
	case route.Create:
		return newCreateView(state)
	case route.Upload:
		return newUploadView(state)
	default:
		return newNotFoundView(state, r.Path)
	}
}

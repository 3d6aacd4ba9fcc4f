package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/alexanderramin/planhub/internal/route"
	tea "github.com/charmbracelet/bubbletea"
)

// executeCommand dispatches a command-bar line and returns a tea.Cmd.
// A line starting with "/" is a route; otherwise the first word names a page
// or one of the few built-in commands.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	if strings.HasPrefix(input, "/") {
		return navigate(route.Parse(input))
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "home", "plans", "create", "upload":
		return navigate(route.Parse(cmd))
	case "plan":
		return c.cmdPlan(args)
	case "help":
		return outputCmd(formatCommandHelp())
	case "exit", "quit":
		return func() tea.Msg { return quitMsg{} }
	default:
		return navigate(route.Parse(input))
	}
}

// cmdPlan opens the detail view for a plan id.
func (c *commandBar) cmdPlan(args []string) tea.Cmd {
	if len(args) == 0 {
		return outputCmd(formatter.StyleYellow.Render("Usage: plan <id>"))
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return outputCmd(formatter.StyleRed.Render(fmt.Sprintf("invalid plan id %q", args[0])))
	}
	p, err := c.state.App.Catalog.Get(context.Background(), id)
	if err != nil {
		return outputCmd(formatter.StyleRed.Render("Error: " + err.Error()))
	}
	return pushView(newPlanDetailView(c.state, p))
}

func formatCommandHelp() string {
	rows := [][]string{
		{"/plans?subject=數學", "open a page by route"},
		{"home, plans, create, upload", "open a page by name"},
		{"plan <id>", "show one plan"},
		{"quit", "leave planhub"},
	}
	return formatter.RenderBox("Commands", formatter.RenderTable([]string{"COMMAND", "DESCRIPTION"}, rows))
}

package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/alexanderramin/planhub/internal/route"
	"github.com/alexanderramin/planhub/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds references to the services and settings used by CLI commands
// and the TUI.
type App struct {
	Catalog   service.CatalogService
	Submitter service.PlanSubmitter
	Uploads   service.UploadService

	// UploadResetAfter is how long a finished upload stays on screen before
	// the upload view clears itself.
	UploadResetAfter time.Duration

	// IsInteractive reports whether stdout is a terminal. Nil means never.
	IsInteractive func() bool

	Logger *zap.Logger
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) log() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "planhub" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "planhub",
		Short:         "Browse, create and upload study plans",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(app, route.Parse("/"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHome())
			return nil
		},
	}

	root.AddCommand(
		newOpenCmd(app),
		newPlansCmd(app),
		newCreateCmd(app),
		newUploadCmd(app),
		newSubjectsCmd(),
	)

	return root
}

// runTUI starts the full-screen interface at the given route.
func runTUI(app *App, start route.Route) error {
	app.log().Info("tui start", zap.String("route", start.String()))
	p := tea.NewProgram(newAppModel(app, start), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func newSubjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "List subjects with their plan counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSubjectCards(-1))
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/alexanderramin/planhub/internal/route"
	"github.com/alexanderramin/planhub/internal/wizard"
	"github.com/spf13/cobra"
)

func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open [ROUTE]",
		Short: "Open a page, e.g. /plans?subject=數學",
		Long: `Open the interface at a route. Known routes are /, /plans, /create and
/upload; /plans takes an optional subject parameter. Without a terminal the
page is printed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "/"
			if len(args) == 1 {
				target = args[0]
			}
			r := route.Parse(target)
			if app.interactive() {
				return runTUI(app, r)
			}
			page, err := renderRoute(context.Background(), app, r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), page)
			return nil
		},
	}
}

// renderRoute prints the static form of a page.
func renderRoute(ctx context.Context, app *App, r route.Route) (string, error) {
	heading := formatter.Header(r.Kind.Title()) + "\n"
	switch r.Kind {
	case route.Home:
		return formatter.FormatHome(), nil
	case route.Plans:
		sel := r.Selection()
		plans, err := app.Catalog.List(ctx, sel)
		if err != nil {
			return "", err
		}
		return heading + formatter.FormatSelection(sel, len(plans)) + "\n" +
			formatter.FormatPlanTable(plans), nil
	case route.Create:
		return heading + formatter.FormatStepStrip(wizard.New()), nil
	case route.Upload:
		return heading + formatter.FormatFileList(nil, -1), nil
	default:
		return formatter.FormatNotFound(r.Path), nil
	}
}

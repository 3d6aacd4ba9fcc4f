package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/planhub/internal/catalog"
	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/spf13/cobra"
)

func newPlansCmd(app *App) *cobra.Command {
	sel := domain.DefaultSelection()

	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List study plans with optional filters",
		Example: `  planhub plans --subject 數學 --sort newest
  planhub plans --level 進階 --duration 6週`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Catalog.List(context.Background(), sel)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatSelection(sel, len(plans)))
			fmt.Fprintln(out, formatter.FormatPlanTable(plans))
			fmt.Fprintln(out, formatter.Dim("?"+catalog.QueryString(sel)))
			return nil
		},
	}

	addSelectionFlags(cmd.Flags(), &sel)
	cmd.AddCommand(newPlansShowCmd(app))

	return cmd
}

func newPlansShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one study plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid plan id %q: %w", args[0], err)
			}
			p, err := app.Catalog.Get(context.Background(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlanCard(p, 60))
			return nil
		},
	}
}

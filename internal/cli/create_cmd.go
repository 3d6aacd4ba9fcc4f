package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/alexanderramin/planhub/internal/wizard"
	"github.com/spf13/cobra"
)

// draftInput is the flag-supplied content of a new plan.
type draftInput struct {
	title, subject, level, duration string
	objectives, resources, schedule []string
	notes                           string
}

func newCreateCmd(app *App) *cobra.Command {
	var in draftInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a study plan without the interactive wizard",
		Example: `  planhub create --title 代數入門 --subject 數學 --level 基礎 --duration 4週 \
    --objective 熟悉方程式 --resource 課本 --schedule "第1週 基礎"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := wizard.New()
			if err := fillWizard(m, in); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatDraftPreview(m.Preview()))

			stop := formatter.StartSpinner(cmd.ErrOrStderr(), "提交中...")
			receipt, err := m.Submit(context.Background(), app.Submitter)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatSubmitted(in.title, receipt))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.title, "title", "", "Plan title")
	cmd.Flags().StringVar(&in.subject, "subject", "", "Subject ("+joinSubjects()+")")
	cmd.Flags().StringVar(&in.level, "level", "", "Level (基礎, 中級, 進階)")
	cmd.Flags().StringVar(&in.duration, "duration", "", "Duration, e.g. 4週")
	cmd.Flags().StringArrayVar(&in.objectives, "objective", nil, "Learning objective (repeatable)")
	cmd.Flags().StringArrayVar(&in.resources, "resource", nil, "Learning resource (repeatable)")
	cmd.Flags().StringArrayVar(&in.schedule, "schedule", nil, "Schedule entry (repeatable)")
	cmd.Flags().StringVar(&in.notes, "notes", "", "Optional notes")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("level")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

// fillWizard walks m through every editing step with the given input and
// leaves it in preview. It stops at the first incomplete step.
func fillWizard(m *wizard.Machine, in draftInput) error {
	if _, err := domain.ParseSubject(in.subject); err != nil {
		return err
	}
	if _, err := domain.ParseLevel(in.level); err != nil {
		return err
	}
	if err := m.SetTitle(in.title); err != nil {
		return err
	}
	if err := m.SetSubject(in.subject); err != nil {
		return err
	}
	if err := m.SetLevel(in.level); err != nil {
		return err
	}
	if err := m.SetDuration(in.duration); err != nil {
		return err
	}
	if err := advance(m); err != nil {
		return err
	}

	lists := []struct {
		field   domain.ListField
		entries []string
	}{
		{domain.FieldObjectives, in.objectives},
		{domain.FieldResources, in.resources},
		{domain.FieldSchedule, in.schedule},
	}
	for _, l := range lists {
		for i, e := range l.entries {
			if i > 0 {
				if err := m.AppendEntry(l.field); err != nil {
					return err
				}
			}
			if err := m.UpdateEntry(l.field, i, e); err != nil {
				return err
			}
		}
		if l.field == domain.FieldSchedule && in.notes != "" {
			if err := m.SetNotes(in.notes); err != nil {
				return err
			}
		}
		if err := advance(m); err != nil {
			return err
		}
	}
	return nil
}

func advance(m *wizard.Machine) error {
	step := m.Step()
	if !m.Advance() {
		return fmt.Errorf("step %d (%s) is incomplete", step, wizard.Steps[step-1].Title)
	}
	return nil
}

package cli

import (
	"strings"

	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/alexanderramin/planhub/internal/wizard"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// planhubHuhTheme styles huh forms with the formatter palette: the focused
// field takes the header accent, everything else is dimmed.
func planhubHuhTheme() *huh.Theme {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	t := huh.ThemeBase()

	f := &t.Focused
	f.Base = f.Base.BorderForeground(formatter.ColorHeader)
	f.Title = fg(formatter.ColorHeader).Bold(true)
	f.Description = fg(formatter.ColorDim)
	f.ErrorIndicator = fg(formatter.ColorRed)
	f.ErrorMessage = fg(formatter.ColorRed)
	f.SelectSelector = fg(formatter.ColorHeader)
	f.SelectedOption = fg(formatter.ColorGreen)
	f.UnselectedOption = fg(formatter.ColorFg)
	f.FocusedButton = fg(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	f.BlurredButton = fg(formatter.ColorDim).Padding(0, 1)
	f.TextInput.Cursor = fg(formatter.ColorYellow)
	f.TextInput.Prompt = fg(formatter.ColorHeader)
	f.TextInput.Text = fg(formatter.ColorFg)
	f.TextInput.Placeholder = fg(formatter.ColorDim)

	dim := fg(formatter.ColorDim)
	b := &t.Blurred
	b.Base = b.Base.BorderForeground(formatter.ColorDim)
	b.Title, b.Description = dim, dim
	b.SelectSelector, b.SelectedOption, b.UnselectedOption = dim, dim, dim
	b.TextInput.Prompt, b.TextInput.Text = dim, dim

	return t
}

// basicInfo holds the step-1 form values while the form is open.
type basicInfo struct {
	Title    string
	Subject  string
	Level    string
	Duration string
}

// basicInfoFrom copies the step-1 fields of a draft.
func basicInfoFrom(d domain.PlanDraft) *basicInfo {
	return &basicInfo{Title: d.Title, Subject: d.Subject, Level: d.Level, Duration: d.Duration}
}

// wizardBasicInfo creates the step-1 form: title, subject, level, duration.
func wizardBasicInfo(v *basicInfo) *huh.Form {
	subjects := make([]huh.Option[string], 0, len(domain.Subjects))
	for _, s := range domain.Subjects {
		subjects = append(subjects, huh.NewOption(string(s), string(s)))
	}
	levels := make([]huh.Option[string], 0, len(domain.Levels))
	for _, l := range domain.Levels {
		levels = append(levels, huh.NewOption(string(l), string(l)))
	}

	return huh.NewForm(
		huh.NewGroup(
			requiredInput("計劃標題", "例如：國中數學代數基礎", &v.Title),
			huh.NewSelect[string]().
				Title("科目").
				Options(subjects...).
				Value(&v.Subject),
			huh.NewSelect[string]().
				Title("難度").
				Options(levels...).
				Value(&v.Level),
			huh.NewSelect[string]().
				Title("時長").
				Options(huh.NewOptions(wizard.CreationDurations...)...).
				Value(&v.Duration),
		),
	).WithTheme(planhubHuhTheme()).WithShowHelp(false)
}

// uploadInput holds the upload form values while the form is open.
type uploadInput struct {
	Paths string
	Tags  string
}

// wizardUploadFiles creates the form that adds files and tags to an upload.
func wizardUploadFiles(v *uploadInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("檔案路徑").
				Description("多個檔案以逗號分隔").
				Placeholder("plan.pdf, notes.docx").
				Value(&v.Paths),
			huh.NewInput().
				Title("標籤").
				Description("以逗號分隔，可留空").
				Placeholder("數學, 代數").
				Value(&v.Tags),
		),
	).WithTheme(planhubHuhTheme()).WithShowHelp(false)
}

// splitList splits a comma-separated form value and drops blanks. Both ASCII
// and full-width commas separate entries.
func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '，' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

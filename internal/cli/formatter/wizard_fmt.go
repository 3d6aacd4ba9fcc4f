package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/alexanderramin/planhub/internal/wizard"
)

// FormatStepStrip renders the wizard progress strip, one segment per step.
func FormatStepStrip(m *wizard.Machine) string {
	segments := make([]string, 0, len(wizard.Steps)+1)
	for _, s := range wizard.Steps {
		label := fmt.Sprintf("%d %s", s.Number, s.Title)
		switch m.StepStatus(s.Number) {
		case wizard.StatusDone:
			segments = append(segments, StyleGreen.Render("✓ "+label))
		case wizard.StatusCurrent:
			segments = append(segments, StyleHeader.Render("● "+label))
		default:
			segments = append(segments, Dim("○ "+label))
		}
	}
	if m.InPreview() {
		segments = append(segments, StyleHeader.Render("● 預覽"))
	}
	return strings.Join(segments, Dim(" ─ "))
}

// FormatDraftPreview renders a compacted draft for review before submission.
func FormatDraftPreview(d domain.PlanDraft) string {
	var b strings.Builder
	b.WriteString(Bold(d.Title) + "\n")
	b.WriteString(SubjectBadge(domain.Subject(d.Subject)) + "  " +
		LevelBadge(domain.Level(d.Level)) + "  " + Dim("⏱ ") + d.Duration + "\n")

	for _, f := range []domain.ListField{domain.FieldObjectives, domain.FieldResources, domain.FieldSchedule} {
		b.WriteString("\n" + StyleHeader.Render(f.Label()) + "\n")
		for i, e := range d.List(f) {
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim(fmt.Sprintf("%d.", i+1)), e))
		}
	}
	if strings.TrimSpace(d.Notes) != "" {
		b.WriteString("\n" + StyleHeader.Render("備註") + "\n  " + d.Notes + "\n")
	}
	return RenderBox("計劃預覽", b.String())
}

// FormatSubmitted renders the success notice shown after submission.
func FormatSubmitted(title, receipt string) string {
	return StyleGreen.Render("✔ 學習計劃創建成功！") + "  " + Bold(title) + "\n" +
		Dim("receipt: "+receipt)
}

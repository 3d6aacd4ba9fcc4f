package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/planhub/internal/domain"
)

// FormatPlanTable renders catalog results as a table inside a box.
func FormatPlanTable(plans []*domain.Plan) string {
	if len(plans) == 0 {
		return RenderBox("學習計劃", Dim("沒有符合條件的學習計劃"))
	}

	headers := []string{"ID", "TITLE", "SUBJECT", "LEVEL", "DURATION", "RATING", "AUTHOR"}
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			StyleGreen.Render(strconv.Itoa(p.ID)),
			Bold(Truncate(p.Title, 28)),
			SubjectBadge(p.Subject),
			LevelBadge(p.Level),
			p.Duration,
			Rating(p.Rating) + " " + ReviewCount(p.ReviewCount),
			p.Author,
		})
	}
	return RenderBox("學習計劃", RenderTable(headers, rows))
}

// FormatSelection renders the active filters, sort order and result count.
func FormatSelection(sel domain.Selection, count int) string {
	parts := []string{
		filterPart("科目", string(sel.Subject)),
		filterPart("難度", string(sel.Level)),
		filterPart("時長", DurationLabel(sel.Duration)),
		Dim("排序:") + " " + StyleYellow.Render(sel.Normalized().Sort.Label()),
	}
	return strings.Join(parts, "  ") + "  " + Dim(fmt.Sprintf("共 %d 個計劃", count))
}

// DurationLabel returns the filter label for a duration value.
func DurationLabel(d string) string {
	if d == "8週" {
		return "8週以上"
	}
	return d
}

func filterPart(label, value string) string {
	if value == "" {
		return Dim(label + ": 全部")
	}
	return Dim(label+":") + " " + StyleGreen.Render(value)
}

// FormatPlanCard renders the detail card for one plan.
func FormatPlanCard(p *domain.Plan, width int) string {
	if width <= 0 {
		width = 60
	}
	var b strings.Builder
	b.WriteString(Bold(p.Title) + "\n\n")
	b.WriteString(SubjectBadge(p.Subject) + "  " + LevelBadge(p.Level) + "  " + Dim("⏱ ") + p.Duration + "\n")
	b.WriteString(Rating(p.Rating) + " " + ReviewCount(p.ReviewCount) + "  " + Dim("作者:") + " " + p.Author + "\n\n")
	b.WriteString(Wrap(p.Description, width) + "\n")
	if p.ThumbnailURL != "" {
		b.WriteString("\n" + Dim(p.ThumbnailURL))
	}
	return RenderBox(fmt.Sprintf("計劃 #%d", p.ID), b.String())
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(title) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Truncate shortens s to at most width terminal cells, ending in "…".
// Wide (CJK) runes count as two cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight truncates or pads s to exactly width terminal cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// Rating renders a rating like "★ 4.8".
func Rating(r float64) string {
	return StyleYellow.Render("★") + " " + fmt.Sprintf("%.1f", r)
}

// ReviewCount renders a review count with thousands separators, e.g. "(1,280)".
func ReviewCount(n int) string {
	return Dim("(" + humanize.Comma(int64(n)) + ")")
}

// FileSize renders a byte count like "1.2 MiB". Zero means unknown.
func FileSize(n int64) string {
	if n <= 0 {
		return "--"
	}
	return humanize.IBytes(uint64(n))
}

// Wrap breaks text into lines of at most width cells. CJK text has no
// spaces, so the break happens on cell count alone.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var b strings.Builder
	line := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if line+w > width {
			b.WriteByte('\n')
			line = 0
		}
		b.WriteRune(r)
		line += w
	}
	return b.String()
}

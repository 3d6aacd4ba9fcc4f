package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planhub/internal/domain"
)

// FormatHero renders the landing headline.
func FormatHero() string {
	return StyleHeader.Render("學習計劃平台") + "\n" +
		StyleFg.Render("為國高中生打造的個人化學習計劃，從探索到執行一站完成。") + "\n" +
		Dim("/plans 瀏覽計劃   /create 創建計劃   /upload 上傳計劃")
}

// FormatSubjectCards renders the subject grid. cursor < 0 hides the marker.
func FormatSubjectCards(cursor int) string {
	var b strings.Builder
	for i, c := range domain.SubjectCards {
		marker := "  "
		name := StyleFg.Render(string(c.Subject))
		if i == cursor {
			marker = StyleGreen.Render("▸ ")
			name = Bold(string(c.Subject))
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n", marker, name, PadRight(c.Description, 44), StyleGreen.Render(c.PlanCount+" 計劃")))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatFeatures renders the feature list.
func FormatFeatures() string {
	lines := make([]string, len(domain.Features))
	for i, f := range domain.Features {
		lines[i] = StyleGreen.Render("✓ ") + Bold(f.Title) + "  " + Dim(f.Description)
	}
	return strings.Join(lines, "\n")
}

// FormatJourney renders the four-step timeline.
func FormatJourney() string {
	lines := make([]string, len(domain.Journey))
	for i, s := range domain.Journey {
		lines[i] = StyleHeader.Render(fmt.Sprintf("%d", i+1)) + " " + Bold(s.Title) + "  " + Dim(s.Description)
	}
	return strings.Join(lines, "\n")
}

// FormatHome renders the full landing page for non-interactive output.
func FormatHome() string {
	return strings.Join([]string{
		FormatHero(),
		"",
		Header("熱門科目"),
		FormatSubjectCards(-1),
		"",
		Header("平台功能"),
		FormatFeatures(),
		"",
		Header("如何開始"),
		FormatJourney(),
	}, "\n")
}

// FormatNotFound renders the catch-all page for an unknown path.
func FormatNotFound(path string) string {
	return StyleRed.Render("404") + "  " + Bold("頁面不存在") + "\n\n" +
		"很抱歉，您嘗試訪問的頁面不存在或已被移除。\n" +
		Dim(path) + "\n\n" +
		StyleGreen.Render("返回首頁")
}

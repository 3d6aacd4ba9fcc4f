package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planhub/internal/upload"
	"github.com/charmbracelet/lipgloss"
)

// KindBadge renders a file kind as a colored label.
func KindBadge(k upload.Kind) string {
	var style lipgloss.Style
	switch k {
	case upload.KindPDF:
		style = StyleRed
	case upload.KindDoc:
		style = StyleBlue
	case upload.KindSheet:
		style = StyleGreen
	case upload.KindSlide:
		style = StyleHeader
	case upload.KindImage:
		style = StylePurple
	default:
		style = StyleDim
	}
	return style.Render(fmt.Sprintf("%-4s", string(k)))
}

// FormatFileList renders the selected files. cursor < 0 hides the marker.
func FormatFileList(files []upload.File, cursor int) string {
	if len(files) == 0 {
		return Dim("尚未選擇檔案")
	}
	var b strings.Builder
	for i, f := range files {
		marker := "  "
		if i == cursor {
			marker = StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", marker, KindBadge(f.Kind), PadRight(f.Name, 32), Dim(FileSize(f.Size))))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatTags renders tags as "#tag" chips.
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return Dim("沒有標籤")
	}
	chips := make([]string, len(tags))
	for i, t := range tags {
		chips[i] = StyleBlue.Render("#" + t)
	}
	return strings.Join(chips, " ")
}

// FormatUploadState renders the lifecycle line for an upload session.
func FormatUploadState(state upload.State, done, total int) string {
	switch state {
	case upload.StateUploading:
		return StyleYellow.Render("上傳中…") + " " + RenderProgress(done, total, 20)
	case upload.StateComplete:
		return StyleGreen.Render("✔ 上傳成功！") + " " + RenderProgress(total, total, 20)
	default:
		return ""
	}
}

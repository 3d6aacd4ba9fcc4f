package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/alexanderramin/planhub/internal/upload"
	"github.com/alexanderramin/planhub/internal/wizard"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripANSI(s string) string {
	return ansi.Strip(s)
}

func TestRenderTable_AlignsWideRunes(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "TITLE"},
		[][]string{{"1", "數學"}, {"22", "abc"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID  TITLE", lines[0])
	assert.Equal(t, "──  ─────", lines[1])
	assert.Equal(t, "1   數學", lines[2])
	assert.Equal(t, "22  abc", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, 6, lipgloss.Width(PadRight("數學", 6)))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "abc", Truncate("abc", 10))
}

func TestFileSize(t *testing.T) {
	assert.Equal(t, "--", FileSize(0))
	assert.Equal(t, "1.0 KiB", FileSize(1024))
}

func TestReviewCount(t *testing.T) {
	assert.Equal(t, "(1,280)", stripANSI(ReviewCount(1280)))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "數學\n代數", Wrap("數學代數", 4))
	assert.Equal(t, "abc", Wrap("abc", 0))
}

func TestRenderProgress(t *testing.T) {
	assert.Equal(t, "[██░░] 1/2", stripANSI(RenderProgress(1, 2, 4)))
	assert.Equal(t, "[████] 3/3", stripANSI(RenderProgress(5, 3, 4)))
	assert.Equal(t, "[░░] 0/1", stripANSI(RenderProgress(0, 0, 1)))
}

func TestFormatPlanTable(t *testing.T) {
	out := stripANSI(FormatPlanTable(domain.FixturePlans()[:2]))
	assert.Contains(t, out, "國中數學代數基礎與應用")
	assert.Contains(t, out, "[國文]")
	assert.Contains(t, out, "★ 4.9")
	assert.Contains(t, out, "(156)")

	assert.Contains(t, stripANSI(FormatPlanTable(nil)), "沒有符合條件的學習計劃")
}

func TestFormatSelection(t *testing.T) {
	out := stripANSI(FormatSelection(domain.Selection{Subject: domain.SubjectMath, Duration: "8週", Sort: domain.SortRating}, 2))
	assert.Contains(t, out, "科目: 數學")
	assert.Contains(t, out, "難度: 全部")
	assert.Contains(t, out, "時長: 8週以上")
	assert.Contains(t, out, "排序: 評分最高")
	assert.Contains(t, out, "共 2 個計劃")
}

func TestFormatPlanCard(t *testing.T) {
	p := domain.FixturePlans()[5]
	out := stripANSI(FormatPlanCard(p, 40))
	assert.Contains(t, out, "計劃 #6")
	assert.Contains(t, out, "幾何證明與空間思維")
	assert.Contains(t, out, "吳老師")
	assert.Contains(t, out, "● 進階")
}

func TestFormatStepStrip(t *testing.T) {
	m := wizard.New()
	out := stripANSI(FormatStepStrip(m))
	assert.Contains(t, out, "● 1 基本信息")
	assert.Contains(t, out, "○ 4 學習計劃")
	assert.NotContains(t, out, "預覽")
}

func TestFormatDraftPreview(t *testing.T) {
	d := domain.PlanDraft{
		Title: "代數入門", Subject: "數學", Level: "基礎", Duration: "4週",
		Objectives: []string{"方程式"}, Resources: []string{"課本"}, Schedule: []string{"第一週"},
		Notes: "每天練習",
	}
	out := stripANSI(FormatDraftPreview(d))
	for _, want := range []string{"計劃預覽", "代數入門", "學習目標", "1. 方程式", "學習資源", "學習時間表", "備註", "每天練習"} {
		assert.Contains(t, out, want)
	}
}

func TestFormatFileList(t *testing.T) {
	files := []upload.File{{Name: "a.pdf", Kind: upload.KindPDF, Size: 2048}, {Name: "b.png", Kind: upload.KindImage}}
	out := stripANSI(FormatFileList(files, 1))
	assert.Contains(t, out, "PDF")
	assert.Contains(t, out, "2.0 KiB")
	assert.Contains(t, out, "▸ IMG")
	assert.Contains(t, stripANSI(FormatFileList(nil, -1)), "尚未選擇檔案")
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "#數學 #代數", stripANSI(FormatTags([]string{"數學", "代數"})))
	assert.Equal(t, "沒有標籤", stripANSI(FormatTags(nil)))
}

func TestFormatUploadState(t *testing.T) {
	assert.Empty(t, FormatUploadState(upload.StateIdle, 0, 1))
	assert.Contains(t, stripANSI(FormatUploadState(upload.StateComplete, 0, 2)), "上傳成功")
	assert.Contains(t, stripANSI(FormatUploadState(upload.StateUploading, 1, 2)), "1/2")
}

func TestFormatHome(t *testing.T) {
	out := stripANSI(FormatHome())
	for _, c := range domain.SubjectCards {
		assert.Contains(t, out, string(c.Subject))
		assert.Contains(t, out, c.PlanCount)
	}
	assert.Contains(t, out, "進度追蹤")
	assert.Contains(t, out, "執行計劃")
}

func TestFormatNotFound(t *testing.T) {
	out := stripANSI(FormatNotFound("/nope"))
	assert.Contains(t, out, "很抱歉，您嘗試訪問的頁面不存在或已被移除。")
	assert.Contains(t, out, "/nope")
	assert.Contains(t, out, "返回首頁")
}

package cli

import (
	"testing"

	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/alexanderramin/planhub/internal/route"
	"github.com/alexanderramin/planhub/internal/upload"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── home ─────────────────────────────────────────────────────────────────────

func TestTUI_HomeShowsLanding(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewHome, d.ActiveViewID())
	view := d.PlainView()
	assert.Contains(t, view, "熱門科目")
	assert.Contains(t, view, "平台功能")
	assert.Contains(t, view, "[/]")
}

func TestTUI_HomeSubjectCardOpensFilteredCatalog(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	// Cards run 國文, 英文, 數學.
	d.PressUp()
	d.PressDown()
	d.PressDown()
	d.PressDown()
	d.PressUp()
	d.PressEnter()

	require.Equal(t, ViewPlans, d.ActiveViewID())
	assert.Equal(t, []ViewID{ViewHome, ViewPlans}, d.ViewStackIDs())
	assert.Equal(t, route.ForSelection(domain.Selection{Subject: domain.SubjectMath, Sort: domain.SortPopular}).String(), d.Location())

	view := d.PlainView()
	assert.Contains(t, view, "共 2 個計劃")
	assert.Contains(t, view, "幾何證明與空間思維")
	assert.NotContains(t, view, "英語聽說能力強化計劃")
}

func TestTUI_HomeShortcuts(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('c')
	assert.Equal(t, ViewCreate, d.ActiveViewID())

	d.PressKey('H')
	assert.Equal(t, []ViewID{ViewHome}, d.ViewStackIDs())

	d.PressKey('u')
	assert.Equal(t, ViewUpload, d.ActiveViewID())
	assert.Equal(t, "/upload", d.Location())

	d.PressEsc()
	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, "/", d.Location())
}

// ── plans ────────────────────────────────────────────────────────────────────

func TestTUI_PlansFilterKeysUpdateLocation(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), "/plans")
	assert.Contains(t, d.PlainView(), "共 6 個計劃")

	d.PressKey('s')
	assert.Equal(t, route.ForSelection(domain.Selection{Subject: domain.SubjectMath, Sort: domain.SortPopular}).String(), d.Location())
	assert.Contains(t, d.PlainView(), "共 2 個計劃")

	d.PressKey('o')
	assert.Contains(t, d.Location(), "sort=rating")
	assert.Contains(t, d.PlainView(), "評分最高")

	d.PressKey('x')
	assert.Equal(t, "/plans?sort=popular", d.Location())
	assert.Contains(t, d.PlainView(), "共 6 個計劃")
}

func TestTUI_PlansNoMatchesShowsEmptyState(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), "/plans?subject=藝能")

	view := d.PlainView()
	assert.Contains(t, view, "沒有符合條件的學習計劃")
	assert.Contains(t, view, "按 x 重設篩選條件")
}

func TestTUI_PlansEnterOpensDetail(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), "/plans?subject=英文")

	d.PressEnter()
	require.Equal(t, ViewPlanDetail, d.ActiveViewID())
	assert.Contains(t, d.PlainView(), "英語聽說能力強化計劃")

	// Location stays on the catalog link underneath the detail card.
	assert.Contains(t, d.Location(), "subject=")

	d.PressKey('s')
	assert.Equal(t, []ViewID{ViewHome, ViewPlans, ViewPlans}, d.ViewStackIDs())
	assert.Contains(t, d.PlainView(), "共 1 個計劃")
}

// ── command bar ──────────────────────────────────────────────────────────────

func TestTUI_CommandBarRoutes(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Command("/plans?subject=英文&level=進階")
	require.Equal(t, ViewPlans, d.ActiveViewID())
	assert.False(t, d.CmdBarFocused())
	assert.Contains(t, d.PlainView(), "共 1 個計劃")
	assert.NotContains(t, d.Location(), "level=")

	d.Command("home")
	assert.Equal(t, []ViewID{ViewHome}, d.ViewStackIDs())

	d.Command("/nope")
	require.Equal(t, ViewNotFound, d.ActiveViewID())
	assert.Equal(t, "/nope", d.Location())
	assert.Contains(t, d.PlainView(), "404")

	d.PressEnter()
	assert.Equal(t, ViewHome, d.ActiveViewID())
}

func TestTUI_CommandBarPlanAndHelp(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Command("plan 6")
	require.Equal(t, ViewPlanDetail, d.ActiveViewID())
	assert.Equal(t, "#6", d.ActiveViewTitle())

	d.Command("plan 99")
	assert.Contains(t, stripANSI(d.LastOutput()), "plan not found")

	d.Command("help")
	assert.Contains(t, stripANSI(d.LastOutput()), "plan <id>")
}

func TestTUI_Quit(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('q')
	assert.True(t, d.IsQuitting())

	d = NewTestDriver(t, testApp(t))
	d.Command("quit")
	assert.True(t, d.IsQuitting())

	d = NewTestDriverAt(t, testApp(t), "/create")
	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

// ── create ───────────────────────────────────────────────────────────────────

func fillBasics(t *testing.T, d *TestDriver) *createView {
	t.Helper()
	v := activeAs[*createView](d)
	v.applyBasicInfo(&basicInfo{Title: "代數入門", Subject: "數學", Level: "基礎", Duration: "4週"})
	require.NoError(t, v.err)
	return v
}

func TestTUI_CreateBlocksIncompleteStep(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), "/create")
	v := activeAs[*createView](d)

	d.PressType(tea.KeyCtrlN)
	assert.Equal(t, 1, v.machine.Step())
	assert.Contains(t, d.PlainView(), "請填寫所有必填欄位後再進入下一步")
}

func TestTUI_CreateBasicsFormCancel(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), "/create")

	d.PressEnter()
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, "基本信息", d.ActiveViewTitle())
	assert.Contains(t, stripANSI(activeAs[*formView](d).View()), "基本信息")

	d.PressEsc()
	assert.Equal(t, ViewCreate, d.ActiveViewID())
	assert.Contains(t, stripANSI(d.LastOutput()), "基本信息 已取消")
}

func TestTUI_CreateFullFlowSubmits(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), "/create")
	v := fillBasics(t, d)

	d.PressType(tea.KeyCtrlN)
	require.Equal(t, 2, v.machine.Step())
	assert.True(t, v.capturingInput())

	// Typed keys land in the entry, including ones bound globally.
	d.Type("熟悉方程式 q")
	d.PressType(tea.KeyCtrlA)
	d.Type("練習應用題")
	draft := v.machine.Draft()
	assert.Equal(t, []string{"熟悉方程式 q", "練習應用題"}, draft.Objectives)
	assert.Equal(t, ViewCreate, d.ActiveViewID())
	assert.False(t, d.IsQuitting())

	d.PressType(tea.KeyCtrlN)
	require.Equal(t, 3, v.machine.Step())
	d.Type("課本")

	d.PressType(tea.KeyCtrlN)
	require.Equal(t, 4, v.machine.Step())
	d.Type("第1週 基礎")
	d.PressTab()
	d.Type("每週複習")
	assert.Equal(t, "每週複習", v.machine.Draft().Notes)

	d.PressType(tea.KeyCtrlN)
	require.True(t, v.machine.InPreview())
	view := d.PlainView()
	assert.Contains(t, view, "計劃預覽")
	assert.Contains(t, view, "2. 練習應用題")

	d.PressEnter()
	assert.False(t, v.machine.Pending())
	assert.Equal(t, 1, v.machine.Step())
	assert.Empty(t, v.machine.Draft().Title)

	view = d.PlainView()
	assert.Contains(t, view, "學習計劃創建成功")
	assert.Contains(t, view, "receipt:")
}

func TestTUI_CreateRemoveAndRetreat(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), "/create")
	v := fillBasics(t, d)
	d.PressType(tea.KeyCtrlN)

	d.Type("a")
	d.PressEnter()
	d.Type("b")
	require.Equal(t, []string{"a", "b"}, v.machine.Draft().Objectives)

	d.PressShiftTab()
	assert.Equal(t, 0, v.focus)
	assert.Equal(t, "a", v.editor.Value())
	d.PressTab()
	assert.Equal(t, 1, v.focus)

	d.PressType(tea.KeyCtrlD)
	assert.Equal(t, []string{"a"}, v.machine.Draft().Objectives)
	assert.Equal(t, 0, v.focus)

	d.PressType(tea.KeyCtrlD)
	assert.Equal(t, []string{""}, v.machine.Draft().Objectives)

	d.PressType(tea.KeyCtrlB)
	assert.Equal(t, 1, v.machine.Step())
	assert.False(t, v.capturingInput())
	assert.Equal(t, "代數入門", v.machine.Draft().Title)
}

func TestTUI_CreatePreviewBackToEdit(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), "/create")
	v := fillBasics(t, d)
	for _, entry := range []string{"目標", "資源", "進度"} {
		d.PressType(tea.KeyCtrlN)
		d.Type(entry)
	}
	d.PressType(tea.KeyCtrlN)
	require.True(t, v.machine.InPreview())

	d.PressKey('e')
	assert.False(t, v.machine.InPreview())
	assert.Equal(t, 4, v.machine.Step())
	assert.Equal(t, []string{"進度"}, v.machine.Draft().Schedule)
}

// ── upload ───────────────────────────────────────────────────────────────────

func TestTUI_UploadRequiresFiles(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), "/upload")

	d.PressKey('u')
	assert.Contains(t, d.PlainView(), "請先選擇要上傳的檔案")
}

func TestTUI_UploadCompletesAndResets(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), "/upload")
	v := activeAs[*uploadView](d)

	v.addFiles("notes.pdf", "slides.pptx")
	v.addTags("數學", "數學", "代數")
	require.Len(t, v.session.Files(), 2)
	assert.Equal(t, []string{"數學", "代數"}, v.session.Tags())

	d.PressKey('u')
	require.Equal(t, upload.StateComplete, v.session.State())
	view := d.PlainView()
	assert.Contains(t, view, "上傳成功")
	assert.Contains(t, view, "slides.pptx")

	// A reset scheduled by an earlier upload is ignored.
	d.Send(uploadResetMsg{view: v, gen: v.gen - 1})
	assert.Equal(t, upload.StateComplete, v.session.State())

	d.Send(uploadResetMsg{view: v, gen: v.gen})
	assert.Equal(t, upload.StateIdle, v.session.State())
	assert.Empty(t, v.session.Files())
	assert.Empty(t, v.session.Tags())
	assert.Contains(t, d.PlainView(), "尚未選擇檔案")
}

func TestTUI_UploadAddAfterCompleteStartsOver(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), "/upload")
	v := activeAs[*uploadView](d)

	v.addFiles("a.pdf")
	d.PressKey('u')
	require.Equal(t, upload.StateComplete, v.session.State())
	stale := v.gen

	v.addFiles("b.docx")
	assert.Equal(t, upload.StateIdle, v.session.State())
	require.Len(t, v.session.Files(), 1)
	assert.Equal(t, "b.docx", v.session.Files()[0].Name)

	d.Send(uploadResetMsg{view: v, gen: stale})
	assert.Len(t, v.session.Files(), 1)
}

func TestTUI_UploadTagMode(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), "/upload")
	v := activeAs[*uploadView](d)

	d.PressKey('t')
	require.True(t, v.tagging)

	d.Type("代數")
	d.PressEnter()
	d.Type("qu")
	d.PressEnter()
	assert.Equal(t, []string{"代數", "qu"}, v.session.Tags())
	assert.False(t, d.IsQuitting())

	d.PressBackspace()
	assert.Equal(t, []string{"代數"}, v.session.Tags())

	d.PressEsc()
	assert.False(t, v.tagging)
	assert.Equal(t, ViewUpload, d.ActiveViewID())
}

func TestTUI_UploadRemoveFile(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), "/upload")
	v := activeAs[*uploadView](d)
	v.addFiles("a.pdf", "b.png")

	d.PressDown()
	d.PressKey('d')
	require.Len(t, v.session.Files(), 1)
	assert.Equal(t, "a.pdf", v.session.Files()[0].Name)
	assert.Equal(t, 0, v.cursor)
}

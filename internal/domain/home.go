package domain

// SubjectCard is one entry of the subject grid on the home page.
type SubjectCard struct {
	Subject     Subject
	Description string
	PlanCount   string
}

// SubjectCards lists the home page subject grid in display order.
var SubjectCards = []SubjectCard{
	{SubjectChinese, "從古典文學到現代應用，全面提升語文能力", "1,280+"},
	{SubjectEnglish, "打造國際視野，提升英語溝通與應用能力", "1,150+"},
	{SubjectMath, "培養邏輯思維，掌握數學核心概念與解題技巧", "1,430+"},
	{SubjectScience, "探索自然奧秘，理解物理、化學、生物基本原理", "1,320+"},
	{SubjectSocial, "了解人文歷史，培養公民素養與社會關懷", "1,180+"},
	{SubjectArts, "發展多元智能，培養藝術鑑賞與表達能力", "960+"},
}

// Feature is a platform capability advertised on the home page.
type Feature struct {
	Title       string
	Description string
}

var Features = []Feature{
	{"用戶註冊與登錄", "建立個人帳號，保存你的學習計劃與進度"},
	{"學習計劃瀏覽與篩選", "依科目、難度與時長快速找到適合的計劃"},
	{"創建個人學習計劃", "按步驟設定目標、資源與每週進度"},
	{"上傳學習計劃", "分享你的教材與計劃給其他同學"},
	{"進度追蹤", "隨時掌握學習進度，調整學習節奏"},
}

// JourneyStep is one stage of the "how it works" timeline.
type JourneyStep struct {
	Title       string
	Description string
}

var Journey = []JourneyStep{
	{"註冊帳號", "免費註冊，幾秒鐘即可開始"},
	{"探索計劃", "瀏覽各科目的精選學習計劃"},
	{"創建計劃", "依照自己的需求量身打造學習計劃"},
	{"執行計劃", "按部就班完成目標，追蹤每一步進度"},
}

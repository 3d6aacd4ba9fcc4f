package domain

import (
	"fmt"
	"strings"
)

// Plan is one read-only catalog entry.
type Plan struct {
	ID           int
	Title        string
	Subject      Subject
	Level        Level
	Duration     string
	Author       string
	Rating       float64
	ReviewCount  int
	ThumbnailURL string
	Description  string
}

// Validate checks the enum fields and numeric ranges of a catalog record.
func (p *Plan) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("plan id must be positive, got %d", p.ID)
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("plan %d: title is required", p.ID)
	}
	if !ValidSubjects[p.Subject] {
		return fmt.Errorf("plan %d: unknown subject %q", p.ID, p.Subject)
	}
	if !ValidLevels[p.Level] {
		return fmt.Errorf("plan %d: unknown level %q", p.ID, p.Level)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("plan %d: rating %.1f outside 0-5", p.ID, p.Rating)
	}
	if p.ReviewCount < 0 {
		return fmt.Errorf("plan %d: negative review count", p.ID)
	}
	return nil
}

// FixturePlans returns a fresh copy of the built-in catalog.
func FixturePlans() []*Plan {
	return []*Plan{
		{
			ID:           1,
			Title:        "國中數學代數基礎與應用",
			Subject:      SubjectMath,
			Level:        LevelBasic,
			Duration:     "4週",
			Author:       "陳老師",
			Rating:       4.8,
			ReviewCount:  128,
			ThumbnailURL: "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?auto=format&fit=crop&w=800&q=80",
			Description:  "本計劃專為國中生設計，涵蓋代數基礎概念、一元一次方程式、二元一次方程組等內容，通過系統化的學習路徑，幫助學生建立扎實的代數基礎。",
		},
		{
			ID:           2,
			Title:        "國文文言文閱讀理解進階",
			Subject:      SubjectChinese,
			Level:        LevelAdvanced,
			Duration:     "6週",
			Author:       "林老師",
			Rating:       4.9,
			ReviewCount:  156,
			ThumbnailURL: "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?auto=format&fit=crop&w=800&q=80",
			Description:  "針對國中生常見的文言文閱讀困難，本計劃提供系統性的閱讀策略和理解方法，包含常見文言虛詞、古今詞義差異、句式特點等內容，提升文言文閱讀能力。",
		},
		{
			ID:           3,
			Title:        "英語聽說能力強化計劃",
			Subject:      SubjectEnglish,
			Level:        LevelIntermediate,
			Duration:     "8週",
			Author:       "王老師",
			Rating:       4.7,
			ReviewCount:  93,
			ThumbnailURL: "https://images.unsplash.com/photo-1546410531-bb4caa6b424d?auto=format&fit=crop&w=800&q=80",
			Description:  "專注於提升英語聽力與口說能力的綜合計劃，通過日常對話、情境模擬、聽力練習等多種形式，培養學生的英語交流自信與能力。",
		},
		{
			ID:           4,
			Title:        "自然科學實驗探究",
			Subject:      SubjectScience,
			Level:        LevelIntermediate,
			Duration:     "5週",
			Author:       "張老師",
			Rating:       4.6,
			ReviewCount:  87,
			ThumbnailURL: "https://images.unsplash.com/photo-1532094349884-543bc11b234d?auto=format&fit=crop&w=800&q=80",
			Description:  "結合理論與實踐的自然科學學習計劃，通過家庭可實施的小型實驗，培養學生的科學探究能力與科學思維，涵蓋物理、化學、生物等多個領域的基礎實驗。",
		},
		{
			ID:           5,
			Title:        "歷史文化深度探索",
			Subject:      SubjectSocial,
			Level:        LevelAdvanced,
			Duration:     "6週",
			Author:       "李老師",
			Rating:       4.9,
			ReviewCount:  112,
			ThumbnailURL: "https://images.unsplash.com/photo-1461360370896-922624d12aa1?auto=format&fit=crop&w=800&q=80",
			Description:  "深入探討中國與世界歷史中的重要事件、人物與文化現象，培養學生的歷史思維與文化理解能力，通過多元化的學習資源，帶領學生體驗歷史的豐富性。",
		},
		{
			ID:           6,
			Title:        "幾何證明與空間思維",
			Subject:      SubjectMath,
			Level:        LevelAdvanced,
			Duration:     "7週",
			Author:       "吳老師",
			Rating:       4.8,
			ReviewCount:  78,
			ThumbnailURL: "https://images.unsplash.com/photo-1509228468518-180dd4864904?auto=format&fit=crop&w=800&q=80",
			Description:  "系統性學習平面幾何與空間幾何的基本概念、性質與證明方法，培養邏輯推理與空間思維能力，為高中數學學習奠定基礎。",
		},
	}
}

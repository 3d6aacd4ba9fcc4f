package domain

type Subject string

const (
	SubjectChinese Subject = "國文"
	SubjectEnglish Subject = "英文"
	SubjectMath    Subject = "數學"
	SubjectScience Subject = "自然"
	SubjectSocial  Subject = "社會"
	SubjectArts    Subject = "藝能"
)

// Subjects lists every subject in the order the catalog filter presents them.
var Subjects = []Subject{
	SubjectMath, SubjectChinese, SubjectEnglish, SubjectScience, SubjectSocial, SubjectArts,
}

// ValidSubjects is the canonical set of accepted subject strings.
var ValidSubjects = map[Subject]bool{
	SubjectChinese: true, SubjectEnglish: true, SubjectMath: true,
	SubjectScience: true, SubjectSocial: true, SubjectArts: true,
}

type Level string

const (
	LevelBasic        Level = "基礎"
	LevelIntermediate Level = "中級"
	LevelAdvanced     Level = "進階"
)

// Levels lists every level from easiest to hardest.
var Levels = []Level{LevelBasic, LevelIntermediate, LevelAdvanced}

// ValidLevels is the canonical set of accepted level strings.
var ValidLevels = map[Level]bool{
	LevelBasic: true, LevelIntermediate: true, LevelAdvanced: true,
}

type SortKey string

const (
	SortPopular SortKey = "popular"
	SortRating  SortKey = "rating"
	SortNewest  SortKey = "newest"
)

// SortKeys lists the accepted sort keys in display order.
var SortKeys = []SortKey{SortPopular, SortRating, SortNewest}

// Label returns the catalog's display label for a sort key.
func (k SortKey) Label() string {
	switch k {
	case SortRating:
		return "評分最高"
	case SortNewest:
		return "最新發布"
	default:
		return "最熱門"
	}
}

// ListField names one of the list-valued fields of a PlanDraft.
type ListField string

const (
	FieldObjectives ListField = "objectives"
	FieldResources  ListField = "resources"
	FieldSchedule   ListField = "schedule"
)

// Label returns the section heading used for a list field.
func (f ListField) Label() string {
	switch f {
	case FieldObjectives:
		return "學習目標"
	case FieldResources:
		return "學習資源"
	case FieldSchedule:
		return "學習時間表"
	default:
		return string(f)
	}
}

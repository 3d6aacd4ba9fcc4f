package wizard

// StepCount is the number of editing steps before preview.
const StepCount = 4

// Step describes one stage of the creation wizard.
type Step struct {
	Number      int
	Title       string
	Description string
}

// Steps lists the editing steps in order.
var Steps = []Step{
	{Number: 1, Title: "基本信息", Description: "計劃標題、科目、難度與時長"},
	{Number: 2, Title: "學習目標", Description: "這個計劃要達成什麼"},
	{Number: 3, Title: "學習資源", Description: "教材、網站與參考資料"},
	{Number: 4, Title: "學習計劃", Description: "每週進度與備註"},
}

// CreationDurations are the duration choices offered on step 1.
var CreationDurations = []string{"1週", "2週", "4週", "6週", "8週", "12週"}

// StepStatus is the progress-strip state of one step.
type StepStatus int

const (
	StatusUpcoming StepStatus = iota
	StatusCurrent
	StatusDone
)

func (s StepStatus) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusCurrent:
		return "current"
	default:
		return "upcoming"
	}
}

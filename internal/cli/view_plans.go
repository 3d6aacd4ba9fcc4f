package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/alexanderramin/planhub/internal/catalog"
	"github.com/alexanderramin/planhub/internal/cli/formatter"
	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/alexanderramin/planhub/internal/route"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// plansLoadedMsg signals that the catalog records have been loaded.
type plansLoadedMsg struct {
	view  *plansView
	plans []*domain.Plan
	err   error
}

func (m plansLoadedMsg) target() View { return m.view }

// plansView is the catalog page: filter bar, sort order and the result list.
type plansView struct {
	state   *SharedState
	initial domain.Selection
	session *catalog.Session
	query   url.Values
	cursor  int
	loading bool
	err     error
}

func newPlansView(state *SharedState, initial domain.Selection) *plansView {
	return &plansView{
		state:   state,
		initial: initial,
		query:   catalog.Query(initial),
		loading: true,
	}
}

func (v *plansView) ID() ViewID    { return ViewPlans }
func (v *plansView) Title() string { return route.Plans.Title() }

// Route mirrors the current selection as a catalog link.
func (v *plansView) Route() route.Route {
	r := route.Parse("/plans")
	r.Query = v.query
	return r
}

func (v *plansView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "subject")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "level")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duration")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
	}
}

func (v *plansView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		plans, err := app.Catalog.All(context.Background())
		return plansLoadedMsg{view: v, plans: plans, err: err}
	}
}

func (v *plansView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case plansLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.session = catalog.NewSession(msg.plans, v.initial, catalog.WithQuerySink(func(q url.Values) {
			v.query = q
		}))
		return v, nil

	case tea.KeyMsg:
		if v.session == nil {
			return v, nil
		}
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *plansView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := v.session.Selection()
	results := v.session.Results()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil
	case "down", "j":
		if v.cursor < len(results)-1 {
			v.cursor++
		}
		return v, nil
	case "enter":
		if v.cursor < len(results) {
			return v, pushView(newPlanDetailView(v.state, results[v.cursor]))
		}
		return v, nil
	case "s":
		v.session.SetSubject(cycle(subjectChoices(), sel.Subject))
	case "l":
		v.session.SetLevel(cycle(levelChoices(), sel.Level))
	case "d":
		v.session.SetDuration(cycle(durationChoices(), sel.Duration))
	case "o":
		v.session.SetSort(cycle(domain.SortKeys, sel.Normalized().Sort))
	case "x":
		v.session.Reset()
	default:
		return v, nil
	}
	v.cursor = 0
	return v, nil
}

func (v *plansView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("載入中...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	results := v.session.Results()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.FormatSelection(v.session.Selection(), len(results)) + "\n")
	b.WriteString("  " + formatter.Dim("?"+v.query.Encode()) + "\n\n")

	if len(results) == 0 {
		b.WriteString("  " + formatter.Dim("沒有符合條件的學習計劃") + "\n")
		b.WriteString("  " + formatter.Dim("按 x 重設篩選條件") + "\n")
		return b.String()
	}

	for i, p := range results {
		cursor := "  "
		title := formatter.StyleFg.Render(formatter.PadRight(formatter.Truncate(p.Title, 26), 26))
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			title = formatter.StyleBold.Render(formatter.PadRight(formatter.Truncate(p.Title, 26), 26))
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s  %s  %s  %s\n",
			cursor,
			formatter.StyleGreen.Render(fmt.Sprintf("%2d", p.ID)),
			title,
			formatter.SubjectBadge(p.Subject),
			formatter.LevelBadge(p.Level),
			formatter.PadRight(p.Duration, 4),
			formatter.Rating(p.Rating)+" "+formatter.Dim(formatter.ReviewCount(p.ReviewCount)),
		))
	}
	return b.String()
}

// cycle returns the option after cur, wrapping around. An unknown cur yields
// the first option.
func cycle[T comparable](opts []T, cur T) T {
	for i, o := range opts {
		if o == cur {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

func subjectChoices() []domain.Subject {
	return append([]domain.Subject{""}, domain.Subjects...)
}

func levelChoices() []domain.Level {
	return append([]domain.Level{""}, domain.Levels...)
}

func durationChoices() []string {
	out := []string{""}
	for _, d := range catalog.DurationFilters {
		out = append(out, d.Value)
	}
	return out
}

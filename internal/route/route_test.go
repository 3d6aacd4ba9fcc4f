package route

import (
	"testing"

	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		target string
		kind   Kind
		path   string
	}{
		{"/", Home, "/"},
		{"", Home, "/"},
		{"home", Home, "/"},
		{"/plans", Plans, "/plans"},
		{"plans", Plans, "/plans"},
		{"/plans/", Plans, "/plans"},
		{"/create", Create, "/create"},
		{"create", Create, "/create"},
		{"/upload", Upload, "/upload"},
		{"/missing/page", NotFound, "/missing/page"},
		{"/Plans", NotFound, "/Plans"},
		{"/create?x=1", Create, "/create"},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			r := Parse(tc.target)
			assert.Equal(t, tc.kind, r.Kind)
			assert.Equal(t, tc.path, r.Path)
		})
	}
}

func TestParse_PlansSelectionOnlySubject(t *testing.T) {
	r := Parse("/plans?subject=英文&level=進階&sort=newest")
	sel := r.Selection()

	assert.Equal(t, domain.SubjectEnglish, sel.Subject)
	assert.Empty(t, sel.Level)
	assert.Equal(t, domain.SortPopular, sel.Sort)
}

func TestParse_MalformedQuery(t *testing.T) {
	r := Parse("/plans?subject=%zz")
	assert.Equal(t, Plans, r.Kind)
	assert.Equal(t, domain.DefaultSelection(), r.Selection())
}

func TestString(t *testing.T) {
	assert.Equal(t, "/", Parse("home").String())
	assert.Equal(t, "/create", Parse("/create?x=1").String())
	assert.Equal(t, "/nope", Parse("nope").String())

	r := ForSelection(domain.Selection{Subject: domain.SubjectMath, Sort: domain.SortRating})
	assert.Equal(t, "/plans?sort=rating&subject=%E6%95%B8%E5%AD%B8", r.String())
	assert.Equal(t, r.String(), Parse(r.String()).String())
}

func TestPlansForSubject(t *testing.T) {
	r := PlansForSubject(domain.SubjectArts)
	assert.Equal(t, Plans, r.Kind)
	assert.Equal(t, domain.SubjectArts, r.Selection().Subject)
}

func TestKindTitle(t *testing.T) {
	assert.Equal(t, "學習計劃", Plans.Title())
	assert.Equal(t, "頁面不存在", NotFound.Title())
}

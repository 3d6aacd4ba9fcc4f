package testutil

import (
	"fmt"

	"github.com/alexanderramin/planhub/internal/domain"
)

// Plan options
type PlanOption func(*domain.Plan)

func WithSubject(s domain.Subject) PlanOption {
	return func(p *domain.Plan) {
		p.Subject = s
	}
}

func WithLevel(l domain.Level) PlanOption {
	return func(p *domain.Plan) {
		p.Level = l
	}
}

func WithDuration(d string) PlanOption {
	return func(p *domain.Plan) {
		p.Duration = d
	}
}

func WithRating(r float64) PlanOption {
	return func(p *domain.Plan) {
		p.Rating = r
	}
}

func WithReviews(n int) PlanOption {
	return func(p *domain.Plan) {
		p.ReviewCount = n
	}
}

// NewTestPlan returns a valid 數學/基礎/4週 plan with the given id.
func NewTestPlan(id int, opts ...PlanOption) *domain.Plan {
	p := &domain.Plan{
		ID:       id,
		Title:    fmt.Sprintf("Test plan %d", id),
		Subject:  domain.SubjectMath,
		Level:    domain.LevelBasic,
		Duration: "4週",
		Author:   "測試老師",
		Rating:   4.0,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestDraft returns a draft with every required field filled.
func NewTestDraft() domain.PlanDraft {
	return domain.PlanDraft{
		Title:      "T",
		Subject:    string(domain.SubjectMath),
		Level:      string(domain.LevelBasic),
		Duration:   "4週",
		Objectives: []string{"objective"},
		Resources:  []string{"resource"},
		Schedule:   []string{"week 1"},
	}
}

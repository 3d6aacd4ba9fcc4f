package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/planhub/internal/catalog"
	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/alexanderramin/planhub/internal/repository"
)

type catalogService struct {
	plans    repository.PlanRepo
	observer UseCaseObserver
}

func NewCatalogService(plans repository.PlanRepo, observers ...UseCaseObserver) CatalogService {
	return &catalogService{plans: plans, observer: useCaseObserverOrNoop(observers)}
}

func (s *catalogService) List(ctx context.Context, sel domain.Selection) (plans []*domain.Plan, err error) {
	sel = sel.Normalized()
	fields := map[string]any{"query": catalog.QueryString(sel)}
	defer observe(ctx, s.observer, "list-plans", time.Now(), fields, &err)

	var records []*domain.Plan
	if sel.Subject != "" {
		records, err = s.plans.ListBySubject(ctx, sel.Subject)
	} else {
		records, err = s.plans.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	plans = catalog.View(records, sel)
	fields["count"] = len(plans)
	return plans, nil
}

func (s *catalogService) Get(ctx context.Context, id int) (*domain.Plan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *catalogService) All(ctx context.Context) ([]*domain.Plan, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return plans, nil
}

package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/planhub/internal/domain"
)

// ErrPlanNotFound is returned when no catalog row has the requested id.
var ErrPlanNotFound = errors.New("plan not found")

// PlanRepo reads the catalog. There is no write path at runtime.
type PlanRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Plan, error)
	// List returns every plan in id order.
	List(ctx context.Context) ([]*domain.Plan, error)
	ListBySubject(ctx context.Context, subject domain.Subject) ([]*domain.Plan, error)
}

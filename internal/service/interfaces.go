package service

import (
	"context"

	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/alexanderramin/planhub/internal/upload"
)

type CatalogService interface {
	// List returns the catalog view for a selection: filtered, then sorted.
	List(ctx context.Context, sel domain.Selection) ([]*domain.Plan, error)
	Get(ctx context.Context, id int) (*domain.Plan, error)
	// All returns every plan in id order, for mounting a catalog session.
	All(ctx context.Context) ([]*domain.Plan, error)
}

// PlanSubmitter delivers a finished wizard draft and returns a receipt id.
type PlanSubmitter interface {
	Submit(ctx context.Context, draft domain.PlanDraft) (string, error)
}

type UploadService interface {
	Upload(ctx context.Context, files []upload.File, tags []string) error
}

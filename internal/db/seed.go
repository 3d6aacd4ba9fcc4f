package db

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planhub/internal/domain"
)

// Seed inserts the built-in catalog inside one transaction. Existing rows
// are left alone, so seeding twice is harmless.
func Seed(ctx context.Context, uow UnitOfWork) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		for _, p := range domain.FixturePlans() {
			if err := p.Validate(); err != nil {
				return err
			}
			if err := InsertPlan(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
}

// InsertPlan writes one catalog row unless its id already exists.
func InsertPlan(ctx context.Context, tx DBTX, p *domain.Plan) error {
	_, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO plans
		 (id, title, subject, level, duration, author, rating, review_count, thumbnail_url, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, string(p.Subject), string(p.Level), p.Duration, p.Author,
		p.Rating, p.ReviewCount, p.ThumbnailURL, p.Description,
	)
	if err != nil {
		return fmt.Errorf("inserting plan %d: %w", p.ID, err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/planhub/internal/db"
	"github.com/alexanderramin/planhub/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

const planColumns = `id, title, subject, level, duration, author, rating, review_count, thumbnail_url, description`

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id int) (*domain.Plan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE id = ?`, id)
	p, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plan %d: %w", id, ErrPlanNotFound)
	}
	return p, err
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.Plan, error) {
	return r.query(ctx, `SELECT `+planColumns+` FROM plans ORDER BY id`)
}

func (r *SQLitePlanRepo) ListBySubject(ctx context.Context, subject domain.Subject) ([]*domain.Plan, error) {
	return r.query(ctx, `SELECT `+planColumns+` FROM plans WHERE subject = ? ORDER BY id`, string(subject))
}

func (r *SQLitePlanRepo) query(ctx context.Context, q string, args ...any) ([]*domain.Plan, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func scanPlan(s scanner) (*domain.Plan, error) {
	var p domain.Plan
	var subject, level string
	err := s.Scan(
		&p.ID, &p.Title, &subject, &level, &p.Duration, &p.Author,
		&p.Rating, &p.ReviewCount, &p.ThumbnailURL, &p.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	p.Subject = domain.Subject(subject)
	p.Level = domain.Level(level)
	return &p, nil
}

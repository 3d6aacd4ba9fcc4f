package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/google/uuid"
)

type planSubmitter struct {
	delay    time.Duration
	observer UseCaseObserver
}

// NewPlanSubmitter returns a submitter that accepts every valid draft after
// delay. Nothing is stored.
func NewPlanSubmitter(delay time.Duration, observers ...UseCaseObserver) PlanSubmitter {
	return &planSubmitter{delay: delay, observer: useCaseObserverOrNoop(observers)}
}

func (s *planSubmitter) Submit(ctx context.Context, draft domain.PlanDraft) (receipt string, err error) {
	fields := map[string]any{
		"title":   draft.Title,
		"subject": draft.Subject,
	}
	defer observe(ctx, s.observer, "submit-plan", time.Now(), fields, &err)

	if err = draft.Validate(); err != nil {
		return "", fmt.Errorf("invalid plan: %w", err)
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		err = ctx.Err()
		return "", err
	case <-timer.C:
	}

	receipt = uuid.NewString()
	fields["receipt"] = receipt
	return receipt, nil
}

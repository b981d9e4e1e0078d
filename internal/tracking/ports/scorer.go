// Package ports defines the interfaces the tracking context needs from other
// bounded contexts. Implementations live in internal/adapters.
package ports

import (
	"context"

	"github.com/google/uuid"
)

// ScoredEvent is one behavioral event to apply against a lead's score.
type ScoredEvent struct {
	Type     string
	Detail   string
	Value    float64
	Metadata string
}

// LeadScorer persists an event and applies its score delta to the lead in a
// single atomic operation. Applied is false when the lead does not exist; the
// event is still recorded in that case.
type LeadScorer interface {
	Score(ctx context.Context, leadID uuid.UUID, event ScoredEvent) (applied bool, err error)
}

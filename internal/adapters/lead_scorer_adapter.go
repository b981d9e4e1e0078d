// Package adapters contains anti-corruption adapters that wire bounded
// contexts together without direct imports between them.
package adapters

import (
	"context"

	"leadgen_backend/internal/leads/scoring"
	"leadgen_backend/internal/tracking/ports"

	"github.com/google/uuid"
)

// LeadScorerAdapter implements ports.LeadScorer using the leads scoring
// service.
type LeadScorerAdapter struct {
	scoring *scoring.Service
}

func NewLeadScorerAdapter(svc *scoring.Service) *LeadScorerAdapter {
	return &LeadScorerAdapter{scoring: svc}
}

func (a *LeadScorerAdapter) Score(ctx context.Context, leadID uuid.UUID, event ports.ScoredEvent) (bool, error) {
	result, err := a.scoring.Apply(ctx, leadID, scoring.Event{
		Type:     event.Type,
		Detail:   event.Detail,
		Value:    event.Value,
		Metadata: event.Metadata,
	})
	if err != nil {
		return false, err
	}
	return result.Applied, nil
}

// Compile-time check.
var _ ports.LeadScorer = (*LeadScorerAdapter)(nil)

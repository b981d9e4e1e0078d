// Package service implements behavioral event ingestion: every beacon is
// persisted, and events carrying a lead ID are routed through the scoring
// port so the lead's score moves in the same operation.
package service

import (
	"context"
	"fmt"

	"leadgen_backend/internal/events"
	"leadgen_backend/internal/tracking/ports"
	"leadgen_backend/internal/tracking/repository"
	"leadgen_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Service ingests behavioral events.
type Service struct {
	store  repository.EventStore
	scorer ports.LeadScorer
	bus    events.Bus
}

// New creates the tracking service.
func New(store repository.EventStore, scorer ports.LeadScorer, bus events.Bus) *Service {
	return &Service{store: store, scorer: scorer, bus: bus}
}

// TrackInput is one sanitization-pending event beacon.
type TrackInput struct {
	LeadID   *uuid.UUID
	Type     string
	Detail   string
	Value    float64
	Metadata string
}

// Track persists the event. With a lead ID present the event and the score
// mutation land atomically through the scorer; without one the raw event is
// recorded standalone. Replayed events are not deduplicated and count again.
func (s *Service) Track(ctx context.Context, input TrackInput) error {
	eventType := sanitize.Text(input.Type)
	detail := sanitize.Text(input.Detail)
	metadata := sanitize.Text(input.Metadata)

	if input.LeadID != nil {
		_, err := s.scorer.Score(ctx, *input.LeadID, ports.ScoredEvent{
			Type:     eventType,
			Detail:   detail,
			Value:    input.Value,
			Metadata: metadata,
		})
		if err != nil {
			return fmt.Errorf("track scored event: %w", err)
		}
	} else {
		if err := s.store.InsertEvent(ctx, repository.InsertEventParams{
			Type:     eventType,
			Detail:   detail,
			Value:    input.Value,
			Metadata: metadata,
		}); err != nil {
			return fmt.Errorf("track event: %w", err)
		}
	}

	s.bus.Publish(ctx, events.EventTracked{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    input.LeadID,
		Type:      eventType,
	})

	return nil
}

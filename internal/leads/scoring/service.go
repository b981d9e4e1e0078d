package scoring

import (
	"context"

	"leadgen_backend/internal/events"
	"leadgen_backend/internal/leads/domain"
	"leadgen_backend/internal/leads/repository"
	"leadgen_backend/platform/logger"

	"github.com/google/uuid"
)

// Store is the slice of the leads repository the scoring service needs.
type Store interface {
	ApplyScoredEvent(ctx context.Context, params repository.ApplyScoredEventParams) (repository.ScoreUpdate, error)
}

// Event is one behavioral signal to score against a lead.
type Event struct {
	Type     string
	Detail   string
	Value    float64
	Metadata string
}

// Result reports the outcome of scoring one event.
type Result struct {
	// Applied is false when the lead did not exist; the raw event was still
	// recorded and the score mutation skipped.
	Applied     bool
	Delta       int
	Score       int
	Temperature domain.Temperature
}

// Service applies behavioral events to a lead's persisted score and keeps the
// temperature in lockstep with it. It is invoked exactly once per qualifying
// tracked event; replaying an event is not deduplicated and contributes its
// delta again.
type Service struct {
	calc  *Calculator
	store Store
	bus   events.Bus
	log   *logger.Logger
}

// New creates a new scoring service.
func New(calc *Calculator, store Store, bus events.Bus, log *logger.Logger) *Service {
	return &Service{calc: calc, store: store, bus: bus, log: log}
}

// Calculator exposes the underlying delta calculator.
func (s *Service) Calculator() *Calculator {
	return s.calc
}

// Apply computes the event's delta, persists the event together with the
// lead's new score and temperature, and publishes a temperature-change event
// when the lead moves into a different band.
//
// A missing lead is a silent no-op for scoring (anonymous and stale IDs are a
// normal case); a persistence failure is returned to the caller, which must
// not treat the event as recorded.
func (s *Service) Apply(ctx context.Context, leadID uuid.UUID, event Event) (Result, error) {
	delta := s.calc.Delta(event.Type, event.Value)

	update, err := s.store.ApplyScoredEvent(ctx, repository.ApplyScoredEventParams{
		LeadID: leadID,
		Event: repository.EventRecord{
			Type:     event.Type,
			Detail:   event.Detail,
			Value:    event.Value,
			Metadata: event.Metadata,
		},
		Delta: delta,
	})
	if err != nil {
		return Result{}, err
	}

	if !update.LeadFound {
		return Result{Applied: false, Delta: delta}, nil
	}

	if s.log != nil {
		s.log.ScoreApplied(leadID.String(), event.Type, delta, update.Score, update.Temperature.String())
	}

	if s.bus != nil && update.Temperature != update.PreviousTemperature {
		s.bus.Publish(ctx, events.LeadTemperatureChanged{
			BaseEvent:           events.NewBaseEvent(),
			LeadID:              leadID,
			PreviousTemperature: update.PreviousTemperature.String(),
			Temperature:         update.Temperature.String(),
			Score:               update.Score,
		})
	}

	return Result{
		Applied:     true,
		Delta:       delta,
		Score:       update.Score,
		Temperature: update.Temperature,
	}, nil
}

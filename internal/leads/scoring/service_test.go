package scoring

import (
	"context"
	"errors"
	"testing"

	"leadgen_backend/internal/events"
	"leadgen_backend/internal/leads/domain"
	"leadgen_backend/internal/leads/repository"

	"github.com/google/uuid"
)

type fakeStore struct {
	scores map[uuid.UUID]int
	events []repository.EventRecord
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{scores: make(map[uuid.UUID]int)}
}

func (s *fakeStore) ApplyScoredEvent(_ context.Context, params repository.ApplyScoredEventParams) (repository.ScoreUpdate, error) {
	if s.err != nil {
		return repository.ScoreUpdate{}, s.err
	}
	prev, ok := s.scores[params.LeadID]
	s.events = append(s.events, params.Event)
	if !ok {
		return repository.ScoreUpdate{LeadFound: false}, nil
	}
	next := prev + params.Delta
	s.scores[params.LeadID] = next
	return repository.ScoreUpdate{
		LeadFound:           true,
		PreviousScore:       prev,
		PreviousTemperature: domain.Classify(prev),
		Score:               next,
		Temperature:         domain.Classify(next),
	}, nil
}

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func TestServiceApplyProgression(t *testing.T) {
	store := newFakeStore()
	bus := &recordingBus{}
	svc := New(NewCalculator(DefaultRules()), store, bus, nil)

	leadID := uuid.New()
	store.scores[leadID] = 0

	steps := []struct {
		eventType string
		wantScore int
		wantTemp  domain.Temperature
	}{
		{EventPageView, 2, domain.TemperatureCold},
		{EventFormStart, 12, domain.TemperatureCold},
		{EventFormStepComplete, 24, domain.TemperatureCold},
		{EventFormStepComplete, 36, domain.TemperatureCold},
		{EventFormStepComplete, 48, domain.TemperatureCold},
		{EventFormSubmit, 78, domain.TemperatureWarm},
	}

	for _, step := range steps {
		res, err := svc.Apply(context.Background(), leadID, Event{Type: step.eventType})
		if err != nil {
			t.Fatalf("Apply(%s): unexpected error: %v", step.eventType, err)
		}
		if !res.Applied {
			t.Fatalf("Apply(%s): expected event to be applied", step.eventType)
		}
		if res.Score != step.wantScore {
			t.Errorf("Apply(%s): score = %d, want %d", step.eventType, res.Score, step.wantScore)
		}
		if res.Temperature != step.wantTemp {
			t.Errorf("Apply(%s): temperature = %s, want %s", step.eventType, res.Temperature, step.wantTemp)
		}
	}

	// Only the cold→warm crossing at form_submit should have fired.
	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.published))
	}
	changed, ok := bus.published[0].(events.LeadTemperatureChanged)
	if !ok {
		t.Fatalf("published event is %T, want LeadTemperatureChanged", bus.published[0])
	}
	if changed.PreviousTemperature != "cold" || changed.Temperature != "warm" {
		t.Errorf("temperature change = %s→%s, want cold→warm", changed.PreviousTemperature, changed.Temperature)
	}
	if changed.Score != 78 {
		t.Errorf("temperature change score = %d, want 78", changed.Score)
	}
}

func TestServiceApplyTimeOnPageCrossesHot(t *testing.T) {
	store := newFakeStore()
	bus := &recordingBus{}
	svc := New(NewCalculator(DefaultRules()), store, bus, nil)

	leadID := uuid.New()
	store.scores[leadID] = 75

	res, err := svc.Apply(context.Background(), leadID, Event{Type: EventTimeOnPage, Value: 200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Delta != 15 {
		t.Errorf("delta = %d, want 15", res.Delta)
	}
	if res.Score != 90 {
		t.Errorf("score = %d, want 90", res.Score)
	}
	if res.Temperature != domain.TemperatureHot {
		t.Errorf("temperature = %s, want hot", res.Temperature)
	}

	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.published))
	}
	changed := bus.published[0].(events.LeadTemperatureChanged)
	if changed.PreviousTemperature != "warm" || changed.Temperature != "hot" {
		t.Errorf("temperature change = %s→%s, want warm→hot", changed.PreviousTemperature, changed.Temperature)
	}
}

func TestServiceApplyRepeatedEventsAccumulate(t *testing.T) {
	store := newFakeStore()
	svc := New(NewCalculator(DefaultRules()), store, &recordingBus{}, nil)

	leadID := uuid.New()
	store.scores[leadID] = 0

	for i := 0; i < 2; i++ {
		if _, err := svc.Apply(context.Background(), leadID, Event{Type: EventFormSubmit}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := store.scores[leadID]; got != 60 {
		t.Errorf("score after two submits = %d, want 60", got)
	}
}

func TestServiceApplyUnknownLead(t *testing.T) {
	store := newFakeStore()
	bus := &recordingBus{}
	svc := New(NewCalculator(DefaultRules()), store, bus, nil)

	res, err := svc.Apply(context.Background(), uuid.New(), Event{Type: EventCTAClick})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Applied {
		t.Error("expected scoring to be skipped for unknown lead")
	}
	// The raw event is still recorded for analytics.
	if len(store.events) != 1 {
		t.Errorf("recorded %d events, want 1", len(store.events))
	}
	if len(bus.published) != 0 {
		t.Errorf("published %d events, want 0", len(bus.published))
	}
}

func TestServiceApplyStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection reset")
	svc := New(NewCalculator(DefaultRules()), store, &recordingBus{}, nil)

	if _, err := svc.Apply(context.Background(), uuid.New(), Event{Type: EventPageView}); err == nil {
		t.Fatal("expected error from failing store")
	}
}

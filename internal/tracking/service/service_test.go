package service

import (
	"context"
	"errors"
	"testing"

	"leadgen_backend/internal/events"
	"leadgen_backend/internal/tracking/ports"
	"leadgen_backend/internal/tracking/repository"

	"github.com/google/uuid"
)

type fakeStore struct {
	inserted []repository.InsertEventParams
	err      error
}

func (s *fakeStore) InsertEvent(_ context.Context, params repository.InsertEventParams) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = append(s.inserted, params)
	return nil
}

type fakeScorer struct {
	scored  []ports.ScoredEvent
	leadIDs []uuid.UUID
	applied bool
	err     error
}

func (s *fakeScorer) Score(_ context.Context, leadID uuid.UUID, event ports.ScoredEvent) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.scored = append(s.scored, event)
	s.leadIDs = append(s.leadIDs, leadID)
	return s.applied, nil
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

func TestTrackAnonymousEvent(t *testing.T) {
	store := &fakeStore{}
	scorer := &fakeScorer{}
	bus := &recordingBus{}
	svc := New(store, scorer, bus)

	err := svc.Track(context.Background(), TrackInput{
		Type:   "page_view",
		Detail: "landing",
		Value:  1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d events, want 1", len(store.inserted))
	}
	if len(scorer.scored) != 0 {
		t.Errorf("scorer invoked %d times, want 0", len(scorer.scored))
	}
	if got := store.inserted[0].Type; got != "page_view" {
		t.Errorf("inserted type = %q, want page_view", got)
	}
	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.published))
	}
	tracked := bus.published[0].(events.EventTracked)
	if tracked.LeadID != nil {
		t.Errorf("tracked leadID = %v, want nil", tracked.LeadID)
	}
}

func TestTrackScoredEvent(t *testing.T) {
	store := &fakeStore{}
	scorer := &fakeScorer{applied: true}
	bus := &recordingBus{}
	svc := New(store, scorer, bus)

	leadID := uuid.New()
	err := svc.Track(context.Background(), TrackInput{
		LeadID: &leadID,
		Type:   "cta_click",
		Detail: "hero",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Scored events go through the scorer only; a second insert would
	// double-record the event.
	if len(store.inserted) != 0 {
		t.Errorf("inserted %d events directly, want 0", len(store.inserted))
	}
	if len(scorer.scored) != 1 {
		t.Fatalf("scorer invoked %d times, want 1", len(scorer.scored))
	}
	if scorer.leadIDs[0] != leadID {
		t.Errorf("scorer leadID = %s, want %s", scorer.leadIDs[0], leadID)
	}
}

func TestTrackSanitizesInput(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, &fakeScorer{}, &recordingBus{})

	err := svc.Track(context.Background(), TrackInput{
		Type:     "page_view<script>alert(1)</script>",
		Detail:   "<b>landing</b>",
		Metadata: "a&lt;b&gt;c",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.inserted[0]
	if got.Type != "page_viewalert(1)" {
		t.Errorf("type = %q, want stripped tags", got.Type)
	}
	if got.Detail != "landing" {
		t.Errorf("detail = %q, want landing", got.Detail)
	}
	if got.Metadata != "ac" {
		t.Errorf("metadata = %q, want ac", got.Metadata)
	}
}

func TestTrackScorerFailure(t *testing.T) {
	scorer := &fakeScorer{err: errors.New("deadlock detected")}
	bus := &recordingBus{}
	svc := New(&fakeStore{}, scorer, bus)

	leadID := uuid.New()
	err := svc.Track(context.Background(), TrackInput{LeadID: &leadID, Type: "form_submit"})
	if err == nil {
		t.Fatal("expected error from failing scorer")
	}
	// No tracked event announcement when persistence failed.
	if len(bus.published) != 0 {
		t.Errorf("published %d events, want 0", len(bus.published))
	}
}

func TestTrackStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	svc := New(store, &fakeScorer{}, &recordingBus{})

	if err := svc.Track(context.Background(), TrackInput{Type: "page_view"}); err == nil {
		t.Fatal("expected error from failing store")
	}
}

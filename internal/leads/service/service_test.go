package service

import (
	"context"
	"testing"

	"leadgen_backend/internal/events"
	"leadgen_backend/internal/leads/repository"

	"github.com/google/uuid"
)

type fakeRepo struct {
	created       []repository.CreateLeadParams
	drafts        map[uuid.UUID]repository.Draft
	deletedDrafts []uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{drafts: make(map[uuid.UUID]repository.Draft)}
}

func (r *fakeRepo) Create(_ context.Context, params repository.CreateLeadParams) (repository.Lead, error) {
	r.created = append(r.created, params)
	return repository.Lead{
		ID:     params.ID,
		Email:  params.Email,
		Source: params.Source,
	}, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Lead, error) {
	return repository.Lead{ID: id}, nil
}

func (r *fakeRepo) List(context.Context) ([]repository.Lead, error) {
	return nil, nil
}

func (r *fakeRepo) ApplyScoredEvent(context.Context, repository.ApplyScoredEventParams) (repository.ScoreUpdate, error) {
	return repository.ScoreUpdate{}, nil
}

func (r *fakeRepo) UpsertDraft(_ context.Context, params repository.UpsertDraftParams) (repository.Draft, error) {
	draft := repository.Draft{ID: params.ID, Payload: params.Payload, LastStep: params.LastStep}
	r.drafts[params.ID] = draft
	return draft, nil
}

func (r *fakeRepo) GetDraft(_ context.Context, id uuid.UUID) (repository.Draft, error) {
	return r.drafts[id], nil
}

func (r *fakeRepo) DeleteDraft(_ context.Context, id uuid.UUID) error {
	r.deletedDrafts = append(r.deletedDrafts, id)
	delete(r.drafts, id)
	return nil
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

func TestCreateLeadSanitizesAndPublishes(t *testing.T) {
	repo := newFakeRepo()
	bus := &recordingBus{}
	svc := New(repo, bus, nil)

	draftID := uuid.New()
	lead, err := svc.CreateLead(context.Background(), CreateLeadInput{
		FirstName: "  Avery<script>x</script> ",
		Email:     "Avery@Example.COM",
		Company:   "<b>Pulse Metrics</b>",
		Phone:     "(212) 555-0100",
		DraftID:   &draftID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("created %d leads, want 1", len(repo.created))
	}
	params := repo.created[0]
	if params.FirstName != "Averyx" {
		t.Errorf("first name = %q, want HTML stripped", params.FirstName)
	}
	if params.Email != "avery@example.com" {
		t.Errorf("email = %q, want lowercased", params.Email)
	}
	if params.Company != "Pulse Metrics" {
		t.Errorf("company = %q, want tags stripped", params.Company)
	}
	if params.Phone != "+12125550100" {
		t.Errorf("phone = %q, want E.164", params.Phone)
	}
	if params.Source != "landing" {
		t.Errorf("source = %q, want landing default", params.Source)
	}

	if len(repo.deletedDrafts) != 1 || repo.deletedDrafts[0] != draftID {
		t.Errorf("completed draft was not discarded: %v", repo.deletedDrafts)
	}

	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.published))
	}
	created, ok := bus.published[0].(events.LeadCreated)
	if !ok {
		t.Fatalf("published event is %T, want LeadCreated", bus.published[0])
	}
	if created.LeadID != lead.ID {
		t.Errorf("event leadID = %s, want %s", created.LeadID, lead.ID)
	}
}

func TestCreateLeadKeepsExplicitSource(t *testing.T) {
	repo := newFakeRepo()
	svc := New(repo, &recordingBus{}, nil)

	_, err := svc.CreateLead(context.Background(), CreateLeadInput{
		Email:  "jordan@example.com",
		Source: "exit-intent",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.created[0].Source; got != "exit-intent" {
		t.Errorf("source = %q, want exit-intent", got)
	}
}

func TestSaveDraftGeneratesID(t *testing.T) {
	repo := newFakeRepo()
	svc := New(repo, &recordingBus{}, nil)

	draft, err := svc.SaveDraft(context.Background(), uuid.Nil, map[string]string{
		"firstName": "<i>Avery</i>",
	}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.ID == uuid.Nil {
		t.Error("expected a generated draft ID")
	}
	if draft.LastStep != 1 {
		t.Errorf("lastStep = %d, want 1 floor", draft.LastStep)
	}
	if got := draft.Payload["firstName"]; got != "Avery" {
		t.Errorf("payload firstName = %q, want sanitized", got)
	}
}

func TestSaveDraftReusesID(t *testing.T) {
	repo := newFakeRepo()
	svc := New(repo, &recordingBus{}, nil)

	id := uuid.New()
	draft, err := svc.SaveDraft(context.Background(), id, nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.ID != id {
		t.Errorf("draft ID = %s, want %s", draft.ID, id)
	}
	if draft.LastStep != 3 {
		t.Errorf("lastStep = %d, want 3", draft.LastStep)
	}
}

func TestSuggestion(t *testing.T) {
	svc := New(newFakeRepo(), &recordingBus{}, nil)

	incomplete := svc.Suggestion("", "$5k-$10k", "30 days")
	if incomplete != "Answer a few fields to unlock suggestions." {
		t.Errorf("incomplete suggestion = %q", incomplete)
	}

	full := svc.Suggestion("Pipeline volatility", "$5k-$10k", "30 days")
	want := "Focus on pipeline volatility with a $5k-$10k sprint. A 30 days launch window needs rapid qualification and automated follow-up."
	if full != want {
		t.Errorf("suggestion = %q, want %q", full, want)
	}
}

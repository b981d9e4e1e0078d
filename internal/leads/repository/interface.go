package repository

import (
	"context"
	"time"

	"leadgen_backend/internal/leads/domain"

	"github.com/google/uuid"
)

// Lead is a captured prospective customer record.
type Lead struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Company     string
	Role        string
	Phone       string
	Website     string
	Niche       string
	PainPoint   string
	Budget      string
	Timeline    string
	Goals       string
	Score       int
	Temperature domain.Temperature
	Source      string
	ABVariant   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Draft is a resumable, pre-submission snapshot of in-progress form data,
// keyed by a client-held identifier. It has no durable link to a Lead.
type Draft struct {
	ID        uuid.UUID
	Payload   map[string]string
	LastStep  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateLeadParams holds the sanitized profile fields for a new lead.
// Score and temperature are not parameters: every lead starts at 0/cold.
type CreateLeadParams struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Company   string
	Role      string
	Phone     string
	Website   string
	Niche     string
	PainPoint string
	Budget    string
	Timeline  string
	Goals     string
	Source    string
	ABVariant string
}

// EventRecord is the raw behavioral event persisted alongside a score update.
type EventRecord struct {
	Type     string
	Detail   string
	Value    float64
	Metadata string
}

// ApplyScoredEventParams carries one event and its precomputed delta for a
// single lead.
type ApplyScoredEventParams struct {
	LeadID uuid.UUID
	Event  EventRecord
	Delta  int
}

// ScoreUpdate reports the outcome of applying a scored event.
type ScoreUpdate struct {
	// LeadFound is false when no lead row exists for the given ID. The raw
	// event is still recorded (without a lead association) for audit.
	LeadFound           bool
	PreviousScore       int
	PreviousTemperature domain.Temperature
	Score               int
	Temperature         domain.Temperature
}

// UpsertDraftParams holds a draft snapshot to insert or refresh.
type UpsertDraftParams struct {
	ID       uuid.UUID
	Payload  map[string]string
	LastStep int
}

// Repository is the persistence boundary of the leads bounded context.
type Repository interface {
	Create(ctx context.Context, params CreateLeadParams) (Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
	List(ctx context.Context) ([]Lead, error)

	// ApplyScoredEvent persists the event record and the lead's score
	// mutation in one transaction, serialized per lead by a row lock. Either
	// both land or neither does.
	ApplyScoredEvent(ctx context.Context, params ApplyScoredEventParams) (ScoreUpdate, error)

	UpsertDraft(ctx context.Context, params UpsertDraftParams) (Draft, error)
	GetDraft(ctx context.Context, id uuid.UUID) (Draft, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) error
}

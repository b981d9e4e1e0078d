// Package service implements lead lifecycle operations: creation from form
// submissions and exit-intent prompts, draft autosave, and the templated
// pitch suggestion.
package service

import (
	"context"
	"fmt"
	"strings"

	"leadgen_backend/internal/events"
	"leadgen_backend/internal/leads/repository"
	"leadgen_backend/platform/logger"
	"leadgen_backend/platform/phone"
	"leadgen_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Service coordinates lead persistence with sanitization, phone normalization
// and domain event publication.
type Service struct {
	repo repository.Repository
	bus  events.Bus
	log  *logger.Logger
}

// New creates the leads service.
func New(repo repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

// CreateLeadInput is the validated, pre-sanitization form submission.
type CreateLeadInput struct {
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
	// DraftID, when set, is the autosave draft the submission completes;
	// it is discarded after the lead lands.
	DraftID *uuid.UUID
}

// CreateLead persists a new lead at score 0 / cold. All free-form fields are
// HTML-stripped and the phone number is normalized to E.164 when it parses.
func (s *Service) CreateLead(ctx context.Context, input CreateLeadInput) (repository.Lead, error) {
	params := repository.CreateLeadParams{
		ID:        uuid.New(),
		FirstName: sanitize.Text(input.FirstName),
		LastName:  sanitize.Text(input.LastName),
		Email:     strings.ToLower(sanitize.Text(input.Email)),
		Company:   sanitize.Text(input.Company),
		Role:      sanitize.Text(input.Role),
		Phone:     phone.NormalizeE164(sanitize.Text(input.Phone)),
		Website:   sanitize.Text(input.Website),
		Niche:     sanitize.Text(input.Niche),
		PainPoint: sanitize.Text(input.PainPoint),
		Budget:    sanitize.Text(input.Budget),
		Timeline:  sanitize.Text(input.Timeline),
		Goals:     sanitize.Text(input.Goals),
		Source:    sanitize.Text(input.Source),
		ABVariant: sanitize.Text(input.ABVariant),
	}
	if params.Source == "" {
		params.Source = "landing"
	}

	lead, err := s.repo.Create(ctx, params)
	if err != nil {
		return repository.Lead{}, fmt.Errorf("create lead: %w", err)
	}

	// The draft served its purpose; a failed delete must not fail the
	// submission.
	if input.DraftID != nil {
		if err := s.repo.DeleteDraft(ctx, *input.DraftID); err != nil && s.log != nil {
			s.log.Warn("failed to discard completed draft", "draftId", input.DraftID.String(), "error", err)
		}
	}

	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		Email:     lead.Email,
		Source:    lead.Source,
	})

	return lead, nil
}

// GetLead returns a single lead by ID.
func (s *Service) GetLead(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

// ListLeads returns all leads, newest first.
func (s *Service) ListLeads(ctx context.Context) ([]repository.Lead, error) {
	return s.repo.List(ctx)
}

// SaveDraft upserts an autosave snapshot. A zero draft ID means this is the
// first save and the server mints the identifier the client will reuse.
func (s *Service) SaveDraft(ctx context.Context, draftID uuid.UUID, payload map[string]string, lastStep int) (repository.Draft, error) {
	if draftID == uuid.Nil {
		draftID = uuid.New()
	}
	if lastStep < 1 {
		lastStep = 1
	}

	draft, err := s.repo.UpsertDraft(ctx, repository.UpsertDraftParams{
		ID:       draftID,
		Payload:  sanitize.Map(payload),
		LastStep: lastStep,
	})
	if err != nil {
		return repository.Draft{}, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

// GetDraft returns a stored draft for form resumption.
func (s *Service) GetDraft(ctx context.Context, id uuid.UUID) (repository.Draft, error) {
	return s.repo.GetDraft(ctx, id)
}

// Suggestion builds the templated pitch suggestion from the qualification
// answers. It is deterministic; no model is involved.
func (s *Service) Suggestion(painPoint, budget, timeline string) string {
	painPoint = sanitize.Text(painPoint)
	budget = sanitize.Text(budget)
	timeline = sanitize.Text(timeline)

	if painPoint == "" || budget == "" || timeline == "" {
		return "Answer a few fields to unlock suggestions."
	}

	return fmt.Sprintf(
		"Focus on %s with a %s sprint. A %s launch window needs rapid qualification and automated follow-up.",
		strings.ToLower(painPoint), budget, timeline,
	)
}

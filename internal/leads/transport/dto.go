// Package transport defines request/response DTOs for the leads HTTP API.
package transport

import (
	"time"

	"leadgen_backend/internal/leads/repository"
)

// CreateLeadRequest is the multi-step form submission payload. Only the email
// is mandatory; the exit-intent prompt submits little more than that.
type CreateLeadRequest struct {
	FirstName string `json:"firstName" validate:"omitempty,max=200"`
	LastName  string `json:"lastName" validate:"omitempty,max=200"`
	Email     string `json:"email" validate:"required,email,max=320"`
	Company   string `json:"company" validate:"omitempty,max=300"`
	Role      string `json:"role" validate:"omitempty,max=200"`
	Phone     string `json:"phone" validate:"omitempty,max=50"`
	Website   string `json:"website" validate:"omitempty,max=500"`
	Niche     string `json:"niche" validate:"omitempty,max=200"`
	PainPoint string `json:"painPoint" validate:"omitempty,max=500"`
	Budget    string `json:"budget" validate:"omitempty,max=200"`
	Timeline  string `json:"timeline" validate:"omitempty,max=200"`
	Goals     string `json:"goals" validate:"omitempty,max=2000"`
	Source    string `json:"source" validate:"omitempty,max=200"`
	ABVariant string `json:"abVariant" validate:"omitempty,max=10"`
	DraftID   string `json:"draftId" validate:"omitempty,uuid"`
}

// CreateLeadResponse returns the new lead's identifier to the browser, which
// keeps it for subsequent tracking calls.
type CreateLeadResponse struct {
	LeadID string `json:"leadId"`
}

// SaveDraftRequest is one autosave snapshot of in-progress form data. The
// payload field set is open-ended; the server stores whatever the form sends.
type SaveDraftRequest struct {
	DraftID  string            `json:"draftId" validate:"omitempty,uuid"`
	Payload  map[string]string `json:"payload"`
	LastStep int               `json:"lastStep" validate:"omitempty,min=1,max=20"`
}

// SaveDraftResponse echoes the draft identifier, server-generated on the
// first save.
type SaveDraftResponse struct {
	DraftID string `json:"draftId"`
}

// DraftResponse is a stored draft returned for form resumption.
type DraftResponse struct {
	DraftID   string            `json:"draftId"`
	Payload   map[string]string `json:"payload"`
	LastStep  int               `json:"lastStep"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// SuggestionResponse carries the templated pitch suggestion shown next to
// the form.
type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

// LeadResponse is the admin-facing view of a lead.
type LeadResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Phone       string    `json:"phone"`
	Website     string    `json:"website"`
	Niche       string    `json:"niche"`
	PainPoint   string    `json:"painPoint"`
	Budget      string    `json:"budget"`
	Timeline    string    `json:"timeline"`
	Goals       string    `json:"goals"`
	Score       int       `json:"score"`
	Temperature string    `json:"temperature"`
	Source      string    `json:"source"`
	ABVariant   string    `json:"abVariant"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToLeadResponse maps a stored lead to its API representation.
func ToLeadResponse(lead repository.Lead) LeadResponse {
	return LeadResponse{
		ID:          lead.ID.String(),
		FirstName:   lead.FirstName,
		LastName:    lead.LastName,
		Email:       lead.Email,
		Company:     lead.Company,
		Role:        lead.Role,
		Phone:       lead.Phone,
		Website:     lead.Website,
		Niche:       lead.Niche,
		PainPoint:   lead.PainPoint,
		Budget:      lead.Budget,
		Timeline:    lead.Timeline,
		Goals:       lead.Goals,
		Score:       lead.Score,
		Temperature: lead.Temperature.String(),
		Source:      lead.Source,
		ABVariant:   lead.ABVariant,
		CreatedAt:   lead.CreatedAt,
		UpdatedAt:   lead.UpdatedAt,
	}
}

// ToLeadResponses maps a slice of leads, returning an empty (not nil) slice
// so the JSON encodes as [].
func ToLeadResponses(leads []repository.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		out = append(out, ToLeadResponse(lead))
	}
	return out
}

// Package handler exposes the leads HTTP endpoints: public lead capture and
// draft autosave plus the admin lead list.
package handler

import (
	"net/http"

	"leadgen_backend/internal/leads/service"
	"leadgen_backend/internal/leads/transport"
	"leadgen_backend/platform/httpkit"
	"leadgen_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidInput = "Invalid input"
	msgInvalidEmail = "Invalid email."
	msgCreateFailed = "Unable to create lead."
	msgDraftFailed  = "Unable to save draft."
)

// Handler handles lead capture and draft endpoints.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterPublicRoutes mounts the public lead endpoints under /leads.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.CreateLead)
	rg.POST("/drafts", h.SaveDraft)
	rg.GET("/drafts/:draftId", h.GetDraft)
	rg.GET("/suggestion", h.GetSuggestion)
}

// RegisterAdminRoutes mounts the admin lead list under the admin group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/leads", h.ListLeads)
}

// CreateLead captures a lead from the multi-step form or exit-intent prompt.
func (h *Handler) CreateLead(c *gin.Context) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidInput, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidEmail, err.Error())
		return
	}

	input := service.CreateLeadInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Company:   req.Company,
		Role:      req.Role,
		Phone:     req.Phone,
		Website:   req.Website,
		Niche:     req.Niche,
		PainPoint: req.PainPoint,
		Budget:    req.Budget,
		Timeline:  req.Timeline,
		Goals:     req.Goals,
		Source:    req.Source,
		ABVariant: req.ABVariant,
	}
	if req.DraftID != "" {
		if draftID, err := uuid.Parse(req.DraftID); err == nil {
			input.DraftID = &draftID
		}
	}

	lead, err := h.svc.CreateLead(c.Request.Context(), input)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgCreateFailed, nil)
		return
	}

	httpkit.OK(c, transport.CreateLeadResponse{LeadID: lead.ID.String()})
}

// SaveDraft upserts an autosave snapshot of in-progress form data.
func (h *Handler) SaveDraft(c *gin.Context) {
	var req transport.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgDraftFailed, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgDraftFailed, err.Error())
		return
	}

	var draftID uuid.UUID
	if req.DraftID != "" {
		parsed, err := uuid.Parse(req.DraftID)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, msgDraftFailed, nil)
			return
		}
		draftID = parsed
	}

	draft, err := h.svc.SaveDraft(c.Request.Context(), draftID, req.Payload, req.LastStep)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgDraftFailed, nil)
		return
	}

	httpkit.OK(c, transport.SaveDraftResponse{DraftID: draft.ID.String()})
}

// GetDraft returns a stored draft so the form can resume where it left off.
func (h *Handler) GetDraft(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("draftId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidInput, nil)
		return
	}

	draft, err := h.svc.GetDraft(c.Request.Context(), draftID)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, transport.DraftResponse{
		DraftID:   draft.ID.String(),
		Payload:   draft.Payload,
		LastStep:  draft.LastStep,
		UpdatedAt: draft.UpdatedAt,
	})
}

// GetSuggestion returns the templated pitch suggestion for the given
// qualification answers.
func (h *Handler) GetSuggestion(c *gin.Context) {
	suggestion := h.svc.Suggestion(
		c.Query("painPoint"),
		c.Query("budget"),
		c.Query("timeline"),
	)
	httpkit.OK(c, transport.SuggestionResponse{Suggestion: suggestion})
}

// ListLeads returns every lead, newest first.
func (h *Handler) ListLeads(c *gin.Context) {
	leads, err := h.svc.ListLeads(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, transport.ToLeadResponses(leads))
}

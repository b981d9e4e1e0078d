// Package handler exposes the public event ingestion endpoint.
package handler

import (
	"net/http"

	"leadgen_backend/internal/tracking/service"
	"leadgen_backend/internal/tracking/transport"
	"leadgen_backend/platform/httpkit"
	"leadgen_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const msgTrackFailed = "Unable to track event."

// Handler handles tracking endpoints.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new tracking handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the tracking endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/track", h.Track)
}

// Track ingests one behavioral event beacon.
func (h *Handler) Track(c *gin.Context) {
	var req transport.TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgTrackFailed, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgTrackFailed, err.Error())
		return
	}

	input := service.TrackInput{
		Type:     req.Type,
		Detail:   req.Detail,
		Value:    req.Value.Float64(),
		Metadata: req.Metadata,
	}
	if req.LeadID != "" {
		if leadID, err := uuid.Parse(req.LeadID); err == nil {
			input.LeadID = &leadID
		}
	}

	if err := h.svc.Track(c.Request.Context(), input); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgTrackFailed, nil)
		return
	}

	httpkit.OK(c, transport.TrackEventResponse{Status: "tracked"})
}

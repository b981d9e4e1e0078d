// Package handler exposes the admin analytics endpoints.
package handler

import (
	"leadgen_backend/internal/analytics/repository"
	"leadgen_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles the admin analytics endpoints.
type Handler struct {
	reader repository.Reader
}

// New creates a new analytics handler.
func New(reader repository.Reader) *Handler {
	return &Handler{reader: reader}
}

// RegisterRoutes mounts the analytics endpoints on the admin group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics", h.GetAnalytics)
	rg.GET("/funnel", h.GetFunnel)
}

// GetAnalytics returns lead totals by temperature plus the overall event count.
func (h *Handler) GetAnalytics(c *gin.Context) {
	totals, err := h.reader.Totals(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, gin.H{
		"totals": gin.H{
			"totalLeads": totals.TotalLeads,
			"hotLeads":   totals.HotLeads,
			"warmLeads":  totals.WarmLeads,
			"coldLeads":  totals.ColdLeads,
		},
		"totalEvents": totals.TotalEvents,
	})
}

// GetFunnel returns the form progression counts.
func (h *Handler) GetFunnel(c *gin.Context) {
	funnel, err := h.reader.Funnel(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, gin.H{
		"formStarts":      funnel.FormStarts,
		"stepCompletions": funnel.StepCompletions,
		"submissions":     funnel.Submissions,
	})
}

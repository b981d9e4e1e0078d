// Package exports streams the admin CSV dump of every lead field.
package exports

import (
	"encoding/csv"
	"strconv"
	"time"

	"leadgen_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles the leads CSV export.
type Handler struct {
	repo LeadLister
}

// NewHandler creates a new export handler.
func NewHandler(repo LeadLister) *Handler {
	return &Handler{repo: repo}
}

func csvHeaders() []string {
	return []string{
		"id",
		"firstName",
		"lastName",
		"email",
		"company",
		"role",
		"phone",
		"website",
		"niche",
		"painPoint",
		"budget",
		"timeline",
		"goals",
		"score",
		"temperature",
		"source",
		"abVariant",
		"createdAt",
	}
}

func leadCSV(lead ExportLead) []string {
	return []string{
		lead.ID.String(),
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.Company,
		lead.Role,
		lead.Phone,
		lead.Website,
		lead.Niche,
		lead.PainPoint,
		lead.Budget,
		lead.Timeline,
		lead.Goals,
		strconv.Itoa(lead.Score),
		lead.Temperature,
		lead.Source,
		lead.ABVariant,
		lead.CreatedAt.Format(time.RFC3339),
	}
}

// ExportLeadsCSV streams every lead as a CSV attachment.
func (h *Handler) ExportLeadsCSV(c *gin.Context) {
	leads, err := h.repo.ListLeads(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="leads.csv"`)

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(csvHeaders()); err != nil {
		return
	}
	for _, lead := range leads {
		if err := writer.Write(leadCSV(lead)); err != nil {
			return
		}
	}
	writer.Flush()
}

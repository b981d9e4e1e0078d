package exports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExportLead is a flat, export-shaped view of a lead row.
type ExportLead struct {
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
	Temperature string
	Source      string
	ABVariant   string
	CreatedAt   time.Time
}

// LeadLister is the query boundary of the exports module.
type LeadLister interface {
	ListLeads(ctx context.Context) ([]ExportLead, error)
}

// Repository implements LeadLister with PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new exports repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ LeadLister = (*Repository)(nil)

// ListLeads returns every lead, newest first.
func (r *Repository) ListLeads(ctx context.Context) ([]ExportLead, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, company, role, phone, website,
			niche, pain_point, budget, timeline, goals, score, temperature,
			source, ab_variant, created_at
		FROM leads
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list export leads: %w", err)
	}
	defer rows.Close()

	var leads []ExportLead
	for rows.Next() {
		var lead ExportLead
		if err := rows.Scan(
			&lead.ID, &lead.FirstName, &lead.LastName, &lead.Email, &lead.Company,
			&lead.Role, &lead.Phone, &lead.Website, &lead.Niche, &lead.PainPoint,
			&lead.Budget, &lead.Timeline, &lead.Goals, &lead.Score, &lead.Temperature,
			&lead.Source, &lead.ABVariant, &lead.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan export lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate export leads: %w", err)
	}

	return leads, nil
}

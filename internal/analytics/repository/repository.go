// Package repository provides the read-only aggregation queries behind the
// admin analytics endpoints.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Totals summarizes the lead base by temperature plus the overall event count.
type Totals struct {
	TotalLeads  int
	HotLeads    int
	WarmLeads   int
	ColdLeads   int
	TotalEvents int
}

// Funnel counts the form progression events.
type Funnel struct {
	FormStarts      int
	StepCompletions int
	Submissions     int
}

// Reader is the query boundary of the analytics context.
type Reader interface {
	Totals(ctx context.Context) (Totals, error)
	Funnel(ctx context.Context) (Funnel, error)
}

// Repo implements Reader with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Reader = (*Repo)(nil)

// Totals returns lead counts by temperature and the total event count.
func (r *Repo) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := r.pool.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE temperature = 'hot'),
			count(*) FILTER (WHERE temperature = 'warm'),
			count(*) FILTER (WHERE temperature = 'cold'),
			(SELECT count(*) FROM events)
		FROM leads`,
	).Scan(&t.TotalLeads, &t.HotLeads, &t.WarmLeads, &t.ColdLeads, &t.TotalEvents)
	if err != nil {
		return Totals{}, fmt.Errorf("analytics totals: %w", err)
	}
	return t, nil
}

// Funnel returns the form progression counts.
func (r *Repo) Funnel(ctx context.Context) (Funnel, error) {
	var f Funnel
	err := r.pool.QueryRow(ctx, `
		SELECT
			count(*) FILTER (WHERE type = 'form_start'),
			count(*) FILTER (WHERE type = 'form_step_complete'),
			count(*) FILTER (WHERE type = 'form_submit')
		FROM events`,
	).Scan(&f.FormStarts, &f.StepCompletions, &f.Submissions)
	if err != nil {
		return Funnel{}, fmt.Errorf("analytics funnel: %w", err)
	}
	return f, nil
}

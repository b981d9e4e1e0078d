// Package repository persists anonymous behavioral events, the ones that
// arrive without a lead association. Events tied to a lead are written by the
// leads repository inside the scoring transaction.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InsertEventParams is one raw behavioral event without a lead association.
type InsertEventParams struct {
	Type     string
	Detail   string
	Value    float64
	Metadata string
}

// EventStore is the persistence boundary of the tracking context.
type EventStore interface {
	InsertEvent(ctx context.Context, params InsertEventParams) error
}

// Repo implements EventStore with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tracking repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ EventStore = (*Repo)(nil)

// InsertEvent records an event with no lead association.
func (r *Repo) InsertEvent(ctx context.Context, params InsertEventParams) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO events (lead_id, type, detail, value, metadata) VALUES (NULL, $1, $2, $3, $4)`,
		params.Type, params.Detail, params.Value, params.Metadata,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

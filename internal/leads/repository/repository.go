package repository

import (
	"context"
	"errors"
	"fmt"

	"leadgen_backend/internal/leads/domain"
	"leadgen_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const leadNotFoundMessage = "lead not found"

const leadColumns = `id, first_name, last_name, email, company, role, phone, website,
	niche, pain_point, budget, timeline, goals, score, temperature, source, ab_variant,
	created_at, updated_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a new lead at score 0 / cold.
func (r *Repo) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	query := `
		INSERT INTO leads (id, first_name, last_name, email, company, role, phone, website,
			niche, pain_point, budget, timeline, goals, source, ab_variant)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + leadColumns

	row := r.pool.QueryRow(ctx, query,
		params.ID, params.FirstName, params.LastName, params.Email, params.Company,
		params.Role, params.Phone, params.Website, params.Niche, params.PainPoint,
		params.Budget, params.Timeline, params.Goals, params.Source, params.ABVariant,
	)

	lead, err := scanLead(row)
	if err != nil {
		return Lead{}, fmt.Errorf("create lead: %w", err)
	}
	return lead, nil
}

// GetByID retrieves a lead by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return Lead{}, fmt.Errorf("get lead by id: %w", err)
	}
	return lead, nil
}

// List retrieves all leads, newest first.
func (r *Repo) List(ctx context.Context) ([]Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var results []Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		results = append(results, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}

	return results, nil
}

// ApplyScoredEvent records one behavioral event and applies its delta to the
// lead's score in a single transaction. The SELECT ... FOR UPDATE serializes
// concurrent events for the same lead, so both contribute their full delta;
// events for different leads proceed in parallel.
//
// When the lead does not exist, the event is still recorded without a lead
// association (the FK would otherwise reject it) and the score update is
// skipped. A failure of the score update rolls the event insert back with it.
func (r *Repo) ApplyScoredEvent(ctx context.Context, params ApplyScoredEventParams) (ScoreUpdate, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return ScoreUpdate{}, fmt.Errorf("apply scored event: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var currentScore int
	var currentTemp domain.Temperature
	err = tx.QueryRow(ctx,
		`SELECT score, temperature FROM leads WHERE id = $1 FOR UPDATE`,
		params.LeadID,
	).Scan(&currentScore, &currentTemp)

	if errors.Is(err, pgx.ErrNoRows) {
		if err := insertEvent(ctx, tx, nil, params.Event); err != nil {
			return ScoreUpdate{}, err
		}
		if err := tx.Commit(ctx); err != nil {
			return ScoreUpdate{}, fmt.Errorf("apply scored event: commit: %w", err)
		}
		return ScoreUpdate{LeadFound: false}, nil
	}
	if err != nil {
		return ScoreUpdate{}, fmt.Errorf("apply scored event: lock lead: %w", err)
	}

	if err := insertEvent(ctx, tx, &params.LeadID, params.Event); err != nil {
		return ScoreUpdate{}, err
	}

	newScore := currentScore + params.Delta
	newTemp := domain.Classify(newScore)

	if _, err := tx.Exec(ctx,
		`UPDATE leads SET score = $2, temperature = $3, updated_at = now() WHERE id = $1`,
		params.LeadID, newScore, newTemp,
	); err != nil {
		return ScoreUpdate{}, fmt.Errorf("apply scored event: update lead: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return ScoreUpdate{}, fmt.Errorf("apply scored event: commit: %w", err)
	}

	return ScoreUpdate{
		LeadFound:           true,
		PreviousScore:       currentScore,
		PreviousTemperature: currentTemp,
		Score:               newScore,
		Temperature:         newTemp,
	}, nil
}

func insertEvent(ctx context.Context, tx pgx.Tx, leadID *uuid.UUID, event EventRecord) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO events (lead_id, type, detail, value, metadata) VALUES ($1, $2, $3, $4, $5)`,
		leadID, event.Type, event.Detail, event.Value, event.Metadata,
	)
	if err != nil {
		return fmt.Errorf("apply scored event: insert event: %w", err)
	}
	return nil
}

func scanLead(row pgx.Row) (Lead, error) {
	var lead Lead
	err := row.Scan(
		&lead.ID, &lead.FirstName, &lead.LastName, &lead.Email, &lead.Company,
		&lead.Role, &lead.Phone, &lead.Website, &lead.Niche, &lead.PainPoint,
		&lead.Budget, &lead.Timeline, &lead.Goals, &lead.Score, &lead.Temperature,
		&lead.Source, &lead.ABVariant, &lead.CreatedAt, &lead.UpdatedAt,
	)
	return lead, err
}

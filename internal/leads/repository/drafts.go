package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"leadgen_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const draftNotFoundMessage = "draft not found"

// UpsertDraft inserts a draft or refreshes an existing one in place.
func (r *Repo) UpsertDraft(ctx context.Context, params UpsertDraftParams) (Draft, error) {
	payload, err := json.Marshal(params.Payload)
	if err != nil {
		return Draft{}, fmt.Errorf("upsert draft: marshal payload: %w", err)
	}

	query := `
		INSERT INTO lead_drafts (id, payload, last_step)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET payload = EXCLUDED.payload, last_step = EXCLUDED.last_step, updated_at = now()
		RETURNING id, payload, last_step, created_at, updated_at`

	draft, err := scanDraft(r.pool.QueryRow(ctx, query, params.ID, payload, params.LastStep))
	if err != nil {
		return Draft{}, fmt.Errorf("upsert draft: %w", err)
	}
	return draft, nil
}

// GetDraft retrieves a draft by its client-held identifier.
func (r *Repo) GetDraft(ctx context.Context, id uuid.UUID) (Draft, error) {
	query := `SELECT id, payload, last_step, created_at, updated_at FROM lead_drafts WHERE id = $1`

	draft, err := scanDraft(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Draft{}, apperr.NotFound(draftNotFoundMessage)
		}
		return Draft{}, fmt.Errorf("get draft: %w", err)
	}
	return draft, nil
}

// DeleteDraft discards a draft. Deleting an already-absent draft is not an
// error; submission and deletion can race from two tabs.
func (r *Repo) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM lead_drafts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

func scanDraft(row pgx.Row) (Draft, error) {
	var draft Draft
	var payload []byte

	if err := row.Scan(&draft.ID, &payload, &draft.LastStep, &draft.CreatedAt, &draft.UpdatedAt); err != nil {
		return Draft{}, err
	}

	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &draft.Payload); err != nil {
			return Draft{}, fmt.Errorf("unmarshal draft payload: %w", err)
		}
	}
	if draft.Payload == nil {
		draft.Payload = make(map[string]string)
	}

	return draft, nil
}

// Command seed loads sample leads and events into the database for local
// development and demoing the admin dashboard.
package main

import (
	"context"

	"leadgen_backend/internal/leads/domain"
	"leadgen_backend/internal/leads/repository"
	"leadgen_backend/migrations"
	"leadgen_backend/platform/config"
	"leadgen_backend/platform/db"
	"leadgen_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type sampleLead struct {
	params repository.CreateLeadParams
	score  int
}

func sampleLeads() []sampleLead {
	return []sampleLead{
		{
			params: repository.CreateLeadParams{
				ID:        uuid.New(),
				FirstName: "Avery",
				LastName:  "Nguyen",
				Email:     "avery@example.com",
				Company:   "Pulse Metrics",
				Role:      "Head of Growth",
				Niche:     "B2B SaaS",
				PainPoint: "Pipeline volatility",
				Budget:    "$5k-$10k",
				Timeline:  "30 days",
				Goals:     "Increase qualified demos by 40%.",
				Source:    "hero-cta",
				ABVariant: "B",
			},
			score: 72,
		},
		{
			params: repository.CreateLeadParams{
				ID:        uuid.New(),
				FirstName: "Jordan",
				LastName:  "Reed",
				Email:     "jordan@example.com",
				Company:   "Brightline Legal",
				Role:      "Founder",
				Niche:     "Professional Services",
				PainPoint: "Lead follow-up gaps",
				Budget:    "$2k-$5k",
				Timeline:  "14 days",
				Goals:     "Automate intake and scheduling.",
				Source:    "exit-intent",
				ABVariant: "A",
			},
			score: 88,
		},
	}
}

type sampleEvent struct {
	eventType string
	detail    string
	value     float64
}

func sampleEvents() []sampleEvent {
	return []sampleEvent{
		{"page_view", "landing", 1},
		{"scroll_50", "landing", 50},
		{"form_start", "lead-form", 1},
		{"form_submit", "lead-form", 1},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("seeding sample data")

	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg, migrations.FS); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	repo := repository.New(pool)

	for _, sample := range sampleLeads() {
		lead, err := repo.Create(ctx, sample.params)
		if err != nil {
			log.Error("failed to create sample lead", "email", sample.params.Email, "error", err)
			continue
		}

		// Backfill the derived score so the dashboard has variety out of
		// the box.
		if err := setScore(ctx, pool, lead.ID, sample.score); err != nil {
			log.Error("failed to set sample score", "leadId", lead.ID, "error", err)
			continue
		}

		for _, event := range sampleEvents() {
			if err := insertEvent(ctx, pool, lead.ID, event); err != nil {
				log.Error("failed to insert sample event", "leadId", lead.ID, "type", event.eventType, "error", err)
			}
		}

		log.Info("seeded lead", "leadId", lead.ID, "email", lead.Email, "temperature", domain.Classify(sample.score))
	}

	log.Info("seed data added")
}

func setScore(ctx context.Context, pool *pgxpool.Pool, leadID uuid.UUID, score int) error {
	_, err := pool.Exec(ctx,
		`UPDATE leads SET score = $2, temperature = $3 WHERE id = $1`,
		leadID, score, string(domain.Classify(score)),
	)
	return err
}

func insertEvent(ctx context.Context, pool *pgxpool.Pool, leadID uuid.UUID, event sampleEvent) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO events (lead_id, type, detail, value, metadata) VALUES ($1, $2, $3, $4, '')`,
		leadID, event.eventType, event.detail, event.value,
	)
	return err
}

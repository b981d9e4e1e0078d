// Package notification delivers the sales-facing hot lead alert in response
// to domain events. It subscribes to the event bus and inverts the
// dependency: the scoring path never knows about email providers or queues.
package notification

import (
	"context"
	"fmt"
	"strings"

	"leadgen_backend/internal/email"
	"leadgen_backend/internal/events"
	"leadgen_backend/internal/scheduler"
	"leadgen_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AlertConfig provides the destination for sales alerts.
type AlertConfig interface {
	GetSalesAlertAddress() string
}

// leadReader is the slice of pgxpool.Pool used to load lead details for the
// alert email body.
type leadReader interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Module handles notification event subscriptions.
type Module struct {
	db       leadReader
	sender   email.Sender
	enqueuer scheduler.AlertEnqueuer
	cfg      AlertConfig
	log      *logger.Logger
}

// NewModule creates the notification module. The enqueuer is optional; when
// nil (no Redis configured) alerts are delivered inline instead of through
// the task queue.
func NewModule(db leadReader, sender email.Sender, enqueuer scheduler.AlertEnqueuer, cfg AlertConfig, log *logger.Logger) *Module {
	return &Module{
		db:       db,
		sender:   sender,
		enqueuer: enqueuer,
		cfg:      cfg,
		log:      log,
	}
}

// Subscribe registers the module's event subscriptions on the bus.
func (m *Module) Subscribe(bus events.Bus) {
	bus.Subscribe(events.LeadTemperatureChanged{}.EventName(), m)
	bus.Subscribe(events.HotLeadAlertDue{}.EventName(), m)
}

// Handle dispatches incoming domain events.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.LeadTemperatureChanged:
		return m.handleTemperatureChanged(ctx, e)
	case events.HotLeadAlertDue:
		return m.sendHotLeadAlert(ctx, e.LeadID, e.Score)
	default:
		return nil
	}
}

// handleTemperatureChanged reacts only to the crossing into hot. Cooling back
// down or warming to warm is not alert-worthy.
func (m *Module) handleTemperatureChanged(ctx context.Context, e events.LeadTemperatureChanged) error {
	if e.Temperature != "hot" {
		return nil
	}

	if m.enqueuer != nil {
		err := m.enqueuer.EnqueueHotLeadAlert(ctx, scheduler.HotLeadAlertPayload{
			LeadID: e.LeadID.String(),
			Score:  e.Score,
		})
		if err == nil {
			return nil
		}
		m.log.Error("failed to enqueue hot lead alert, sending inline", "leadId", e.LeadID, "error", err)
	}

	return m.sendHotLeadAlert(ctx, e.LeadID, e.Score)
}

func (m *Module) sendHotLeadAlert(ctx context.Context, leadID uuid.UUID, score int) error {
	to := m.cfg.GetSalesAlertAddress()
	if to == "" {
		return nil
	}

	var firstName, lastName, leadEmail, company string
	err := m.db.QueryRow(ctx,
		`SELECT first_name, last_name, email, company FROM leads WHERE id = $1`,
		leadID,
	).Scan(&firstName, &lastName, &leadEmail, &company)
	if err != nil {
		return fmt.Errorf("hot lead alert: load lead: %w", err)
	}

	name := strings.TrimSpace(firstName + " " + lastName)
	if name == "" {
		name = leadEmail
	}

	err = m.sender.SendHotLeadAlertEmail(ctx, to, email.HotLeadAlertData{
		LeadID:    leadID.String(),
		Name:      name,
		Email:     leadEmail,
		Company:   company,
		Score:     score,
		AdminLink: "/admin",
	})
	if err != nil {
		return fmt.Errorf("hot lead alert: send: %w", err)
	}

	m.log.Info("hot lead alert sent", "leadId", leadID, "score", score)
	return nil
}

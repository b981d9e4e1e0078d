// Package email delivers transactional mail over SMTP with rendered HTML
// templates.
package email

import (
	"context"

	"leadgen_backend/platform/config"
)

// Sender delivers the sales-facing notifications.
type Sender interface {
	SendHotLeadAlertEmail(ctx context.Context, toEmail string, data HotLeadAlertData) error
}

// HotLeadAlertData carries the lead summary for the hot-lead alert email.
type HotLeadAlertData struct {
	LeadID    string
	Name      string
	Email     string
	Company   string
	Score     int
	AdminLink string
}

// NoopSender satisfies Sender without delivering anything. Used when email is
// disabled in the configuration.
type NoopSender struct{}

func (NoopSender) SendHotLeadAlertEmail(context.Context, string, HotLeadAlertData) error {
	return nil
}

// NewSender builds the configured sender: SMTP when enabled, noop otherwise.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}

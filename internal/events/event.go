// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"leadgen_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCreated is published when a new lead is captured, via the multi-step
// form or an exit-intent prompt.
type LeadCreated struct {
	BaseEvent
	LeadID uuid.UUID `json:"leadId"`
	Email  string    `json:"email"`
	Source string    `json:"source"`
}

func (e LeadCreated) EventName() string { return "leads.lead.created" }

// LeadTemperatureChanged is published when a scored event moves a lead into a
// different temperature band.
type LeadTemperatureChanged struct {
	BaseEvent
	LeadID              uuid.UUID `json:"leadId"`
	PreviousTemperature string    `json:"previousTemperature"`
	Temperature         string    `json:"temperature"`
	Score               int       `json:"score"`
}

func (e LeadTemperatureChanged) EventName() string { return "leads.lead.temperature_changed" }

// =============================================================================
// Tracking Domain Events
// =============================================================================

// EventTracked is published after a behavioral event has been persisted.
type EventTracked struct {
	BaseEvent
	LeadID *uuid.UUID `json:"leadId,omitempty"`
	Type   string     `json:"type"`
}

func (e EventTracked) EventName() string { return "tracking.event.tracked" }

// =============================================================================
// Notification Domain Events
// =============================================================================

// HotLeadAlertDue is published by the background worker when a queued hot-lead
// alert task is processed and the sales notification should go out.
type HotLeadAlertDue struct {
	BaseEvent
	LeadID uuid.UUID `json:"leadId"`
	Score  int       `json:"score"`
}

func (e HotLeadAlertDue) EventName() string { return "notification.hot_lead_alert.due" }

// Package scoring implements the lead scoring engine: the rule table mapping
// behavioral event types to score deltas, the pure delta calculator, and the
// service that applies deltas to persisted leads.
package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules maps an event type to its base score delta. The table is the single
// source of truth for how much each behavior is worth; adding a new event
// type is one new entry, nothing else. Event types absent from the table
// score zero (fail open, not an error).
type Rules map[string]int

// Behavioral event types with canonical base deltas.
const (
	EventPageView         = "page_view"
	EventScroll50         = "scroll_50"
	EventScroll90         = "scroll_90"
	EventCTAClick         = "cta_click"
	EventFormStart        = "form_start"
	EventFormStepComplete = "form_step_complete"
	EventFormSubmit       = "form_submit"
	EventExitIntent       = "exit_intent"
	EventTimeOnPage       = "time_on_page"
)

// DefaultRules returns the canonical rule table. Callers receive a fresh copy
// so the defaults can never be mutated through a shared reference.
func DefaultRules() Rules {
	return Rules{
		EventPageView:         2,
		EventScroll50:         5,
		EventScroll90:         8,
		EventCTAClick:         8,
		EventFormStart:        10,
		EventFormStepComplete: 12,
		EventFormSubmit:       30,
		EventExitIntent:       4,
		EventTimeOnPage:       1,
	}
}

// BaseDelta returns the table's base score for an event type, or zero when
// the type is not listed.
func (r Rules) BaseDelta(eventType string) int {
	return r[eventType]
}

// LoadRules returns the canonical table, optionally merged with overrides
// from a YAML file (a flat event-type → delta mapping). An empty path yields
// the defaults unchanged. Overridden deltas must be non-negative.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring rules: %w", err)
	}

	overrides := make(map[string]int)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse scoring rules: %w", err)
	}

	for eventType, delta := range overrides {
		if delta < 0 {
			return nil, fmt.Errorf("scoring rule %q: delta must be non-negative, got %d", eventType, delta)
		}
		rules[eventType] = delta
	}

	return rules, nil
}

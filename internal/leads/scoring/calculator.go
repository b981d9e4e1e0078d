package scoring

import "math"

// maxTimeOnPageDelta caps the contribution of a single time_on_page event so
// an idle tab cannot inflate a lead's score without bound.
const maxTimeOnPageDelta = 15

// Calculator computes the score delta for a single behavioral event. It is a
// pure function over an injected rule table: no persistence, no side effects.
type Calculator struct {
	rules Rules
}

// NewCalculator creates a calculator over the given rule table.
func NewCalculator(rules Rules) *Calculator {
	return &Calculator{rules: rules}
}

// Delta returns the score contribution of one event.
//
// time_on_page is duration-based: one point per ten units of value, capped at
// maxTimeOnPageDelta and never negative. Every other recognized type scores
// its base delta from the rule table, ignoring the value. Unrecognized types
// score zero.
//
// Callers are expected to have coerced the value to a valid non-negative
// number; a negative value is treated as zero rather than producing a
// negative delta.
func (c *Calculator) Delta(eventType string, value float64) int {
	if eventType == EventTimeOnPage {
		if value < 0 || math.IsNaN(value) {
			return 0
		}
		// Compare before converting: float-to-int conversion of +Inf or
		// any value beyond the int range is undefined.
		scaled := math.Floor(value / 10)
		if scaled >= maxTimeOnPageDelta {
			return maxTimeOnPageDelta
		}
		return int(scaled)
	}

	return c.rules.BaseDelta(eventType)
}

// Package domain holds the leads bounded context's core types and pure rules.
package domain

// Temperature is the categorical interest bucket derived from a lead's score.
type Temperature string

const (
	// TemperatureCold is the starting bucket for every lead.
	TemperatureCold Temperature = "cold"
	// TemperatureWarm marks a lead worth following up soon.
	TemperatureWarm Temperature = "warm"
	// TemperatureHot marks a high-intent lead.
	TemperatureHot Temperature = "hot"
)

// Band thresholds. Each bound is inclusive: a score of exactly 50 is warm,
// exactly 80 is hot.
const (
	WarmThreshold = 50
	HotThreshold  = 80
)

// Classify maps a cumulative score to its temperature. Total over all
// integers; negative scores classify as cold, and there is no upper cap on
// the raw score (classification saturates at hot).
func Classify(score int) Temperature {
	switch {
	case score >= HotThreshold:
		return TemperatureHot
	case score >= WarmThreshold:
		return TemperatureWarm
	default:
		return TemperatureCold
	}
}

// String returns the temperature as its stored text value.
func (t Temperature) String() string { return string(t) }

// Valid reports whether t is one of the three known buckets.
func (t Temperature) Valid() bool {
	switch t {
	case TemperatureCold, TemperatureWarm, TemperatureHot:
		return true
	default:
		return false
	}
}

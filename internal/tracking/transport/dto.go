// Package transport defines request/response DTOs for the tracking HTTP API.
package transport

import (
	"encoding/json"
	"strconv"
)

// FlexibleNumber accepts a JSON number, a numeric string, a boolean, or null
// and coerces anything else to zero. Tracking beacons are fired from browser
// code that is sloppy about value types; a bad value must never reject the
// event.
type FlexibleNumber float64

func (n *FlexibleNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = 0
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = FlexibleNumber(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = FlexibleNumber(parsed)
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*n = 1
		} else {
			*n = 0
		}
		return nil
	}

	*n = 0
	return nil
}

// Float64 returns the coerced numeric value.
func (n FlexibleNumber) Float64() float64 {
	return float64(n)
}

// TrackEventRequest is one behavioral event beacon from the browser. LeadID
// is optional; anonymous events are recorded without a lead association.
type TrackEventRequest struct {
	LeadID   string         `json:"leadId" validate:"omitempty,uuid"`
	Type     string         `json:"type" validate:"required,max=100"`
	Detail   string         `json:"detail" validate:"omitempty,max=500"`
	Value    FlexibleNumber `json:"value"`
	Metadata string         `json:"metadata" validate:"omitempty,max=2000"`
}

// TrackEventResponse is deliberately generic: the delta and new score are
// never exposed to the client.
type TrackEventResponse struct {
	Status string `json:"status"`
}

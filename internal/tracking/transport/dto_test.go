package transport

import (
	"encoding/json"
	"math"
	"testing"
)

func TestFlexibleNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{"number", `{"value": 45}`, 45},
		{"float", `{"value": 12.5}`, 12.5},
		{"numeric string", `{"value": "150"}`, 150},
		{"non-numeric string", `{"value": "fast"}`, 0},
		{"infinity string", `{"value": "Infinity"}`, math.Inf(1)},
		{"inf string", `{"value": "Inf"}`, math.Inf(1)},
		{"negative infinity string", `{"value": "-Infinity"}`, math.Inf(-1)},
		{"empty string", `{"value": ""}`, 0},
		{"null", `{"value": null}`, 0},
		{"missing", `{}`, 0},
		{"true", `{"value": true}`, 1},
		{"false", `{"value": false}`, 0},
		{"object", `{"value": {"x": 1}}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req TrackEventRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := req.Value.Float64(); got != tt.want {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}
}

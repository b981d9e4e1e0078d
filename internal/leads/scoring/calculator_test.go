package scoring

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDeltaFixedTypesIgnoreValue(t *testing.T) {
	calc := NewCalculator(DefaultRules())

	cases := []struct {
		eventType string
		want      int
	}{
		{EventPageView, 2},
		{EventScroll50, 5},
		{EventScroll90, 8},
		{EventCTAClick, 8},
		{EventFormStart, 10},
		{EventFormStepComplete, 12},
		{EventFormSubmit, 30},
		{EventExitIntent, 4},
	}

	for _, tc := range cases {
		for _, value := range []float64{0, 1, 99, 100000, -5} {
			if got := calc.Delta(tc.eventType, value); got != tc.want {
				t.Errorf("Delta(%q, %v) = %d, want %d", tc.eventType, value, got, tc.want)
			}
		}
	}
}

func TestDeltaTimeOnPage(t *testing.T) {
	calc := NewCalculator(DefaultRules())

	cases := []struct {
		value float64
		want  int
	}{
		{0, 0},
		{9, 0},
		{10, 1},
		{45, 4},
		{100, 10},
		{149, 14},
		{150, 15},
		{200, 15},
		{100000, 15},
		{-30, 0},
	}

	for _, tc := range cases {
		if got := calc.Delta(EventTimeOnPage, tc.value); got != tc.want {
			t.Errorf("Delta(time_on_page, %v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestDeltaTimeOnPageNonFiniteValues(t *testing.T) {
	calc := NewCalculator(DefaultRules())

	cases := []struct {
		name  string
		value float64
		want  int
	}{
		{"positive infinity", math.Inf(1), 15},
		{"negative infinity", math.Inf(-1), 0},
		{"nan", math.NaN(), 0},
		{"max float", math.MaxFloat64, 15},
	}

	for _, tc := range cases {
		got := calc.Delta(EventTimeOnPage, tc.value)
		if got != tc.want {
			t.Errorf("%s: Delta(time_on_page, %v) = %d, want %d", tc.name, tc.value, got, tc.want)
		}
		if got < 0 || got > maxTimeOnPageDelta {
			t.Errorf("%s: Delta(time_on_page, %v) = %d escapes [0, %d]", tc.name, tc.value, got, maxTimeOnPageDelta)
		}
	}
}

func TestDeltaUnknownTypeScoresZero(t *testing.T) {
	calc := NewCalculator(DefaultRules())

	for _, eventType := range []string{"", "unknown", "PAGE_VIEW", "form-submit", "video_play"} {
		if got := calc.Delta(eventType, 42); got != 0 {
			t.Errorf("Delta(%q, 42) = %d, want 0", eventType, got)
		}
	}
}

func TestDefaultRulesCanonicalValues(t *testing.T) {
	rules := DefaultRules()

	want := map[string]int{
		"page_view":          2,
		"scroll_50":          5,
		"scroll_90":          8,
		"cta_click":          8,
		"form_start":         10,
		"form_step_complete": 12,
		"form_submit":        30,
		"exit_intent":        4,
		"time_on_page":       1,
	}

	if len(rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(rules))
	}
	for eventType, delta := range want {
		if rules[eventType] != delta {
			t.Errorf("rules[%q] = %d, want %d", eventType, rules[eventType], delta)
		}
	}
}

func TestDefaultRulesReturnsFreshCopy(t *testing.T) {
	first := DefaultRules()
	first[EventPageView] = 999

	if DefaultRules()[EventPageView] != 2 {
		t.Error("mutating a returned rule table leaked into the defaults")
	}
}

func TestLoadRulesEmptyPathReturnsDefaults(t *testing.T) {
	rules, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules(\"\") returned error: %v", err)
	}
	if rules[EventFormSubmit] != 30 {
		t.Errorf("expected default form_submit delta 30, got %d", rules[EventFormSubmit])
	}
}

func TestLoadRulesMergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "cta_click: 12\nvideo_play: 6\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules returned error: %v", err)
	}

	if rules[EventCTAClick] != 12 {
		t.Errorf("expected overridden cta_click delta 12, got %d", rules[EventCTAClick])
	}
	if rules["video_play"] != 6 {
		t.Errorf("expected new video_play delta 6, got %d", rules["video_play"])
	}
	if rules[EventPageView] != 2 {
		t.Errorf("expected untouched page_view delta 2, got %d", rules[EventPageView])
	}
}

func TestLoadRulesRejectsNegativeDelta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("cta_click: -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRules(path); err == nil {
		t.Error("expected error for negative override delta")
	}
}

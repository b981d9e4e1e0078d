package domain

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  Temperature
	}{
		{-100, TemperatureCold},
		{-1, TemperatureCold},
		{0, TemperatureCold},
		{49, TemperatureCold},
		{50, TemperatureWarm},
		{51, TemperatureWarm},
		{79, TemperatureWarm},
		{80, TemperatureHot},
		{81, TemperatureHot},
		{10000, TemperatureHot},
	}

	for _, tc := range cases {
		if got := Classify(tc.score); got != tc.want {
			t.Errorf("Classify(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	rank := map[Temperature]int{
		TemperatureCold: 0,
		TemperatureWarm: 1,
		TemperatureHot:  2,
	}

	prev := Classify(-50)
	for score := -49; score <= 200; score++ {
		current := Classify(score)
		if rank[current] < rank[prev] {
			t.Fatalf("Classify not monotonic: score %d classified %q after %q", score, current, prev)
		}
		prev = current
	}
}

func TestTemperatureValid(t *testing.T) {
	for _, temp := range []Temperature{TemperatureCold, TemperatureWarm, TemperatureHot} {
		if !temp.Valid() {
			t.Errorf("expected %q to be valid", temp)
		}
	}
	if Temperature("lukewarm").Valid() {
		t.Error("expected unknown temperature to be invalid")
	}
}

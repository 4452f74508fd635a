package cvss3

import (
	"math"
	"testing"
)

func TestSeverityFromScore(t *testing.T) {
	tcs := []struct {
		Score float64
		Want  Severity
	}{
		{Score: 0.0, Want: None},
		{Score: 0.1, Want: Low},
		{Score: 3.9, Want: Low},
		{Score: 4.0, Want: Medium},
		{Score: 6.9, Want: Medium},
		{Score: 7.0, Want: High},
		{Score: 8.9, Want: High},
		{Score: 9.0, Want: Critical},
		{Score: 10.0, Want: Critical},
		{Score: math.NaN(), Want: Undefined},
		{Score: -0.1, Want: Unknown},
		{Score: 10.1, Want: Unknown},
		{Score: 0.05, Want: Unknown}, // not a one-decimal score
	}
	for _, tc := range tcs {
		t.Run(tc.Want.String(), func(t *testing.T) {
			if got := SeverityFromScore(tc.Score); got != tc.Want {
				t.Errorf("SeverityFromScore(%v): got: %v, want: %v", tc.Score, got, tc.Want)
			}
		})
	}
}

// TestBandsTile checks that every one-decimal score in [0.0, 10.0] lands in
// exactly one band.
func TestBandsTile(t *testing.T) {
	for i := 0; i <= 100; i++ {
		score := float64(i) / 10
		var n int
		for _, b := range severityBands {
			if score >= b.Bottom && score <= b.Top {
				n++
			}
		}
		if n != 1 {
			t.Errorf("score %.1f: matched %d bands", score, n)
		}
		if got := SeverityFromScore(score); got == Unknown || got == Undefined {
			t.Errorf("score %.1f: got: %v", score, got)
		}
	}
}

func TestSeverityText(t *testing.T) {
	for s := Unknown; s <= Undefined; s++ {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Severity
		if err := got.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Errorf("got: %v, want: %v", got, s)
		}
	}
	var s Severity
	if err := s.UnmarshalText([]byte("Bogus")); err == nil {
		t.Error("expected error")
	}
}

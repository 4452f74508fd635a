package main

import (
	"testing"
)

func TestMetricMap(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		m, err := metricMap([]string{"AV=N", "AC=L", "PR=N"})
		if err != nil {
			t.Fatal(err)
		}
		for code, want := range map[string]string{"AV": "N", "AC": "L", "PR": "N"} {
			if got := m[code]; got != want {
				t.Errorf("%s: got: %q, want: %q", code, got, want)
			}
		}
	})
	t.Run("BadAssignment", func(t *testing.T) {
		if _, err := metricMap([]string{"AV:N"}); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("Duplicate", func(t *testing.T) {
		if _, err := metricMap([]string{"AV=N", "AV=L"}); err == nil {
			t.Error("expected error")
		}
	})
}

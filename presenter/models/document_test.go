package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/severix/cvss3"
)

func TestNewDocument(t *testing.T) {
	tcs := []struct {
		Vector string
		Want   Document
	}{
		{
			Vector: "CVSS:3.0/AV:A/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:L",
			Want: Document{
				Version:               "3.0",
				Vector:                "CVSS:3.0/AV:A/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:L",
				BaseScore:             "1.8",
				BaseSeverity:          "Low",
				TemporalScore:         "1.8",
				TemporalSeverity:      "Low",
				EnvironmentalScore:    "1.8",
				EnvironmentalSeverity: "Low",
			},
		},
		{
			// Scores keep one decimal place even when whole.
			Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H",
			Want: Document{
				Version:               "3.0",
				Vector:                "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H",
				BaseScore:             "10.0",
				BaseSeverity:          "Critical",
				TemporalScore:         "10.0",
				TemporalSeverity:      "Critical",
				EnvironmentalScore:    "10.0",
				EnvironmentalSeverity: "Critical",
			},
		},
		{
			Vector: "CVSS:3.0/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N",
			Want: Document{
				Version:               "3.0",
				Vector:                "CVSS:3.0/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N",
				BaseScore:             "0.0",
				BaseSeverity:          "None",
				TemporalScore:         "0.0",
				TemporalSeverity:      "None",
				EnvironmentalScore:    "0.0",
				EnvironmentalSeverity: "None",
			},
		},
	}
	for _, tc := range tcs {
		t.Run("", func(t *testing.T) {
			t.Log(tc.Vector)
			r, err := cvss3.ScoreFromVector(tc.Vector)
			if err != nil {
				t.Fatal(err)
			}
			got := NewDocument(r)
			if !cmp.Equal(got, tc.Want) {
				t.Error(cmp.Diff(got, tc.Want))
			}
		})
	}
}

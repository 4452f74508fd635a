package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/severix/cvss3"
)

func TestPresent(t *testing.T) {
	r, err := cvss3.ScoreFromVector("CVSS:3.0/AV:A/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:L")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := NewPresenter(r).Present(&buf); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"CVSS:3.0/AV:A/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:L",
		"SCORE", // tablewriter upcases headers; rows keep their case
		"Base",
		"Temporal",
		"Environmental",
		"1.8",
		"Low",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

package json

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

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
	want := `{
 "version": "3.0",
 "vectorString": "CVSS:3.0/AV:A/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:L",
 "baseScore": "1.8",
 "baseSeverity": "Low",
 "temporalScore": "1.8",
 "temporalSeverity": "Low",
 "environmentalScore": "1.8",
 "environmentalSeverity": "Low"
}
`
	if got := buf.String(); got != want {
		t.Error(cmp.Diff(got, want))
	}
}

package xml

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
	want := `<?xml version="1.0" encoding="UTF-8"?>
<cvss>
  <version>3.0</version>
  <vectorString>CVSS:3.0/AV:A/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:L</vectorString>
  <baseScore>1.8</baseScore>
  <baseSeverity>Low</baseSeverity>
  <temporalScore>1.8</temporalScore>
  <temporalSeverity>Low</temporalSeverity>
  <environmentalScore>1.8</environmentalScore>
  <environmentalSeverity>Low</environmentalSeverity>
</cvss>
`
	if got := buf.String(); got != want {
		t.Error(cmp.Diff(got, want))
	}
}

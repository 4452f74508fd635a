package cvss3

import (
	"fmt"
	"math"
)

// Severity is a qualitative severity rating.
type Severity int

// The ratings defined by the specification's qualitative severity rating
// scale, plus two sentinels for scores the scale does not cover.
const (
	Unknown Severity = iota // score outside every rating band
	None
	Low
	Medium
	High
	Critical
	Undefined // score is not a number
)

var severityNames = [...]string{
	"Unknown",
	"None",
	"Low",
	"Medium",
	"High",
	"Critical",
	"Undefined",
}

// String implements [fmt.Stringer].
func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(b []byte) error {
	for i, n := range severityNames {
		if n == string(b) {
			*s = Severity(i)
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", string(b))
}

// SeverityBands are the closed intervals of the qualitative severity rating
// scale, in ascending order. Together they tile [0.0, 10.0] exactly for
// scores rounded to one decimal place.
var severityBands = [...]struct {
	Bottom, Top float64
	Severity    Severity
}{
	{0.0, 0.0, None},
	{0.1, 3.9, Low},
	{4.0, 6.9, Medium},
	{7.0, 8.9, High},
	{9.0, 10.0, Critical},
}

// SeverityFromScore maps a numeric score to its qualitative severity
// rating.
//
// A NaN score reports [Undefined]. A score no band contains reports
// [Unknown]; scores produced by this package always land in a band, but
// arbitrary caller input need not.
func SeverityFromScore(score float64) Severity {
	if math.IsNaN(score) {
		return Undefined
	}
	for _, b := range severityBands {
		if score >= b.Bottom && score <= b.Top {
			return b.Severity
		}
	}
	return Unknown
}

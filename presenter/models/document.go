package models

import (
	"encoding/xml"
	"strconv"

	"github.com/severix/cvss3"
)

// Document is the serializable form of a scoring report.
//
// Scores are carried as strings formatted to exactly one decimal place
// ("1.8", "0.0", "10.0"), matching the precision the scoring equations
// guarantee.
type Document struct {
	XMLName               xml.Name `json:"-" xml:"cvss"`
	Version               string   `json:"version" xml:"version"`
	Vector                string   `json:"vectorString" xml:"vectorString"`
	BaseScore             string   `json:"baseScore" xml:"baseScore"`
	BaseSeverity          string   `json:"baseSeverity" xml:"baseSeverity"`
	TemporalScore         string   `json:"temporalScore" xml:"temporalScore"`
	TemporalSeverity      string   `json:"temporalSeverity" xml:"temporalSeverity"`
	EnvironmentalScore    string   `json:"environmentalScore" xml:"environmentalScore"`
	EnvironmentalSeverity string   `json:"environmentalSeverity" xml:"environmentalSeverity"`
}

// NewDocument creates a Document from a scoring report.
func NewDocument(r *cvss3.Report) Document {
	return Document{
		Version:               cvss3.Version,
		Vector:                r.Vector,
		BaseScore:             formatScore(r.BaseScore),
		BaseSeverity:          r.BaseSeverity.String(),
		TemporalScore:         formatScore(r.TemporalScore),
		TemporalSeverity:      r.TemporalSeverity.String(),
		EnvironmentalScore:    formatScore(r.EnvironmentalScore),
		EnvironmentalSeverity: r.EnvironmentalSeverity.String(),
	}
}

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

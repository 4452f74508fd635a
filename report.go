package cvss3

// Report is the result of scoring a vector: the three numeric scores, each
// rounded to one decimal place, their qualitative severity ratings, and the
// canonicalized vector string.
type Report struct {
	Vector                string
	BaseScore             float64
	TemporalScore         float64
	EnvironmentalScore    float64
	BaseSeverity          Severity
	TemporalSeverity      Severity
	EnvironmentalSeverity Severity
}

// Score validates the vector and assembles its Report.
//
// On a validation failure the returned error is an [*Error] and no Report
// is produced; there are no partial results.
func Score(v *Vector) (*Report, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	base := v.BaseScore()
	temporal := v.TemporalScore()
	environmental := v.EnvironmentalScore()
	return &Report{
		Vector:                v.String(),
		BaseScore:             base,
		TemporalScore:         temporal,
		EnvironmentalScore:    environmental,
		BaseSeverity:          SeverityFromScore(base),
		TemporalSeverity:      SeverityFromScore(temporal),
		EnvironmentalSeverity: SeverityFromScore(environmental),
	}, nil
}

// ScoreFromMetrics assembles a vector from the metric map (see
// [FromMetrics]) and scores it.
func ScoreFromMetrics(metrics map[string]string) (*Report, error) {
	return Score(FromMetrics(metrics))
}

// ScoreFromVector parses the vector string and scores it.
func ScoreFromVector(s string) (*Report, error) {
	v, err := ParseVector(s)
	if err != nil {
		return nil, err
	}
	return Score(v)
}

package cvss3

import (
	"math"
	"strings"
)

// Weights holds the specification's weight for every (metric, value) pair,
// indexed by the metric's position in [metricValid]. Modified metrics share
// their Base counterpart's row; the Scope row holds the coefficient applied
// to the impact sub-score.
var weights = [...][]float64{
	{0.85, 0.62, 0.55, 0.2},  // AV
	{0.77, 0.44},             // AC
	{0.85, 0.62, 0.27},       // PR
	{0.85, 0.62},             // UI
	{6.42, 7.52},             // S
	{0.56, 0.22, 0},          // C
	{0.56, 0.22, 0},          // I
	{0.56, 0.22, 0},          // A
	{1, 1, 0.97, 0.94, 0.91}, // E
	{1, 1, 0.97, 0.96, 0.95}, // RL
	{1, 1, 0.96, 0.92},       // RC
	{1, 1.5, 1, 0.5},         // CR
	{1, 1.5, 1, 0.5},         // IR
	{1, 1.5, 1, 0.5},         // AR
}

// Weight reports the weight of the metric's resolved value. A Modified
// metric at "Not Defined" resolves to the corresponding Base metric's
// value, which never mutates the vector itself.
func (v *Vector) weight(m Metric) float64 {
	b := v.value(m)
	if m >= firstModified && b == 'X' {
		b = v.value(m.baseEquivalent())
	}
	base := m.baseEquivalent()
	i := strings.IndexByte(base.validValues(), b)
	if i == -1 {
		panic("programmer error: invalid vector constructed")
	}
	return weights[base][i]
}

// PrivilegesWeight reports the weight of PR or MPR. The weight table for
// Privileges Required changes when the governing Scope is Changed.
func (v *Vector) privilegesWeight(m Metric, scope byte) float64 {
	b := v.value(m)
	if m == ModifiedPrivilegesRequired && b == 'X' {
		b = v.value(PrivilegesRequired)
	}
	if scope == 'C' {
		switch b {
		case 'L':
			return 0.68
		case 'H':
			return 0.50
		}
	}
	i := strings.IndexByte(PrivilegesRequired.validValues(), b)
	if i == -1 {
		panic("programmer error: invalid vector constructed")
	}
	return weights[PrivilegesRequired][i]
}

// Roundup rounds up to one decimal place. The specification requires the
// asymmetric ceiling here, never round-to-nearest.
func roundup(f float64) float64 {
	return math.Ceil(f*10) / 10
}

// BaseScore calculates the Base score of the vector.
//
// The vector must have passed [Vector.Validate]; the score methods panic on
// unvalidated input.
func (v *Vector) BaseScore() float64 {
	scope := v.value(Scope)
	isc := 1 -
		((1 - v.weight(Confidentiality)) *
			(1 - v.weight(Integrity)) *
			(1 - v.weight(Availability)))
	coef := v.weight(Scope)
	var impact float64
	switch scope {
	case 'U':
		impact = coef * isc
	case 'C':
		impact = coef*(isc-0.029) - 3.25*math.Pow(isc-0.02, 15)
	default:
		panic("programmer error: invalid vector constructed")
	}
	if impact <= 0 {
		return 0
	}
	exploitability := 8.22 *
		v.weight(AttackVector) *
		v.weight(AttackComplexity) *
		v.privilegesWeight(PrivilegesRequired, scope) *
		v.weight(UserInteraction)
	if scope == 'U' {
		return roundup(math.Min(impact+exploitability, 10))
	}
	return roundup(math.Min(1.08*(impact+exploitability), 10))
}

// TemporalScore calculates the Temporal score of the vector.
//
// "Not Defined" Temporal metrics weigh 1, so a Base-only vector reports its
// Base score here.
func (v *Vector) TemporalScore() float64 {
	return roundup(v.BaseScore() * v.temporalProduct())
}

func (v *Vector) temporalProduct() float64 {
	return v.weight(ExploitCodeMaturity) *
		v.weight(RemediationLevel) *
		v.weight(ReportConfidence)
}

// EnvironmentalScore calculates the Environmental score of the vector.
//
// Modified metrics at "Not Defined" inherit their Base counterpart's value,
// the impact sub-score is capped at 0.915, and the formula branch follows
// the Modified Scope (falling back to Scope when Modified Scope is "Not
// Defined").
func (v *Vector) EnvironmentalScore() float64 {
	scope := v.value(ModifiedScope)
	if scope == 'X' {
		scope = v.value(Scope)
	}
	isc := math.Min(0.915, 1-
		((1-v.weight(ModifiedConfidentiality)*v.weight(ConfidentialityRequirement))*
			(1-v.weight(ModifiedIntegrity)*v.weight(IntegrityRequirement))*
			(1-v.weight(ModifiedAvailability)*v.weight(AvailabilityRequirement))))
	coef := v.weight(ModifiedScope)
	var impact float64
	switch scope {
	case 'U':
		impact = coef * isc
	case 'C':
		impact = coef*(isc-0.029) - 3.25*math.Pow(isc-0.02, 15)
	default:
		panic("programmer error: invalid vector constructed")
	}
	if impact <= 0 {
		return 0
	}
	exploitability := 8.22 *
		v.weight(ModifiedAttackVector) *
		v.weight(ModifiedAttackComplexity) *
		v.privilegesWeight(ModifiedPrivilegesRequired, scope) *
		v.weight(ModifiedUserInteraction)
	if scope == 'U' {
		return roundup(roundup(math.Min(impact+exploitability, 10)) * v.temporalProduct())
	}
	return roundup(roundup(math.Min(1.08*(impact+exploitability), 10)) * v.temporalProduct())
}

package cvss3

import (
	"encoding"
	"fmt"
	"strings"
)

// Vector is a CVSS v3.0 vector.
//
// The zero value has no metrics assigned and fails [Vector.Validate]. Use
// [ParseVector] or [FromMetrics] to construct one.
type Vector struct {
	// mv holds the packed value of each metric: the single-byte abbreviated
	// form from the specification, zero when unset, or valueInvalid when the
	// caller supplied something outside the metric's domain.
	mv [numMetrics]byte
}

var (
	_ encoding.TextMarshaler   = (*Vector)(nil)
	_ encoding.TextUnmarshaler = (*Vector)(nil)
	_ fmt.Stringer             = (*Vector)(nil)
)

// valueInvalid marks a metric whose supplied value could not be packed.
const valueInvalid = 0xFF

// ParseVector parses the provided string as a v3.0 vector.
func ParseVector(s string) (*Vector, error) {
	v := new(Vector)
	if err := v.UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	return v, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
//
// The input must match the anchored grammar
// "CVSS:3.0/CODE:VALUE(/CODE:VALUE)*" where every pair is drawn from the
// specification's metric domains. Pairs may appear in any order; a metric
// appearing more than once is an error naming every duplicated metric.
// Base metrics may be absent here; their presence is checked by
// [Vector.Validate], not by the grammar.
func (v *Vector) UnmarshalText(text []byte) error {
	*v = Vector{}
	segs := strings.Split(string(text), "/")
	if segs[0] != prefix {
		return &Error{Kind: ErrMalformedVector, Inner: fmt.Errorf("missing %q prefix", prefix)}
	}
	if len(segs) == 1 {
		return &Error{Kind: ErrMalformedVector, Inner: fmt.Errorf("no metrics supplied")}
	}
	var dup []Metric
	for _, seg := range segs[1:] {
		code, val, ok := strings.Cut(seg, ":")
		if !ok {
			return &Error{Kind: ErrMalformedVector, Inner: fmt.Errorf("bad segment %q", seg)}
		}
		m, ok := metricByCode[code]
		if !ok {
			return &Error{Kind: ErrMalformedVector, Inner: fmt.Errorf("unknown metric %q", code)}
		}
		if len(val) != 1 || strings.IndexByte(m.validValues(), val[0]) == -1 {
			return &Error{Kind: ErrMalformedVector, Inner: fmt.Errorf("metric %q: bad value %q", code, val)}
		}
		if v.mv[m] != 0 {
			if !containsMetric(dup, m) {
				dup = append(dup, m)
			}
			continue
		}
		v.mv[m] = val[0]
	}
	if len(dup) != 0 {
		return &Error{Kind: ErrDuplicateMetric, Metrics: dup}
	}
	return nil
}

func containsMetric(ms []Metric, m Metric) bool {
	for _, x := range ms {
		if x == m {
			return true
		}
	}
	return false
}

// FromMetrics assembles a Vector from a map of metric assignments.
//
// Each metric may be keyed by its abbreviated form ("AV") or its long form
// ("AttackVector"); the abbreviated form wins when both are present. Keys
// naming no known metric are ignored. Values outside a metric's domain are
// retained and reported by [Vector.Validate].
func FromMetrics(metrics map[string]string) *Vector {
	v := new(Vector)
	for i := 0; i < numMetrics; i++ {
		val, ok := metrics[metricCode[i]]
		if !ok {
			val, ok = metrics[metricName[i]]
		}
		if !ok {
			continue
		}
		if len(val) == 1 {
			v.mv[i] = val[0]
		} else {
			v.mv[i] = valueInvalid
		}
	}
	return v
}

// Get reports the value assigned to the metric in its abbreviated form, or
// "" if the metric is unset.
func (v *Vector) Get(m Metric) string {
	if m < 0 || int(m) >= numMetrics {
		return ""
	}
	b := v.mv[m]
	if b == 0 {
		return ""
	}
	return string(b)
}

// value reports the packed value of a metric after defaulting: Temporal and
// Environmental metrics read as 'X' when unset.
func (v *Vector) value(m Metric) byte {
	b := v.mv[m]
	if b == 0 && m >= firstTemporal {
		b = 'X'
	}
	return b
}

// Validate checks that every Base metric is assigned and that every
// assigned value is drawn from its metric's domain.
//
// The two checks run in order and each collects every offending metric:
// a missing Base metric is reported as [ErrMissingMetric] before any value
// is examined, and an out-of-domain value as [ErrUnknownValue]. A nil
// return means the vector is scorable.
func (v *Vector) Validate() error {
	var missing []Metric
	for m := AttackVector; m < firstTemporal; m++ {
		if v.mv[m] == 0 {
			missing = append(missing, m)
		}
	}
	if len(missing) != 0 {
		return &Error{Kind: ErrMissingMetric, Metrics: missing}
	}
	var unknown []Metric
	for i := 0; i < numMetrics; i++ {
		m := Metric(i)
		if strings.IndexByte(m.validValues(), v.value(m)) == -1 {
			unknown = append(unknown, m)
		}
	}
	if len(unknown) != 0 {
		return &Error{Kind: ErrUnknownValue, Metrics: unknown}
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
//
// The output is canonical: the version identifier, the eight Base metrics
// in specification order, then every Temporal and Environmental metric not
// at "Not Defined", also in specification order. The encoding is
// independent of how the vector was assembled.
func (v *Vector) MarshalText() (text []byte, err error) {
	text = append(make([]byte, 0, 64), prefix...) // Guess at an initial capacity.
	for i := 0; i < numMetrics; i++ {
		m := Metric(i)
		b := v.value(m)
		if m >= firstTemporal && b == 'X' {
			continue
		}
		if b == 0 || strings.IndexByte(m.validValues(), b) == -1 {
			return nil, &Error{Kind: ErrMalformedVector, Inner: fmt.Errorf("metric %q unset or invalid", m)}
		}
		text = append(text, '/')
		text = append(text, metricCode[i]...)
		text = append(text, ':')
		text = append(text, b)
	}
	return text, nil
}

// String implements [fmt.Stringer].
//
// Calling this method on an invalid instance results in an invalid vector
// string.
func (v *Vector) String() string {
	t, err := v.MarshalText()
	if err != nil {
		return prefix + `/INVALID`
	}
	return string(t)
}

package cvss3

// Metric is a metric in a v3.0 vector.
type Metric int

// The metrics defined in the specification, in canonical vector order.
const (
	AttackVector               Metric = iota // AV
	AttackComplexity                         // AC
	PrivilegesRequired                       // PR
	UserInteraction                          // UI
	Scope                                    // S
	Confidentiality                          // C
	Integrity                                // I
	Availability                             // A
	ExploitCodeMaturity                      // E
	RemediationLevel                         // RL
	ReportConfidence                         // RC
	ConfidentialityRequirement               // CR
	IntegrityRequirement                     // IR
	AvailabilityRequirement                  // AR
	ModifiedAttackVector                     // MAV
	ModifiedAttackComplexity                 // MAC
	ModifiedPrivilegesRequired               // MPR
	ModifiedUserInteraction                  // MUI
	ModifiedScope                            // MS
	ModifiedConfidentiality                  // MC
	ModifiedIntegrity                        // MI
	ModifiedAvailability                     // MA

	numMetrics int = iota
)

// Metric group boundaries. Base metrics are mandatory; the rest default to
// "Not Defined" when absent.
const (
	firstTemporal = ExploitCodeMaturity
	firstModified = ModifiedAttackVector
)

var metricCode = [numMetrics]string{
	"AV", "AC", "PR", "UI", "S", "C", "I", "A",
	"E", "RL", "RC",
	"CR", "IR", "AR",
	"MAV", "MAC", "MPR", "MUI", "MS", "MC", "MI", "MA",
}

var metricName = [numMetrics]string{
	"AttackVector",
	"AttackComplexity",
	"PrivilegesRequired",
	"UserInteraction",
	"Scope",
	"Confidentiality",
	"Integrity",
	"Availability",
	"ExploitCodeMaturity",
	"RemediationLevel",
	"ReportConfidence",
	"ConfidentialityRequirement",
	"IntegrityRequirement",
	"AvailabilityRequirement",
	"ModifiedAttackVector",
	"ModifiedAttackComplexity",
	"ModifiedPrivilegesRequired",
	"ModifiedUserInteraction",
	"ModifiedScope",
	"ModifiedConfidentiality",
	"ModifiedIntegrity",
	"ModifiedAvailability",
}

// metricValid holds the concatenation of valid values for each metric, in
// the order the weight tables are laid out. Metrics that may be left "Not
// Defined" list 'X' first.
var metricValid = [numMetrics]string{
	"NALP",  // AV
	"LH",    // AC
	"NLH",   // PR
	"NR",    // UI
	"UC",    // S
	"HLN",   // C
	"HLN",   // I
	"HLN",   // A
	"XHFPU", // E
	"XUWTO", // RL
	"XCRU",  // RC
	"XHML",  // CR
	"XHML",  // IR
	"XHML",  // AR
	"XNALP", // MAV
	"XLH",   // MAC
	"XNLH",  // MPR
	"XNR",   // MUI
	"XUC",   // MS
	"XHLN",  // MC
	"XHLN",  // MI
	"XHLN",  // MA
}

// String returns the metric's abbreviated form, e.g. "AV".
func (m Metric) String() string {
	if m < 0 || int(m) >= numMetrics {
		return "invalid"
	}
	return metricCode[m]
}

// Name returns the metric's long form, e.g. "AttackVector".
func (m Metric) Name() string {
	if m < 0 || int(m) >= numMetrics {
		return "invalid"
	}
	return metricName[m]
}

// validValues returns the concatenation of valid values for the metric.
func (m Metric) validValues() string { return metricValid[m] }

// baseEquivalent maps a Modified metric to its Base counterpart. The two
// groups are laid out in the same order, so this is index arithmetic.
func (m Metric) baseEquivalent() Metric {
	if m < firstModified {
		return m
	}
	return m - firstModified + AttackVector
}

func mkRevLookup() map[string]Metric {
	rev := make(map[string]Metric, numMetrics)
	for i, c := range metricCode {
		rev[c] = Metric(i)
	}
	return rev
}

var metricByCode = mkRevLookup()

// Package cvss3 implements CVSS v3.0 vectors and scoring.
//
// The package parses CVSS v3.0 vector strings into a structured
// representation, validates metric assignments, calculates the Base,
// Temporal, and Environmental scores, and produces the canonicalized
// representation of the vector.
//
// Metrics and scoring are implemented as laid out in the [v3.0 specification].
// Scores round up to one decimal place, as required there; the severity
// rating scale is the one defined in section 5 of the specification.
//
// All types in this package are plain values over immutable tables. Nothing
// here does I/O or holds state between calls, so everything is safe for
// concurrent use.
//
// [v3.0 specification]: https://www.first.org/cvss/v3-0/
package cvss3

// prefix is the version identifier every v3.0 vector starts with.
const prefix = `CVSS:3.0`

// Version is the CVSS version implemented by this package.
const Version = `3.0`

// Package presenter renders scoring reports for external consumers.
package presenter

import (
	"io"
	"strings"

	"github.com/severix/cvss3"
	"github.com/severix/cvss3/presenter/json"
	"github.com/severix/cvss3/presenter/table"
	"github.com/severix/cvss3/presenter/xml"
)

// Presenter is the main interface other Presenters need to implement.
type Presenter interface {
	Present(io.Writer) error
}

// Format is a dedicated type to represent a specific kind of presenter
// output format.
type Format string

const (
	UnknownFormat Format = "unknown"
	JSONFormat    Format = "json"
	XMLFormat     Format = "xml"
	TableFormat   Format = "table"
)

// AvailableFormats lists the formats this package can produce.
var AvailableFormats = []Format{
	JSONFormat,
	XMLFormat,
	TableFormat,
}

// ParseFormat returns the presenter format for the user's input, or
// UnknownFormat.
func ParseFormat(userInput string) Format {
	switch strings.ToLower(userInput) {
	case "json":
		return JSONFormat
	case "xml":
		return XMLFormat
	case "", "table":
		return TableFormat
	}
	return UnknownFormat
}

// GetPresenter returns a presenter rendering the report in the given
// format, or nil for an unknown format.
func GetPresenter(format Format, report *cvss3.Report) Presenter {
	switch format {
	case JSONFormat:
		return json.NewPresenter(report)
	case XMLFormat:
		return xml.NewPresenter(report)
	case TableFormat:
		return table.NewPresenter(report)
	}
	return nil
}

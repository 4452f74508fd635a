package json

import (
	"encoding/json"
	"io"

	"github.com/severix/cvss3"
	"github.com/severix/cvss3/presenter/models"
)

// Presenter writes a scoring report as JSON.
type Presenter struct {
	report *cvss3.Report
}

// NewPresenter creates a new JSON presenter.
func NewPresenter(report *cvss3.Report) *Presenter {
	return &Presenter{report: report}
}

// Present writes the report to output.
func (p *Presenter) Present(output io.Writer) error {
	doc := models.NewDocument(p.report)
	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&doc)
}

package xml

import (
	"encoding/xml"
	"io"

	"github.com/severix/cvss3"
	"github.com/severix/cvss3/presenter/models"
)

// Presenter writes a scoring report as XML.
type Presenter struct {
	report *cvss3.Report
}

// NewPresenter creates a new XML presenter.
func NewPresenter(report *cvss3.Report) *Presenter {
	return &Presenter{report: report}
}

// Present writes the report to output.
func (p *Presenter) Present(output io.Writer) error {
	doc := models.NewDocument(p.report)
	if _, err := io.WriteString(output, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(output)
	enc.Indent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	_, err := io.WriteString(output, "\n")
	return err
}

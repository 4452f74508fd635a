package table

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/severix/cvss3"
	"github.com/severix/cvss3/presenter/models"
)

// Presenter writes a scoring report as a human-readable table.
type Presenter struct {
	report *cvss3.Report
}

// NewPresenter creates a new table presenter.
func NewPresenter(report *cvss3.Report) *Presenter {
	return &Presenter{report: report}
}

// Present writes the report to output.
func (p *Presenter) Present(output io.Writer) error {
	doc := models.NewDocument(p.report)
	if _, err := fmt.Fprintf(output, "%s\n\n", doc.Vector); err != nil {
		return err
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Score", "Value", "Severity"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk([][]string{
		{"Base", doc.BaseScore, doc.BaseSeverity},
		{"Temporal", doc.TemporalScore, doc.TemporalSeverity},
		{"Environmental", doc.EnvironmentalScore, doc.EnvironmentalSeverity},
	})
	table.Render()

	return nil
}

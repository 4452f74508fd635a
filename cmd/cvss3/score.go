package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/severix/cvss3"
	"github.com/severix/cvss3/presenter"
)

func newScoreCmd() *cobra.Command {
	var (
		metrics   []string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "score [vector]",
		Short: "Score a CVSS v3.0 vector",
		Long: `Score computes the Base, Temporal, and Environmental scores of a vector
supplied either as a vector string argument or as repeated --metric flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(scoreOpts{
				vector:    args,
				metrics:   metrics,
				outputFmt: outputFmt,
			})
		},
	}

	cmd.Flags().StringArrayVarP(&metrics, "metric", "m", nil, "Metric assignment CODE=VALUE (repeatable)")
	cmd.Flags().StringVarP(&outputFmt, "output", "o", "table", "Output format: table, json, or xml")

	return cmd
}

type scoreOpts struct {
	vector    []string
	metrics   []string
	outputFmt string
}

func runScore(opts scoreOpts) error {
	format := presenter.ParseFormat(opts.outputFmt)
	if format == presenter.UnknownFormat {
		return fmt.Errorf("unknown output format %q (available: %v)", opts.outputFmt, presenter.AvailableFormats)
	}

	var (
		report *cvss3.Report
		err    error
	)
	switch {
	case len(opts.vector) == 1 && len(opts.metrics) == 0:
		report, err = cvss3.ScoreFromVector(opts.vector[0])
	case len(opts.vector) == 0 && len(opts.metrics) != 0:
		var m map[string]string
		m, err = metricMap(opts.metrics)
		if err != nil {
			return err
		}
		report, err = cvss3.ScoreFromMetrics(m)
	default:
		return fmt.Errorf("supply either a vector string or --metric flags, not both")
	}
	if err != nil {
		return err
	}

	return presenter.GetPresenter(format, report).Present(os.Stdout)
}

func metricMap(assignments []string) (map[string]string, error) {
	m := make(map[string]string, len(assignments))
	for _, a := range assignments {
		code, val, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("bad metric assignment %q: want CODE=VALUE", a)
		}
		if _, dup := m[code]; dup {
			return nil, fmt.Errorf("metric %q assigned more than once", code)
		}
		m[code] = val
	}
	return m, nil
}

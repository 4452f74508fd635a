package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/severix/cvss3"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <vector>",
		Short: "Parse a vector string and print its metric assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0])
		},
	}
}

func runParse(vector string) error {
	v, err := cvss3.ParseVector(vector)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	for m := cvss3.AttackVector; m <= cvss3.ModifiedAvailability; m++ {
		val := v.Get(m)
		if val == "" {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", m, m.Name(), val)
	}
	return w.Flush()
}

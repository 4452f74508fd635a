// Package main provides the cvss3 CLI entry point.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

var log = logrus.New()

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd := &cobra.Command{
		Use:   "cvss3",
		Short: "CVSS v3.0 vector scoring",
		Long: `Cvss3 scores CVSS v3.0 vectors: it parses a vector string or a set of
metric assignments, computes the Base, Temporal, and Environmental scores,
and prints them with their qualitative severity ratings.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newScoreCmd(),
		newParseCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ledgerscript-cli",
	Short: "CLI for encoding, decoding and executing ledger scripts",
	Long: `A CLI application that converts ledger scripts between their JSON and
binary forms and executes them against a fresh in-memory ledger.`,
	SilenceUsage: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return initConfig()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (text, json or yaml)")
	rootCmd.PersistentFlags().String("config", "", "Path to a JSON engine config")
	rootCmd.PersistentFlags().String("log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file, rotated by size")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print Prometheus metrics to stderr when done")
}

func main() {
	Execute()
}

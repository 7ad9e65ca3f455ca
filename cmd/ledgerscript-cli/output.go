// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import "github.com/spf13/cobra"

var outputCmd = &cobra.Command{
	Use:   "output",
	Short: "Manage the default output format",
	RunE: func(cmd *cobra.Command, _ []string) error {
		output, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		return printValue(cmd, outputCmdResponse{
			Output: output,
		})
	},
}

type outputCmdResponse struct {
	Output string `json:"output" yaml:"output"`
}

func (r outputCmdResponse) String() string {
	return r.Output
}

func init() {
	rootCmd.AddCommand(outputCmd)
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var outputSetCmd = &cobra.Command{
	Use:   "set [format]",
	Short: "Persist the default output format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := strings.ToLower(args[0])
		switch output {
		case outputText, outputJSON, outputYAML:
		default:
			return fmt.Errorf("%w: %q", errUnknownOutput, output)
		}

		if err := setConfigValue(outputKey, output); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}

		return printValue(cmd, outputSetCmdResponse{
			Output: output,
		})
	},
}

type outputSetCmdResponse struct {
	Output string `json:"output" yaml:"output"`
}

func (r outputSetCmdResponse) String() string {
	return "Output set to: " + r.Output
}

func init() {
	outputCmd.AddCommand(outputSetCmd)
}

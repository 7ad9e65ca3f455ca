// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"

	"github.com/ava-labs/ledgerscript/registry"
	"github.com/ava-labs/ledgerscript/script"
	"github.com/ava-labs/ledgerscript/state"
	"github.com/ava-labs/ledgerscript/utils"
)

var runCmd = &cobra.Command{
	Use:   "run [hex-or-file]",
	Short: "Execute a script against an empty ledger and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fromJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			return fmt.Errorf("failed to get json flag: %w", err)
		}

		return withEnvironment(cmd, func(env *environment) error {
			s, err := loadScript(env, args[0], fromJSON)
			if err != nil {
				return err
			}
			id, err := s.ID()
			if err != nil {
				return err
			}

			execErr := s.Execute()
			r := runCmdResponse{
				ID:       id,
				Status:   s.Status().String(),
				Applied:  s.Applied(),
				Accounts: s.Ledger().Accounts(),
			}
			var failure *script.ExecutionError
			if errors.As(execErr, &failure) {
				r.FailedIndex = &failure.Index
				r.Error = failure.Err.Error()
			}
			if err := printValue(cmd, r); err != nil {
				return err
			}
			if execErr != nil {
				output, _ := outputFormat(cmd)
				if output == outputText {
					utils.Outf(cmd.OutOrStdout(), "{{red}}{{bold}}execution failed:{{/}} %s\n", execErr)
				}
			}
			return execErr
		})
	},
}

func loadScript(env *environment, arg string, fromJSON bool) (*script.Script, error) {
	if !fromJSON {
		b, err := decodeFileOrHex(arg)
		if err != nil {
			return nil, err
		}
		logDecodeInput(env.log, arg, b)
		return registry.Decode(b, env.options()...)
	}

	b, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to read instructions: %w", err)
	}
	instructions, err := script.UnmarshalInstructionsJSON(registry.Instruction, b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse instructions: %w", err)
	}
	return script.FromInstructions(instructions, env.options()...), nil
}

type runCmdResponse struct {
	ID          ids.ID          `json:"id" yaml:"id"`
	Status      string          `json:"status" yaml:"status"`
	Applied     int             `json:"applied" yaml:"applied"`
	FailedIndex *int            `json:"failedIndex,omitempty" yaml:"failedIndex,omitempty"`
	Error       string          `json:"error,omitempty" yaml:"error,omitempty"`
	Accounts    []state.Account `json:"accounts" yaml:"accounts"`
}

func (r runCmdResponse) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "script %s: %s after %d instructions", r.ID, r.Status, r.Applied)
	for _, account := range r.Accounts {
		fmt.Fprintf(&sb, "\n%s\t%d", account.Identity, account.Balance)
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("json", false, "Read the script as a JSON instruction list")
}

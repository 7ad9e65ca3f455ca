// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/ledgerscript/codec"
	"github.com/ava-labs/ledgerscript/registry"
	"github.com/ava-labs/ledgerscript/script"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file.json]",
	Short: "Encode a JSON instruction list into script bytes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(cmd, func(env *environment) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read instructions: %w", err)
			}
			instructions, err := script.UnmarshalInstructionsJSON(registry.Instruction, b)
			if err != nil {
				return fmt.Errorf("failed to parse instructions: %w", err)
			}

			s := script.FromInstructions(instructions, env.options()...)
			raw, err := s.Encode()
			if err != nil {
				return err
			}
			id, err := s.ID()
			if err != nil {
				return err
			}
			env.log.Debug("encoded script",
				zap.Stringer("id", id),
				zap.Int("instructions", len(instructions)),
				zap.Int("size", len(raw)),
			)

			return printValue(cmd, encodeCmdResponse{
				ID:    id,
				Bytes: raw,
			})
		})
	},
}

type encodeCmdResponse struct {
	ID    ids.ID      `json:"id" yaml:"id"`
	Bytes codec.Bytes `json:"bytes" yaml:"bytes"`
}

func (r encodeCmdResponse) String() string {
	return r.Bytes.String()
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"

	"github.com/ava-labs/ledgerscript/registry"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [hex-or-file]",
	Short: "Decode script bytes into their instruction list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(cmd, func(env *environment) error {
			b, err := decodeFileOrHex(args[0])
			if err != nil {
				return err
			}
			logDecodeInput(env.log, args[0], b)

			s, err := registry.Decode(b, env.options()...)
			if err != nil {
				return err
			}
			id, err := s.ID()
			if err != nil {
				return err
			}

			return printValue(cmd, decodeCmdResponse{
				ID:           id,
				Instructions: wrapInstructions(s.Instructions()),
			})
		})
	},
}

type decodeCmdResponse struct {
	ID           ids.ID             `json:"id" yaml:"id"`
	Instructions []typedInstruction `json:"instructions" yaml:"instructions"`
}

func (r decodeCmdResponse) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "script %s", r.ID)
	for i, instruction := range r.Instructions {
		fmt.Fprintf(&sb, "\n%d\t%s", i, instruction)
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

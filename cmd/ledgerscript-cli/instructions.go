// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/ledgerscript/codec"
	"github.com/ava-labs/ledgerscript/registry"
)

var instructionsCmd = &cobra.Command{
	Use:   "instructions",
	Short: "List the instruction types this CLI can decode",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printValue(cmd, instructionsCmdResponse{
			Instructions: registry.Instruction.GetTypedStructs(),
		})
	},
}

type instructionsCmdResponse struct {
	Instructions []codec.TypedStruct `json:"instructions" yaml:"instructions"`
}

func (r instructionsCmdResponse) String() string {
	var sb strings.Builder
	for i, instruction := range r.Instructions {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d\t%s", instruction.ID, instruction.Name)
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(instructionsCmd)
}

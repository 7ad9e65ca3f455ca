// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/ledgerscript/codec"
	"github.com/ava-labs/ledgerscript/instructions"
	"github.com/ava-labs/ledgerscript/script"
)

var Instruction *codec.TypeParser[script.Instruction]

// Setup types
func init() {
	Instruction = codec.NewTypeParser[script.Instruction]()

	errs := &wrappers.Errs{}
	errs.Add(
		// When registering new instructions, ALWAYS make sure to use a new
		// type ID in consts.
		Instruction.Register(&instructions.Payment{}, instructions.UnmarshalPayment),
		Instruction.Register(&instructions.CoinbaseTransaction{}, instructions.UnmarshalCoinbaseTransaction),
		Instruction.Register(&instructions.CheckHash{}, instructions.UnmarshalCheckHash),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

// Decode parses [b] using every instruction known to this module.
func Decode(b []byte, opts ...script.Option) (*script.Script, error) {
	return script.Decode(Instruction, b, opts...)
}

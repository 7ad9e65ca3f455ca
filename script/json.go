// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package script

import (
	"encoding/json"
	"fmt"

	"github.com/ava-labs/ledgerscript/codec"
)

// MarshalInstructionsJSON encodes [instructions] as a JSON array of objects
// tagged with their type name, e.g.
//
//	[{"type":"coinbase_transaction","miner":"0x…"}]
func MarshalInstructionsJSON(instructions []Instruction) ([]byte, error) {
	raw := make([]json.RawMessage, len(instructions))
	for i, instruction := range instructions {
		if isNil(instruction) {
			return nil, fmt.Errorf("%w: index %d", ErrNilInstruction, i)
		}
		b, err := codec.MarshalTypedJSON(instruction)
		if err != nil {
			return nil, err
		}
		raw[i] = b
	}
	return json.Marshal(raw)
}

func UnmarshalInstructionsJSON(parser *codec.TypeParser[Instruction], b []byte) ([]Instruction, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	instructions := make([]Instruction, len(raw))
	for i, r := range raw {
		instruction, err := parser.UnmarshalTypedJSON(r)
		if err != nil {
			return nil, fmt.Errorf("%w: instruction %d", err, i)
		}
		instructions[i] = instruction
	}
	return instructions, nil
}

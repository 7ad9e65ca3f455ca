// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"

	"gopkg.in/yaml.v2"

	"github.com/ava-labs/ledgerscript/codec"
	"github.com/ava-labs/ledgerscript/script"
	"github.com/ava-labs/ledgerscript/utils"
)

// typedInstruction prints an instruction with its "type" tag in both JSON and
// YAML output.
type typedInstruction struct {
	script.Instruction
}

func wrapInstructions(instructions []script.Instruction) []typedInstruction {
	return utils.Map(func(instruction script.Instruction) typedInstruction {
		return typedInstruction{instruction}
	}, instructions)
}

func (t typedInstruction) MarshalJSON() ([]byte, error) {
	return codec.MarshalTypedJSON(t.Instruction)
}

// MarshalYAML keeps the key order of the JSON form. JSON is valid YAML, so the
// typed JSON object is read back as an ordered map.
func (t typedInstruction) MarshalYAML() (interface{}, error) {
	b, err := codec.MarshalTypedJSON(t.Instruction)
	if err != nil {
		return nil, err
	}
	var ms yaml.MapSlice
	if err := yaml.Unmarshal(b, &ms); err != nil {
		return nil, err
	}
	return ms, nil
}

func (t typedInstruction) String() string {
	b, err := json.Marshal(t)
	if err != nil {
		return t.GetTypeName()
	}
	return string(b)
}

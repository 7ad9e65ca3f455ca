// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package script

import (
	"reflect"

	"github.com/ava-labs/ledgerscript/codec"
	"github.com/ava-labs/ledgerscript/state"
)

// Instruction is a single typed operation of a Script.
type Instruction interface {
	// GetTypeID and GetTypeName identify the instruction in the binary and
	// JSON encodings. They must be unique and stable across releases.
	codec.Typed

	// Apply mutates [mu]. If Apply returns an error, the Script stops and
	// any change made by earlier instructions is kept.
	Apply(mu state.Mutable) error

	// Size is the number of bytes written by Marshal, excluding the type ID.
	Size() int

	// Marshal packs every field of the instruction, excluding the type ID.
	Marshal(p *codec.Packer)
}

// isNil reports whether [instruction] is nil or a typed nil pointer, neither
// of which can be applied or marshalled.
func isNil(instruction Instruction) bool {
	if instruction == nil {
		return true
	}
	v := reflect.ValueOf(instruction)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

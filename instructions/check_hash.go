// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"github.com/ava-labs/ledgerscript/codec"
	"github.com/ava-labs/ledgerscript/consts"
	"github.com/ava-labs/ledgerscript/script"
	"github.com/ava-labs/ledgerscript/state"
)

var _ script.Instruction = (*CheckHash)(nil)

// CheckHash is a placeholder that always succeeds and never reads or writes
// the ledger.
//
// TODO: verify the hash of the preceding instructions against the chain once
// nodes expose spent-script lookups.
type CheckHash struct{}

func (*CheckHash) GetTypeID() uint8 {
	return consts.CheckHashID
}

func (*CheckHash) GetTypeName() string {
	return consts.CheckHashName
}

func (*CheckHash) Apply(state.Mutable) error {
	return nil
}

func (*CheckHash) Size() int {
	return 0
}

func (*CheckHash) Marshal(*codec.Packer) {}

func UnmarshalCheckHash(p *codec.Packer) (script.Instruction, error) {
	return &CheckHash{}, p.Err()
}

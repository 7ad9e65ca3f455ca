// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"github.com/ava-labs/ledgerscript/codec"
	"github.com/ava-labs/ledgerscript/consts"
	"github.com/ava-labs/ledgerscript/script"
	"github.com/ava-labs/ledgerscript/state"
)

// CoinbaseReward is credited to the miner of every CoinbaseTransaction.
const CoinbaseReward uint64 = 20_000

var _ script.Instruction = (*CoinbaseTransaction)(nil)

// CoinbaseTransaction credits [Miner] with [CoinbaseReward] out of nothing.
type CoinbaseTransaction struct {
	Miner codec.Identity `json:"miner"`
}

func (*CoinbaseTransaction) GetTypeID() uint8 {
	return consts.CoinbaseTransactionID
}

func (*CoinbaseTransaction) GetTypeName() string {
	return consts.CoinbaseTransactionName
}

func (c *CoinbaseTransaction) Apply(mu state.Mutable) error {
	mu.EnsureAccount(c.Miner)
	return mu.IncreaseBalance(c.Miner, CoinbaseReward)
}

func (*CoinbaseTransaction) Size() int {
	return codec.IdentityLen
}

func (c *CoinbaseTransaction) Marshal(p *codec.Packer) {
	p.PackIdentity(c.Miner)
}

func UnmarshalCoinbaseTransaction(p *codec.Packer) (script.Instruction, error) {
	var coinbase CoinbaseTransaction
	p.UnpackIdentity(false, &coinbase.Miner)
	return &coinbase, p.Err()
}

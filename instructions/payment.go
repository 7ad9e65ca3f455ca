// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"github.com/ava-labs/ledgerscript/codec"
	"github.com/ava-labs/ledgerscript/consts"
	"github.com/ava-labs/ledgerscript/script"
	"github.com/ava-labs/ledgerscript/state"
)

var _ script.Instruction = (*Payment)(nil)

// Payment moves [Amount] from [Sender] to [Receiver], creating [Receiver]
// if needed. The total balance of the ledger is unchanged, whether the
// payment succeeds or not.
type Payment struct {
	Sender   codec.Identity `json:"sender"`
	Receiver codec.Identity `json:"receiver"`
	Amount   uint64         `json:"amount"`
}

func (*Payment) GetTypeID() uint8 {
	return consts.PaymentID
}

func (*Payment) GetTypeName() string {
	return consts.PaymentName
}

func (p *Payment) Apply(mu state.Mutable) error {
	// The receiver is only touched once the sender has been debited.
	if err := mu.DecreaseBalance(p.Sender, p.Amount); err != nil {
		return err
	}
	mu.EnsureAccount(p.Receiver)
	if err := mu.IncreaseBalance(p.Receiver, p.Amount); err != nil {
		// Refund the sender so a failed credit never destroys value. The
		// refund can't overflow: the sender held [Amount] a moment ago.
		_ = mu.IncreaseBalance(p.Sender, p.Amount)
		return err
	}
	return nil
}

func (*Payment) Size() int {
	return 2*codec.IdentityLen + consts.Uint64Len
}

func (p *Payment) Marshal(pk *codec.Packer) {
	pk.PackIdentity(p.Sender)
	pk.PackIdentity(p.Receiver)
	pk.PackUint64(p.Amount)
}

func UnmarshalPayment(pk *codec.Packer) (script.Instruction, error) {
	var payment Payment
	pk.UnpackIdentity(false, &payment.Sender)
	pk.UnpackIdentity(false, &payment.Receiver)
	payment.Amount = pk.UnpackUint64(false)
	return &payment, pk.Err()
}

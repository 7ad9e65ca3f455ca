// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

// Instruction TypeIDs are part of the wire format. When adding a new
// instruction, ALWAYS append a new ID and never reuse or renumber one.
const (
	PaymentID             uint8 = 0
	CoinbaseTransactionID uint8 = 1
	CheckHashID           uint8 = 2
)

// Instruction type names are used by the JSON representation of a script.
const (
	PaymentName             = "payment"
	CoinbaseTransactionName = "coinbase_transaction"
	CheckHashName           = "check_hash"
)

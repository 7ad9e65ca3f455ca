// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/mutable.go -mock_names=Mutable=Mutable . Mutable

package state

import "github.com/ava-labs/ledgerscript/codec"

type Immutable interface {
	// Balance returns the balance of [id] and whether the account exists.
	Balance(id codec.Identity) (uint64, bool)
	Len() int
	Accounts() []Account
	TotalBalance() (uint64, error)
}

type Mutable interface {
	Immutable

	EnsureAccount(id codec.Identity)
	IncreaseBalance(id codec.Identity, amount uint64) error
	DecreaseBalance(id codec.Identity, amount uint64) error
}

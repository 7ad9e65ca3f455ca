// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"encoding/json"
	"fmt"

	"github.com/ava-labs/ledgerscript/codec"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var _ Mutable = (*Ledger)(nil)

type Account struct {
	Identity codec.Identity `json:"identity" yaml:"identity"`
	Balance  uint64         `json:"balance" yaml:"balance"`
}

// Ledger is an in-memory set of accounts keyed by identity.
//
// Accounts are kept in the order they were first created so that replaying
// the same instructions always produces the same ledger, including the order
// reported by [Accounts].
type Ledger struct {
	accounts map[codec.Identity]int
	ordered  []Account
}

func NewLedger() *Ledger {
	return &Ledger{
		accounts: map[codec.Identity]int{},
	}
}

// EnsureAccount creates [id] with a zero balance if it does not exist yet.
func (l *Ledger) EnsureAccount(id codec.Identity) {
	if _, ok := l.accounts[id]; ok {
		return
	}
	l.accounts[id] = len(l.ordered)
	l.ordered = append(l.ordered, Account{Identity: id})
}

func (l *Ledger) IncreaseBalance(id codec.Identity, amount uint64) error {
	acc, err := l.get(id)
	if err != nil {
		return err
	}
	nbal, err := smath.Add64(acc.Balance, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not add balance (bal=%d, id=%s, amount=%d)",
			ErrBalanceOverflow,
			acc.Balance,
			id,
			amount,
		)
	}
	acc.Balance = nbal
	return nil
}

func (l *Ledger) DecreaseBalance(id codec.Identity, amount uint64) error {
	acc, err := l.get(id)
	if err != nil {
		return err
	}
	nbal, err := smath.Sub(acc.Balance, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not subtract balance (bal=%d, id=%s, amount=%d)",
			ErrInsufficientBalance,
			acc.Balance,
			id,
			amount,
		)
	}
	acc.Balance = nbal
	return nil
}

func (l *Ledger) Balance(id codec.Identity) (uint64, bool) {
	index, ok := l.accounts[id]
	if !ok {
		return 0, false
	}
	return l.ordered[index].Balance, true
}

func (l *Ledger) Len() int {
	return len(l.ordered)
}

// Accounts returns a copy of every account in creation order.
func (l *Ledger) Accounts() []Account {
	accounts := make([]Account, len(l.ordered))
	copy(accounts, l.ordered)
	return accounts
}

// TotalBalance returns the sum of every balance. Coinbase rewards can push
// the sum past what fits in a uint64 even when every balance does.
func (l *Ledger) TotalBalance() (uint64, error) {
	var total uint64
	for _, acc := range l.ordered {
		ntotal, err := smath.Add64(total, acc.Balance)
		if err != nil {
			return 0, fmt.Errorf("%w: total balance", ErrBalanceOverflow)
		}
		total = ntotal
	}
	return total, nil
}

func (l *Ledger) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Accounts())
}

func (l *Ledger) get(id codec.Identity) (*Account, error) {
	index, ok := l.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, id)
	}
	return &l.ordered[index], nil
}

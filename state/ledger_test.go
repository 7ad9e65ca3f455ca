// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/ledgerscript/codec"
	"github.com/ava-labs/ledgerscript/consts"
)

var (
	alice = codec.Identity{1}
	bob   = codec.Identity{2}
	carol = codec.Identity{3}
)

func TestEnsureAccountIdempotent(t *testing.T) {
	require := require.New(t)

	once := NewLedger()
	once.EnsureAccount(alice)

	twice := NewLedger()
	twice.EnsureAccount(alice)
	twice.EnsureAccount(alice)

	require.Equal(once.Accounts(), twice.Accounts())
	require.Equal(1, twice.Len())
	bal, ok := twice.Balance(alice)
	require.True(ok)
	require.Zero(bal)
}

func TestEnsureAccountKeepsBalance(t *testing.T) {
	require := require.New(t)

	l := NewLedger()
	l.EnsureAccount(alice)
	require.NoError(l.IncreaseBalance(alice, 10))
	l.EnsureAccount(alice)

	bal, ok := l.Balance(alice)
	require.True(ok)
	require.Equal(uint64(10), bal)
}

func TestUnknownAccount(t *testing.T) {
	tests := map[string]func(*Ledger) error{
		"increase": func(l *Ledger) error {
			return l.IncreaseBalance(alice, 1)
		},
		"decrease": func(l *Ledger) error {
			return l.DecreaseBalance(alice, 1)
		},
		"decrease zero": func(l *Ledger) error {
			return l.DecreaseBalance(alice, 0)
		},
	}
	for name, op := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			l := NewLedger()
			l.EnsureAccount(bob)
			require.ErrorIs(op(l), ErrUnknownAccount)
			require.Equal(1, l.Len())
			_, ok := l.Balance(alice)
			require.False(ok)
		})
	}
}

func TestDecreaseBalance(t *testing.T) {
	tests := map[string]struct {
		start       uint64
		amount      uint64
		expected    uint64
		expectedErr error
	}{
		"partial": {
			start:    100,
			amount:   40,
			expected: 60,
		},
		"exact": {
			start:    100,
			amount:   100,
			expected: 0,
		},
		"insufficient": {
			start:       100,
			amount:      101,
			expected:    100,
			expectedErr: ErrInsufficientBalance,
		},
		"empty account": {
			start:       0,
			amount:      1,
			expected:    0,
			expectedErr: ErrInsufficientBalance,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			l := NewLedger()
			l.EnsureAccount(alice)
			require.NoError(l.IncreaseBalance(alice, tt.start))

			err := l.DecreaseBalance(alice, tt.amount)
			require.ErrorIs(err, tt.expectedErr)
			bal, _ := l.Balance(alice)
			require.Equal(tt.expected, bal)
		})
	}
}

func TestIncreaseBalanceOverflow(t *testing.T) {
	require := require.New(t)

	l := NewLedger()
	l.EnsureAccount(alice)
	require.NoError(l.IncreaseBalance(alice, consts.MaxUint64-5))
	require.ErrorIs(l.IncreaseBalance(alice, 6), ErrBalanceOverflow)

	bal, _ := l.Balance(alice)
	require.Equal(consts.MaxUint64-5, bal)

	require.NoError(l.IncreaseBalance(alice, 5))
	bal, _ = l.Balance(alice)
	require.Equal(consts.MaxUint64, bal)
}

func TestTotalBalance(t *testing.T) {
	require := require.New(t)

	l := NewLedger()
	total, err := l.TotalBalance()
	require.NoError(err)
	require.Zero(total)

	l.EnsureAccount(alice)
	l.EnsureAccount(bob)
	require.NoError(l.IncreaseBalance(alice, 7))
	require.NoError(l.IncreaseBalance(bob, 8))
	total, err = l.TotalBalance()
	require.NoError(err)
	require.Equal(uint64(15), total)

	require.NoError(l.IncreaseBalance(bob, consts.MaxUint64-8))
	_, err = l.TotalBalance()
	require.ErrorIs(err, ErrBalanceOverflow)
}

func TestAccountsCreationOrder(t *testing.T) {
	require := require.New(t)

	l := NewLedger()
	l.EnsureAccount(carol)
	l.EnsureAccount(alice)
	l.EnsureAccount(bob)
	l.EnsureAccount(carol)
	require.NoError(l.IncreaseBalance(alice, 3))

	require.Equal([]Account{
		{Identity: carol},
		{Identity: alice, Balance: 3},
		{Identity: bob},
	}, l.Accounts())

	// Accounts returns a copy
	accounts := l.Accounts()
	accounts[1].Balance = 100
	bal, _ := l.Balance(alice)
	require.Equal(uint64(3), bal)
}

func TestLedgerJSON(t *testing.T) {
	require := require.New(t)

	l := NewLedger()
	b, err := json.Marshal(l)
	require.NoError(err)
	require.JSONEq(`[]`, string(b))

	l.EnsureAccount(alice)
	require.NoError(l.IncreaseBalance(alice, 20000))
	b, err = json.Marshal(l)
	require.NoError(err)

	var accounts []Account
	require.NoError(json.Unmarshal(b, &accounts))
	require.Equal(l.Accounts(), accounts)
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scripttest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/ledgerscript/script"
	"github.com/ava-labs/ledgerscript/state"
)

// NewLedger returns a ledger holding [accounts], created in order.
func NewLedger(t *testing.T, accounts ...state.Account) *state.Ledger {
	l := state.NewLedger()
	for _, acc := range accounts {
		l.EnsureAccount(acc.Identity)
		require.NoError(t, l.IncreaseBalance(acc.Identity, acc.Balance))
	}
	return l
}

type InstructionTest struct {
	Instruction script.Instruction
	Accounts    []state.Account

	ExpectedAccounts []state.Account
	ExpectedErr      error
}

type InstructionTestSuite struct {
	Tests map[string]InstructionTest
}

func (suite *InstructionTestSuite) Run(t *testing.T) {
	for testName, test := range suite.Tests {
		t.Run(testName, func(t *testing.T) {
			require := require.New(t)

			l := NewLedger(t, test.Accounts...)
			err := test.Instruction.Apply(l)

			require.ErrorIs(err, test.ExpectedErr)
			expected := test.ExpectedAccounts
			if expected == nil {
				expected = []state.Account{}
			}
			require.Equal(expected, l.Accounts())
		})
	}
}

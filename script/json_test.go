// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package script_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/ledgerscript/codec"
	"github.com/ava-labs/ledgerscript/instructions"
	"github.com/ava-labs/ledgerscript/registry"
	"github.com/ava-labs/ledgerscript/script"
)

func TestInstructionsJSON(t *testing.T) {
	require := require.New(t)

	list := []script.Instruction{
		&instructions.CoinbaseTransaction{Miner: alice},
		&instructions.CheckHash{},
		&instructions.Payment{Sender: alice, Receiver: bob, Amount: 100},
	}
	b, err := script.MarshalInstructionsJSON(list)
	require.NoError(err)

	aliceHex := "0x" + alice.String()
	bobHex := "0x" + bob.String()
	require.JSONEq(`[
		{"type":"coinbase_transaction","miner":"`+aliceHex+`"},
		{"type":"check_hash"},
		{"type":"payment","sender":"`+aliceHex+`","receiver":"`+bobHex+`","amount":100}
	]`, string(b))

	parsed, err := script.UnmarshalInstructionsJSON(registry.Instruction, b)
	require.NoError(err)
	require.Equal(list, parsed)
}

func TestInstructionsJSONErrors(t *testing.T) {
	tests := map[string]struct {
		input       string
		expectedErr error
	}{
		"unknown type": {
			input:       `[{"type":"mint","miner":"0x00"}]`,
			expectedErr: codec.ErrUnknownType,
		},
		"missing type": {
			input:       `[{"miner":"0x00"}]`,
			expectedErr: codec.ErrMissingType,
		},
		"missing identities": {
			input:       `[{"type":"payment","amount":5}]`,
			expectedErr: codec.ErrFieldNotPopulated,
		},
		"missing amount": {
			input:       `[{"type":"payment","sender":"0x` + strings.Repeat("0a", codec.IdentityLen) + `","receiver":"0x` + strings.Repeat("0b", codec.IdentityLen) + `"}]`,
			expectedErr: codec.ErrFieldNotPopulated,
		},
		"missing miner": {
			input:       `[{"type":"coinbase_transaction"}]`,
			expectedErr: codec.ErrFieldNotPopulated,
		},
		"short identity": {
			input:       `[{"type":"coinbase_transaction","miner":"0x00"}]`,
			expectedErr: codec.ErrInvalidSize,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := script.UnmarshalInstructionsJSON(registry.Instruction, []byte(tt.input))
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}

	t.Run("amount type mismatch", func(t *testing.T) {
		miner := `"0x` + strings.Repeat("00", codec.IdentityLen) + `"`
		input := `[{"type":"payment","sender":` + miner + `,"receiver":` + miner + `,"amount":"lots"}]`
		_, err := script.UnmarshalInstructionsJSON(registry.Instruction, []byte(input))
		require.Error(t, err)
	})

	t.Run("not a list", func(t *testing.T) {
		_, err := script.UnmarshalInstructionsJSON(registry.Instruction, []byte(`{}`))
		require.Error(t, err)
	})
}

func TestMarshalInstructionsJSONNil(t *testing.T) {
	_, err := script.MarshalInstructionsJSON([]script.Instruction{nil})
	require.ErrorIs(t, err, script.ErrNilInstruction)
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/ledgerscript/codec"
	"github.com/ava-labs/ledgerscript/consts"
	"github.com/ava-labs/ledgerscript/state/statemock"
)

func TestCheckHashDoesNotTouchLedger(t *testing.T) {
	ctrl := gomock.NewController(t)

	// Any call on the mock fails the test.
	mu := statemock.NewMutable(ctrl)
	require.NoError(t, (&CheckHash{}).Apply(mu))
}

func TestCheckHashMarshal(t *testing.T) {
	require := require.New(t)

	p := codec.NewWriter(0, consts.MaxInt)
	(&CheckHash{}).Marshal(p)
	require.Empty(p.Bytes())

	parsed, err := UnmarshalCheckHash(codec.NewReader(nil, consts.MaxInt))
	require.NoError(err)
	require.Equal(&CheckHash{}, parsed)
}

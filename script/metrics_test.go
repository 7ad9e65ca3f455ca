// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package script_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/ledgerscript/instructions"
	"github.com/ava-labs/ledgerscript/registry"
	"github.com/ava-labs/ledgerscript/script"
)

func TestMetrics(t *testing.T) {
	require := require.New(t)

	r := prometheus.NewRegistry()
	m, err := script.NewMetrics("ledgerscript", r)
	require.NoError(err)

	ok := script.FromInstructions([]script.Instruction{
		&instructions.CoinbaseTransaction{Miner: alice},
		&instructions.Payment{Sender: alice, Receiver: bob, Amount: 1},
		&instructions.CheckHash{},
	}, script.WithMetrics(m))
	require.NoError(ok.Execute())

	failing := script.FromInstructions([]script.Instruction{
		&instructions.Payment{Sender: carol, Receiver: bob, Amount: 1},
	}, script.WithMetrics(m))
	require.Error(failing.Execute())

	_, err = registry.Decode([]byte{1}, script.WithMetrics(m))
	require.ErrorIs(err, script.ErrDecode)

	families, err := r.Gather()
	require.NoError(err)
	values := map[string]float64{}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			name := family.GetName()
			for _, label := range metric.GetLabel() {
				name += "/" + label.GetValue()
			}
			if c := metric.GetCounter(); c != nil {
				values[name] = c.GetValue()
			}
		}
	}

	require.Equal(1.0, values["ledgerscript_executed"])
	require.Equal(1.0, values["ledgerscript_failed"])
	require.Equal(1.0, values["ledgerscript_decode_failures"])
	require.Equal(1.0, values["ledgerscript_instructions_applied/payment"])
	require.Equal(1.0, values["ledgerscript_instructions_applied/coinbase_transaction"])
	require.Equal(1.0, values["ledgerscript_instructions_applied/check_hash"])
	require.Equal(1.0, values["ledgerscript_instructions_rejected/payment"])
	require.Equal(2.0, values["ledgerscript_execute_count"])
}

func TestMetricsDuplicateRegistration(t *testing.T) {
	r := prometheus.NewRegistry()
	_, err := script.NewMetrics("ledgerscript", r)
	require.NoError(t, err)
	_, err = script.NewMetrics("ledgerscript", r)
	require.Error(t, err)
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package script_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/ava-labs/ledgerscript/instructions"
	"github.com/ava-labs/ledgerscript/script"
	"github.com/ava-labs/ledgerscript/trace"
)

func TestExecuteSpans(t *testing.T) {
	require := require.New(t)

	recorder := tracetest.NewSpanRecorder()
	tracer := trace.NewWithProcessor(&trace.Config{
		Enabled:         true,
		TraceSampleRate: 1,
		AppName:         "script",
	}, recorder)

	s := script.FromInstructions([]script.Instruction{
		&instructions.CoinbaseTransaction{Miner: alice},
		&instructions.Payment{Sender: carol, Receiver: bob, Amount: 1},
		&instructions.CheckHash{},
	}, script.WithTracer(tracer))
	require.Error(s.Execute())
	require.NoError(tracer.Close())

	spans := recorder.Ended()
	require.Len(spans, 3)

	require.Equal("Script.Apply", spans[0].Name())
	require.Equal(codes.Unset, spans[0].Status().Code)
	require.Equal("Script.Apply", spans[1].Name())
	require.Equal(codes.Error, spans[1].Status().Code)
	require.Len(spans[1].Events(), 1)

	root := spans[2]
	require.Equal("Script.Execute", root.Name())
	require.Equal(codes.Error, root.Status().Code)
	for _, child := range spans[:2] {
		require.Equal(root.SpanContext().SpanID(), child.Parent().SpanID())
	}
}

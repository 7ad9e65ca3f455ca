// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDisabledTracerRecordsNothing(t *testing.T) {
	require := require.New(t)

	tracer, err := New(&Config{Enabled: false, AppName: "test"})
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "noop")
	require.False(span.SpanContext().IsValid())
	span.End()
	require.NoError(tracer.Close())
}

func TestNewWithProcessor(t *testing.T) {
	require := require.New(t)

	recorder := tracetest.NewSpanRecorder()
	tracer := NewWithProcessor(&Config{
		Enabled:         true,
		TraceSampleRate: 1,
		AppName:         "test",
	}, recorder)

	ctx, parent := tracer.Start(context.Background(), "parent")
	_, child := tracer.Start(ctx, "child")
	child.End()
	parent.End()
	require.NoError(tracer.Close())

	spans := recorder.Ended()
	require.Len(spans, 2)
	require.Equal("child", spans[0].Name())
	require.Equal("parent", spans[1].Name())
	require.Equal(spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

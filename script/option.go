// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package script

import (
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
)

type Option func(*Script)

func WithLogger(log logging.Logger) Option {
	return func(s *Script) {
		s.log = log
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Script) {
		s.metrics = m
	}
}

// WithTracer records a span for every Execute call and a child span for every
// instruction it applies.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Script) {
		s.tracer = tracer
	}
}

// WithMaxSize bounds the size of an encoded script, in bytes.
func WithMaxSize(size int) Option {
	return func(s *Script) {
		s.maxSize = size
	}
}

func WithMaxInstructions(count int) Option {
	return func(s *Script) {
		s.maxInstructions = count
	}
}

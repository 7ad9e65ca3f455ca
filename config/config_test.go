// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/ledgerscript/script"
	"github.com/ava-labs/ledgerscript/trace"
)

var defaultTrace = trace.Config{
	TraceSampleRate: 1,
	Endpoint:        trace.DefaultEndpoint,
	AppName:         DefaultMetricsNamespace,
	Agent:           DefaultMetricsNamespace,
}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    *Config
		expectedErr error
	}{
		{
			name:  "defaults",
			input: "",
			expected: &Config{
				LogLevel:         logging.Info,
				MaxScriptSize:    script.DefaultMaxSize,
				MaxInstructions:  script.DefaultMaxInstructions,
				MetricsNamespace: DefaultMetricsNamespace,
				Trace:            defaultTrace,
			},
		},
		{
			name:  "overrides",
			input: `{"logLevel":"debug","maxScriptSize":1024,"maxInstructions":8,"metricsNamespace":"test","trace":{"enabled":true,"traceSampleRate":0.5}}`,
			expected: &Config{
				LogLevel:         logging.Debug,
				MaxScriptSize:    1024,
				MaxInstructions:  8,
				MetricsNamespace: "test",
				Trace: trace.Config{
					Enabled:         true,
					TraceSampleRate: 0.5,
					Endpoint:        trace.DefaultEndpoint,
					AppName:         DefaultMetricsNamespace,
					Agent:           DefaultMetricsNamespace,
				},
			},
		},
		{
			name:        "zero size",
			input:       `{"maxScriptSize":0}`,
			expectedErr: ErrInvalidConfig,
		},
		{
			name:        "negative count",
			input:       `{"maxInstructions":-1}`,
			expectedErr: ErrInvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			c, err := New([]byte(tt.input))
			require.ErrorIs(err, tt.expectedErr)
			require.Equal(tt.expected, c)
		})
	}
}

func TestNewMalformed(t *testing.T) {
	_, err := New([]byte(`{"logLevel":`))
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	require := require.New(t)

	c, err := New([]byte(`{"maxInstructions":1}`))
	require.NoError(err)
	require.Len(c.Options(nil, nil), 2)
	require.Len(c.Options(logging.NoLog{}, &script.Metrics{}), 4)

	// A script built with the limits refuses to encode past them.
	s := script.FromInstructions(make([]script.Instruction, 2), c.Options(nil, nil)...)
	_, err = s.Encode()
	require.ErrorIs(err, script.ErrTooManyInstructions)
}

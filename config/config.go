// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/ledgerscript/script"
	"github.com/ava-labs/ledgerscript/trace"
)

const DefaultMetricsNamespace = "ledgerscript"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel logging.Level `json:"logLevel"`

	// Limits
	MaxScriptSize   int `json:"maxScriptSize"`
	MaxInstructions int `json:"maxInstructions"`

	// Metrics
	MetricsNamespace string `json:"metricsNamespace"`

	// Tracing
	Trace trace.Config `json:"trace"`
}

func New(b []byte) (*Config, error) {
	c := &Config{
		LogLevel:         logging.Info,
		MaxScriptSize:    script.DefaultMaxSize,
		MaxInstructions:  script.DefaultMaxInstructions,
		MetricsNamespace: DefaultMetricsNamespace,
		Trace: trace.Config{
			Enabled:         false,
			TraceSampleRate: 1,
			Endpoint:        trace.DefaultEndpoint,
			AppName:         DefaultMetricsNamespace,
			Agent:           DefaultMetricsNamespace,
		},
	}

	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, err
		}
	}
	if c.MaxScriptSize <= 0 {
		return nil, fmt.Errorf("%w: maxScriptSize must be positive, got %d", ErrInvalidConfig, c.MaxScriptSize)
	}
	if c.MaxInstructions <= 0 {
		return nil, fmt.Errorf("%w: maxInstructions must be positive, got %d", ErrInvalidConfig, c.MaxInstructions)
	}

	return c, nil
}

// Options translates the limits into script options. The logger and metrics
// are supplied by the caller since they outlive any single Script.
func (c *Config) Options(log logging.Logger, m *script.Metrics) []script.Option {
	opts := []script.Option{
		script.WithMaxSize(c.MaxScriptSize),
		script.WithMaxInstructions(c.MaxInstructions),
	}
	if log != nil {
		opts = append(opts, script.WithLogger(log))
	}
	if m != nil {
		opts = append(opts, script.WithMetrics(m))
	}
	return opts
}

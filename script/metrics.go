// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package script

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const instructionLabel = "instruction"

// Metrics may be shared by every Script of a process. A nil *Metrics records
// nothing.
type Metrics struct {
	executed       prometheus.Counter
	failed         prometheus.Counter
	decodeFailures prometheus.Counter
	applied        *prometheus.CounterVec
	rejected       *prometheus.CounterVec
	execute        metric.Averager
}

func NewMetrics(namespace string, r prometheus.Registerer) (*Metrics, error) {
	execute, err := metric.NewAverager(
		"",
		prometheus.BuildFQName(namespace, "", "execute"),
		"time spent executing a script (ns)",
		r,
	)
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		executed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "executed",
			Help:      "number of scripts executed without error",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failed",
			Help:      "number of scripts stopped by a failing instruction",
		}),
		decodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_failures",
			Help:      "number of scripts that could not be decoded",
		}),
		applied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instructions_applied",
			Help:      "number of instructions applied",
		}, []string{instructionLabel}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instructions_rejected",
			Help:      "number of instructions that returned an error",
		}, []string{instructionLabel}),
		execute: execute,
	}

	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.executed),
		r.Register(m.failed),
		r.Register(m.decodeFailures),
		r.Register(m.applied),
		r.Register(m.rejected),
	)
	return m, errs.Err
}

func (m *Metrics) recordApplied(name string) {
	if m == nil {
		return
	}
	m.applied.WithLabelValues(name).Inc()
}

func (m *Metrics) recordRejected(name string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(name).Inc()
}

func (m *Metrics) recordExecution(start time.Time, err error) {
	if m == nil {
		return
	}
	m.execute.Observe(float64(time.Since(start)))
	if err != nil {
		m.failed.Inc()
		return
	}
	m.executed.Inc()
}

func (m *Metrics) recordDecodeFailure() {
	if m == nil {
		return
	}
	m.decodeFailures.Inc()
}

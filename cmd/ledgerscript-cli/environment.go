// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ava-labs/ledgerscript/config"
	"github.com/ava-labs/ledgerscript/script"

	ltrace "github.com/ava-labs/ledgerscript/trace"
)

const (
	loggerName = "ledgerscript"

	logFileMaxSize  = 8 // megabytes
	logFileMaxFiles = 4
	logFileMaxAge   = 7 // days
)

// environment holds everything a command needs to build scripts.
type environment struct {
	config   *config.Config
	log      logging.Logger
	registry *prometheus.Registry
	metrics  *script.Metrics
	tracer   trace.Tracer

	printMetrics bool
	closers      []io.Closer
}

func newEnvironment(cmd *cobra.Command) (*environment, error) {
	var raw []byte
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		raw, err = os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	cfg, err := config.New(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if levelStr, _ := cmd.Flags().GetString("log-level"); levelStr != "" {
		cfg.LogLevel, err = logging.ToLevel(levelStr)
		if err != nil {
			return nil, err
		}
	}

	e := &environment{
		config:   cfg,
		registry: prometheus.NewRegistry(),
	}
	e.printMetrics, _ = cmd.Flags().GetBool("metrics")

	logFile, _ := cmd.Flags().GetString("log-file")
	e.log = e.newLogger(cmd.ErrOrStderr(), logFile)

	e.metrics, err = script.NewMetrics(cfg.MetricsNamespace, e.registry)
	if err != nil {
		e.close()
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	e.tracer, err = ltrace.New(&cfg.Trace)
	if err != nil {
		e.close()
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	e.closers = append(e.closers, e.tracer)
	return e, nil
}

// withEnvironment runs [f] with a fresh environment and always finishes it,
// so metrics are printed even when [f] fails.
func withEnvironment(cmd *cobra.Command, f func(*environment) error) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	runErr := f(env)
	if err := env.finish(cmd.ErrOrStderr()); err != nil && runErr == nil {
		return err
	}
	return runErr
}

func (e *environment) newLogger(console io.Writer, logFile string) logging.Logger {
	cores := []logging.WrappedCore{
		logging.NewWrappedCore(e.config.LogLevel, nopCloser{console}, logging.Colors.ConsoleEncoder()),
	}
	if logFile != "" {
		rw := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logFileMaxSize,
			MaxAge:     logFileMaxAge,
			MaxBackups: logFileMaxFiles,
			Compress:   true,
		}
		e.closers = append(e.closers, rw)
		cores = append(cores, logging.NewWrappedCore(e.config.LogLevel, rw, logging.JSON.FileEncoder()))
	}
	return logging.NewLogger(loggerName, cores...)
}

func (e *environment) options() []script.Option {
	return append(e.config.Options(e.log, e.metrics), script.WithTracer(e.tracer))
}

// finish prints the gathered metrics when requested and releases the log
// writers.
func (e *environment) finish(w io.Writer) error {
	defer e.close()

	if !e.printMetrics {
		return nil
	}
	families, err := e.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}

func (e *environment) close() {
	e.log.Stop()
	for _, c := range e.closers {
		if err := c.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "failed to close:", err)
		}
	}
}

type nopCloser struct {
	io.Writer
}

// Close implements the io.Closer interface.
func (nopCloser) Close() error {
	return nil
}

func logDecodeInput(log logging.Logger, source string, b []byte) {
	log.Debug("decoding script",
		zap.String("source", source),
		zap.Int("size", len(b)),
	)
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package script

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/units"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/ava-labs/ledgerscript/codec"
	"github.com/ava-labs/ledgerscript/consts"
	"github.com/ava-labs/ledgerscript/state"
	"github.com/ava-labs/ledgerscript/utils"

	ltrace "github.com/ava-labs/ledgerscript/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	DefaultMaxSize         = 2 * units.MiB
	DefaultMaxInstructions = 1 << 16
)

type Status uint8

const (
	Pending Status = iota
	Done
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Script is an ordered list of instructions and the ledger they are applied
// to. A Script is not safe for concurrent use.
type Script struct {
	instructions []Instruction
	ledger       *state.Ledger

	status  Status
	applied int
	err     error

	log             logging.Logger
	metrics         *Metrics
	tracer          trace.Tracer
	maxSize         int
	maxInstructions int
}

func newScript(instructions []Instruction, opts ...Option) *Script {
	s := &Script{
		instructions:    instructions,
		ledger:          state.NewLedger(),
		log:             logging.NoLog{},
		tracer:          ltrace.Noop("script"),
		maxSize:         DefaultMaxSize,
		maxInstructions: DefaultMaxInstructions,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromInstructions returns a Script that owns a copy of [instructions] and an
// empty ledger.
func FromInstructions(instructions []Instruction, opts ...Option) *Script {
	return newScript(slices.Clone(instructions), opts...)
}

// Decode parses [b] with [parser] into a Script with an empty ledger. Any
// failure is returned wrapped in ErrDecode.
func Decode(parser *codec.TypeParser[Instruction], b []byte, opts ...Option) (*Script, error) {
	s := newScript(nil, opts...)
	instructions, err := unmarshalInstructions(parser, b, s.maxSize, s.maxInstructions)
	if err != nil {
		s.metrics.recordDecodeFailure()
		s.log.Debug("could not decode script",
			zap.Int("size", len(b)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	s.instructions = instructions
	return s, nil
}

// Encode returns the binary encoding of the instructions of [s]. The ledger
// is never encoded.
func (s *Script) Encode() ([]byte, error) {
	b, err := marshalInstructions(s.instructions, s.maxSize, s.maxInstructions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return b, nil
}

// ID is the hash of the encoding of [s].
func (s *Script) ID() (ids.ID, error) {
	b, err := s.Encode()
	if err != nil {
		return ids.Empty, err
	}
	return utils.ToID(b), nil
}

// Execute applies every instruction, in order, to the ledger of [s]. It stops
// at the first failing instruction and returns an *ExecutionError; changes
// made by the instructions before it are not rolled back. A Script can only
// be executed once.
func (s *Script) Execute() error {
	if s.status != Pending {
		return fmt.Errorf("%w: status is %s", ErrAlreadyExecuted, s.status)
	}

	ctx, span := s.tracer.Start(context.Background(), "Script.Execute",
		oteltrace.WithAttributes(
			attribute.Int("instructions", len(s.instructions)),
		),
	)
	defer span.End()

	start := time.Now()
	for i, instruction := range s.instructions {
		if isNil(instruction) {
			return s.fail(span, &ExecutionError{Index: i, Err: ErrNilInstruction}, start)
		}
		name := instruction.GetTypeName()
		if err := s.apply(ctx, i, instruction); err != nil {
			s.metrics.recordRejected(name)
			return s.fail(span, &ExecutionError{
				Index:  i,
				TypeID: instruction.GetTypeID(),
				Name:   name,
				Err:    err,
			}, start)
		}
		s.applied++
		s.metrics.recordApplied(name)
	}

	s.status = Done
	s.metrics.recordExecution(start, nil)
	s.log.Debug("executed script",
		zap.Int("instructions", len(s.instructions)),
		zap.Int("accounts", s.ledger.Len()),
		zap.Duration("t", time.Since(start)),
	)
	return nil
}

func (s *Script) apply(ctx context.Context, index int, instruction Instruction) error {
	_, span := s.tracer.Start(ctx, "Script.Apply",
		oteltrace.WithAttributes(
			attribute.Int("index", index),
			attribute.String("instruction", instruction.GetTypeName()),
		),
	)
	defer span.End()

	if err := instruction.Apply(s.ledger); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s *Script) fail(span oteltrace.Span, err *ExecutionError, start time.Time) error {
	s.status = Failed
	s.err = err
	s.metrics.recordExecution(start, err)
	span.SetStatus(codes.Error, err.Error())
	s.log.Debug("script execution stopped",
		zap.Int("index", err.Index),
		zap.String("instruction", err.Name),
		zap.Error(err.Err),
	)
	return err
}

// Instructions returns a copy of the instruction list of [s].
func (s *Script) Instructions() []Instruction {
	instructions := make([]Instruction, len(s.instructions))
	copy(instructions, s.instructions)
	return instructions
}

func (s *Script) Ledger() state.Immutable {
	return s.ledger
}

func (s *Script) Status() Status {
	return s.status
}

// Applied returns how many instructions have been applied successfully.
func (s *Script) Applied() int {
	return s.applied
}

// Err returns the error that stopped execution, if any.
func (s *Script) Err() error {
	return s.err
}

func marshalInstructions(instructions []Instruction, maxSize int, maxInstructions int) ([]byte, error) {
	if len(instructions) > maxInstructions {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyInstructions, len(instructions), maxInstructions)
	}
	size := consts.IntLen
	for i, instruction := range instructions {
		if isNil(instruction) {
			return nil, fmt.Errorf("%w: index %d", ErrNilInstruction, i)
		}
		size += codec.TypedSize(instruction)
	}
	if size > maxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrScriptTooLarge, size, maxSize)
	}

	p := codec.NewWriter(size, maxSize)
	p.PackInt(uint32(len(instructions)))
	for _, instruction := range instructions {
		p.PackByte(instruction.GetTypeID())
		instruction.Marshal(p)
	}
	return p.Bytes(), p.Err()
}

func unmarshalInstructions(
	parser *codec.TypeParser[Instruction],
	b []byte,
	maxSize int,
	maxInstructions int,
) ([]Instruction, error) {
	if len(b) > maxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrScriptTooLarge, len(b), maxSize)
	}
	p := codec.NewReader(b, maxSize)
	count := int(p.UnpackInt(false))
	if err := p.Err(); err != nil {
		return nil, err
	}
	if count > maxInstructions {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyInstructions, count, maxInstructions)
	}

	// Every instruction takes at least its type ID, so [count] can't be
	// trusted for more capacity than there are bytes left.
	instructions := make([]Instruction, 0, min(count, p.Remaining()))
	for i := 0; i < count; i++ {
		instruction, err := parser.Unmarshal(p)
		if err != nil {
			return nil, fmt.Errorf("%w: could not unmarshal instruction %d", err, i)
		}
		instructions = append(instructions, instruction)
	}
	if !p.Empty() {
		return nil, fmt.Errorf("%w: %d leftover bytes", ErrInvalidObject, p.Remaining())
	}
	return instructions, nil
}

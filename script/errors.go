// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package script

import (
	"errors"
	"fmt"
)

var (
	ErrDecode              = errors.New("could not decode script")
	ErrEncode              = errors.New("could not encode script")
	ErrInvalidObject       = errors.New("invalid object")
	ErrScriptTooLarge      = errors.New("script too large")
	ErrTooManyInstructions = errors.New("too many instructions")
	ErrNilInstruction      = errors.New("nil instruction")
	ErrAlreadyExecuted     = errors.New("script already executed")
)

// ExecutionError is returned by Execute when an instruction fails.
type ExecutionError struct {
	Index  int
	TypeID uint8
	Name   string
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("instruction %d (%s) failed: %v", e.Index, e.Name, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

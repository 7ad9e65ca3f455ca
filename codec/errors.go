// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrDuplicateItem     = errors.New("duplicate item")
	ErrFieldNotPopulated = errors.New("field is not populated")
	ErrInvalidSize       = errors.New("invalid size")
	ErrUnknownType       = errors.New("unknown type")
	ErrMissingType       = errors.New("missing type")
	ErrNotPointer        = errors.New("registered type must be a pointer to a struct")
)

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen   = 1
	IDLen     = 32
	IntLen    = 4
	Uint64Len = 8
	MaxUint   = ^uint(0)
	MaxInt    = int(MaxUint >> 1)
	MaxUint64 = ^uint64(0)
)

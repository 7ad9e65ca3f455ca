// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/ledgerscript/consts"
)

// Packer is a wrapper struct for the Packer struct
// from avalanchego/utils/wrappers/packing.go. A bool [required] parameter is
// added to many unpacking methods, which signals the packer to add an error
// if the expected method does not unpack properly.
type Packer struct {
	p *wrappers.Packer
}

// NewReader returns a Packer instance for reading [src], which must not be
// longer than [limit].
func NewReader(src []byte, limit int) *Packer {
	return &Packer{
		p: &wrappers.Packer{Bytes: src, MaxSize: limit},
	}
}

// NewWriter returns a Packer instance with an initial size of [initial] and a
// MaxSize set to [limit].
func NewWriter(initial, limit int) *Packer {
	return &Packer{
		p: &wrappers.Packer{Bytes: make([]byte, 0, initial), MaxSize: limit},
	}
}

func (p *Packer) PackByte(b byte) {
	p.p.PackByte(b)
}

func (p *Packer) UnpackByte() byte {
	return p.p.UnpackByte()
}

func (p *Packer) PackIdentity(id Identity) {
	p.p.PackFixedBytes(id[:])
}

// UnpackIdentity unpacks an Identity into [dest]. If [required] is true and
// the unpacked identity is empty, an error is added to the packer.
func (p *Packer) UnpackIdentity(required bool, dest *Identity) {
	copy((*dest)[:], p.p.UnpackFixedBytes(IdentityLen))
	if required && *dest == EmptyIdentity {
		p.addErr(ErrFieldNotPopulated)
	}
}

// PackInt packs [v] as a 4 byte unsigned integer.
func (p *Packer) PackInt(v uint32) {
	p.p.PackInt(v)
}

func (p *Packer) UnpackInt(required bool) uint32 {
	v := p.p.UnpackInt()
	if required && v == 0 {
		p.addErr(ErrFieldNotPopulated)
	}
	return v
}

func (p *Packer) PackUint64(v uint64) {
	p.p.PackLong(v)
}

func (p *Packer) UnpackUint64(required bool) uint64 {
	v := p.p.UnpackLong()
	if required && v == 0 {
		p.addErr(ErrFieldNotPopulated)
	}
	return v
}

// Bytes returns everything packed so far.
func (p *Packer) Bytes() []byte {
	return p.p.Bytes
}

// Remaining returns the number of bytes left to unpack.
func (p *Packer) Remaining() int {
	return len(p.p.Bytes) - p.p.Offset
}

func (p *Packer) Err() error {
	return p.p.Err
}

// Empty returns true if every byte of the underlying buffer has been read.
func (p *Packer) Empty() bool {
	return p.p.Offset == len(p.p.Bytes)
}

func (p *Packer) addErr(err error) {
	p.p.Add(err)
}

// SizeType is implemented by anything that knows its packed size.
type SizeType interface {
	Size() int
}

// TypedSize returns the packed size of [item] including its type byte.
func TypedSize[T interface {
	Typed
	SizeType
}](item T) int {
	return consts.ByteLen + item.Size()
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/ava-labs/ledgerscript/consts"
)

const IdentityLen = consts.IDLen

// Identity is the opaque 32 byte public identifier of a ledger account. It is
// compared by exact byte equality and never verified.
type Identity [IdentityLen]byte

var EmptyIdentity = Identity{}

// ParseIdentity decodes a hex string, with or without a 0x prefix, into an
// Identity. The decoded value must be exactly [IdentityLen] bytes.
func ParseIdentity(s string) (Identity, error) {
	b, err := LoadHex(s, IdentityLen)
	if err != nil {
		return EmptyIdentity, fmt.Errorf("%w: could not parse identity %q", err, s)
	}
	return Identity(b), nil
}

// String implements fmt.Stringer.
func (i Identity) String() string {
	return hex.EncodeToString(i[:])
}

// MarshalText returns the 0x prefixed hex representation of i.
func (i Identity) MarshalText() ([]byte, error) {
	result := make([]byte, len(i)*2+2)
	copy(result, `0x`)
	hex.Encode(result[2:], i[:])
	return result, nil
}

// UnmarshalText parses a hex-encoded identity.
func (i *Identity) UnmarshalText(input []byte) error {
	parsed, err := ParseIdentity(string(input))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

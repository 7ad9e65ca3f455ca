// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"bytes"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

func TestToID(t *testing.T) {
	require := require.New(t)

	a := ToID([]byte{1, 2, 3})
	require.Equal(a, ToID([]byte{1, 2, 3}))
	require.NotEqual(a, ToID([]byte{1, 2, 4}))
	require.NotEqual(ids.Empty, ToID(nil))
}

func TestMap(t *testing.T) {
	require := require.New(t)

	out := Map(func(i int) string { return string(rune('a' + i)) }, []int{0, 1, 2})
	require.Equal([]string{"a", "b", "c"}, out)
}

func TestOutf(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	Outf(&buf, "{{green}}hi %s{{/}}", "there")
	require.Contains(buf.String(), "hi there")
	require.NotContains(buf.String(), "{{green}}")
}

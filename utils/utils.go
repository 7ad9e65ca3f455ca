// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"
	"io"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/onsi/ginkgo/v2/formatter"
)

func ToID(bytes []byte) ids.ID {
	return ids.ID(hashing.ComputeHash256Array(bytes))
}

// Outf formats with ginkgo colour templates and writes the result to [w].
//
// e.g.,
//
//	Outf(os.Stdout, "{{green}}{{bold}}hi there %q{{/}}", "aa")
//	Outf(os.Stdout, "{{magenta}}{{bold}}hi therea{{/}} {{cyan}}{{underline}}b{{/}}")
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, formatter.F(format, args...))
}

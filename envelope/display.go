// SPDX-License-Identifier: MIT
// Dev: KryperAI

package envelope

import (
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Describe renders e as a one-line tree for diagnostics. Malformed
// regions are marked in place instead of aborting the rendering.
func Describe(e Envelope) string {
	var sb strings.Builder
	describe(&sb, e, 0)
	return sb.String()
}

func describe(sb *strings.Builder, e Envelope, depth int) {
	if depth > MaxDepth {
		sb.WriteString("<too deep>")
		return
	}
	if !e.IsList() {
		data, err := e.Data()
		if err != nil {
			sb.WriteString("<malformed>")
			return
		}
		sb.WriteString("data(")
		sb.WriteString(strconv.Itoa(len(data)))
		sb.WriteString(")")
		if len(data) > 0 {
			sb.WriteString(" ")
			sb.WriteString(hexutil.Encode(data))
		}
		return
	}

	it, err := e.Iter()
	if err != nil {
		sb.WriteString("<malformed>")
		return
	}
	sb.WriteString("[")
	for n := 0; it.Next(); n++ {
		if n > 0 {
			sb.WriteString(", ")
		}
		describe(sb, it.Value(), depth+1)
	}
	if it.Err() != nil {
		sb.WriteString(" <malformed>")
	}
	sb.WriteString("]")
}

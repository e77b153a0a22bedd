// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

// API prefixes for hashes carried in headers and messages.
const (
	PrefixTxHash         = "th"
	PrefixKeyBlockHash   = "kh"
	PrefixMicroBlockHash = "mh"
	PrefixStateHash      = "bs"
	PrefixTxsHash        = "bx"
	PrefixSignature      = "sg"
)

// TxHash is the hash of a serialized signed transaction.
func TxHash(signedTx []byte) Hash {
	return ContentHash(signedTx)
}

// TxHashString renders a transaction hash in "th_" form.
func TxHashString(h Hash) string {
	return h.Encode(PrefixTxHash)
}

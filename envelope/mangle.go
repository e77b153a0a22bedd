// SPDX-License-Identifier: MIT
// Dev: KryperAI

package envelope

// Mangle rewrites every 0x80 byte of an encoding to 0x00, the form the
// æternity peers expect for empty strings and zero integers.
func Mangle(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		if b == 0x80 {
			b = 0
		}
		out[i] = b
	}
	return out
}

// Package util provides common byte and file helpers.
package util

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// U64ToBEBytes converts a uint64 to an 8-byte big-endian slice.
func U64ToBEBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// BEBytesToU64 converts an 8-byte big-endian slice to uint64.
func BEBytesToU64(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// BytesToHex converts a byte slice to a hex string with spaces between bytes.
func BytesToHex(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}

// TruncateString shortens s to at most n runes, appending "..." when cut.
func TruncateString(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

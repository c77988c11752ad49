// Package hexstr renders raw file bytes as the lowercase hexadecimal text
// that is stored alongside each land record.
package hexstr

import "encoding/hex"

// Encode returns the lowercase hexadecimal form of b, high nibble first.
// The result is always exactly 2*len(b) characters; empty input yields "".
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// Decode reverses Encode. It accepts upper- or lowercase digits.
func Decode(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

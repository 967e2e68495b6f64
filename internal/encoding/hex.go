// Package encoding provides the byte-level codecs shared by the
// identification and derivation pipelines: hexadecimal, Base58,
// Bech32/Bech32m, and SS58 framing.
package encoding

import (
	"encoding/hex"
	"strings"

	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

// DecodeHex decodes a hex string, with or without a 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	trimmed := strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, wcerrors.Wrap(wcerrors.ErrInvalidEncoding, err)
	}
	return b, nil
}

// EncodeHex encodes bytes as lowercase hex with a 0x prefix.
func EncodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// IsHex reports whether s is structurally hex: a 0x prefix followed by hex
// digits, or a bare even-length hex string.
func IsHex(s string) bool {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return rest != "" && isHexDigits(rest)
	}
	return s != "" && len(s)%2 == 0 && isHexDigits(s)
}

func isHexDigits(s string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

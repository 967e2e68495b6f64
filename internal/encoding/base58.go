package encoding

import (
	"github.com/btcsuite/btcd/btcutil/base58"

	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

// Base58Alphabet is the Bitcoin Base58 alphabet: alphanumeric excluding
// 0, O, I, and l.
const Base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// IsBase58 reports whether s is non-empty and drawn entirely from the
// Base58 alphabet.
func IsBase58(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isBase58Char(s[i]) {
			return false
		}
	}
	return true
}

func isBase58Char(c byte) bool {
	switch {
	case c >= '1' && c <= '9':
		return true
	case c >= 'A' && c <= 'Z':
		return c != 'I' && c != 'O'
	case c >= 'a' && c <= 'z':
		return c != 'l'
	default:
		return false
	}
}

// DecodeBase58 decodes a Base58 string. Any out-of-alphabet character is an
// error, never a panic.
func DecodeBase58(s string) ([]byte, error) {
	if !IsBase58(s) {
		return nil, wcerrors.WithDetails(wcerrors.ErrInvalidEncoding, map[string]string{
			"encoding": "base58",
			"input":    s,
		})
	}
	return base58.Decode(s), nil
}

// EncodeBase58 encodes bytes to Base58.
func EncodeBase58(b []byte) string {
	return base58.Encode(b)
}

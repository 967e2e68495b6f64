package checksum

import (
	"strings"

	"github.com/whichchain/whichchain/internal/hashing"
)

// EIP55Result classifies an EVM address string's case-based checksum.
type EIP55Result int

// EIP-55 verification outcomes. A uniform-case address carries no checksum
// at all, which is distinct from a mixed-case address whose casing is wrong.
const (
	EIP55NotChecksummed EIP55Result = iota
	EIP55Valid
	EIP55Invalid
)

// String returns the outcome name.
func (r EIP55Result) String() string {
	switch r {
	case EIP55Valid:
		return "valid"
	case EIP55Invalid:
		return "invalid"
	default:
		return "not_checksummed"
	}
}

// EIP55Checksum applies EIP-55 mixed-case checksumming to a 40-character
// hex address body (no 0x prefix) and returns it with the 0x prefix.
// A hex letter is uppercased when the corresponding nibble of
// Keccak-256(lowercase body) is >= 8.
func EIP55Checksum(body string) string {
	lower := strings.ToLower(body)
	digest := hashing.Keccak256([]byte(lower))
	out := make([]byte, len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'f' {
			nibble := digest[i/2]
			if i%2 == 0 {
				nibble >>= 4
			}
			if nibble&0x0f >= 8 {
				c = c - 'a' + 'A'
			}
		}
		out[i] = c
	}
	return "0x" + string(out)
}

// VerifyEIP55 checks the mixed-case checksum of a 40-character hex address
// body (no 0x prefix). Bodies without any letters, or with letters all in
// one case, are reported as not checksummed rather than invalid.
func VerifyEIP55(body string) EIP55Result {
	var hasUpper, hasLower bool
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c >= 'A' && c <= 'F':
			hasUpper = true
		case c >= 'a' && c <= 'f':
			hasLower = true
		}
	}
	if !hasUpper || !hasLower {
		return EIP55NotChecksummed
	}
	if EIP55Checksum(body) == "0x"+body {
		return EIP55Valid
	}
	return EIP55Invalid
}

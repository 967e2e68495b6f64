// Package checksum implements the checksum schemes the supported chains
// attach to their address formats: Base58Check, EIP-55, and SS58. The
// functions here work on decoded bytes (or, for EIP-55, the address
// string); string-level framing lives in internal/encoding.
package checksum

import (
	"bytes"

	"github.com/whichchain/whichchain/internal/hashing"
)

// Base58CheckLength is the decoded length of a Base58Check address frame:
// one version byte, a 20-byte payload, and a 4-byte checksum.
const Base58CheckLength = 25

// Base58Check computes the 4-byte double-SHA256 checksum over
// version ‖ payload.
func Base58Check(version byte, payload []byte) []byte {
	body := make([]byte, 0, 1+len(payload))
	body = append(body, version)
	body = append(body, payload...)
	return hashing.DoubleSHA256(body)[:4]
}

// SplitBase58CheckFrame validates a decoded Base58Check frame and splits it
// into version byte and payload. The frame must be exactly 25 bytes and
// carry a correct trailing checksum.
func SplitBase58CheckFrame(decoded []byte) (version byte, payload []byte, ok bool) {
	if len(decoded) != Base58CheckLength {
		return 0, nil, false
	}
	version = decoded[0]
	payload = decoded[1 : len(decoded)-4]
	sum := decoded[len(decoded)-4:]
	if !bytes.Equal(Base58Check(version, payload), sum) {
		return 0, nil, false
	}
	return version, payload, true
}

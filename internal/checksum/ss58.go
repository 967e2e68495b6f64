package checksum

import (
	"crypto/subtle"

	"github.com/whichchain/whichchain/internal/hashing"
)

// ss58Preamble is prepended to the checksummed payload per the SS58 spec.
var ss58Preamble = []byte("SS58PRE")

// SS58 computes an n-byte SS58 checksum over prefix ‖ accountID.
func SS58(prefix, accountID []byte, n int) []byte {
	payload := make([]byte, 0, len(ss58Preamble)+len(prefix)+len(accountID))
	payload = append(payload, ss58Preamble...)
	payload = append(payload, prefix...)
	payload = append(payload, accountID...)
	return hashing.Blake2b512(payload)[:n]
}

// VerifySS58 reports whether sum is the correct SS58 checksum for
// prefix ‖ accountID.
func VerifySS58(prefix, accountID, sum []byte) bool {
	expected := SS58(prefix, accountID, len(sum))
	return subtle.ConstantTimeCompare(expected, sum) == 1
}

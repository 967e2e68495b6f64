// Package derive executes the per-chain address derivation pipelines: a
// pure hash-then-encode recipe from public key bytes to an address string.
package derive

import (
	"strconv"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

// Decompress expands a 33-byte compressed secp256k1 key to the 65-byte
// uncompressed form. 65-byte keys are validated and returned unchanged.
// A point not on the curve is a fatal error for this derivation attempt.
func Decompress(key []byte) ([]byte, error) {
	switch len(key) {
	case 33, 65:
		pub, err := secp256k1.ParsePubKey(key)
		if err != nil {
			return nil, wcerrors.Wrap(wcerrors.ErrInvalidKey, err)
		}
		return pub.SerializeUncompressed(), nil
	default:
		return nil, wcerrors.WithDetails(wcerrors.ErrInvalidKey, map[string]string{
			"length": strconv.Itoa(len(key)),
			"reason": "secp256k1 keys are 33 or 65 bytes",
		})
	}
}

// extract64 strips the uncompressed-form marker, accepting 64-byte bodies
// as-is. Compressed keys must be decompressed before reaching a pipeline.
func extract64(key []byte) ([]byte, error) {
	switch {
	case len(key) == 65 && key[0] == 0x04:
		return key[1:], nil
	case len(key) == 64:
		return key, nil
	default:
		return nil, wcerrors.WithDetails(wcerrors.ErrInvalidKey, map[string]string{
			"length": strconv.Itoa(len(key)),
			"reason": "expected a 64-byte or uncompressed 65-byte secp256k1 key",
		})
	}
}

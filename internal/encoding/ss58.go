package encoding

import (
	"strconv"

	"github.com/whichchain/whichchain/internal/checksum"
	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

// MaxSS58Prefix is the largest network prefix the two-byte SS58 prefix
// encoding can carry.
const MaxSS58Prefix = 16383

// ss58ChecksumLength returns the checksum width for a decoded SS58 frame of
// the given total length. The common 35/36-byte address shape always uses
// two bytes, a documented deviation from the generic scale-with-length rule
// that real Polkadot/Kusama addresses depend on.
func ss58ChecksumLength(decodedLen int) int {
	if decodedLen == 35 || decodedLen == 36 {
		return 2
	}
	switch {
	case decodedLen < 64:
		return 1
	case decodedLen < 16384:
		return 2
	default:
		return 3
	}
}

// ss58PrefixBytes encodes a network prefix into its wire form: one byte for
// prefixes below 64, two bytes otherwise.
func ss58PrefixBytes(prefix uint16) []byte {
	if prefix < 64 {
		return []byte{byte(prefix)}
	}
	return []byte{0x40 | byte(prefix>>8)&0x3F, byte(prefix)}
}

// EncodeSS58 encodes an account ID under the given network prefix.
func EncodeSS58(prefix uint16, accountID []byte) (string, error) {
	if prefix > MaxSS58Prefix {
		return "", wcerrors.WithDetails(wcerrors.ErrInvalidEncoding, map[string]string{
			"encoding": "ss58",
			"prefix":   strconv.Itoa(int(prefix)),
			"reason":   "prefix exceeds 16383",
		})
	}
	prefixBytes := ss58PrefixBytes(prefix)
	base := len(prefixBytes) + len(accountID)

	n := 0
	if ss58ChecksumLength(base+2) == 2 {
		n = 2
	} else {
		for candidate := 1; candidate <= 3; candidate++ {
			if ss58ChecksumLength(base+candidate) == candidate {
				n = candidate
				break
			}
		}
	}
	if n == 0 {
		return "", wcerrors.WithDetails(wcerrors.ErrInvalidEncoding, map[string]string{
			"encoding": "ss58",
			"reason":   "no consistent checksum length for account size " + strconv.Itoa(len(accountID)),
		})
	}

	sum := checksum.SS58(prefixBytes, accountID, n)
	frame := make([]byte, 0, base+n)
	frame = append(frame, prefixBytes...)
	frame = append(frame, accountID...)
	frame = append(frame, sum...)
	return EncodeBase58(frame), nil
}

// DecodeSS58 decodes an SS58 address, verifying its checksum, and returns
// the network prefix and account ID. First bytes at or above 128 are
// rejected: the reserved upper half of the two-byte prefix space is not in
// use on any supported network.
func DecodeSS58(s string) (prefix uint16, accountID []byte, err error) {
	decoded, err := DecodeBase58(s)
	if err != nil {
		return 0, nil, err
	}
	if len(decoded) < 3 {
		return 0, nil, wcerrors.WithDetails(wcerrors.ErrInvalidEncoding, map[string]string{
			"encoding": "ss58",
			"reason":   "decoded frame too short",
		})
	}

	var prefixLen int
	switch first := decoded[0]; {
	case first < 64:
		prefix = uint16(first)
		prefixLen = 1
	case first < 128:
		if len(decoded) < 4 {
			return 0, nil, wcerrors.WithDetails(wcerrors.ErrInvalidEncoding, map[string]string{
				"encoding": "ss58",
				"reason":   "decoded frame too short for two-byte prefix",
			})
		}
		prefix = uint16(first&0x3F)<<8 | uint16(decoded[1])
		prefixLen = 2
	default:
		return 0, nil, wcerrors.WithDetails(wcerrors.ErrInvalidEncoding, map[string]string{
			"encoding": "ss58",
			"reason":   "reserved prefix byte " + strconv.Itoa(int(first)),
		})
	}

	n := ss58ChecksumLength(len(decoded))
	if len(decoded) < prefixLen+n+1 {
		return 0, nil, wcerrors.WithDetails(wcerrors.ErrInvalidEncoding, map[string]string{
			"encoding": "ss58",
			"reason":   "decoded frame too short for checksum",
		})
	}
	prefixBytes := decoded[:prefixLen]
	accountID = decoded[prefixLen : len(decoded)-n]
	sum := decoded[len(decoded)-n:]
	if !checksum.VerifySS58(prefixBytes, accountID, sum) {
		return 0, nil, wcerrors.WithDetails(wcerrors.ErrInvalidChecksum, map[string]string{
			"encoding": "ss58",
		})
	}
	return prefix, accountID, nil
}

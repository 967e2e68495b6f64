package encoding

import (
	"github.com/btcsuite/btcd/btcutil/bech32"

	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

// Bech32Variant identifies which checksum constant a Bech32 string was
// encoded with. Chains commit to one variant; a mismatch is a validation
// failure, never a silent fallback.
type Bech32Variant int

// Bech32 checksum variants.
const (
	VariantBech32 Bech32Variant = iota
	VariantBech32m
)

// String returns the variant name.
func (v Bech32Variant) String() string {
	if v == VariantBech32m {
		return "bech32m"
	}
	return "bech32"
}

// DecodeBech32 decodes a Bech32 or Bech32m string and reports which variant
// matched. The returned data is in 5-bit groups, excluding the checksum.
func DecodeBech32(s string) (hrp string, data []byte, variant Bech32Variant, err error) {
	hrp, data, version, err := bech32.DecodeGeneric(s)
	if err != nil {
		return "", nil, 0, wcerrors.Wrap(wcerrors.ErrInvalidEncoding, err)
	}
	switch version {
	case bech32.Version0:
		return hrp, data, VariantBech32, nil
	case bech32.VersionM:
		return hrp, data, VariantBech32m, nil
	default:
		return "", nil, 0, wcerrors.WithDetails(wcerrors.ErrInvalidChecksum, map[string]string{
			"encoding": "bech32",
		})
	}
}

// EncodeBech32 encodes 5-bit groups with the Bech32 checksum.
func EncodeBech32(hrp string, data []byte) (string, error) {
	s, err := bech32.Encode(hrp, data)
	if err != nil {
		return "", wcerrors.Wrap(wcerrors.ErrInvalidEncoding, err)
	}
	return s, nil
}

// EncodeBech32m encodes 5-bit groups with the Bech32m checksum.
func EncodeBech32m(hrp string, data []byte) (string, error) {
	s, err := bech32.EncodeM(hrp, data)
	if err != nil {
		return "", wcerrors.Wrap(wcerrors.ErrInvalidEncoding, err)
	}
	return s, nil
}

// ConvertBits regroups data between 8-bit and 5-bit representations.
// pad must be true when encoding into 5-bit groups and false (with strict
// bit-slack checking) when decoding back to 8-bit.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	out, err := bech32.ConvertBits(data, fromBits, toBits, pad)
	if err != nil {
		return nil, wcerrors.Wrap(wcerrors.ErrInvalidEncoding, err)
	}
	return out, nil
}

// HasBech32Shape reports whether s looks like a Bech32 string (an HRP, a
// separator, and a data part) without verifying the checksum. Used by the
// characteristics extractor to pull out the HRP before full validation.
func HasBech32Shape(s string) (hrp string, ok bool) {
	sep := -1
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '1' {
			sep = i
			break
		}
	}
	if sep <= 0 || sep >= len(s)-1 {
		return "", false
	}
	for i := 0; i < sep; i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return "", false
		}
	}
	return s[:sep], true
}

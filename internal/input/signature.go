package input

import (
	"strings"

	"github.com/whichchain/whichchain/internal/chain"
)

// Signature is a structural fingerprint shared by inputs and format
// metadata. A metadata-derived signature matching the input's
// characteristics groups chains without per-chain branching.
type Signature struct {
	CharSet    chain.CharSet
	MinLength  int
	MaxLength  int
	RequireHRP bool
	HRPs       []string
	Prefixes   []string
	Encoding   chain.EncodingType
}

// FromCharacteristics derives the input-side signature: exact length, the
// first detected encoding, and the extracted HRP.
func FromCharacteristics(ch Characteristics) Signature {
	sig := Signature{
		CharSet:    ch.CharSet,
		MinLength:  ch.Length,
		MaxLength:  ch.Length,
		RequireHRP: ch.HRP != "",
		Prefixes:   ch.Prefixes,
	}
	if ch.HRP != "" {
		sig.HRPs = []string{ch.HRP}
	}
	if len(ch.Encodings) > 0 {
		sig.Encoding = ch.Encodings[0]
	}
	return sig
}

// FromAddressFormat derives the metadata-side signature of a format.
func FromAddressFormat(f chain.AddressFormat) Signature {
	sig := Signature{
		CharSet:    f.CharSet,
		MinLength:  f.MinLength,
		MaxLength:  f.MaxLength,
		RequireHRP: len(f.HRPs) > 0,
		HRPs:       f.HRPs,
		Prefixes:   f.Prefixes,
		Encoding:   f.Encoding,
	}
	if f.ExactLength > 0 {
		sig.MinLength = f.ExactLength
		sig.MaxLength = f.ExactLength
	}
	return sig
}

// Matches reports whether a metadata-derived signature is satisfied by the
// input's characteristics. It is deliberately coarser than ValidateRaw;
// the matcher applies both.
func (s Signature) Matches(ch Characteristics) bool {
	if s.CharSet != "" && ch.CharSet != s.CharSet {
		return false
	}
	if s.MinLength > 0 && ch.Length < s.MinLength {
		return false
	}
	if s.MaxLength > 0 && ch.Length > s.MaxLength {
		return false
	}
	if s.RequireHRP {
		if ch.HRP == "" {
			return false
		}
		if len(s.HRPs) > 0 && !hrpMatches(ch.HRP, s.HRPs) {
			return false
		}
	}
	if len(s.Prefixes) > 0 && !prefixMatches(ch, s.Prefixes) {
		return false
	}
	if s.Encoding != "" && !ch.HasEncoding(s.Encoding) {
		return false
	}
	return true
}

func hrpMatches(hrp string, allowed []string) bool {
	for _, h := range allowed {
		if hrp == h {
			return true
		}
	}
	return false
}

func prefixMatches(ch Characteristics, required []string) bool {
	for _, p := range required {
		if strings.HasPrefix(ch.Raw, p) {
			return true
		}
	}
	return false
}

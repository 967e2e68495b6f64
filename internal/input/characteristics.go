// Package input turns an opaque string into structured evidence: extracted
// characteristics, non-chain-aware possibilities, and chain-qualified
// matches against the registry.
package input

import (
	"strings"

	"github.com/whichchain/whichchain/internal/chain"
	"github.com/whichchain/whichchain/internal/checksum"
	"github.com/whichchain/whichchain/internal/encoding"
)

// EntropyClass is a soft signal describing how structured the input looks.
type EntropyClass int

// Entropy classes.
const (
	EntropyLow EntropyClass = iota
	EntropyMedium
	EntropyHigh
)

// String returns the class name.
func (e EntropyClass) String() string {
	switch e {
	case EntropyLow:
		return "low"
	case EntropyMedium:
		return "medium"
	default:
		return "high"
	}
}

// Characteristics is the structured feature set extracted from a raw input
// string. Encodings holds every encoding the string is structurally
// compatible with; downstream logic must iterate it, never assume one.
type Characteristics struct {
	Raw        string
	Length     int
	CharSet    chain.CharSet
	Prefixes   []string
	HRP        string
	Encodings  []chain.EncodingType
	Normalized string
	Entropy    EntropyClass
}

// HasEncoding reports whether the input is compatible with enc.
func (c Characteristics) HasEncoding(enc chain.EncodingType) bool {
	for _, e := range c.Encodings {
		if e == enc {
			return true
		}
	}
	return false
}

// Extract derives the characteristics of a raw input string. Bech32 runs
// first because its separator makes it self-describing and yields the HRP;
// the remaining encodings are collected, not short-circuited.
func Extract(raw string) Characteristics {
	ch := Characteristics{
		Raw:        raw,
		Length:     len(raw),
		Normalized: strings.ToLower(raw),
	}

	lower := ch.Normalized
	if hrp, ok := encoding.HasBech32Shape(lower); ok {
		ch.HRP = hrp
		if _, _, variant, err := encoding.DecodeBech32(lower); err == nil {
			if variant == encoding.VariantBech32m {
				ch.Encodings = append(ch.Encodings, chain.EncodingBech32m)
			} else {
				ch.Encodings = append(ch.Encodings, chain.EncodingBech32)
			}
		}
	}

	if encoding.IsHex(raw) {
		ch.Encodings = append(ch.Encodings, chain.EncodingHex)
	}

	if encoding.IsBase58(raw) {
		claimed := false
		if decoded, err := encoding.DecodeBase58(raw); err == nil {
			if _, _, ok := checksum.SplitBase58CheckFrame(decoded); ok {
				ch.Encodings = append(ch.Encodings, chain.EncodingBase58Check)
				claimed = true
			}
			if ch.Length >= 35 && ch.Length <= 48 && len(decoded) >= 35 && len(decoded) <= 36 {
				ch.Encodings = append(ch.Encodings, chain.EncodingSS58)
				claimed = true
			}
		}
		// Plain Base58 only when neither checked form claimed the input,
		// to avoid redundant signals.
		if !claimed {
			ch.Encodings = append(ch.Encodings, chain.EncodingBase58)
		}
	}

	ch.CharSet = detectCharSet(raw, ch.Encodings)
	ch.Prefixes = extractPrefixes(raw)
	ch.Entropy = entropyClass(raw, ch.Encodings)
	return ch
}

func detectCharSet(raw string, encs []chain.EncodingType) chain.CharSet {
	for _, e := range encs {
		switch e {
		case chain.EncodingHex:
			return chain.CharSetHex
		case chain.EncodingBech32, chain.EncodingBech32m:
			return chain.CharSetBase32
		case chain.EncodingBase58, chain.EncodingBase58Check, chain.EncodingSS58:
			return chain.CharSetBase58
		}
	}
	switch {
	case encoding.IsHex(raw):
		return chain.CharSetHex
	case encoding.IsBase58(raw):
		return chain.CharSetBase58
	default:
		return chain.CharSetAlphanumeric
	}
}

// extractPrefixes collects the 1 to 3 leading characters, plus "0x" when
// present, as plausible format prefixes.
func extractPrefixes(raw string) []string {
	var prefixes []string
	for n := 1; n <= 3 && n <= len(raw); n++ {
		prefixes = append(prefixes, raw[:n])
	}
	if strings.HasPrefix(raw, "0x") && len(raw) > 3 {
		// Already covered by the two-character slice, kept explicit so
		// metadata prefix lookups always find it.
		found := false
		for _, p := range prefixes {
			if p == "0x" {
				found = true
			}
		}
		if !found {
			prefixes = append(prefixes, "0x")
		}
	}
	return prefixes
}

func entropyClass(raw string, encs []chain.EncodingType) EntropyClass {
	for _, e := range encs {
		switch e {
		case chain.EncodingHex:
			if strings.HasPrefix(raw, "0x") {
				return EntropyLow
			}
		case chain.EncodingBech32, chain.EncodingBech32m:
			return EntropyLow
		case chain.EncodingBase58Check, chain.EncodingSS58, chain.EncodingBase58:
			return EntropyMedium
		}
	}
	return EntropyHigh
}

// Package detect performs the final per-match validation step: checksum
// verification, canonical normalization, confidence scoring, and a short
// reasoning string for every surviving candidate.
package detect

import (
	"fmt"
	"strings"

	"github.com/whichchain/whichchain/internal/chain"
	"github.com/whichchain/whichchain/internal/checksum"
	"github.com/whichchain/whichchain/internal/encoding"
	"github.com/whichchain/whichchain/internal/input"
	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

// Confidence scoring weights. Base applies to every accepted address; the
// boosts stack and the total is capped at 1.0.
const (
	baseConfidence    = 0.5
	checksumBoost     = 0.3
	versionOrHRPBoost = 0.1
	exactLengthBoost  = 0.05
	derivedConfidence = 0.8
)

// Result is one validated candidate: the chain, the encoding the input
// satisfied, its canonical form, and the evidence that supports it.
type Result struct {
	ChainID    string
	ChainName  string
	Encoding   chain.EncodingType
	Normalized string
	Confidence float64
	Reasoning  string
}

// Address validates the checksum of a matched address format, normalizes
// the input, and scores the candidate. A failed checksum rejects only this
// candidate, not the whole identification call.
func Address(raw string, m input.Match) (Result, error) {
	f := m.Format

	checksumValid, err := verifyChecksum(raw, f)
	if err != nil {
		return Result{}, err
	}

	return Result{
		ChainID:    m.ChainID,
		ChainName:  m.ChainName,
		Encoding:   f.Encoding,
		Normalized: normalize(raw, f),
		Confidence: score(checksumValid, f),
		Reasoning:  reasoning(checksumValid, f),
	}, nil
}

// verifyChecksum distinguishes a checksum that is present and correct (the
// confidence boost applies) from one that is absent or unverifiable (the
// candidate survives without the boost). A checksum that is present and
// WRONG is an error.
func verifyChecksum(raw string, f chain.AddressFormat) (bool, error) {
	switch f.Checksum {
	case chain.ChecksumEIP55:
		body := strings.TrimPrefix(raw, "0x")
		switch checksum.VerifyEIP55(body) {
		case checksum.EIP55Valid:
			return true, nil
		case checksum.EIP55NotChecksummed:
			return false, nil
		default:
			return false, wcerrors.WithDetails(wcerrors.ErrInvalidChecksum, map[string]string{
				"scheme": "eip55",
			})
		}

	case chain.ChecksumBase58Check:
		decoded, err := encoding.DecodeBase58(raw)
		if err != nil {
			return false, wcerrors.Wrap(wcerrors.ErrInvalidChecksum, err)
		}
		if _, _, ok := checksum.SplitBase58CheckFrame(decoded); !ok {
			return false, wcerrors.WithDetails(wcerrors.ErrInvalidChecksum, map[string]string{
				"scheme": "base58check",
			})
		}
		return true, nil

	case chain.ChecksumBech32, chain.ChecksumBech32m:
		_, _, variant, err := encoding.DecodeBech32(strings.ToLower(raw))
		if err != nil {
			return false, wcerrors.Wrap(wcerrors.ErrInvalidChecksum, err)
		}
		if f.Checksum == chain.ChecksumBech32 && variant != encoding.VariantBech32 {
			return false, wcerrors.WithDetails(wcerrors.ErrInvalidChecksum, map[string]string{
				"scheme": "bech32", "variant": "bech32m",
			})
		}
		if f.Checksum == chain.ChecksumBech32m && variant != encoding.VariantBech32m {
			return false, wcerrors.WithDetails(wcerrors.ErrInvalidChecksum, map[string]string{
				"scheme": "bech32m", "variant": "bech32",
			})
		}
		return true, nil

	case chain.ChecksumSS58:
		if _, _, err := encoding.DecodeSS58(raw); err != nil {
			return false, wcerrors.Wrap(wcerrors.ErrInvalidChecksum, err)
		}
		return true, nil

	default:
		// No checksum scheme, nothing to verify and nothing to reward.
		return false, nil
	}
}

// normalize produces the canonical form: hex becomes EIP-55 mixed case,
// bech32 is lower-cased, and the base58 family stays as-is since base58 is
// case-sensitive.
func normalize(raw string, f chain.AddressFormat) string {
	switch f.Encoding {
	case chain.EncodingHex:
		return checksum.EIP55Checksum(strings.TrimPrefix(raw, "0x"))
	case chain.EncodingBech32, chain.EncodingBech32m:
		return strings.ToLower(raw)
	default:
		return raw
	}
}

func score(checksumValid bool, f chain.AddressFormat) float64 {
	confidence := baseConfidence
	if checksumValid {
		confidence += checksumBoost
	}
	if f.RequiresVersionOrHRP() {
		confidence += versionOrHRPBoost
	}
	if f.ExactLength > 0 {
		confidence += exactLengthBoost
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

func reasoning(checksumValid bool, f chain.AddressFormat) string {
	parts := []string{fmt.Sprintf("%s address", f.Encoding)}
	if checksumValid {
		parts = append(parts, "valid checksum")
	}
	switch {
	case len(f.VersionBytes) > 0:
		parts = append(parts, "valid version byte")
	case len(f.HRPs) > 0:
		parts = append(parts, "known hrp")
	case len(f.SS58Prefixes) > 0:
		parts = append(parts, "known network prefix")
	}
	if f.ExactLength > 0 {
		parts = append(parts, "exact length")
	}
	return strings.Join(parts, ", ")
}

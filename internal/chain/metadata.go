// Package chain defines the per-chain format metadata the identification
// pipeline consumes: which encodings, lengths, prefixes, and checksums each
// chain's addresses and public keys use, plus the conversion from raw chain
// configuration records into that metadata.
package chain

import (
	"strings"

	"github.com/whichchain/whichchain/internal/checksum"
	"github.com/whichchain/whichchain/internal/encoding"
)

// EncodingType identifies the string encoding of an address or key format.
type EncodingType string

// Supported encodings.
const (
	EncodingHex         EncodingType = "hex"
	EncodingBase58      EncodingType = "base58"
	EncodingBase58Check EncodingType = "base58check"
	EncodingBech32      EncodingType = "bech32"
	EncodingBech32m     EncodingType = "bech32m"
	EncodingSS58        EncodingType = "ss58"
)

// CharSet identifies the character repertoire of a format.
type CharSet string

// Supported character sets.
const (
	CharSetHex          CharSet = "hex"
	CharSetBase58       CharSet = "base58"
	CharSetBase32       CharSet = "base32"
	CharSetAlphanumeric CharSet = "alphanumeric"
)

// ChecksumType identifies the checksum scheme a format carries.
type ChecksumType string

// Supported checksum schemes.
const (
	ChecksumNone        ChecksumType = "none"
	ChecksumEIP55       ChecksumType = "eip55"
	ChecksumBase58Check ChecksumType = "base58check"
	ChecksumBech32      ChecksumType = "bech32"
	ChecksumBech32m     ChecksumType = "bech32m"
	ChecksumSS58        ChecksumType = "ss58"
)

// KeyType identifies the elliptic curve of a public-key format.
type KeyType string

// Supported curves.
const (
	KeySecp256k1 KeyType = "secp256k1"
	KeyEd25519   KeyType = "ed25519"
	KeySr25519   KeyType = "sr25519"
)

// Network distinguishes mainnet from testnet formats.
type Network string

// Supported networks.
const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

// AddressFormat describes one address format a chain supports. Either
// ExactLength or the MinLength/MaxLength range is set; both may be.
type AddressFormat struct {
	Encoding     EncodingType
	CharSet      CharSet
	ExactLength  int
	MinLength    int
	MaxLength    int
	Prefixes     []string
	HRPs         []string
	VersionBytes []byte
	SS58Prefixes []uint16
	Checksum     ChecksumType
	Network      Network
}

// Metadata is the registry's view of one chain: identifier, display name,
// and the ordered format lists. Immutable once built.
type Metadata struct {
	ID               string
	Name             string
	AddressFormats   []AddressFormat
	PublicKeyFormats []PublicKeyFormat
}

// PublicKeyFormat describes one public-key format a chain accepts.
type PublicKeyFormat struct {
	Encoding    EncodingType
	CharSet     CharSet
	ExactLength int
	MinLength   int
	MaxLength   int
	Prefixes    []string
	HRPs        []string
	KeyType     KeyType
	Checksum    ChecksumType
}

// lengthOK checks the string length against the format's constraints.
// A format with no constraint at all accepts any length.
func lengthOK(n, exact, minLen, maxLen int) bool {
	if exact > 0 && n != exact {
		return false
	}
	if minLen > 0 && n < minLen {
		return false
	}
	if maxLen > 0 && n > maxLen {
		return false
	}
	return true
}

func prefixOK(s string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// RequiresVersionOrHRP reports whether the format constrains the version
// byte, HRP, or SS58 network prefix. Satisfying such a constraint is a
// stronger signal than length and charset alone.
func (f AddressFormat) RequiresVersionOrHRP() bool {
	return len(f.VersionBytes) > 0 || len(f.HRPs) > 0 || len(f.SS58Prefixes) > 0
}

// ValidateRaw reports whether the raw string structurally satisfies this
// format: length and prefix envelope plus a full decode under the format's
// encoding, including any version-byte, HRP, or network-prefix constraint.
// Checksum correctness is checked separately by the detector except where
// the encoding itself cannot be decoded without it.
//
//nolint:gocyclo // one arm per encoding, each trivially linear
func (f AddressFormat) ValidateRaw(raw string) bool {
	if !lengthOK(len(raw), f.ExactLength, f.MinLength, f.MaxLength) {
		return false
	}
	if !prefixOK(raw, f.Prefixes) {
		return false
	}

	switch f.Encoding {
	case EncodingHex:
		if !encoding.IsHex(raw) {
			return false
		}
		if f.Checksum == ChecksumEIP55 {
			body := strings.TrimPrefix(raw, "0x")
			if len(body) != 40 {
				return false
			}
			return checksum.VerifyEIP55(body) != checksum.EIP55Invalid
		}
		return true

	case EncodingBase58:
		return encoding.IsBase58(raw)

	case EncodingBase58Check:
		decoded, err := encoding.DecodeBase58(raw)
		if err != nil {
			return false
		}
		version, _, ok := checksum.SplitBase58CheckFrame(decoded)
		if !ok {
			return false
		}
		return versionOK(version, f.VersionBytes)

	case EncodingBech32, EncodingBech32m:
		hrp, _, variant, err := encoding.DecodeBech32(strings.ToLower(raw))
		if err != nil {
			return false
		}
		if f.Encoding == EncodingBech32 && variant != encoding.VariantBech32 {
			return false
		}
		if f.Encoding == EncodingBech32m && variant != encoding.VariantBech32m {
			return false
		}
		return hrpOK(hrp, f.HRPs)

	case EncodingSS58:
		prefix, _, err := encoding.DecodeSS58(raw)
		if err != nil {
			return false
		}
		return ss58PrefixAllowed(prefix, f.SS58Prefixes)

	default:
		return false
	}
}

func versionOK(version byte, allowed []byte) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, v := range allowed {
		if version == v {
			return true
		}
	}
	return false
}

func hrpOK(hrp string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, h := range allowed {
		if hrp == h {
			return true
		}
	}
	return false
}

func ss58PrefixAllowed(prefix uint16, allowed []uint16) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, p := range allowed {
		if prefix == p {
			return true
		}
	}
	return false
}

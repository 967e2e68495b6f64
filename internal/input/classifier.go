package input

import (
	"strings"

	"github.com/whichchain/whichchain/internal/chain"
	"github.com/whichchain/whichchain/internal/encoding"
	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

// Kind distinguishes the two interpretations of an input.
type Kind int

// Possibility kinds.
const (
	KindAddress Kind = iota
	KindPublicKey
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindPublicKey {
		return "public_key"
	}
	return "address"
}

// Possibility is one non-chain-aware interpretation of the input: it could
// be an address, or a public key on a specific curve. Key possibilities
// retain the decoded bytes for the derivation pipelines.
type Possibility struct {
	Kind     Kind
	KeyType  chain.KeyType
	KeyBytes []byte
	Encoding chain.EncodingType
}

// Classify produces the set of possibilities for an input. Ambiguity is
// preserved: a 32-byte key yields both Ed25519 and sr25519 possibilities
// because they are indistinguishable without chain context. An error is
// returned only when no possibility of either kind exists.
func Classify(raw string, ch Characteristics) ([]Possibility, error) {
	var possibilities []Possibility

	if couldBeAddress(ch) {
		possibilities = append(possibilities, Possibility{Kind: KindAddress})
	}
	possibilities = append(possibilities, keyPossibilities(raw, ch)...)

	if len(possibilities) == 0 {
		return nil, wcerrors.InvalidInput(raw)
	}
	return possibilities, nil
}

// couldBeAddress checks each compatible encoding's structural envelope.
func couldBeAddress(ch Characteristics) bool {
	for _, enc := range ch.Encodings {
		switch enc {
		case chain.EncodingHex:
			if ch.Length == 42 && strings.HasPrefix(ch.Raw, "0x") {
				return true
			}
		case chain.EncodingBase58Check:
			if (ch.Length >= 26 && ch.Length <= 34) || (ch.Length >= 35 && ch.Length <= 48) {
				return true
			}
		case chain.EncodingBase58:
			if ch.Length >= 32 && ch.Length <= 44 {
				return true
			}
		case chain.EncodingSS58:
			if ch.Length >= 35 && ch.Length <= 48 {
				return true
			}
		case chain.EncodingBech32, chain.EncodingBech32m:
			if ch.HRP != "" && ch.Length >= 14 && ch.Length <= 90 {
				return true
			}
		}
	}
	return false
}

// keyPossibilities decodes the input under each compatible encoding and
// checks the decoded byte length against the known curve envelopes.
func keyPossibilities(raw string, ch Characteristics) []Possibility {
	var possibilities []Possibility

	for _, enc := range ch.Encodings {
		var decoded []byte
		switch enc {
		case chain.EncodingHex:
			b, err := encoding.DecodeHex(raw)
			if err != nil {
				continue
			}
			decoded = b
		case chain.EncodingBase58:
			b, err := encoding.DecodeBase58(raw)
			if err != nil {
				continue
			}
			decoded = b
		default:
			continue
		}

		switch {
		case len(decoded) == 32:
			// Ed25519 and sr25519 keys are indistinguishable by bytes.
			possibilities = append(possibilities,
				Possibility{Kind: KindPublicKey, KeyType: chain.KeyEd25519, KeyBytes: decoded, Encoding: enc},
				Possibility{Kind: KindPublicKey, KeyType: chain.KeySr25519, KeyBytes: decoded, Encoding: enc},
			)
		case len(decoded) == 33 && (decoded[0] == 0x02 || decoded[0] == 0x03):
			possibilities = append(possibilities,
				Possibility{Kind: KindPublicKey, KeyType: chain.KeySecp256k1, KeyBytes: decoded, Encoding: enc})
		case len(decoded) == 65 && decoded[0] == 0x04:
			possibilities = append(possibilities,
				Possibility{Kind: KindPublicKey, KeyType: chain.KeySecp256k1, KeyBytes: decoded, Encoding: enc})
		}
	}
	return possibilities
}

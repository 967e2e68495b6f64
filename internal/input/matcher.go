package input

import (
	"github.com/whichchain/whichchain/internal/chain"
	"github.com/whichchain/whichchain/internal/registry"
)

// Match is a chain-qualified pairing of the input with one of the chain's
// formats. Address matches carry the format; public-key matches carry the
// possibility whose curve the chain accepts.
type Match struct {
	ChainID     string
	ChainName   string
	Kind        Kind
	Format      chain.AddressFormat
	Possibility Possibility
}

// MatchChains intersects the classifier's possibilities with the registry's
// format descriptors. For addresses, a format must both signature-match the
// characteristics and structurally validate the raw string; signature
// matching alone is coarser than true validation. At most one address and
// one public-key match are kept per chain.
func MatchChains(reg *registry.Registry, raw string, ch Characteristics, possibilities []Possibility) []Match {
	hasAddress := false
	var keys []Possibility
	for _, p := range possibilities {
		switch p.Kind {
		case KindAddress:
			hasAddress = true
		case KindPublicKey:
			keys = append(keys, p)
		}
	}

	var matches []Match
	for _, meta := range reg.Chains() {
		if hasAddress {
			if m, ok := addressMatch(meta, raw, ch); ok {
				matches = append(matches, m)
			}
		}
		if len(keys) > 0 {
			if m, ok := keyMatch(reg, meta, keys); ok {
				matches = append(matches, m)
			}
		}
	}
	return matches
}

func addressMatch(meta chain.Metadata, raw string, ch Characteristics) (Match, bool) {
	for _, f := range meta.AddressFormats {
		if !FromAddressFormat(f).Matches(ch) {
			continue
		}
		if !f.ValidateRaw(raw) {
			continue
		}
		return Match{
			ChainID:   meta.ID,
			ChainName: meta.Name,
			Kind:      KindAddress,
			Format:    f,
		}, true
	}
	return Match{}, false
}

// keyMatch pairs the first possibility whose curve one of the chain's
// public-key formats declares. Chains whose canonical address needs a stake
// key cannot derive from a single key and are skipped.
func keyMatch(reg *registry.Registry, meta chain.Metadata, keys []Possibility) (Match, bool) {
	cfg, err := reg.ChainConfig(meta.ID)
	if err != nil || cfg.RequiresStakeKey {
		return Match{}, false
	}
	for _, kf := range meta.PublicKeyFormats {
		for _, p := range keys {
			if p.KeyType != kf.KeyType {
				continue
			}
			return Match{
				ChainID:     meta.ID,
				ChainName:   meta.Name,
				Kind:        KindPublicKey,
				Possibility: p,
			}, true
		}
	}
	return Match{}, false
}

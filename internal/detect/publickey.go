package detect

import (
	"fmt"

	"github.com/whichchain/whichchain/internal/chain"
	"github.com/whichchain/whichchain/internal/derive"
	"github.com/whichchain/whichchain/internal/input"
	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

// PublicKey derives the chain's address from the matched key and round-trip
// validates it against the chain's own address formats. A derived string
// that fails its own chain's validation points at a pipeline defect and is
// discarded rather than surfaced as a false positive.
//
// Derived candidates carry a fixed confidence: derivation plus round-trip
// is a weaker signal than validating an address the user actually supplied.
func PublicKey(m input.Match, cfg chain.Config, meta chain.Metadata) (Result, error) {
	derived, err := derive.Execute(cfg.AddressPipeline, m.Possibility.KeyBytes, cfg.AddressParams)
	if err != nil {
		return Result{}, err
	}

	for _, f := range meta.AddressFormats {
		if !f.ValidateRaw(derived) {
			continue
		}
		return Result{
			ChainID:    m.ChainID,
			ChainName:  m.ChainName,
			Encoding:   f.Encoding,
			Normalized: derived,
			Confidence: derivedConfidence,
			Reasoning: fmt.Sprintf("%s public key, derived %s address revalidates",
				m.Possibility.KeyType, f.Encoding),
		}, nil
	}

	return Result{}, wcerrors.WithDetails(wcerrors.ErrGeneral, map[string]string{
		"chain":   m.ChainID,
		"derived": derived,
		"reason":  "derived address failed the chain's own format validation",
	})
}

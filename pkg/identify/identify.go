// Package identify is the public entry point: given an opaque string, it
// reports every chain the string could plausibly belong to, ranked by
// confidence. Addresses are validated and normalized in place; public keys
// are run through each compatible chain's derivation pipeline and the
// derived address is returned as the candidate's normalized form.
package identify

import (
	"sort"

	"github.com/whichchain/whichchain/internal/chain"
	"github.com/whichchain/whichchain/internal/detect"
	"github.com/whichchain/whichchain/internal/input"
	"github.com/whichchain/whichchain/internal/registry"
	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

// InputType says whether a candidate was matched as an address or derived
// from a public key.
type InputType string

// Candidate input types.
const (
	InputTypeAddress   InputType = "address"
	InputTypePublicKey InputType = "public_key"
)

// Candidate is one plausible chain assignment for the input. Confidence is
// a heuristic in [0,1], not a probability; Reasoning names the evidence.
type Candidate struct {
	InputType  InputType          `json:"input_type"`
	Chain      string             `json:"chain"`
	ChainName  string             `json:"chain_name"`
	Encoding   chain.EncodingType `json:"encoding"`
	Normalized string             `json:"normalized"`
	Confidence float64            `json:"confidence"`
	Reasoning  string             `json:"reasoning"`
}

// Identify classifies raw against the shared registry. See IdentifyWith.
func Identify(raw string) ([]Candidate, error) {
	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	return IdentifyWith(reg, raw)
}

// IdentifyWith runs the full pipeline over one registry: extract
// characteristics, classify, match chains, then validate or derive per
// match. Individual matches may fail validation without aborting the call;
// only an empty final result is an error. The returned candidates are
// sorted by non-increasing confidence, registry order breaking ties.
func IdentifyWith(reg *registry.Registry, raw string) ([]Candidate, error) {
	ch := input.Extract(raw)
	possibilities, err := input.Classify(raw, ch)
	if err != nil {
		return nil, err
	}

	var candidates []Candidate
	for _, m := range input.MatchChains(reg, raw, ch, possibilities) {
		res, kind, err := detectMatch(reg, raw, m)
		if err != nil {
			// A failed checksum or derivation rejects this candidate only.
			continue
		}
		candidates = append(candidates, Candidate{
			InputType:  kind,
			Chain:      res.ChainID,
			ChainName:  res.ChainName,
			Encoding:   res.Encoding,
			Normalized: res.Normalized,
			Confidence: res.Confidence,
			Reasoning:  res.Reasoning,
		})
	}

	if len(candidates) == 0 {
		return nil, wcerrors.InvalidInput(raw)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	return candidates, nil
}

func detectMatch(reg *registry.Registry, raw string, m input.Match) (detect.Result, InputType, error) {
	if m.Kind == input.KindAddress {
		res, err := detect.Address(raw, m)
		return res, InputTypeAddress, err
	}

	cfg, err := reg.ChainConfig(m.ChainID)
	if err != nil {
		return detect.Result{}, InputTypePublicKey, err
	}
	meta, err := reg.Chain(m.ChainID)
	if err != nil {
		return detect.Result{}, InputTypePublicKey, err
	}
	res, err := detect.PublicKey(m, cfg, meta)
	return res, InputTypePublicKey, err
}

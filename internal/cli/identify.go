package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"
	sanitize "github.com/mrz1836/go-sanitize"
	"github.com/spf13/cobra"

	"github.com/whichchain/whichchain/internal/output"
	wcerrors "github.com/whichchain/whichchain/pkg/errors"
	"github.com/whichchain/whichchain/pkg/identify"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
var (
	identifyChain         string
	identifyMinConfidence float64
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
var identifyCmd = &cobra.Command{
	Use:   "identify <input>",
	Short: "Identify which chains an address or public key could belong to",
	Long: `Identify classifies the input string and prints every plausible chain,
ranked by confidence. Use --chain to keep only one chain's candidates and
--min-confidence to drop weak ones.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		raw := strings.TrimSpace(sanitize.SingleLine(args[0]))

		if identifyChain != "" {
			if _, err := reg.Chain(identifyChain); err != nil {
				return unknownChainError(identifyChain)
			}
		}

		candidates, err := identify.IdentifyWith(reg, raw)
		if err != nil {
			return err
		}

		filtered := candidates[:0]
		for _, c := range candidates {
			if identifyChain != "" && c.Chain != identifyChain {
				continue
			}
			if c.Confidence < identifyMinConfidence {
				continue
			}
			filtered = append(filtered, c)
		}
		if len(filtered) == 0 {
			return wcerrors.InvalidInput(raw)
		}

		logger.Debug("identify: %d candidate(s) for %q", len(filtered), raw)
		return output.FormatCandidates(formatter, raw, filtered)
	},
}

// unknownChainError builds an ErrUnknownChain carrying the closest known
// chain id as a suggestion.
func unknownChainError(id string) error {
	err := wcerrors.WithDetails(wcerrors.ErrUnknownChain, map[string]string{"chain": id})
	if closest := closestChainID(id); closest != "" {
		err = wcerrors.WithSuggestion(err, "did you mean "+closest+"?")
	}
	return err
}

// closestChainID returns the registry id nearest to the given string, or ""
// when nothing is plausibly close.
func closestChainID(id string) string {
	best := ""
	bestDistance := 4 // further than this is not a typo
	for _, known := range reg.ChainIDs() {
		if d := levenshtein.ComputeDistance(strings.ToLower(id), known); d < bestDistance {
			best = known
			bestDistance = d
		}
	}
	return best
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	identifyCmd.Flags().StringVar(&identifyChain, "chain", "", "only report candidates for this chain id")
	identifyCmd.Flags().Float64Var(&identifyMinConfidence, "min-confidence", 0, "drop candidates below this confidence")
	rootCmd.AddCommand(identifyCmd)
}

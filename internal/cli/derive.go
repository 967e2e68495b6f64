package cli

import (
	"encoding/hex"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whichchain/whichchain/internal/derive"
	"github.com/whichchain/whichchain/internal/encoding"
	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
var (
	derivePipeline string
	deriveChain    string
	deriveHRP      string
	deriveVersion  string
	derivePrefix   string
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
var deriveCmd = &cobra.Command{
	Use:   "derive <key>",
	Short: "Derive an address from a public key",
	Long: `Derive runs one derivation pipeline over a public key (hex or base58)
and prints the resulting address. Name the pipeline directly with --pipeline,
or name a chain with --chain to use its configured pipeline and parameters.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		key, err := decodeKey(strings.TrimSpace(args[0]))
		if err != nil {
			return err
		}

		pipelineID, params, err := derivePlan()
		if err != nil {
			return err
		}

		address, err := derive.Execute(pipelineID, key, params)
		if err != nil {
			return err
		}

		logger.Debug("derive: pipeline %s produced %s", pipelineID, address)
		if formatter.IsJSON() {
			return formatter.Print(map[string]string{
				"pipeline": pipelineID,
				"address":  address,
			})
		}
		return formatter.Println(address)
	},
}

// decodeKey accepts a hex key (with or without 0x) or a base58 key.
func decodeKey(raw string) ([]byte, error) {
	if key, err := hex.DecodeString(strings.TrimPrefix(raw, "0x")); err == nil {
		return key, nil
	}
	if key, err := encoding.DecodeBase58(raw); err == nil {
		return key, nil
	}
	return nil, wcerrors.WithDetails(wcerrors.ErrInvalidKey, map[string]string{
		"key": raw,
	})
}

// derivePlan resolves the pipeline id and parameters from flags. --chain
// takes the chain's registry configuration; explicit flags override it.
func derivePlan() (string, map[string]string, error) {
	params := map[string]string{}
	pipelineID := derivePipeline

	if deriveChain != "" {
		chainCfg, err := reg.ChainConfig(deriveChain)
		if err != nil {
			return "", nil, unknownChainError(deriveChain)
		}
		pipelineID = chainCfg.AddressPipeline
		for k, v := range chainCfg.AddressParams {
			params[k] = v
		}
	}

	if pipelineID == "" {
		return "", nil, wcerrors.WithSuggestion(wcerrors.ErrUnknownPipeline,
			"pass --pipeline or --chain")
	}
	if !reg.KnownPipeline(pipelineID) {
		return "", nil, wcerrors.WithDetails(wcerrors.ErrUnknownPipeline, map[string]string{
			"pipeline": pipelineID,
		})
	}

	if deriveHRP != "" {
		params["hrp"] = deriveHRP
	}
	if deriveVersion != "" {
		params["version"] = deriveVersion
	}
	if derivePrefix != "" {
		params["ss58_prefix"] = derivePrefix
	}
	return pipelineID, params, nil
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	deriveCmd.Flags().StringVar(&derivePipeline, "pipeline", "", "derivation pipeline id (evm, bitcoin_p2pkh, ...)")
	deriveCmd.Flags().StringVar(&deriveChain, "chain", "", "use this chain's pipeline and parameters")
	deriveCmd.Flags().StringVar(&deriveHRP, "hrp", "", "bech32 human-readable part override")
	deriveCmd.Flags().StringVar(&deriveVersion, "version", "", "base58check version byte override")
	deriveCmd.Flags().StringVar(&derivePrefix, "ss58-prefix", "", "ss58 network prefix override")
	rootCmd.AddCommand(deriveCmd)
}

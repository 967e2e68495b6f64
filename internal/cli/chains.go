package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whichchain/whichchain/internal/chain"
	"github.com/whichchain/whichchain/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "Inspect the chain registry",
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
var chainsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all known chains",
	RunE: func(_ *cobra.Command, _ []string) error {
		configs := make([]chain.Config, 0, len(reg.ChainIDs()))
		for _, id := range reg.ChainIDs() {
			chainCfg, err := reg.ChainConfig(id)
			if err != nil {
				return err
			}
			configs = append(configs, chainCfg)
		}

		if formatter.IsJSON() {
			return formatter.Print(map[string]any{"chains": configs})
		}

		table := output.NewTable("ID", "NAME", "CURVE", "PIPELINE")
		for _, c := range configs {
			table.AddRow(c.ID, c.Name, c.Curve, c.AddressPipeline)
		}
		return table.Render(formatter.Writer())
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
var chainsShowCmd = &cobra.Command{
	Use:   "show <chain-id>",
	Short: "Show one chain's formats and derivation configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id := strings.ToLower(strings.TrimSpace(args[0]))
		meta, err := reg.Chain(id)
		if err != nil {
			return unknownChainError(id)
		}
		chainCfg, err := reg.ChainConfig(id)
		if err != nil {
			return err
		}

		if formatter.IsJSON() {
			return formatter.Print(map[string]any{
				"config":   chainCfg,
				"metadata": meta,
			})
		}

		if err := formatter.Printf("%s (%s)\n", meta.Name, meta.ID); err != nil {
			return err
		}
		if err := formatter.Printf("curve: %s  pipeline: %s\n\n", chainCfg.Curve, chainCfg.AddressPipeline); err != nil {
			return err
		}

		table := output.NewTable("ENCODING", "LENGTH", "CHECKSUM", "CONSTRAINTS")
		for _, f := range meta.AddressFormats {
			table.AddRow(string(f.Encoding), lengthColumn(f), string(f.Checksum), constraintColumn(f))
		}
		return table.Render(formatter.Writer())
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
var chainsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Cross-check chain definitions against the curve catalog",
	Long: `Validate confirms that every chain's pipeline is compatible with its
declared curve and reports definitions the registry skipped at load time.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		type problem struct {
			Chain  string `json:"chain"`
			Reason string `json:"reason"`
		}
		var problems []problem

		for _, id := range reg.Skipped() {
			problems = append(problems, problem{Chain: id, Reason: "definition failed to load"})
		}
		for _, id := range reg.ChainIDs() {
			chainCfg, err := reg.ChainConfig(id)
			if err != nil {
				continue
			}
			curve, ok := reg.Curve(chainCfg.Curve)
			if !ok {
				problems = append(problems, problem{Chain: id, Reason: "unknown curve " + chainCfg.Curve})
				continue
			}
			if !curveAllowsPipeline(curve, chainCfg.AddressPipeline) {
				problems = append(problems, problem{
					Chain:  id,
					Reason: fmt.Sprintf("curve %s cannot feed pipeline %s", chainCfg.Curve, chainCfg.AddressPipeline),
				})
			}
		}

		if formatter.IsJSON() {
			return formatter.Print(map[string]any{
				"chains":   len(reg.ChainIDs()),
				"problems": problems,
			})
		}
		if len(problems) == 0 {
			return formatter.Printf("%d chains, no problems\n", len(reg.ChainIDs()))
		}
		for _, p := range problems {
			output.Warnf("%s: %s", p.Chain, p.Reason)
		}
		return formatter.Printf("%d chains, %d problem(s)\n", len(reg.ChainIDs()), len(problems))
	},
}

// curveAllowsPipeline reports whether the curve's compatibility list names
// the pipeline. secp256k1 has no list: it feeds the hash-based pipelines
// and restricting it would reject the default definitions.
func curveAllowsPipeline(curve chain.CurveConfig, pipelineID string) bool {
	if len(curve.CompatiblePipelines) == 0 {
		return true
	}
	for _, p := range curve.CompatiblePipelines {
		if p == pipelineID {
			return true
		}
	}
	return false
}

func lengthColumn(f chain.AddressFormat) string {
	if f.ExactLength > 0 {
		return fmt.Sprintf("%d", f.ExactLength)
	}
	return fmt.Sprintf("%d-%d", f.MinLength, f.MaxLength)
}

func constraintColumn(f chain.AddressFormat) string {
	switch {
	case len(f.HRPs) > 0:
		return "hrp " + strings.Join(f.HRPs, ",")
	case len(f.VersionBytes) > 0:
		parts := make([]string, len(f.VersionBytes))
		for i, v := range f.VersionBytes {
			parts[i] = fmt.Sprintf("0x%02x", v)
		}
		return "version " + strings.Join(parts, ",")
	case len(f.SS58Prefixes) > 0:
		parts := make([]string, len(f.SS58Prefixes))
		for i, p := range f.SS58Prefixes {
			parts[i] = fmt.Sprintf("%d", p)
		}
		return "prefix " + strings.Join(parts, ",")
	case len(f.Prefixes) > 0:
		return "starts " + strings.Join(f.Prefixes, ",")
	default:
		return "-"
	}
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	chainsCmd.AddCommand(chainsListCmd)
	chainsCmd.AddCommand(chainsShowCmd)
	chainsCmd.AddCommand(chainsValidateCmd)
	rootCmd.AddCommand(chainsCmd)
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/whichchain/whichchain/internal/version"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(_ *cobra.Command, _ []string) error {
		info := version.Get()
		if formatter.IsJSON() {
			return formatter.Print(info)
		}
		return formatter.Println(info.String())
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(versionCmd)
}

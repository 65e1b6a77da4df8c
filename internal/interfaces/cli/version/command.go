package version

import (
	"fmt"

	"github.com/spf13/cobra"

	appversion "github.com/GraziArcH/domain-sales/internal/shared/version"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := appversion.Describe(appversion.Current)
			if info.Release {
				fmt.Fprintf(cmd.OutOrStdout(), "domainsales %s (major %s)\n", info.Version, info.Major)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "domainsales %s (development build)\n", info.Version)
			return nil
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
)

// RootCmd assembles the rental command tree.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rental",
		Short:         "House Rental Management System",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("data-dir", "", "Directory holding the data files (defaults to RENTAL_DATA_DIR or .)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		HouseCmd(),
		TenantCmd(),
		BookCmd(),
		PayCmd(),
		DueCmd(),
		AgreementCmd(),
	)
	return rootCmd
}

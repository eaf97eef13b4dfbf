package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ragultv/HouseRentalManagement/rental"
)

func TenantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Manage tenants",
	}
	cmd.AddCommand(tenantRegisterCmd(), tenantMatchCmd(), tenantListCmd())
	return cmd
}

func tenantRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register [id] [name] [contact] [preferred-location]",
		Short: "Register a tenant",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(cmd, func(m *rental.Manager) error {
				if err := m.RegisterTenant(args[0], args[1], args[2], args[3]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Tenant registered.")
				return nil
			})
		},
	}
}

func tenantMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match [tenant-id]",
		Short: "List available houses in the tenant's preferred location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(cmd, func(m *rental.Manager) error {
				houses, err := m.MatchTenantWithHouses(args[0])
				if err != nil {
					return err
				}
				printHouses(cmd, houses)
				return nil
			})
		},
	}
}

func tenantListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(cmd, func(m *rental.Manager) error {
				out := cmd.OutOrStdout()
				tenants := m.Tenants()
				if len(tenants) == 0 {
					fmt.Fprintln(out, "No tenants registered.")
					return nil
				}
				fmt.Fprintf(out, "%-10s  %-20s  %-20s  %-20s\n", "ID", "Name", "Contact", "Preferred Location")
				for _, t := range tenants {
					fmt.Fprintf(out, "%-10s  %-20s  %-20s  %-20s\n", t.ID, t.Name, t.Contact, t.PreferredLocation)
				}
				return nil
			})
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ragultv/HouseRentalManagement/rental"
)

func HouseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "house",
		Short: "Manage rental houses",
	}
	cmd.AddCommand(houseAddCmd(), houseRemoveCmd(), houseSearchCmd(), houseListCmd())
	return cmd
}

func houseAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [id] [location] [price] [bedrooms] [owner]",
		Short: "Add a house",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parseAmount("price", args[2])
			if err != nil {
				return err
			}
			bedrooms, err := parseCount("bedrooms", args[3])
			if err != nil {
				return err
			}

			return withManager(cmd, func(m *rental.Manager) error {
				if err := m.AddHouse(args[0], args[1], price, bedrooms, args[4]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "House added.")
				return nil
			})
		},
	}
}

func houseRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove an unbooked house",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(cmd, func(m *rental.Manager) error {
				if err := m.RemoveHouse(args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "House removed.")
				return nil
			})
		},
	}
}

func houseSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [location] [max-price]",
		Short: "Search available houses by location and maximum price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxPrice, err := parseAmount("max price", args[1])
			if err != nil {
				return err
			}
			return withManager(cmd, func(m *rental.Manager) error {
				printHouses(cmd, m.SearchHouses(args[0], maxPrice))
				return nil
			})
		},
	}
}

func houseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every house",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(cmd, func(m *rental.Manager) error {
				printHouses(cmd, m.Houses())
				return nil
			})
		},
	}
}

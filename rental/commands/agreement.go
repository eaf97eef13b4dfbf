package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ragultv/HouseRentalManagement/rental"
)

func BookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "book [house-id] [tenant-id] [start] [end] [deposit]",
		Short: "Book a house for a tenant",
		Long:  `Creates a rental agreement between the house and the tenant and marks the house as booked. Dates use the yyyy-MM-dd format.`,
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDate("start date", args[2])
			if err != nil {
				return err
			}
			end, err := parseDate("end date", args[3])
			if err != nil {
				return err
			}
			deposit, err := parseAmount("deposit", args[4])
			if err != nil {
				return err
			}

			return withManager(cmd, func(m *rental.Manager) error {
				agreement, err := m.BookHouse(args[0], args[1], start, end, deposit)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "House booked. Agreement ID: %s\n", agreement.ID)
				return nil
			})
		},
	}
}

func PayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay [agreement-id] [date] [amount]",
		Short: "Record a rent payment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate("date", args[1])
			if err != nil {
				return err
			}
			amount, err := parseAmount("amount", args[2])
			if err != nil {
				return err
			}

			return withManager(cmd, func(m *rental.Manager) error {
				if err := m.RecordPayment(args[0], date, amount); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Payment recorded.")
				return nil
			})
		},
	}
}

func DueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "due [agreement-id]",
		Short: "Check the next due date of an agreement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := rental.Date(time.Now())
			if s, _ := cmd.Flags().GetString("today"); s != "" {
				d, err := parseDate("today", s)
				if err != nil {
					return err
				}
				today = d
			}

			return withManager(cmd, func(m *rental.Manager) error {
				status, err := m.CheckDueDate(args[0], today)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Next due date for agreement %s: %s\n", status.AgreementID, rental.FormatDate(status.NextDueDate))
				if status.Overdue {
					fmt.Fprintln(out, "Payment is overdue!")
				} else {
					fmt.Fprintln(out, "Payment is not yet due.")
				}
				return nil
			})
		},
	}

	cmd.Flags().String("today", "", "Date to check against (yyyy-MM-dd, defaults to the current date)")

	return cmd
}

func AgreementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agreement",
		Short: "Inspect rental agreements",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every agreement with its payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(cmd, func(m *rental.Manager) error {
				out := cmd.OutOrStdout()
				agreements := m.Agreements()
				if len(agreements) == 0 {
					fmt.Fprintln(out, "No agreements yet.")
					return nil
				}
				fmt.Fprintf(out, "%-8s  %-10s  %-10s  %-10s  %-10s  %12s  %-8s  %-10s\n",
					"ID", "House", "Tenant", "Start", "End", "Deposit", "Payments", "Next Due")
				for _, a := range agreements {
					fmt.Fprintf(out, "%-8s  %-10s  %-10s  %-10s  %-10s  %12.2f  %-8d  %-10s\n",
						a.ID, a.HouseID, a.TenantID,
						rental.FormatDate(a.StartDate), rental.FormatDate(a.EndDate),
						a.Deposit, len(a.Payments), rental.FormatDate(a.NextDueDate()))
				}
				return nil
			})
		},
	})
	return cmd
}

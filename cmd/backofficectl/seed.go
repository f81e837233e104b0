package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func SeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load tenants, leases and payments from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.close()

			sum, err := e.seed(ctx, file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-18s %d\n", "tenants", sum.Tenants)
			fmt.Fprintf(out, "%-18s %d\n", "leases", sum.Leases)
			fmt.Fprintf(out, "%-18s %d imported, %d duplicate, %d rejected\n", "bank transactions", sum.BankImported, sum.BankDuplicates, sum.BankRejected)
			fmt.Fprintf(out, "%-18s %d\n", "manual payments", sum.ManualPayments)
			fmt.Fprintf(out, "%-18s %d\n", "deposits", sum.Deposits)
			fmt.Fprintf(out, "%-18s %d\n", "utility charges", sum.UtilityCharges)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "fixture file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

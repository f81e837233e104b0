package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/SscSPs/property_backoffice/internal/dto"
	"github.com/SscSPs/property_backoffice/internal/export"
)

func StatementCmd() *cobra.Command {
	var (
		tenantID        string
		from, to        string
		format          string
		output          string
		fixtureFile     string
		includeDeposits bool
	)
	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print or export a tenant ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := domain.ParseWindow(from, to)
			if err != nil {
				return err
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.close()

			// With the memory driver this is the only way to get data in.
			if fixtureFile != "" {
				if _, err := e.seed(ctx, fixtureFile); err != nil {
					return err
				}
			}

			report, err := e.services.Reporting.TenantLedger(ctx, tenantID, window, domain.LedgerOptions{IncludeDeposits: includeDeposits})
			if err != nil {
				return err
			}

			var data []byte
			if f == export.FormatJSON {
				data, err = json.MarshalIndent(dto.ToStatementResponse(report), "", "  ")
				data = append(data, '\n')
			} else {
				data, err = export.Render(f, export.StatementTable("Tenant Ledger", report.Statement), export.Options{CurrencySymbol: e.cfg.CurrencySymbol})
			}
			if err != nil {
				return fmt.Errorf("failed to render statement: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}
	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant id")
	cmd.Flags().StringVar(&from, "from", "", "window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "window end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&format, "format", "json", "json, csv, pdf or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().StringVar(&fixtureFile, "fixtures", "", "seed from this YAML file first")
	cmd.Flags().BoolVar(&includeDeposits, "include-deposits", false, "net security deposits as payments")
	for _, name := range []string{"tenant", "from", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) (err error) {
	if path == "" {
		_, err = w.Write(data)
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	_, err = file.Write(data)
	return err
}

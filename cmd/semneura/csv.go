package main

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/semneura/semneura/internal/csvio"
	"github.com/semneura/semneura/internal/ledger"
	"github.com/semneura/semneura/internal/model"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export profile data",
	}
	cmd.AddCommand(exportCSVCmd())
	return cmd
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import profile data",
	}
	cmd.AddCommand(importCSVCmd())
	return cmd
}

func exportCSVCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export transactions to CSV",
		Long: `Write the active profile's transactions to a CSV file readable by
spreadsheet applications. Exporting an empty profile is refused.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			txns, err := svc.Transactions(ctx, ledger.Filter{})
			if err != nil {
				return err
			}

			if output == "" {
				output = csvio.ExportFileName(time.Now())
			}
			if err := csvio.WriteFile(output, txns); err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			fmt.Println(styles.Success.Render(fmt.Sprintf("✓ %d lançamentos exportados para %s",
				len(txns), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default sem_neura_backup_<date>.csv)")

	return cmd
}

func importCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "csv <file>",
		Short: "Import transactions from CSV",
		Long: `Merge transactions from a CSV file into the active profile. Rows
missing a description or a parseable amount are skipped; existing
transactions are kept and colliding IDs are regenerated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			txns, stats, err := csvio.ReadFile(args[0])
			if err != nil {
				return err
			}

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			bar := progressbar.NewOptions(len(txns),
				progressbar.OptionSetDescription("Importando lançamentos"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			merged := 0
			for _, t := range txns {
				n, err := svc.ImportMerge(ctx, []model.Transaction{t})
				if err != nil {
					return err
				}
				merged += n
				_ = bar.Add(1)
			}

			styles := profileStyles(ctx, store, svc.Profile())
			fmt.Println(styles.Success.Render(fmt.Sprintf("✓ %d lançamentos importados", merged)))
			if stats.Skipped > 0 {
				fmt.Println(styles.Warning.Render(fmt.Sprintf("⚠ %d linhas ignoradas", stats.Skipped)))
			}
			return nil
		},
	}
}

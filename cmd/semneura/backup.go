package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/semneura/semneura/internal/backup"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create or restore full JSON backups",
		Long: `A full backup captures every profile with all of its data in a single
JSON document. Restoring replaces the entire database with the backup's
contents.`,
	}

	cmd.AddCommand(backupCreateCmd())
	cmd.AddCommand(backupRestoreCmd())

	return cmd
}

func backupCreateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write a full backup file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if output == "" {
				output = backup.FileName(time.Now())
			}
			if err := backup.WriteFile(ctx, store, output); err != nil {
				return err
			}

			fmt.Printf("✓ Backup completo salvo em %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default sem_neura_FULL_BACKUP_<date>.json)")

	return cmd
}

func backupRestoreCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore <file.json>",
		Short: "Replace all data with a backup file",
		Long: `Validate the backup document and, if it is well formed, replace every
profile and setting with its contents. A rejected document leaves the
database untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !yes {
				return fmt.Errorf("restaurar substitui todos os dados atuais; confirme com --yes")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := backup.RestoreFile(ctx, store, args[0]); err != nil {
				return err
			}

			fmt.Println("✓ Backup restaurado")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

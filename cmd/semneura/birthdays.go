package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func birthdayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "birthday",
		Aliases: []string{"bday"},
		Short:   "Manage birthdays",
	}

	cmd.AddCommand(birthdayAddCmd())
	cmd.AddCommand(birthdayListCmd())
	cmd.AddCommand(birthdayRmCmd())

	return cmd
}

func birthdayAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <date>",
		Short: "Add a birthday",
		Long:  `Record a birthday. The date is YYYY-MM-DD; when the year is unknown, any placeholder year works.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			b, err := svc.AddBirthday(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Aniversário de %s registrado (%s)", b.Name, b.ID)))
			return nil
		},
	}
}

func birthdayListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List birthdays",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			birthdays, err := svc.Birthdays(ctx)
			if err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			if len(birthdays) == 0 {
				fmt.Println(styles.Subtle.Render("Nenhum aniversário registrado."))
				return nil
			}

			for _, b := range birthdays {
				fmt.Printf("%s  %s  %s\n", b.ID, b.Date, b.Name)
			}
			return nil
		},
	}
}

func birthdayRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a birthday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := svc.DeleteBirthday(ctx, args[0]); err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			fmt.Println(styles.Success.Render("✓ Aniversário removido"))
			return nil
		},
	}
}

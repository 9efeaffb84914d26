package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semneura/semneura/internal/profile"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage profiles",
		Long: `Profiles keep completely separate books: transactions, reminders,
birthdays, budgets and settings never leak between them.`,
	}

	cmd.AddCommand(profileListCmd())
	cmd.AddCommand(profileCreateCmd())
	cmd.AddCommand(profileSwitchCmd())
	cmd.AddCommand(profileDeleteCmd())

	return cmd
}

func profileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			mgr := profile.NewManager(store)
			names, err := mgr.List(ctx)
			if err != nil {
				return err
			}
			active, err := mgr.Active(ctx)
			if err != nil {
				return err
			}

			styles := profileStyles(ctx, store, active)
			for _, name := range names {
				if name == active {
					fmt.Println(styles.Bold.Render("* " + name))
				} else {
					fmt.Println("  " + name)
				}
			}
			return nil
		},
	}
}

func profileCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := profile.NewManager(store).Create(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Perfil %q criado\n", args[0])
			return nil
		},
	}
}

func profileSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <name>",
		Short: "Switch the active profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := profile.NewManager(store).Switch(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Perfil ativo: %s\n", args[0])
			return nil
		},
	}
}

func profileDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a profile and all its data",
		Long: `Remove a profile and everything it owns. The default profile and the
last remaining profile cannot be deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !yes {
				return fmt.Errorf("excluir um perfil apaga todos os seus dados; confirme com --yes")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := profile.NewManager(store).Delete(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Perfil %q removido\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/semneura/semneura/internal/cli"
	"github.com/semneura/semneura/internal/common"
	"github.com/semneura/semneura/internal/storage"
)

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the profile's color theme",
		Long:  `Each profile keeps its own terminal color theme, persisted alongside its data.`,
	}

	cmd.AddCommand(themeGetCmd())
	cmd.AddCommand(themeSetCmd())

	return cmd
}

func themeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current theme and available palettes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			current, err := store.GetSetting(ctx, svc.Profile(), storage.CollectionTheme)
			if err != nil {
				return err
			}
			if current == "" {
				current = cli.DefaultThemeName
			}

			for _, name := range cli.ThemeNames() {
				theme, _ := cli.LookupTheme(name)
				sample := cli.NewStyles(theme).Success.Render(name)
				if name == current {
					fmt.Printf("* %s\n", sample)
				} else {
					fmt.Printf("  %s\n", sample)
				}
			}
			return nil
		},
	}
}

func themeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name>",
		Short: "Set the profile's theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			name := strings.ToLower(args[0])
			if _, ok := cli.LookupTheme(name); !ok {
				return common.NewUserError(
					fmt.Sprintf("tema %q desconhecido (opções: %s)",
						args[0], strings.Join(cli.ThemeNames(), ", ")),
					common.ErrInvalidConfig)
			}

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SetSetting(ctx, svc.Profile(), storage.CollectionTheme, name); err != nil {
				return err
			}

			fmt.Printf("✓ Tema: %s\n", name)
			return nil
		},
	}
}

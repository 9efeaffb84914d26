package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/semneura/semneura/internal/common"
	"github.com/semneura/semneura/internal/model"
)

func reminderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reminder",
		Aliases: []string{"rem"},
		Short:   "Manage reminders",
	}

	cmd.AddCommand(reminderAddCmd())
	cmd.AddCommand(reminderListCmd())
	cmd.AddCommand(reminderDoneCmd())
	cmd.AddCommand(reminderEditCmd())
	cmd.AddCommand(reminderRmCmd())

	return cmd
}

func parsePriorityFlag(s string) (model.Priority, error) {
	if s == "" {
		return model.PriorityMedium, nil
	}
	p, ok := model.ParsePriority(strings.ToUpper(s))
	if !ok {
		return "", common.NewUserError(
			fmt.Sprintf("prioridade %q desconhecida (use LOW, MEDIUM ou HIGH)", s),
			common.ErrInvalidConfig)
	}
	return p, nil
}

func reminderAddCmd() *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a reminder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := parsePriorityFlag(priority)
			if err != nil {
				return err
			}

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			text := ""
			if len(args) > 0 {
				text = args[0]
			}

			rem, err := svc.AddReminder(ctx, text, p)
			if err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Lembrete %s criado", rem.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "", "priority (LOW, MEDIUM, HIGH)")

	return cmd
}

func reminderListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			reminders, err := svc.Reminders(ctx)
			if err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			if len(reminders) == 0 {
				fmt.Println(styles.Subtle.Render("Nenhum lembrete."))
				return nil
			}

			for _, r := range reminders {
				mark := "○"
				line := fmt.Sprintf("%s %s [%s] %s", mark, r.ID, r.Priority, r.Text)
				if r.Completed {
					line = styles.Subtle.Render("● " + r.ID + " " + r.Text)
				} else if r.Priority == model.PriorityHigh {
					line = styles.Warning.Render(line)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func reminderDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a reminder's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := svc.ToggleReminder(ctx, args[0]); err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			fmt.Println(styles.Success.Render("✓ Lembrete atualizado"))
			return nil
		},
	}
}

func reminderEditCmd() *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Rewrite a reminder's text and priority",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := parsePriorityFlag(priority)
			if err != nil {
				return err
			}

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := svc.UpdateReminder(ctx, args[0], args[1], p); err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			fmt.Println(styles.Success.Render("✓ Lembrete atualizado"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "", "priority (LOW, MEDIUM, HIGH)")

	return cmd
}

func reminderRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := svc.DeleteReminder(ctx, args[0]); err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			fmt.Println(styles.Success.Render("✓ Lembrete removido"))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/semneura/semneura/internal/common"
	"github.com/semneura/semneura/internal/ledger"
	"github.com/semneura/semneura/internal/model"
)

func addCmd() *cobra.Command {
	var (
		amount   float64
		due      string
		flowType string
		kind     string
		status   string
		method   string
		obs      string
	)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a transaction",
		Long: `Record a payable or receivable entry on the active profile.

The flow type is PAGAR (money out) or RECEBER (money in). Unspecified
fields get sensible defaults: status OPEN, category VARIABLE, payment PIX.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if due == "" {
				due = time.Now().Format(model.DateLayout)
			}

			txn, err := svc.AddTransaction(ctx, ledger.NewTransaction{
				Description:   args[0],
				Amount:        amount,
				DueDate:       due,
				Type:          model.TransactionType(strings.ToUpper(flowType)),
				Status:        model.Status(strings.ToUpper(status)),
				CategoryKind:  model.CategoryKind(strings.ToUpper(kind)),
				PaymentMethod: model.PaymentMethod(strings.ToUpper(method)),
				Observation:   obs,
			})
			if err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Lançamento %s criado: %s %s",
				txn.ID, txn.Description, formatAmountBRL(txn.Amount))))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "amount in BRL")
	cmd.Flags().StringVarP(&due, "due", "d", "", "due date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&flowType, "type", "t", string(model.TypePayable), "flow type (PAGAR, RECEBER)")
	cmd.Flags().StringVarP(&kind, "category", "c", "", "category kind (FIXED, VARIABLE, RECURRING)")
	cmd.Flags().StringVarP(&status, "status", "s", "", "status (OPEN, PAID, SCHEDULED, ...)")
	cmd.Flags().StringVarP(&method, "method", "m", "", "payment method (PIX, BOLETO, CARD, CASH, OTHER)")
	cmd.Flags().StringVarP(&obs, "obs", "o", "", "free-form observation")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func payCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id>",
		Short: "Toggle a transaction between paid and open",
		Long: `Mark an open transaction as PAID, or reopen a paid one.

Any non-paid status (OPEN, SCHEDULED, OVERDUE, ...) becomes PAID.
Toggling a paid transaction always yields OPEN.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			txn, err := svc.TogglePaid(ctx, args[0])
			if err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			if txn.Status == model.StatusPaid {
				fmt.Println(styles.Paid.Render(fmt.Sprintf("✓ %s marcado como pago", txn.Description)))
			} else {
				fmt.Println(styles.Warning.Render(fmt.Sprintf("↺ %s reaberto", txn.Description)))
			}
			return nil
		},
	}
}

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := svc.DeleteTransaction(ctx, args[0]); err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Lançamento %s removido", args[0])))
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	var (
		flowType string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `Display the active profile's transactions, newest first, optionally filtered by flow type or status.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			filter := ledger.Filter{
				Type:   model.TransactionType(strings.ToUpper(flowType)),
				Status: model.Status(strings.ToUpper(status)),
			}
			if flowType != "" {
				if _, ok := model.ParseTransactionType(string(filter.Type)); !ok {
					return common.NewUserError(
						fmt.Sprintf("tipo %q desconhecido", flowType), common.ErrInvalidConfig)
				}
			}
			if status != "" {
				if _, ok := model.ParseStatus(string(filter.Status)); !ok {
					return common.NewUserError(
						fmt.Sprintf("status %q desconhecido", status), common.ErrInvalidConfig)
				}
			}

			txns, err := svc.Transactions(ctx, filter)
			if err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			if len(txns) == 0 {
				fmt.Println(styles.Subtle.Render("Nenhum lançamento encontrado."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				styles.TableHead.Render("ID"),
				styles.TableHead.Render("Descrição"),
				styles.TableHead.Render("Valor"),
				styles.TableHead.Render("Vencimento"),
				styles.TableHead.Render("Tipo"),
				styles.TableHead.Render("Status"))

			for _, t := range txns {
				amount := formatAmountBRL(t.Amount)
				if t.Type == model.TypeReceivable {
					amount = styles.Receivable.Render(amount)
				} else {
					amount = styles.Payable.Render(amount)
				}

				statusCell := string(t.Status)
				if t.Status == model.StatusPaid {
					statusCell = styles.Paid.Render(statusCell)
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID, t.Description, amount, t.DueDate, t.Type, statusCell)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flowType, "type", "t", "", "filter by flow type (PAGAR, RECEBER)")
	cmd.Flags().StringVarP(&status, "status", "s", "", "filter by status")

	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/semneura/semneura/internal/classify"
	"github.com/semneura/semneura/internal/common"
	"github.com/semneura/semneura/internal/ledger"
)

func categoriesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show spending by category",
		Long: `Bucket the profile's payable transactions into spending categories by
keyword and compare each bucket against its monthly budget.`,
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
			budgets, err := store.LoadBudgets(ctx, svc.Profile())
			if err != nil {
				return err
			}

			report := classify.Spend(txns, budgets)

			if asJSON {
				type line struct {
					Name   string  `json:"name"`
					Spent  float64 `json:"spent"`
					Budget float64 `json:"budget"`
					Ratio  float64 `json:"ratio"`
				}
				lines := make([]line, 0, len(report))
				for _, c := range report {
					spent, _ := c.Spent.Float64()
					lines = append(lines, line{c.Name, spent, c.Budget, c.Ratio()})
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(lines)
			}

			styles := profileStyles(ctx, store, svc.Profile())

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				styles.TableHead.Render("Categoria"),
				styles.TableHead.Render("Gasto"),
				styles.TableHead.Render("Orçamento"),
				styles.TableHead.Render("Uso"))

			for _, c := range report {
				usage := fmt.Sprintf("%3.0f%%", c.Ratio()*100)
				if c.OverBudget() {
					usage = styles.Error.Render(usage + " ⚠")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					c.Name, formatBRL(c.Spent), formatAmountBRL(c.Budget), usage)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON")

	return cmd
}

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage category budgets",
	}

	cmd.AddCommand(budgetSetCmd())

	return cmd
}

func budgetSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Override a category's monthly budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			name := knownCategory(args[0])
			if name == "" {
				return common.NewUserError(
					fmt.Sprintf("categoria %q desconhecida (opções: %s)",
						args[0], strings.Join(categoryNames(), ", ")),
					common.ErrInvalidConfig)
			}

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil || amount < 0 {
				return common.NewUserError(
					fmt.Sprintf("valor %q inválido", args[1]), common.ErrInvalidConfig)
			}

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			budgets, err := store.LoadBudgets(ctx, svc.Profile())
			if err != nil {
				return err
			}
			budgets[name] = amount
			if err := store.SaveBudgets(ctx, svc.Profile(), budgets); err != nil {
				return err
			}

			fmt.Printf("✓ Orçamento de %s: %s\n", name, formatAmountBRL(amount))
			return nil
		},
	}
}

// knownCategory matches a category name case-insensitively and returns the
// canonical spelling, or "" when unknown.
func knownCategory(name string) string {
	for _, c := range classify.Categories {
		if strings.EqualFold(c.Name, name) {
			return c.Name
		}
	}
	return ""
}

func categoryNames() []string {
	names := make([]string, 0, len(classify.Categories))
	for _, c := range classify.Categories {
		names = append(names, c.Name)
	}
	return names
}

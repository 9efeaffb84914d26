package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/semneura/semneura/internal/model"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the financial overview",
		Long: `Summarize the active profile: totals to pay and to receive, what is
already settled, the projected balance, plus pending reminders and
upcoming birthdays.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			summary, err := svc.Summarize(ctx)
			if err != nil {
				return err
			}
			reminders, err := svc.Reminders(ctx)
			if err != nil {
				return err
			}
			birthdays, err := svc.Birthdays(ctx)
			if err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())

			fmt.Println(styles.Title.Render(fmt.Sprintf("Perfil: %s", svc.Profile())))

			var b strings.Builder
			fmt.Fprintf(&b, "%s  %s\n",
				styles.Payable.Render("A pagar:   "),
				formatBRL(summary.TotalPayable))
			fmt.Fprintf(&b, "%s  %s\n",
				styles.Receivable.Render("A receber: "),
				formatBRL(summary.TotalReceivable))
			fmt.Fprintf(&b, "%s  %s / %s\n",
				styles.Paid.Render("Pago:      "),
				formatBRL(summary.PaidPayable),
				formatBRL(summary.PaidReceivable))

			balance := formatBRL(summary.ProjectedBalance)
			if summary.ProjectedBalance.IsNegative() {
				balance = styles.Error.Render(balance)
			} else {
				balance = styles.Success.Render(balance)
			}
			fmt.Fprintf(&b, "%s  %s", styles.Bold.Render("Saldo projetado:"), balance)

			fmt.Println(styles.Box.Render(b.String()))
			fmt.Println(styles.Subtle.Render(fmt.Sprintf("%d lançamentos, %d contas em aberto",
				summary.TransactionCount, summary.OpenPayableCount)))

			pending := 0
			for _, r := range reminders {
				if !r.Completed {
					pending++
				}
			}
			if pending > 0 {
				fmt.Println(styles.Warning.Render(fmt.Sprintf("⚑ %d lembretes pendentes", pending)))
			}

			for _, line := range upcomingBirthdays(birthdays, time.Now(), 7) {
				fmt.Println(styles.Subtitle.Render(line))
			}

			return nil
		},
	}
}

// upcomingBirthdays lists birthdays falling within the next `days` days,
// ignoring the (possibly placeholder) year.
func upcomingBirthdays(birthdays []model.Birthday, now time.Time, days int) []string {
	var out []string
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for _, b := range birthdays {
		parsed, err := time.Parse(model.DateLayout, b.Date)
		if err != nil {
			continue
		}

		next := time.Date(today.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		if next.Before(today) {
			next = next.AddDate(1, 0, 0)
		}

		until := int(next.Sub(today).Hours() / 24)
		if until > days {
			continue
		}
		if until == 0 {
			out = append(out, fmt.Sprintf("🎂 Hoje é aniversário de %s!", b.Name))
		} else {
			out = append(out, fmt.Sprintf("🎂 %s faz aniversário em %d dias (%02d/%02d)",
				b.Name, until, parsed.Day(), parsed.Month()))
		}
	}
	return out
}

package main

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/semneura/semneura/internal/common"
	"github.com/semneura/semneura/internal/ledger"
	"github.com/semneura/semneura/internal/model"
	"github.com/semneura/semneura/internal/storage"
	syn "github.com/semneura/semneura/internal/sync"
)

func syncCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "sync [id]",
		Short: "Push transactions to the configured remote",
		Long: `Send one transaction (or all of them with --all) to the profile's
webhook URL and, when configured, append rows to a Google spreadsheet.

The webhook URL is per profile; set it with 'semneura sync url <url>'.
Webhook deliveries are fire-and-forget: only repeated server errors are
reported as failures.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if all == (len(args) == 1) {
				return fmt.Errorf("informe um id ou --all")
			}

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			scriptURL, err := store.GetSetting(ctx, svc.Profile(), storage.CollectionScriptURL)
			if err != nil {
				return err
			}

			sheetsCfg := sheetsConfigFromViper()
			haveSheets := sheetsCfg.Validate() == nil
			if scriptURL == "" && !haveSheets {
				return common.NewUserError(
					"nenhum destino configurado: defina a URL com 'semneura sync url' ou configure o Google Sheets",
					common.ErrMissingConfig)
			}

			var webhook *syn.Webhook
			if scriptURL != "" {
				if webhook, err = syn.NewWebhook(scriptURL); err != nil {
					return err
				}
			}
			var appender *syn.SheetsAppender
			if haveSheets {
				if appender, err = syn.NewSheetsAppender(ctx, sheetsCfg, slog.Default()); err != nil {
					return err
				}
			}

			txns, err := svc.Transactions(ctx, ledger.Filter{})
			if err != nil {
				return err
			}

			var targets []model.Transaction
			if all {
				targets = txns
			} else {
				for _, t := range txns {
					if t.ID == args[0] {
						targets = append(targets, t)
						break
					}
				}
				if len(targets) == 0 {
					return common.NewUserError(
						fmt.Sprintf("lançamento %q não encontrado", args[0]), common.ErrNotFound)
				}
			}

			bar := progressbar.NewOptions(len(targets),
				progressbar.OptionSetDescription("Sincronizando"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			for _, t := range targets {
				if webhook != nil {
					if err := webhook.Push(ctx, t); err != nil {
						return err
					}
				}
				if appender != nil {
					if err := appender.Append(ctx, t); err != nil {
						return err
					}
				}
				_ = bar.Add(1)
			}

			styles := profileStyles(ctx, store, svc.Profile())
			fmt.Println(styles.Success.Render(fmt.Sprintf("✓ %d lançamentos sincronizados", len(targets))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "sync every transaction")
	cmd.AddCommand(syncURLCmd())

	return cmd
}

func syncURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url [value]",
		Short: "Show or set the profile's webhook URL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, svc, err := openLedger(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 0 {
				current, err := store.GetSetting(ctx, svc.Profile(), storage.CollectionScriptURL)
				if err != nil {
					return err
				}
				if current == "" {
					fmt.Println("(não configurada)")
				} else {
					fmt.Println(current)
				}
				return nil
			}

			parsed, err := url.Parse(args[0])
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				return common.NewUserError(
					fmt.Sprintf("URL %q inválida", args[0]), common.ErrInvalidConfig)
			}

			if err := store.SetSetting(ctx, svc.Profile(), storage.CollectionScriptURL, args[0]); err != nil {
				return err
			}

			fmt.Println("✓ URL de sincronização atualizada")
			return nil
		},
	}
}

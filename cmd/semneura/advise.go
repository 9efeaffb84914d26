package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/semneura/semneura/internal/advice"
	"github.com/semneura/semneura/internal/ledger"
	"github.com/semneura/semneura/internal/model"
	"github.com/semneura/semneura/internal/storage"
)

func adviseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advise",
		Short: "Get an AI read on your finances",
		Long: `Send the profile's transactions and reminders to the configured
generative model and print a short, calm analysis. Without an API key,
or when the provider fails, a reassuring fallback message is shown.

Set the key via SEMNEURA_GEMINI_API_KEY or gemini.api_key in the config.`,
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
			reminders, err := svc.Reminders(ctx)
			if err != nil {
				return err
			}

			// "Cloud synced" when any remote destination is configured.
			scriptURL, err := store.GetSetting(ctx, svc.Profile(), storage.CollectionScriptURL)
			if err != nil {
				return err
			}
			cloudSynced := scriptURL != "" || sheetsConfigFromViper().Validate() == nil

			var client advice.Client
			if key := viper.GetString("gemini.api_key"); key != "" {
				client, err = advice.NewGeminiClient(advice.Config{
					APIKey:      key,
					Model:       viper.GetString("gemini.model"),
					Temperature: viper.GetFloat64("gemini.temperature"),
				})
				if err != nil {
					return err
				}
			}

			message, err := advice.NewAdvisor(client).Advise(ctx, txns, reminders, cloudSynced)
			if err != nil {
				return err
			}

			styles := profileStyles(ctx, store, svc.Profile())
			fmt.Println(styles.Box.Render(message))

			// A fallback is not an analysis; keep the previous date.
			if !analysisSucceeded(message) {
				return nil
			}

			today := time.Now().Format(model.DateLayout)
			return store.SetSetting(ctx, svc.Profile(), storage.CollectionLastAnalysisDate, today)
		},
	}
}

// analysisSucceeded reports whether the advisor produced a real analysis
// rather than the canned fallback.
func analysisSucceeded(message string) bool {
	return message != advice.FallbackMessage
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/semneura/semneura/internal/cli"
	"github.com/semneura/semneura/internal/common"
	"github.com/semneura/semneura/internal/config"
	"github.com/semneura/semneura/internal/ledger"
	"github.com/semneura/semneura/internal/profile"
	"github.com/semneura/semneura/internal/storage"
	"github.com/semneura/semneura/internal/sync"
)

// initStorage opens the database with migrations applied.
func initStorage(ctx context.Context) (*storage.SQLiteStore, error) {
	return storage.NewSQLiteStore(ctx, config.DatabasePath())
}

// resolveProfile returns the profile a command should operate on: the
// --profile override when given, otherwise the active profile.
func resolveProfile(ctx context.Context, cmd *cobra.Command, store *storage.SQLiteStore) (string, error) {
	mgr := profile.NewManager(store)

	if name, _ := cmd.Flags().GetString("profile"); name != "" {
		names, err := mgr.List(ctx)
		if err != nil {
			return "", err
		}
		for _, n := range names {
			if n == name {
				return name, nil
			}
		}
		return "", unknownProfileError(name)
	}

	return mgr.Active(ctx)
}

// openLedger wires storage and the ledger service for the resolved profile.
func openLedger(ctx context.Context, cmd *cobra.Command) (*storage.SQLiteStore, *ledger.Service, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	name, err := resolveProfile(ctx, cmd, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	return store, ledger.NewService(store, name), nil
}

// profileStyles loads the profile's configured theme and builds its styles.
func profileStyles(ctx context.Context, store *storage.SQLiteStore, profileName string) cli.Styles {
	name, err := store.GetSetting(ctx, profileName, storage.CollectionTheme)
	if err != nil || name == "" {
		name = cli.DefaultThemeName
	}
	return cli.NewStyles(cli.ThemeOrDefault(name))
}

// formatBRL renders an amount the Brazilian way: R$ 1.234,56.
func formatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// formatAmountBRL is formatBRL for raw float amounts.
func formatAmountBRL(amount float64) string {
	return formatBRL(decimal.NewFromFloat(amount))
}

// sheetsConfigFromViper reads the optional Google Sheets target. The zero
// value means nothing is configured.
func sheetsConfigFromViper() sync.SheetsConfig {
	return sync.SheetsConfig{
		ClientID:           viper.GetString("sheets.client_id"),
		ClientSecret:       viper.GetString("sheets.client_secret"),
		RefreshToken:       viper.GetString("sheets.refresh_token"),
		ServiceAccountPath: viper.GetString("sheets.service_account_path"),
		SpreadsheetID:      viper.GetString("sheets.spreadsheet_id"),
		SheetName:          viper.GetString("sheets.sheet_name"),
	}
}

func unknownProfileError(name string) error {
	return common.NewUserError(
		fmt.Sprintf("perfil %q não existe", name), common.ErrUnknownProfile)
}

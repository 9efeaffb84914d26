package sync

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/semneura/semneura/internal/csvio"
	"github.com/semneura/semneura/internal/model"
)

// SheetsConfig holds the Google Sheets target settings.
type SheetsConfig struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	SheetName          string
}

// Validate checks that an auth method and a target spreadsheet are configured.
func (c SheetsConfig) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("missing spreadsheet id")
	}
	if c.ServiceAccountPath == "" && (c.ClientID == "" || c.ClientSecret == "" || c.RefreshToken == "") {
		return fmt.Errorf("missing Google Sheets authentication: provide either service account path or OAuth2 credentials")
	}
	return nil
}

// SheetsAppender appends transaction rows to a Google spreadsheet.
type SheetsAppender struct {
	service *sheets.Service
	logger  *slog.Logger
	config  SheetsConfig
}

// NewSheetsAppender creates the appender, authenticating with either a
// service account key or an OAuth2 refresh token.
func NewSheetsAppender(ctx context.Context, config SheetsConfig, logger *slog.Logger) (*SheetsAppender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	service, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsAppender{service: service, config: config, logger: logger}, nil
}

// Append adds one transaction as a row at the end of the configured sheet.
func (a *SheetsAppender) Append(ctx context.Context, txn model.Transaction) error {
	row := []any{
		txn.ID,
		txn.Description,
		csvio.FormatAmount(txn.Amount),
		txn.DueDate,
		string(txn.Type),
		string(txn.CategoryKind),
		string(txn.Status),
		string(txn.PaymentMethod),
		txn.Observation,
	}

	sheetRange := a.config.SheetName
	if sheetRange == "" {
		sheetRange = "A:I"
	} else {
		sheetRange += "!A:I"
	}

	_, err := a.service.Spreadsheets.Values.Append(a.config.SpreadsheetID, sheetRange, &sheets.ValueRange{
		Values: [][]any{row},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}

	a.logger.Info("transaction appended to sheet",
		"spreadsheet_id", a.config.SpreadsheetID,
		"transaction_id", txn.ID)
	return nil
}

func createSheetsService(ctx context.Context, config SheetsConfig) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}
		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}
		tokenSource = oauthConfig.TokenSource(ctx, &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		})
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}
	return srv, nil
}

package csvio

import (
	"fmt"
	"os"
	"time"

	"github.com/semneura/semneura/internal/model"
)

// ExportFileName returns the date-stamped default export name,
// e.g. sem_neura_backup_2026-01-15.csv.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("sem_neura_backup_%s.csv", now.Format(model.DateLayout))
}

// WriteFile encodes transactions and writes them BOM-prefixed to path.
func WriteFile(path string, txns []model.Transaction) error {
	content, err := Encode(txns)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(BOM+content), 0600); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return nil
}

// ReadFile reads and decodes a CSV file in the export format.
func ReadFile(path string) ([]model.Transaction, Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to read CSV file: %w", err)
	}
	txns, stats := Decode(string(data))
	return txns, stats, nil
}

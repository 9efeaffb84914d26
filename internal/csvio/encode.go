// Package csvio implements the CSV interchange format for transactions.
//
// The format is fixed: nine positional columns, text fields always quoted
// with internal quotes doubled, numeric and enum fields bare. Files are
// UTF-8 with a leading byte-order mark so spreadsheet tools detect the
// encoding. Import maps columns by position, never by header name.
package csvio

import (
	"strconv"
	"strings"

	"github.com/semneura/semneura/internal/common"
	"github.com/semneura/semneura/internal/model"
)

// BOM is the UTF-8 byte-order mark prefixed to exported files.
const BOM = "\xef\xbb\xbf"

// Header is the fixed nine-column header row.
var Header = []string{
	"ID",
	"Descrição/Cliente",
	"Valor",
	"Vencimento",
	"Tipo (Fluxo)",
	"Categoria",
	"Status",
	"Meio de Pagamento",
	"Observação",
}

// Encode serializes transactions in input order. It refuses an empty list:
// an empty export is a usage error, not an empty file.
func Encode(txns []model.Transaction) (string, error) {
	if len(txns) == 0 {
		return "", common.NewUserError("nenhum dado para exportar", common.ErrEmptyExport)
	}

	var b strings.Builder
	b.WriteString(strings.Join(Header, ","))

	for _, t := range txns {
		b.WriteByte('\n')
		b.WriteString(t.ID)
		b.WriteByte(',')
		b.WriteString(quote(t.Description))
		b.WriteByte(',')
		b.WriteString(FormatAmount(t.Amount))
		b.WriteByte(',')
		b.WriteString(t.DueDate)
		b.WriteByte(',')
		b.WriteString(string(t.Type))
		b.WriteByte(',')
		b.WriteString(string(t.CategoryKind))
		b.WriteByte(',')
		b.WriteString(string(t.Status))
		b.WriteByte(',')
		b.WriteString(string(t.PaymentMethod))
		b.WriteByte(',')
		b.WriteString(quote(t.Observation))
	}

	return b.String(), nil
}

// FormatAmount renders an amount with the shortest exact decimal
// representation, matching how existing files were written.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// quote wraps a text field in double quotes, doubling internal quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

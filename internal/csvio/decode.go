package csvio

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/semneura/semneura/internal/model"
)

// Column positions. Import maps by index; the header row is ignored.
const (
	colID = iota
	colDescription
	colAmount
	colDueDate
	colType
	colCategoryKind
	colStatus
	colPaymentMethod
	colObservation
)

// Stats reports what a decode accepted and dropped.
type Stats struct {
	Imported int
	Skipped  int
}

// Decode parses CSV text in the export format. Rows with an empty
// description or an unparseable amount are silently skipped (counted in
// Stats). Enum fields are NOT validated against the known members: unknown
// values are kept verbatim and flagged in the log, never coerced. A blank id
// gets a freshly generated one.
func Decode(data string) ([]model.Transaction, Stats) {
	data = strings.TrimPrefix(data, BOM)

	var stats Stats
	var txns []model.Transaction

	lines := strings.Split(data, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if i == 0 {
			// Header row: positionally mapped columns make its content irrelevant.
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitLine(line)
		field := func(idx int) string {
			if idx < len(fields) {
				return unquote(fields[idx])
			}
			return ""
		}

		description := field(colDescription)
		amount, err := strconv.ParseFloat(field(colAmount), 64)
		if description == "" || err != nil {
			stats.Skipped++
			slog.Debug("Skipping unusable CSV row",
				"line", i+1,
				"description", description,
				"amount", field(colAmount))
			continue
		}

		id := field(colID)
		if id == "" {
			id = model.NewID()
		}

		txn := model.Transaction{
			ID:            id,
			Description:   description,
			Amount:        amount,
			DueDate:       field(colDueDate),
			Type:          model.TransactionType(field(colType)),
			CategoryKind:  model.CategoryKind(field(colCategoryKind)),
			Status:        model.Status(field(colStatus)),
			PaymentMethod: model.PaymentMethod(field(colPaymentMethod)),
			Observation:   field(colObservation),
		}
		flagUnknownEnums(i+1, &txn)

		txns = append(txns, txn)
		stats.Imported++
	}

	return txns, stats
}

// splitLine splits on commas that are not inside a quoted field: a comma is
// a delimiter only when an even number of quote characters precede it from
// the start of the line.
func splitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	quotes := 0

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			quotes++
			cur.WriteByte(c)
		case c == ',' && quotes%2 == 0:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// unquote strips one leading and one trailing quote if present, then
// un-doubles internal quotes.
func unquote(field string) string {
	if strings.HasPrefix(field, `"`) {
		field = field[1:]
	}
	if strings.HasSuffix(field, `"`) {
		field = field[:len(field)-1]
	}
	return strings.ReplaceAll(field, `""`, `"`)
}

// flagUnknownEnums logs enum values outside the known members. The values
// are preserved as imported; membership validation is deliberately not part
// of the import contract.
func flagUnknownEnums(line int, t *model.Transaction) {
	if _, ok := model.ParseTransactionType(string(t.Type)); !ok {
		slog.Warn("Imported row has unrecognized flow type", "line", line, "value", t.Type)
	}
	if _, ok := model.ParseStatus(string(t.Status)); !ok {
		slog.Warn("Imported row has unrecognized status", "line", line, "value", t.Status)
	}
	if _, ok := model.ParseCategoryKind(string(t.CategoryKind)); !ok {
		slog.Warn("Imported row has unrecognized category kind", "line", line, "value", t.CategoryKind)
	}
	if _, ok := model.ParsePaymentMethod(string(t.PaymentMethod)); !ok {
		slog.Warn("Imported row has unrecognized payment method", "line", line, "value", t.PaymentMethod)
	}
}

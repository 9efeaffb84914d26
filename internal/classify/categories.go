// Package classify maps free-text transaction descriptions onto the fixed
// category taxonomy by keyword substring matching, and computes spend-vs-budget
// figures for the category report.
package classify

// Category is one bucket of the fixed taxonomy. Keywords are lowercase
// substrings matched against lowercased descriptions.
type Category struct {
	Name          string
	Keywords      []string
	DefaultBudget float64
	CatchAll      bool
}

// CatchAllName is the name of the catch-all bucket.
const CatchAllName = "Outros"

// Categories is the taxonomy in declaration order. Order matters: a payable
// matched by any earlier bucket is excluded from the catch-all's residual.
var Categories = []Category{
	{
		Name:          "Alimentação",
		DefaultBudget: 1200,
		Keywords:      []string{"mercado", "comida", "ifood", "restaurante", "padaria", "pão", "açougue", "carne", "supermercado", "croissant"},
	},
	{
		Name:          "Transporte",
		DefaultBudget: 600,
		Keywords:      []string{"gasolina", "combustivel", "uber", "onibus", "metro", "trem", "carro", "oficina", "ônibus", "bus"},
	},
	{
		Name:          "Moradia",
		DefaultBudget: 2500,
		Keywords:      []string{"aluguel", "luz", "energia", "agua", "água", "condominio", "internet", "tv", "casa", "wifi", "zap"},
	},
	{
		Name:          "Lazer",
		DefaultBudget: 500,
		Keywords:      []string{"cinema", "festa", "bar", "viagem", "presente", "show", "party", "gift"},
	},
	{
		Name:          "Saúde",
		DefaultBudget: 400,
		Keywords:      []string{"farmacia", "remedio", "hospital", "academia", "dentista", "saude", "medico", "medicamento", "pill", "treino", "dumbbell"},
	},
	{
		Name:          "Compras",
		DefaultBudget: 800,
		Keywords:      []string{"shopping", "amazon", "roupa", "eletronico", "cartao", "fatura", "computador", "celular", "monitor", "creditcard", "filetext"},
	},
	{
		Name:          "Pets",
		DefaultBudget: 350,
		Keywords:      []string{"cachorro", "pet", "raçao", "ração", "veterinario", "banho", "tosa"},
	},
	{
		Name:          "Manutenção",
		DefaultBudget: 450,
		Keywords:      []string{"martelo", "reforma", "manutençao", "jardim", "plantas", "grama", "conserto", "ferramenta", "flower2"},
	},
	{
		Name:          CatchAllName,
		DefaultBudget: 300,
		CatchAll:      true,
		Keywords:      []string{"bomba", "surpresa", "extra", "inesperado", "bomb"},
	},
}

package advice

import (
	"encoding/json"
	"fmt"

	"github.com/semneura/semneura/internal/model"
)

// BuildPrompt renders the analysis prompt with the profile's data embedded
// as JSON. The wording is the one users have always seen answered.
func BuildPrompt(transactions []model.Transaction, reminders []model.Reminder, cloudSynced bool) (string, error) {
	txJSON, err := json.Marshal(transactions)
	if err != nil {
		return "", fmt.Errorf("failed to encode transactions: %w", err)
	}
	remJSON, err := json.Marshal(reminders)
	if err != nil {
		return "", fmt.Errorf("failed to encode reminders: %w", err)
	}

	backupStatus := "APENAS LOCAL (Sem Backup)"
	if cloudSynced {
		backupStatus = "CONECTADO AO GOOGLE SHEETS (Seguro)"
	}

	return fmt.Sprintf(`Analise os seguintes dados financeiros e lembretes do usuário do app "SEM NEURA":

Transações: %s
Lembretes: %s
Status de Backup: %s

Por favor, forneça um resumo rápido da saúde financeira (saldo projetado), destaque urgências e dê uma dica motivacional curta para uma vida "Sem Neura".
Se o backup estiver ativo, parabenize pela organização profissional. Se não, sugira suavemente conectar para mais segurança.
Responda em Português do Brasil de forma amigável e direta.`,
		txJSON, remJSON, backupStatus), nil
}

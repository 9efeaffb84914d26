package main

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/semneura/semneura/internal/advice"
	"github.com/semneura/semneura/internal/model"
)

func TestRootCmdHasAllCommands(t *testing.T) {
	want := []string{
		"add", "pay", "rm", "list", "dashboard",
		"reminder", "birthday", "profile",
		"categories", "budget", "export", "import", "backup",
		"advise", "sync", "theme", "version",
	}

	have := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}

	for _, name := range want {
		assert.True(t, have[name], "command %q should be registered", name)
	}
}

func TestAddCmdFlags(t *testing.T) {
	cmd := addCmd()

	flag := cmd.Flag("amount")
	assert.NotNil(t, flag, "amount flag should exist")

	flag = cmd.Flag("type")
	assert.NotNil(t, flag, "type flag should exist")
	assert.Equal(t, "PAGAR", flag.DefValue, "default flow type should be PAGAR")
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "R$ 0,00"},
		{"150.5", "R$ 150,50"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.8", "R$ 1.234.567,80"},
		{"-42", "-R$ 42,00"},
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.amount)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, formatBRL(d), "amount %s", tt.amount)
	}
}

func TestUpcomingBirthdays(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	birthdays := []model.Birthday{
		{ID: "1", Name: "Ana", Date: "1990-03-10"},
		{ID: "2", Name: "Bia", Date: "2000-03-15"},
		{ID: "3", Name: "Caio", Date: "1985-06-01"},
		{ID: "4", Name: "Duda", Date: "not-a-date"},
	}

	lines := upcomingBirthdays(birthdays, now, 7)

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Hoje é aniversário de Ana")
	assert.Contains(t, lines[1], "Bia faz aniversário em 5 dias")
}

func TestUpcomingBirthdays_YearWrap(t *testing.T) {
	now := time.Date(2026, 12, 30, 0, 0, 0, 0, time.UTC)
	birthdays := []model.Birthday{
		{ID: "1", Name: "Eva", Date: "1999-01-02"},
	}

	lines := upcomingBirthdays(birthdays, now, 7)

	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Eva faz aniversário em 3 dias")
}

func TestKnownCategory(t *testing.T) {
	assert.Equal(t, "Alimentação", knownCategory("alimentação"))
	assert.Equal(t, "Pets", knownCategory("PETS"))
	assert.Equal(t, "", knownCategory("inexistente"))
}

func TestAnalysisSucceeded(t *testing.T) {
	assert.True(t, analysisSucceeded("Suas finanças estão equilibradas."))
	assert.False(t, analysisSucceeded(advice.FallbackMessage),
		"a fallback message must not count as a completed analysis")
}

func TestUserMessage(t *testing.T) {
	err := unknownProfileError("x")
	assert.Equal(t, `perfil "x" não existe`, userMessage(err))

	assert.Equal(t, "plain", userMessage(errors.New("plain")))
}

package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionFromSigned_NegativeAmountBecomesExpense(t *testing.T) {
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	transaction := TransactionFromSigned(
		decimal.RequireFromString("-42.50"), "office chairs", "Supplies", date, TransactionStatusCompleted,
	)

	assert.Equal(t, TransactionTypeExpense, transaction.Type)
	assert.True(t, transaction.Amount.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, "Supplies", transaction.Category)
	assert.Equal(t, date, transaction.Date)
	assert.Equal(t, TransactionStatusCompleted, transaction.Status)
	assert.NoError(t, transaction.Validate())
}

func TestTransactionFromSigned_PositiveAmountBecomesIncome(t *testing.T) {
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	transaction := TransactionFromSigned(
		decimal.RequireFromString("1200"), "consulting invoice", "", date, TransactionStatusCompleted,
	)

	assert.Equal(t, TransactionTypeIncome, transaction.Type)
	assert.True(t, transaction.Amount.Equal(decimal.RequireFromString("1200")))
	assert.NoError(t, transaction.Validate())
}

func TestTransactionFromSigned_ZeroAmountMapsToIncomeAndFailsValidation(t *testing.T) {
	transaction := TransactionFromSigned(
		decimal.Zero, "", "", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), TransactionStatusPending,
	)

	assert.Equal(t, TransactionTypeIncome, transaction.Type)
	assert.Error(t, transaction.Validate())
}

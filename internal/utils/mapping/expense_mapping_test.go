package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainExpenseNormalisesTimezones(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	created := time.Date(2024, 4, 1, 9, 0, 0, 0, tokyo)
	updated := created.Add(time.Hour)

	d := ToDomainExpense(models.Expense{
		ExpenseID: "id-1",
		Date:      "2024-04-01",
		Category:  "food",
		Amount:    decimal.RequireFromString("3.50"),
		CreatedAt: created,
		UpdatedAt: &updated,
	})

	assert.Equal(t, time.UTC, d.CreatedAt.Location())
	assert.True(t, created.Equal(d.CreatedAt))
	require.NotNil(t, d.UpdatedAt)
	assert.Equal(t, time.UTC, d.UpdatedAt.Location())

	back := ToModelExpense(d)
	assert.Equal(t, "id-1", back.ExpenseID)
	assert.True(t, back.Amount.Equal(decimal.RequireFromString("3.5")))
}

func TestToDomainExpenseKeepsNilUpdatedAt(t *testing.T) {
	d := ToDomainExpense(models.Expense{ExpenseID: "x", CreatedAt: time.Now()})
	assert.Nil(t, d.UpdatedAt)
}

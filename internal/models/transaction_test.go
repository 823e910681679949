package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name:        "valid expense",
			transaction: Transaction{UserID: userID, Type: TransactionTypeExpenses, Amount: decimal.NewFromInt(100), TransactionDate: date},
		},
		{
			name:        "zero amount is allowed",
			transaction: Transaction{UserID: userID, Type: TransactionTypeIncome, Amount: decimal.Zero, TransactionDate: date},
		},
		{
			name:        "unknown type",
			transaction: Transaction{UserID: userID, Type: "gift", Amount: decimal.NewFromInt(1), TransactionDate: date},
			wantErr:     ErrInvalidTransactionType,
		},
		{
			name:        "negative amount",
			transaction: Transaction{UserID: userID, Type: TransactionTypeSavings, Amount: decimal.NewFromInt(-1), TransactionDate: date},
			wantErr:     ErrNegativeAmount,
		},
		{
			name:        "missing date",
			transaction: Transaction{UserID: userID, Type: TransactionTypeSavings, Amount: decimal.NewFromInt(1)},
			wantErr:     ErrTransactionDateMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTransaction_Normalize(t *testing.T) {
	blank := "   "
	card := " Card "
	tx := Transaction{Type: " Expenses", PaymentMethod: &card}
	tx.Normalize()

	assert.Equal(t, TransactionTypeExpenses, tx.Type)
	require.NotNil(t, tx.PaymentMethod)
	assert.Equal(t, "card", *tx.PaymentMethod)

	tx.PaymentMethod = &blank
	tx.Normalize()
	assert.Nil(t, tx.PaymentMethod)
}

func TestTransaction_IsCategorized(t *testing.T) {
	id := uuid.New()
	nilID := uuid.Nil

	assert.True(t, (&Transaction{CategoryID: &id}).IsCategorized())
	assert.False(t, (&Transaction{CategoryID: &nilID}).IsCategorized())
	assert.False(t, (&Transaction{}).IsCategorized())
}

func TestTransactionFilters_Normalize(t *testing.T) {
	filters := TransactionFilters{Type: "SAVINGS", Page: 0}
	filters.Normalize()

	assert.Equal(t, TransactionTypeSavings, filters.Type)
	assert.Equal(t, 1, filters.Page)
	assert.Equal(t, TransactionPageSize, filters.PerPage)
	assert.Equal(t, 0, filters.Offset())

	filters = TransactionFilters{Type: "transfer", Page: 3}
	filters.Normalize()
	assert.Empty(t, filters.Type)
	assert.Equal(t, 20, filters.Offset())
}

func TestNewTransactionPage(t *testing.T) {
	page := NewTransactionPage(nil, 25, 3, 10)
	assert.Equal(t, 3, page.LastPage)
	assert.NotNil(t, page.Data)

	empty := NewTransactionPage(nil, 0, 1, 10)
	assert.Equal(t, 1, empty.LastPage)

	exact := NewTransactionPage(nil, 20, 2, 10)
	assert.Equal(t, 2, exact.LastPage)
}

func TestStringList_ValueAndScan(t *testing.T) {
	var nilList StringList
	value, err := nilList.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)

	var scanned StringList
	require.NoError(t, scanned.Scan([]byte(`["attachments/a.pdf","attachments/b.png"]`)))
	assert.Equal(t, StringList{"attachments/a.pdf", "attachments/b.png"}, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)

	assert.Error(t, scanned.Scan(42))
	assert.Error(t, scanned.Scan("not json"))
}

func TestDateRange(t *testing.T) {
	r := DateRange{
		Start: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 10, 31, 23, 59, 59, 0, time.UTC),
	}

	assert.True(t, r.Contains(r.Start))
	assert.True(t, r.Contains(r.End))
	assert.False(t, r.Contains(r.End.Add(time.Second)))
	assert.True(t, r.IsValid())
	assert.False(t, DateRange{Start: r.End, End: r.Start}.IsValid())
}

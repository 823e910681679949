package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBudget_Validate(t *testing.T) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	valid := Budget{CategoryID: uuid.New(), Amount: decimal.NewFromInt(100), Period: BudgetPeriodMonthly, StartDate: start, EndDate: end}

	assert.NoError(t, valid.Validate())

	noCategory := valid
	noCategory.CategoryID = uuid.Nil
	assert.ErrorIs(t, noCategory.Validate(), ErrBudgetCategoryEmpty)

	negative := valid
	negative.Amount = decimal.NewFromInt(-5)
	assert.ErrorIs(t, negative.Validate(), ErrNegativeAmount)

	badPeriod := valid
	badPeriod.Period = "fortnightly"
	assert.ErrorIs(t, badPeriod.Validate(), ErrInvalidBudgetPeriod)

	inverted := valid
	inverted.StartDate, inverted.EndDate = end, start
	assert.ErrorIs(t, inverted.Validate(), ErrBudgetWindowInvalid)

	sameDay := valid
	sameDay.EndDate = sameDay.StartDate
	assert.NoError(t, sameDay.Validate())
}

func TestBudgetPeriods(t *testing.T) {
	for _, period := range BudgetPeriods() {
		assert.True(t, IsValidBudgetPeriod(period), period)
	}
	assert.False(t, IsValidBudgetPeriod("Monthly"))
	assert.True(t, IsValidBudgetPeriod(BudgetPeriodCustom))
	assert.False(t, IsRequestableBudgetPeriod(BudgetPeriodCustom))
	assert.NotContains(t, BudgetPeriods(), BudgetPeriodCustom)

	assert.True(t, IsCalendarPeriod(BudgetPeriodWeekly))
	assert.True(t, IsCalendarPeriod(BudgetPeriodYearly))
	assert.False(t, IsCalendarPeriod(BudgetPeriodDaily))
	assert.False(t, IsCalendarPeriod(BudgetPeriodCustom))
}

func TestNormalizePurpose(t *testing.T) {
	tests := []struct {
		raw   string
		want  Purpose
		other bool
		kind  PurposeKind
	}{
		{raw: "", want: PurposeNone, kind: PurposeKindExpenses},
		{raw: " SAVINGS ", want: PurposeSavings, kind: PurposeKindSavings},
		{raw: "expenses", want: PurposeExpenses, kind: PurposeKindExpenses},
		{raw: " Holiday Trip ", want: Purpose("Holiday Trip"), other: true, kind: PurposeKindExpenses},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := NormalizePurpose(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.other, got.IsOther())
			assert.Equal(t, tt.kind, got.Kind())
		})
	}
}

func TestCategory_NormalizeAndValidate(t *testing.T) {
	blank := " "
	income := "Income"
	category := Category{Name: "  Salary ", Type: &income}
	category.Normalize()
	assert.Equal(t, "salary", category.Name)
	assert.Equal(t, TransactionTypeIncome, category.TypeOrEmpty())
	assert.NoError(t, category.Validate())

	category.Type = &blank
	category.Normalize()
	assert.Nil(t, category.Type)
	assert.Equal(t, "", category.TypeOrEmpty())

	gift := "gift"
	assert.ErrorIs(t, (&Category{Name: "x", Type: &gift}).Validate(), ErrInvalidCategoryType)
	assert.ErrorIs(t, (&Category{}).Validate(), ErrCategoryNameRequired)
}

func TestNotificationDedupKeyAndMessage(t *testing.T) {
	userID := uuid.New()
	budgetID := uuid.New()
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	key := NotificationDedupKey(userID, budgetID, NotificationTypeExceeded, start)
	assert.Equal(t, key, NotificationDedupKey(userID, budgetID, NotificationTypeExceeded, start.Add(time.Hour)))
	assert.NotEqual(t, key, NotificationDedupKey(userID, budgetID, NotificationTypeAlmostExceeded, start))
	assert.NotEqual(t, key, NotificationDedupKey(userID, budgetID, NotificationTypeExceeded, start.AddDate(0, 1, 0)))

	message := BudgetNotificationMessage(decimal.NewFromInt(1000), decimal.NewFromInt(50))
	assert.Equal(t, "You have spent 950 of your budgeted 1000", message)

	n := Notification{BudgetedAmount: decimal.NewFromInt(500), RemainingBudget: decimal.NewFromInt(-100)}
	assert.True(t, n.AmountSpent().Equal(decimal.NewFromInt(600)))
	assert.False(t, n.IsRead())
}

func TestCircuitBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", CircuitBreakerState(0).String())
	assert.Equal(t, "open", CircuitBreakerState(1).String())
	assert.Equal(t, "half-open", CircuitBreakerState(2).String())
}

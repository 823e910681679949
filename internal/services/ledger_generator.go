package services

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	salaryDay        = 25
	billPaymentHour  = 14
	salaryHour       = 9
	maxDailyPurchase = 3
)

// DemoCategory is a category created by the seeder along with the spend range
// used for generated entries.
type DemoCategory struct {
	Name      string
	Type      string
	MinAmount float64
	MaxAmount float64
	Payees    []string
}

// DemoCategories is the catalog the generator draws from.
var DemoCategories = []DemoCategory{
	{Name: "salary", Type: models.TransactionTypeIncome, MinAmount: 250000, MaxAmount: 450000, Payees: []string{"Employer payroll"}},
	{Name: "freelance", Type: models.TransactionTypeIncome, MinAmount: 20000, MaxAmount: 90000, Payees: []string{"Client payment", "Contract work"}},
	{Name: "rent", Type: models.TransactionTypeExpenses, MinAmount: 120000, MaxAmount: 120000, Payees: []string{"Landlord"}},
	{Name: "utilities", Type: models.TransactionTypeExpenses, MinAmount: 8000, MaxAmount: 25000, Payees: []string{"Electricity", "Water", "Internet", "Phone"}},
	{Name: "groceries", Type: models.TransactionTypeExpenses, MinAmount: 1500, MaxAmount: 18000, Payees: []string{"Supermarket", "Open market", "Corner store"}},
	{Name: "dining", Type: models.TransactionTypeExpenses, MinAmount: 2000, MaxAmount: 12000, Payees: []string{"Restaurant", "Cafe", "Takeaway"}},
	{Name: "transport", Type: models.TransactionTypeExpenses, MinAmount: 500, MaxAmount: 6000, Payees: []string{"Ride hailing", "Fuel", "Bus fare"}},
	{Name: "entertainment", Type: models.TransactionTypeExpenses, MinAmount: 1500, MaxAmount: 10000, Payees: []string{"Cinema", "Streaming", "Concert"}},
	{Name: "emergency fund", Type: models.TransactionTypeSavings, MinAmount: 20000, MaxAmount: 50000, Payees: []string{"Savings transfer"}},
}

var demoPaymentMethods = []string{"card", "transfer", "cash"}

type ledgerGenerator struct {
	faker *gofakeit.Faker
}

// NewLedgerGenerator creates a generator. A zero seed draws a random one.
func NewLedgerGenerator(seed uint64) LedgerGeneratorInterface {
	return &ledgerGenerator{faker: gofakeit.New(seed)}
}

// GenerateLedger builds salary, bill, savings and daily spending entries for
// the window. Categories missing from categoryIDs are skipped.
func (g *ledgerGenerator) GenerateLedger(userID uuid.UUID, categoryIDs map[string]uuid.UUID, start, end time.Time) []*models.Transaction {
	transactions := make([]*models.Transaction, 0)

	for _, category := range DemoCategories {
		categoryID, ok := categoryIDs[category.Name]
		if !ok {
			continue
		}

		switch category.Name {
		case "salary":
			transactions = append(transactions, g.monthly(userID, categoryID, category, start, end, salaryDay, salaryHour)...)
		case "rent", "utilities", "emergency fund":
			transactions = append(transactions, g.monthly(userID, categoryID, category, start, end, 0, billPaymentHour)...)
		default:
			transactions = append(transactions, g.daily(userID, categoryID, category, start, end)...)
		}
	}

	return transactions
}

// monthly emits one entry per calendar month. A zero day picks a random day
// within the first four weeks.
func (g *ledgerGenerator) monthly(userID, categoryID uuid.UUID, category DemoCategory, start, end time.Time, day, hour int) []*models.Transaction {
	transactions := make([]*models.Transaction, 0)
	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)

	for !current.After(end) {
		entryDay := day
		if entryDay == 0 {
			entryDay = g.faker.IntRange(1, 28)
		}
		date := time.Date(current.Year(), current.Month(), entryDay, hour, 0, 0, 0, time.UTC)
		if !date.Before(start) && !date.After(end) {
			transactions = append(transactions, g.entry(userID, categoryID, category, date))
		}
		current = current.AddDate(0, 1, 0)
	}

	return transactions
}

// daily emits up to maxDailyPurchase entries on a random subset of days.
func (g *ledgerGenerator) daily(userID, categoryID uuid.UUID, category DemoCategory, start, end time.Time) []*models.Transaction {
	transactions := make([]*models.Transaction, 0)

	for day := StartOfDay(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		if category.Type == models.TransactionTypeIncome && g.faker.IntRange(0, 9) > 0 {
			continue
		}
		purchases := g.faker.IntRange(0, maxDailyPurchase)
		for i := 0; i < purchases; i++ {
			date := g.faker.DateRange(day, EndOfDay(day))
			if date.Before(start) || date.After(end) {
				continue
			}
			transactions = append(transactions, g.entry(userID, categoryID, category, date))
		}
	}

	return transactions
}

func (g *ledgerGenerator) entry(userID, categoryID uuid.UUID, category DemoCategory, date time.Time) *models.Transaction {
	id := categoryID
	method := g.faker.RandomString(demoPaymentMethods)

	return &models.Transaction{
		UserID:          userID,
		CategoryID:      &id,
		Amount:          g.amount(category),
		Type:            category.Type,
		TransactionDate: date.UTC(),
		PaymentMethod:   &method,
		Description:     g.faker.RandomString(category.Payees),
		Attachments:     models.StringList{},
	}
}

func (g *ledgerGenerator) amount(category DemoCategory) decimal.Decimal {
	if category.MinAmount == category.MaxAmount {
		return decimal.NewFromFloat(category.MinAmount).Round(2)
	}
	return decimal.NewFromFloat(g.faker.Float64Range(category.MinAmount, category.MaxAmount)).Round(2)
}

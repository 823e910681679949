package services

import (
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type LedgerGeneratorSuite struct {
	suite.Suite
	generator   LedgerGeneratorInterface
	userID      uuid.UUID
	categoryIDs map[string]uuid.UUID
	start       time.Time
	end         time.Time
}

func (s *LedgerGeneratorSuite) SetupTest() {
	s.generator = NewLedgerGenerator(42)
	s.userID = uuid.New()
	s.categoryIDs = make(map[string]uuid.UUID)
	for _, category := range DemoCategories {
		s.categoryIDs[category.Name] = uuid.New()
	}
	s.start = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	s.end = time.Date(2026, 9, 30, 23, 59, 59, 0, time.UTC)
}

func TestLedgerGeneratorSuite(t *testing.T) {
	suite.Run(t, new(LedgerGeneratorSuite))
}

func (s *LedgerGeneratorSuite) TestGenerateLedger_EntriesStayInsideWindow() {
	transactions := s.generator.GenerateLedger(s.userID, s.categoryIDs, s.start, s.end)

	s.Require().NotEmpty(transactions)
	for _, tx := range transactions {
		s.Equal(s.userID, tx.UserID)
		s.False(tx.TransactionDate.Before(s.start), tx.TransactionDate)
		s.False(tx.TransactionDate.After(s.end), tx.TransactionDate)
		s.True(tx.Amount.IsPositive())
		s.True(models.IsValidEntryType(tx.Type))
		s.Require().NotNil(tx.CategoryID)
		s.Require().NotNil(tx.PaymentMethod)
		s.Contains(demoPaymentMethods, *tx.PaymentMethod)
		s.True(tx.Amount.Equal(tx.Amount.Round(2)))
	}
}

func (s *LedgerGeneratorSuite) TestGenerateLedger_OneSalaryAndRentPerMonth() {
	transactions := s.generator.GenerateLedger(s.userID, s.categoryIDs, s.start, s.end)

	counts := map[uuid.UUID]int{}
	for _, tx := range transactions {
		counts[*tx.CategoryID]++
	}

	s.Equal(3, counts[s.categoryIDs["salary"]])
	s.Equal(3, counts[s.categoryIDs["rent"]])
	s.Equal(3, counts[s.categoryIDs["emergency fund"]])

	for _, tx := range transactions {
		if *tx.CategoryID == s.categoryIDs["salary"] {
			s.Equal(salaryDay, tx.TransactionDate.Day())
			s.Equal(models.TransactionTypeIncome, tx.Type)
		}
		if *tx.CategoryID == s.categoryIDs["rent"] {
			s.Equal("120000", tx.Amount.String())
		}
	}
}

func (s *LedgerGeneratorSuite) TestGenerateLedger_SkipsUnknownCategories() {
	only := map[string]uuid.UUID{"rent": s.categoryIDs["rent"]}

	transactions := s.generator.GenerateLedger(s.userID, only, s.start, s.end)

	s.Len(transactions, 3)
	for _, tx := range transactions {
		s.Equal(only["rent"], *tx.CategoryID)
	}
}

func (s *LedgerGeneratorSuite) TestGenerateLedger_SameSeedSameLedger() {
	first := NewLedgerGenerator(7).GenerateLedger(s.userID, s.categoryIDs, s.start, s.end)
	second := NewLedgerGenerator(7).GenerateLedger(s.userID, s.categoryIDs, s.start, s.end)

	s.Require().Equal(len(first), len(second))
	for i := range first {
		s.True(first[i].Amount.Equal(second[i].Amount))
		s.Equal(first[i].TransactionDate, second[i].TransactionDate)
	}
}

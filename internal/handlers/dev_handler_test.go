package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"finance-tracker/internal/models"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type DevHandlerSuite struct {
	handlerSuite
	seeder  *service_mocks.MockDemoSeederInterface
	handler *DevHandler
}

func (s *DevHandlerSuite) SetupTest() {
	s.initHandlerSuite()
	s.seeder = service_mocks.NewMockDemoSeederInterface(s.ctrl)
	s.handler = NewDevHandler(s.seeder)
}

func (s *DevHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerSuite))
}

func (s *DevHandlerSuite) TestSeedDemoData_ClampsMonths() {
	tests := []struct {
		name       string
		query      string
		wantMonths int
	}{
		{name: "default", query: "", wantMonths: 3},
		{name: "explicit", query: "?months=6", wantMonths: 6},
		{name: "too many", query: "?months=120", wantMonths: 24},
		{name: "negative", query: "?months=-2", wantMonths: 1},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.seeder.EXPECT().Seed(gomock.Any(), gomock.Any(), tt.wantMonths).DoAndReturn(
				func(_ context.Context, user *models.User, months int) (*models.SeedReport, error) {
					s.Equal(s.userID, user.ID)
					s.Equal("owner@example.com", user.Email)
					return &models.SeedReport{UserID: user.ID, Budgets: 5, Transactions: 40}, nil
				})

			c, rec := s.newContext(http.MethodPost, "/api/v1/dev/seed"+tt.query, nil)

			s.NoError(s.handler.SeedDemoData(c))
			s.Equal(http.StatusCreated, rec.Code)
			s.Contains(string(s.decode(rec).Body["seed"]), `"budgets":5`)
		})
	}
}

func (s *DevHandlerSuite) TestSeedDemoData_Failure() {
	s.seeder.EXPECT().Seed(gomock.Any(), gomock.Any(), 3).Return(nil, errors.New("insert failed"))

	c, rec := s.newContext(http.MethodPost, "/api/v1/dev/seed", nil)

	s.NoError(s.handler.SeedDemoData(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.errorCode(rec))
}

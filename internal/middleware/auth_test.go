package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/repositories/repository_mocks"
	"finance-tracker/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	tokenService services.TokenServiceInterface
	userRepo     *repository_mocks.MockUserRepositoryInterface
	e            *echo.Echo
	user         *models.User
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = s.createTokenService(24 * time.Hour)
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.e = echo.New()
	s.user = &models.User{ID: uuid.New(), Email: "test@example.com", FirstName: "Grace", LastName: "Hopper"}
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) createTokenService(ttl time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: ttl,
	})
}

func (s *AuthMiddlewareSuite) call(mw echo.MiddlewareFunc, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	if next == nil {
		next = func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	// Auth middleware uses SendError which sends response and returns nil
	s.NoError(mw(next)(s.e.NewContext(req, rec)))
	return rec
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token, _, err := s.tokenService.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	s.userRepo.EXPECT().GetByID(gomock.Any(), s.user.ID).Return(s.user, nil)

	rec := s.call(RequireAuth(s.tokenService, s.userRepo), "Bearer "+token, func(c echo.Context) error {
		s.Equal(s.user.ID, c.Get("user_id"))
		s.Equal(s.user.Email, c.Get("user_email"))
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ProvisionsUnknownUser() {
	token, _, err := s.tokenService.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	s.userRepo.EXPECT().GetByID(gomock.Any(), s.user.ID).Return(nil, repositories.ErrUserNotFound)
	s.userRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			s.Equal(s.user.ID, u.ID)
			s.Equal(s.user.Email, u.Email)
			s.Equal(s.user.FirstName, u.FirstName)
			s.Equal(s.user.LastName, u.LastName)
			return nil
		})

	rec := s.call(RequireAuth(s.tokenService, s.userRepo), "Bearer "+token, nil)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_UnknownUserWithoutEmail() {
	token, _, err := s.tokenService.GenerateAccessToken(&models.User{ID: s.user.ID})
	s.Require().NoError(err)

	s.userRepo.EXPECT().GetByID(gomock.Any(), s.user.ID).Return(nil, repositories.ErrUserNotFound)

	rec := s.call(RequireAuth(s.tokenService, s.userRepo), "Bearer "+token, nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_UserLookupFailure() {
	token, _, err := s.tokenService.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	s.userRepo.EXPECT().GetByID(gomock.Any(), s.user.ID).Return(nil, errors.New("connection refused"))

	rec := s.call(RequireAuth(s.tokenService, s.userRepo), "Bearer "+token, nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	rec := s.call(RequireAuth(s.tokenService, s.userRepo), "", nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	rec := s.call(RequireAuth(s.tokenService, s.userRepo), "InvalidToken", nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	rec := s.call(RequireAuth(s.tokenService, s.userRepo), "Bearer invalid.jwt.token", nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	shortTokenService := s.createTokenService(time.Millisecond)
	token, _, err := shortTokenService.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	// Wait for token to expire
	time.Sleep(10 * time.Millisecond)

	rec := s.call(RequireAuth(shortTokenService, s.userRepo), "Bearer "+token, nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	token, _, err := s.createTokenService(time.Hour).GenerateAccessToken(s.user)
	s.Require().NoError(err)

	rec := s.call(RequireAuth(s.tokenService, s.userRepo), "Bearer "+token, nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

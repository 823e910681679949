package middleware

import (
	"errors"
	"log/slog"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid JWT token. The token's
// user is mirrored into the users table on first sight so ledger rows can
// reference it.
func RequireAuth(tokenService services.TokenServiceInterface, userRepo repositories.UserRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apierrors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apierrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apierrors.AuthInvalidToken)
			}

			userID, err := claims.Owner()
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat, apierrors.WithDetails("Invalid user ID in token"))
			}

			user, err := provisionUser(c, userRepo, userID, claims)
			if err != nil {
				if errors.Is(err, repositories.ErrUserNotFound) {
					return handlers.SendError(c, apierrors.AuthInvalidToken, apierrors.WithDetails("Unknown user"))
				}
				return handlers.SendSystemError(c, err)
			}

			c.Set("user_id", user.ID)
			c.Set("user_email", user.Email)
			c.Set("user", user)

			return next(c)
		}
	}
}

func provisionUser(c echo.Context, userRepo repositories.UserRepositoryInterface, userID uuid.UUID, claims *models.CustomClaims) (*models.User, error) {
	ctx := c.Request().Context()

	user, err := userRepo.GetByID(ctx, userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) || claims.Email == "" {
		return nil, err
	}

	user = claims.ProvisionedUser(userID)
	if err := userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "user provisioned from token",
		slog.String("user_id", user.ID.String()),
		slog.String("trace_id", GetTraceID(c)))

	return user, nil
}

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a user",
		Long: `Create the user if needed and print a bearer token signed with the
configured RSA key. Intended for local development and scripted clients.`,
		RunE: runToken,
	}

	cmd.Flags().String("email", "", "user email (required)")
	cmd.Flags().String("first-name", "", "first name")
	cmd.Flags().String("last-name", "", "last name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runToken(cmd *cobra.Command, _ []string) error {
	email, _ := cmd.Flags().GetString("email")
	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	user := &models.User{
		Email:     strings.ToLower(strings.TrimSpace(email)),
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := repositories.NewUserRepository(db.DB).Upsert(cmd.Context(), user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	token, expiresAt, err := services.NewTokenService(&cfg.JWT).GenerateAccessToken(user)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	slog.Info("access token issued",
		slog.String("user_id", user.ID.String()),
		slog.Time("expires_at", expiresAt))
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/mail"
	"finance-tracker/internal/models"
	"finance-tracker/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill a user's ledger with demo data",
		Long: `Create the demo categories, monthly budgets for the current month and a
generated history of salary, bills and daily spending for one user.`,
		RunE: runSeed,
	}

	cmd.Flags().String("email", "demo@finance-tracker.local", "user email")
	cmd.Flags().Int("months", 3, "months of history to generate")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	email, _ := cmd.Flags().GetString("email")
	months, _ := cmd.Flags().GetInt("months")
	logger := slog.Default()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	container, err := server.NewContainer(cfg, db.DB, mail.NewLogPublisher(logger), prometheus.NewRegistry(), logger)
	if err != nil {
		return fmt.Errorf("failed to build services: %w", err)
	}

	user := &models.User{Email: strings.ToLower(strings.TrimSpace(email)), FirstName: "Demo", LastName: "User"}
	report, err := container.DemoSeeder.Seed(cmd.Context(), user, months)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded user %s: %d categories, %d budgets, %d transactions\n",
		report.UserID, report.Categories, report.Budgets, report.Transactions)
	return nil
}

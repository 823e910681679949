package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
		Long: `Apply or roll back the SQL migrations under db/migrations.

SQLite databases are created from the models by "serve" and need no migrations.`,
	}

	cmd.PersistentFlags().String("migrations", "db/migrations", "migrations directory")
	cmd.PersistentFlags().String("seeds", "db/seeds", "seed SQL directory")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed, _ := cmd.Flags().GetBool("seed")
			return withMigrationRunner(cmd, func(runner *database.MigrationRunner) error {
				if err := runner.RunMigrations(); err != nil {
					return err
				}
				if seed {
					return runner.LoadSeeds()
				}
				return nil
			})
		},
	}
	up.Flags().Bool("seed", false, "load seed data after migrating")

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			if steps < 1 {
				return fmt.Errorf("steps must be at least 1")
			}
			return withMigrationRunner(cmd, func(runner *database.MigrationRunner) error {
				return runner.RollbackMigrations(steps)
			})
		},
	}
	down.Flags().Int("steps", 1, "number of migrations to roll back")

	status := &cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrationRunner(cmd, func(runner *database.MigrationRunner) error {
				version, dirty, err := runner.GetMigrationStatus()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

func withMigrationRunner(cmd *cobra.Command, fn func(*database.MigrationRunner) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations require the postgres driver, got %q", cfg.Database.Driver)
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.MigrationURL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	migrations, _ := cmd.Flags().GetString("migrations")
	seeds, _ := cmd.Flags().GetString("seeds")
	runner := database.NewMigrationRunner(sqlDB).WithPaths(migrations, seeds)

	if err := runner.WaitForDatabase(); err != nil {
		return err
	}

	slog.Info("running migration command", slog.String("command", cmd.Name()), slog.String("migrations", migrations))
	return fn(runner)
}

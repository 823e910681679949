package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetries(t *testing.T, retries int) {
	t.Helper()
	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)

	runner.WithPaths("custom/migrations", "")
	assert.Equal(t, "custom/migrations", runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 3)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	err = NewMigrationRunner(db).WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 2)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = NewMigrationRunner(db).WaitForDatabase()

	assert.ErrorContains(t, err, "database not ready after 2 attempts")
}

func TestRunMigrations_DirectoryNotFoundIsSkipped(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db).WithPaths("/nonexistent/migrations", "")

	assert.NoError(t, runner.RunMigrations())
}

func TestRollbackMigrations(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db).WithPaths("/nonexistent/migrations", "")

	assert.ErrorContains(t, runner.RollbackMigrations(0), "must be positive")
	assert.ErrorIs(t, runner.RollbackMigrations(1), ErrMigrationsNotFound)
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, _, err = NewMigrationRunner(db).WithPaths("/nonexistent/migrations", "").GetMigrationStatus()

	assert.ErrorIs(t, err, ErrMigrationsNotFound)
}

func TestLoadSeeds_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	t.Setenv("SEED_DATABASE", "false")

	assert.NoError(t, NewMigrationRunner(db).LoadSeeds())
}

func TestLoadSeeds_ExecutionFailureIsContinued(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	t.Setenv("SEED_DATABASE", "true")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_bad.sql"), []byte("INSERT INTO missing VALUES (1);"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "002_categories.sql"), []byte("INSERT INTO categories (id, name) VALUES ('x', 'food');"), 0o644))

	mock.ExpectExec("INSERT INTO missing").WillReturnError(errors.New("relation does not exist"))
	mock.ExpectExec("INSERT INTO categories").WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewMigrationRunner(db).WithPaths("", dir).LoadSeeds()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ReadFileError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	t.Setenv("SEED_DATABASE", "true")

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "001_invalid.sql"), 0o755))

	err = NewMigrationRunner(db).WithPaths("", dir).LoadSeeds()

	assert.ErrorContains(t, err, "failed to read seed file")
}

func TestRunMigrationsIfEnabled(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		assert.NoError(t, RunMigrationsIfEnabled(db, false))
	})

	t.Run("database never ready", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		fastRetries(t, 2)

		for i := 0; i < maxRetries; i++ {
			mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		}

		err = RunMigrationsIfEnabled(db, true)
		assert.ErrorContains(t, err, "database readiness check failed")
	})
}

package integration

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"finances/internal/sqlite"
)

type TestSuite struct {
	DB     *sql.DB
	Client *sqlite.Client
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test_finances.db")

	config := sqlite.Config{
		DatabasePath: dbPath,
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		BusyTimeout:  30 * time.Second,
		EnableWAL:    true,
	}

	client, err := sqlite.NewClient(config)
	require.NoError(t, err, "failed to create test client")
	t.Cleanup(func() { client.Close() })

	err = sqlite.EnsureSchema(context.Background(), client.DB())
	require.NoError(t, err, "failed to create schema")

	return &TestSuite{
		DB:     client.DB(),
		Client: client,
	}
}

func (s *TestSuite) SeedAccount(t *testing.T, lastName, firstName string, balance decimal.Decimal) int64 {
	t.Helper()

	query := `
		INSERT INTO accounts (last_name, first_name, balance, version)
		VALUES (?, ?, ?, 1)
	`

	result, err := s.DB.Exec(query, lastName, firstName, balance.String())
	require.NoError(t, err, "failed to seed account")

	id, err := result.LastInsertId()
	require.NoError(t, err, "failed to get inserted account ID")

	return id
}

func (s *TestSuite) GetBalance(t *testing.T, accountID int64) decimal.Decimal {
	t.Helper()

	var balance string
	err := s.DB.QueryRow("SELECT balance FROM accounts WHERE id = ?", accountID).Scan(&balance)
	require.NoError(t, err, "failed to get account balance")

	return decimal.RequireFromString(balance)
}

func (s *TestSuite) GetVersion(t *testing.T, accountID int64) int64 {
	t.Helper()

	var version int64
	err := s.DB.QueryRow("SELECT version FROM accounts WHERE id = ?", accountID).Scan(&version)
	require.NoError(t, err, "failed to get account version")

	return version
}

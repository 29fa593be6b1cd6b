package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finances/internal/core"
)

type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) AccountStore {
	return AccountStore{
		db: db,
	}
}

func (s AccountStore) Get(ctx context.Context, id int64) (core.Account, error) {
	query := `
		SELECT id, last_name, first_name, middle_name, birth_date, balance, version
		FROM accounts
		WHERE id = ?
	`

	return s.scanAccount(s.db.QueryRowContext(ctx, query, id))
}

func (s AccountStore) Create(ctx context.Context, account core.Account) (core.Account, error) {
	query := `
		INSERT INTO accounts (last_name, first_name, middle_name, birth_date, balance, version)
		VALUES (?, ?, ?, ?, ?, 1)
	`

	result, err := s.db.ExecContext(ctx, query,
		account.LastName,
		account.FirstName,
		nullString(account.MiddleName),
		nullTime(account.BirthDate),
		account.Balance.String(),
	)
	if err != nil {
		return core.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return core.Account{}, fmt.Errorf("failed to get inserted account ID: %w", err)
	}

	account.ID = id
	account.Version = 1

	return account, nil
}

// Commit is the conditional write the services coordinate on: the full
// mutable field set is replaced only if the stored version still equals
// account.Version, and the version advances in the same statement. A
// lost race leaves the row untouched.
func (s AccountStore) Commit(ctx context.Context, account core.Account) (core.Account, error) {
	query := `
		UPDATE accounts
		SET last_name = ?, first_name = ?, middle_name = ?, birth_date = ?, balance = ?,
		    version = version + 1
		WHERE id = ? AND version = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		account.LastName,
		account.FirstName,
		nullString(account.MiddleName),
		nullTime(account.BirthDate),
		account.Balance.String(),
		account.ID,
		account.Version,
	)
	if err != nil {
		return core.Account{}, fmt.Errorf("failed to execute conditional update: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return core.Account{}, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// Zero rows means either the row is gone or another writer
		// advanced the version first; probe to tell them apart.
		var exists int
		err = s.db.QueryRowContext(ctx, "SELECT 1 FROM accounts WHERE id = ?", account.ID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return core.Account{}, core.ErrAccountNotFound
		}
		if err != nil {
			return core.Account{}, fmt.Errorf("failed to probe account existence: %w", err)
		}

		return core.Account{}, core.ErrVersionConflict
	}

	account.Version++

	return account, nil
}

func (s AccountStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return core.ErrAccountNotFound
	}

	return nil
}

func (s AccountStore) List(ctx context.Context) ([]core.Account, error) {
	query := `
		SELECT id, last_name, first_name, middle_name, birth_date, balance, version
		FROM accounts
		ORDER BY id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []core.Account{}
	for rows.Next() {
		account, err := s.scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (s AccountStore) scanAccount(row scanner) (core.Account, error) {
	var (
		account    core.Account
		middleName sql.NullString
		birthDate  sql.NullTime
		balance    string
	)

	err := row.Scan(
		&account.ID,
		&account.LastName,
		&account.FirstName,
		&middleName,
		&birthDate,
		&balance,
		&account.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Account{}, core.ErrAccountNotFound
		}

		return core.Account{}, fmt.Errorf("failed to scan account: %w", err)
	}

	account.MiddleName = middleName.String
	if birthDate.Valid {
		t := birthDate.Time.UTC()
		account.BirthDate = &t
	}

	account.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return core.Account{}, fmt.Errorf("failed to parse stored balance %q: %w", balance, err)
	}

	return account, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *t, Valid: true}
}

package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountService covers the account lifecycle: everything except
// balance mutation, which belongs to BalanceService.
type AccountService struct {
	store AccountStore
}

func NewAccountService(store AccountStore) AccountService {
	return AccountService{
		store: store,
	}
}

func (s AccountService) Register(ctx context.Context, fields AccountFields) (Account, error) {
	if err := fields.validate(true); err != nil {
		return Account{}, err
	}

	account := Account{
		LastName:   fields.LastName,
		FirstName:  fields.FirstName,
		MiddleName: fields.MiddleName,
		BirthDate:  fields.truncatedBirthDate(),
		Balance:    fields.Balance,
	}

	return s.store.Create(ctx, account)
}

func (s AccountService) Get(ctx context.Context, id int64) (Account, error) {
	return s.store.Get(ctx, id)
}

func (s AccountService) GetBalance(ctx context.Context, id int64) (decimal.Decimal, error) {
	account, err := s.store.Get(ctx, id)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return account.Balance, nil
}

func (s AccountService) List(ctx context.Context) ([]Account, error) {
	return s.store.List(ctx)
}

// Edit overwrites the identity fields of an account; the balance is
// never touched through this path. Identity edits are not expected to
// race the way balance mutations are, so a version conflict is retried
// once and then surfaced as contention.
func (s AccountService) Edit(ctx context.Context, id int64, fields AccountFields) error {
	if err := fields.validate(false); err != nil {
		return err
	}

	const editAttempts = 2
	for attempt := 1; attempt <= editAttempts; attempt++ {
		account, err := s.store.Get(ctx, id)
		if err != nil {
			return err
		}

		account.LastName = fields.LastName
		account.FirstName = fields.FirstName
		account.MiddleName = fields.MiddleName
		account.BirthDate = fields.truncatedBirthDate()

		_, err = s.store.Commit(ctx, account)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return err
		}
	}

	return fmt.Errorf("%w: concurrent edit", ErrContention)
}

// Delete removes the account unconditionally; it does not depend on
// balance state, so no version check applies.
func (s AccountService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

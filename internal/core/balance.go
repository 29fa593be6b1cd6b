package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type operation int

const (
	opDeposit operation = iota
	opWithdraw
)

// BalanceService applies deposits and withdrawals through an
// optimistic compare-and-commit loop. It never holds a lock across
// store round trips: each attempt reads the account, recomputes the
// balance and commits against the version it read, reloading on
// conflict.
type BalanceService struct {
	store       AccountStore
	maxAttempts int
}

// NewBalanceService builds a BalanceService. maxAttempts bounds the
// commit retries; zero or negative means retry until the commit lands
// or a business rule fails.
func NewBalanceService(store AccountStore, maxAttempts int) BalanceService {
	return BalanceService{
		store:       store,
		maxAttempts: maxAttempts,
	}
}

func (s BalanceService) Deposit(ctx context.Context, id int64, amount decimal.Decimal) error {
	return s.apply(ctx, id, amount, opDeposit)
}

func (s BalanceService) Withdraw(ctx context.Context, id int64, amount decimal.Decimal) error {
	return s.apply(ctx, id, amount, opWithdraw)
}

func (s BalanceService) apply(ctx context.Context, id int64, amount decimal.Decimal, op operation) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	account, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		// Business rules are re-checked against the freshly loaded
		// account on every attempt: a withdrawal that was affordable
		// before a conflict may no longer be.
		switch op {
		case opDeposit:
			err = account.Deposit(amount)
		case opWithdraw:
			err = account.Withdraw(amount)
		}
		if err != nil {
			return err
		}

		_, err = s.store.Commit(ctx, account)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			// Includes ErrAccountNotFound when the row was deleted
			// between the read and the commit: terminal, no retry.
			return err
		}

		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return fmt.Errorf("%w after %d attempts", ErrContention, attempt)
		}

		account, err = s.store.Get(ctx, id)
		if err != nil {
			return err
		}
	}
}

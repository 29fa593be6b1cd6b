package core

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const maxNameLength = 100

type Account struct {
	ID         int64
	LastName   string
	FirstName  string
	MiddleName string
	BirthDate  *time.Time
	Balance    decimal.Decimal
	Version    int64
}

func (a *Account) HasSufficientFunds(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !a.HasSufficientFunds(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// AccountFields carries the caller-supplied part of an account for
// register and edit requests; ID, Balance and Version stay store-owned.
type AccountFields struct {
	LastName   string
	FirstName  string
	MiddleName string
	BirthDate  *time.Time
	Balance    decimal.Decimal
}

func (f AccountFields) validate(withBalance bool) error {
	var invalid []string

	if f.LastName == "" || utf8.RuneCountInString(f.LastName) > maxNameLength {
		invalid = append(invalid, "lastName")
	}
	if f.FirstName == "" || utf8.RuneCountInString(f.FirstName) > maxNameLength {
		invalid = append(invalid, "firstName")
	}
	if utf8.RuneCountInString(f.MiddleName) > maxNameLength {
		invalid = append(invalid, "middleName")
	}
	if withBalance && f.Balance.IsNegative() {
		invalid = append(invalid, "balance")
	}

	if len(invalid) > 0 {
		return &ValidationError{Fields: invalid}
	}

	return nil
}

// truncatedBirthDate drops the time-of-day component, keeping dates
// comparable regardless of what the client sent.
func (f AccountFields) truncatedBirthDate() *time.Time {
	if f.BirthDate == nil {
		return nil
	}

	y, m, d := f.BirthDate.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &date
}

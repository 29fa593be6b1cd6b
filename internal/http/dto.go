package http

import (
	"time"

	"github.com/shopspring/decimal"

	"finances/internal/core"
)

type CreateAccountRequest struct {
	LastName   string          `json:"lastName" validate:"required,max=100"`
	FirstName  string          `json:"firstName" validate:"required,max=100"`
	MiddleName string          `json:"middleName" validate:"max=100"`
	BirthDate  *time.Time      `json:"birthDate"`
	Balance    decimal.Decimal `json:"balance"`
}

func (req CreateAccountRequest) ToDomain() core.AccountFields {
	return core.AccountFields{
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		BirthDate:  req.BirthDate,
		Balance:    req.Balance,
	}
}

type EditAccountRequest struct {
	LastName   string     `json:"lastName" validate:"required,max=100"`
	FirstName  string     `json:"firstName" validate:"required,max=100"`
	MiddleName string     `json:"middleName" validate:"max=100"`
	BirthDate  *time.Time `json:"birthDate"`
}

func (req EditAccountRequest) ToDomain() core.AccountFields {
	return core.AccountFields{
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		BirthDate:  req.BirthDate,
	}
}

// AccountResponse is the wire shape of an account. The store version is
// a concurrency token, not a business field, so it is never serialized.
type AccountResponse struct {
	ID         int64           `json:"id"`
	LastName   string          `json:"lastName"`
	FirstName  string          `json:"firstName"`
	MiddleName string          `json:"middleName,omitempty"`
	BirthDate  *time.Time      `json:"birthDate,omitempty"`
	Balance    decimal.Decimal `json:"balance"`
}

func ToAccountResponse(account core.Account) AccountResponse {
	return AccountResponse{
		ID:         account.ID,
		LastName:   account.LastName,
		FirstName:  account.FirstName,
		MiddleName: account.MiddleName,
		BirthDate:  account.BirthDate,
		Balance:    account.Balance,
	}
}

func ToAccountResponses(accounts []core.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, ToAccountResponse(account))
	}

	return responses
}

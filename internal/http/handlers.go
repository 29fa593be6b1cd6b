package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"finances/internal/core"
)

//go:generate go tool go.uber.org/mock/mockgen -source=handlers.go -destination=service_mock.go -package=http

type AccountManager interface {
	Register(ctx context.Context, fields core.AccountFields) (core.Account, error)
	Get(ctx context.Context, id int64) (core.Account, error)
	GetBalance(ctx context.Context, id int64) (decimal.Decimal, error)
	List(ctx context.Context) ([]core.Account, error)
	Edit(ctx context.Context, id int64, fields core.AccountFields) error
	Delete(ctx context.Context, id int64) error
}

type BalanceProcessor interface {
	Deposit(ctx context.Context, id int64, amount decimal.Decimal) error
	Withdraw(ctx context.Context, id int64, amount decimal.Decimal) error
}

type Handler struct {
	accounts AccountManager
	balances BalanceProcessor
	validate *validator.Validate
	logger   core.Logger
}

func NewHandler(accounts AccountManager, balances BalanceProcessor, logger core.Logger) Handler {
	return Handler{
		accounts: accounts,
		balances: balances,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, ToAccountResponses(accounts))
}

func (h Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	account, err := h.accounts.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, ToAccountResponse(account))
}

func (h Handler) RegisterAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.writeValidationFailure(w, r, err)
		return
	}

	account, err := h.accounts.Register(r.Context(), req.ToDomain())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, ToAccountResponse(account))
}

func (h Handler) EditAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req EditAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.writeValidationFailure(w, r, err)
		return
	}

	if err := h.accounts.Edit(r.Context(), id, req.ToDomain()); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	if err := h.accounts.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	balance, err := h.accounts.GetBalance(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, balance)
}

func (h Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, h.balances.Deposit)
}

func (h Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, h.balances.Withdraw)
}

func (h Handler) applyAmount(w http.ResponseWriter, r *http.Request, apply func(context.Context, int64, decimal.Decimal) error) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	// The body is the bare amount, no envelope. decimal accepts both a
	// JSON number and a quoted decimal string.
	var amount decimal.Decimal
	if err := json.NewDecoder(r.Body).Decode(&amount); err != nil {
		http.Error(w, "Invalid amount", http.StatusBadRequest)
		return
	}

	if err := apply(r.Context(), id, amount); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) accountID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid account id", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *core.ValidationError
	if errors.As(err, &validationErr) {
		h.writeJSON(w, r, http.StatusBadRequest, map[string]any{
			"error":  "Validation failed",
			"fields": validationErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, core.ErrAccountNotFound):
		http.Error(w, "Account not found", http.StatusNotFound)
	case errors.Is(err, core.ErrInvalidAmount):
		http.Error(w, "Amount must be greater than zero", http.StatusUnprocessableEntity)
	case errors.Is(err, core.ErrInsufficientFunds):
		http.Error(w, "Insufficient funds on account", http.StatusUnprocessableEntity)
	case errors.Is(err, core.ErrContention):
		http.Error(w, "Account is busy, retry later", http.StatusConflict)
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h Handler) writeValidationFailure(w http.ResponseWriter, r *http.Request, err error) {
	fields := []string{}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}
	}

	h.writeJSON(w, r, http.StatusBadRequest, map[string]any{
		"error":  "Validation failed",
		"fields": fields,
	})
}

func (h Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to encode response", "error", err)
	}
}

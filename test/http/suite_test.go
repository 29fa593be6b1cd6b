package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finances/internal/core"
	httphandler "finances/internal/http"
	"finances/internal/sqlite"
)

type TestSuite struct {
	Handler httphandler.Handler
	Client  *sqlite.Client
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

	store := sqlite.NewAccountStore(client.DB())
	accounts := core.NewAccountService(store)
	balances := core.NewBalanceService(store, 0)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &TestSuite{
		Handler: httphandler.NewHandler(accounts, balances, logger),
		Client:  client,
	}
}

func (s *TestSuite) CreateAccount(t *testing.T, req httphandler.CreateAccountRequest) httphandler.AccountResponse {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/accounts", "", req, s.Handler.RegisterAccount)
	require.Equal(t, http.StatusCreated, w.Code, "create failed: %s", w.Body.String())

	var account httphandler.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &account))

	return account
}

func (s *TestSuite) GetAccount(t *testing.T, id string) (*httptest.ResponseRecorder, httphandler.AccountResponse) {
	t.Helper()

	w := s.do(t, http.MethodGet, "/api/accounts/"+id, id, nil, s.Handler.GetAccount)

	var account httphandler.AccountResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &account))
	}

	return w, account
}

func (s *TestSuite) Deposit(t *testing.T, id, amount string) *httptest.ResponseRecorder {
	t.Helper()
	return s.doRaw(t, http.MethodPost, "/api/accounts/"+id+"/deposit", id, amount, s.Handler.Deposit)
}

func (s *TestSuite) Withdraw(t *testing.T, id, amount string) *httptest.ResponseRecorder {
	t.Helper()
	return s.doRaw(t, http.MethodPost, "/api/accounts/"+id+"/withdraw", id, amount, s.Handler.Withdraw)
}

func (s *TestSuite) Delete(t *testing.T, id string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, http.MethodDelete, "/api/accounts/"+id, id, nil, s.Handler.DeleteAccount)
}

func (s *TestSuite) do(t *testing.T, method, path, id string, body any, handle http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if id != "" {
		req.SetPathValue("id", id)
	}

	w := httptest.NewRecorder()
	handle(w, req)

	return w
}

func (s *TestSuite) doRaw(t *testing.T, method, path, id, body string, handle http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", id)

	w := httptest.NewRecorder()
	handle(w, req)

	return w
}

package integration

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	httphandler "finances/internal/http"
)

func TestAccounts_CRUDRoundTrip(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)

	birthDate := time.Date(1987, 10, 26, 0, 0, 0, 0, time.UTC)
	created := suite.CreateAccount(t, httphandler.CreateAccountRequest{
		LastName:   "Смирнов",
		FirstName:  "Николай",
		MiddleName: "Васильевич",
		BirthDate:  &birthDate,
		Balance:    decimal.NewFromInt(200),
	})
	require.NotZero(t, created.ID)
	id := strconv.FormatInt(created.ID, 10)

	w, got := suite.GetAccount(t, id)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Смирнов", got.LastName)
	require.Equal(t, "Николай", got.FirstName)
	require.Equal(t, "Васильевич", got.MiddleName)
	require.NotNil(t, got.BirthDate)
	require.True(t, birthDate.Equal(*got.BirthDate))
	require.True(t, got.Balance.Equal(decimal.NewFromInt(200)))

	w = suite.Delete(t, id)
	require.Equal(t, http.StatusNoContent, w.Code)

	w, _ = suite.GetAccount(t, id)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAccounts_BirthDateTimeOfDayTruncated(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)

	birthDate := time.Date(1990, 1, 1, 13, 37, 42, 0, time.UTC)
	created := suite.CreateAccount(t, httphandler.CreateAccountRequest{
		LastName:  "Smith",
		FirstName: "Alice",
		BirthDate: &birthDate,
	})

	_, got := suite.GetAccount(t, strconv.FormatInt(created.ID, 10))
	require.NotNil(t, got.BirthDate)
	require.True(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC).Equal(*got.BirthDate))
}

func TestAccounts_List_NewestFirst(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)

	var ids []int64
	for i := 0; i < 3; i++ {
		created := suite.CreateAccount(t, httphandler.CreateAccountRequest{
			LastName:  "Smith" + strconv.Itoa(i),
			FirstName: "Alice",
		})
		ids = append(ids, created.ID)
	}

	w := suite.do(t, http.MethodGet, "/api/accounts", "", nil, suite.Handler.ListAccounts)
	require.Equal(t, http.StatusOK, w.Code)

	var accounts []httphandler.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accounts))
	require.Len(t, accounts, 3)
	require.Equal(t, ids[2], accounts[0].ID)
	require.Equal(t, ids[1], accounts[1].ID)
	require.Equal(t, ids[0], accounts[2].ID)
}

func TestAccounts_Edit_DoesNotTouchBalance(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)

	created := suite.CreateAccount(t, httphandler.CreateAccountRequest{
		LastName:  "Смирнов",
		FirstName: "Николай",
		Balance:   decimal.NewFromInt(500),
	})
	id := strconv.FormatInt(created.ID, 10)

	w := suite.do(t, http.MethodPut, "/api/accounts/"+id, id, httphandler.EditAccountRequest{
		LastName:  "Иванова",
		FirstName: "Мария",
	}, suite.Handler.EditAccount)
	require.Equal(t, http.StatusNoContent, w.Code)

	_, got := suite.GetAccount(t, id)
	require.Equal(t, "Иванова", got.LastName)
	require.Equal(t, "Мария", got.FirstName)
	require.True(t, got.Balance.Equal(decimal.NewFromInt(500)), "edit must not change the balance")
}

func TestDepositAndWithdraw_Scenarios(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)

	created := suite.CreateAccount(t, httphandler.CreateAccountRequest{
		LastName:  "Smith",
		FirstName: "Alice",
		Balance:   decimal.NewFromInt(200),
	})
	id := strconv.FormatInt(created.ID, 10)

	// Withdraw the full balance, then one more unit must fail and the
	// balance must stay at zero.
	w := suite.Withdraw(t, id, "200")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = suite.Withdraw(t, id, "1")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	_, got := suite.GetAccount(t, id)
	require.True(t, got.Balance.Equal(decimal.Zero), "failed withdrawal must leave balance unchanged")

	// Non-positive amounts are rejected and leave the balance alone.
	w = suite.Deposit(t, id, "0")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = suite.Deposit(t, id, "-50")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	_, got = suite.GetAccount(t, id)
	require.True(t, got.Balance.Equal(decimal.Zero))

	// Fractional amounts round-trip exactly.
	w = suite.Deposit(t, id, "0.10")
	require.Equal(t, http.StatusNoContent, w.Code)
	w = suite.Deposit(t, id, "0.20")
	require.Equal(t, http.StatusNoContent, w.Code)

	_, got = suite.GetAccount(t, id)
	require.True(t, got.Balance.Equal(decimal.RequireFromString("0.30")),
		"expected 0.30, got %s", got.Balance)

	w = suite.do(t, http.MethodGet, "/api/accounts/"+id+"/balance", id, nil, suite.Handler.GetBalance)
	require.Equal(t, http.StatusOK, w.Code)

	var balance decimal.Decimal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balance))
	require.True(t, balance.Equal(decimal.RequireFromString("0.30")))
}

func TestDepositAndWithdraw_DeletedAccountIsTerminal(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)

	created := suite.CreateAccount(t, httphandler.CreateAccountRequest{
		LastName:  "Smith",
		FirstName: "Alice",
		Balance:   decimal.NewFromInt(100),
	})
	id := strconv.FormatInt(created.ID, 10)

	w := suite.Delete(t, id)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = suite.Deposit(t, id, "10")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = suite.Withdraw(t, id, "10")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = suite.do(t, http.MethodGet, "/api/accounts/"+id+"/balance", id, nil, suite.Handler.GetBalance)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDepositAndWithdraw_ConcurrentWorkers_BalanceInvariant(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)

	initial := decimal.NewFromInt(1_000_000)
	created := suite.CreateAccount(t, httphandler.CreateAccountRequest{
		LastName:  "Smith",
		FirstName: "Alice",
		Balance:   initial,
	})
	id := strconv.FormatInt(created.ID, 10)

	const (
		workers         = 10
		opsPerWorker    = 100
		minAmount       = 100
		maxAmountOffset = 800
	)

	type op struct {
		deposit bool
		amount  int64
	}

	ops := make([][]op, workers)
	for i := range ops {
		rnd := rand.New(rand.NewSource(int64(i + 1)))
		ops[i] = make([]op, opsPerWorker)
		for j := range ops[i] {
			ops[i][j] = op{
				deposit: rnd.Intn(2) == 0,
				amount:  int64(minAmount + rnd.Intn(maxAmountOffset+1)),
			}
		}
	}

	// Each worker replays its list; a withdrawal may lose to
	// insufficient funds under contention and must then be excluded
	// from the expected sum.
	applied := make([][]bool, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		applied[i] = make([]bool, opsPerWorker)
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j, o := range ops[worker] {
				amount := strconv.FormatInt(o.amount, 10)

				call := suite.Withdraw
				if o.deposit {
					call = suite.Deposit
				}

				switch resp := call(t, id, amount); resp.Code {
				case http.StatusNoContent:
					applied[worker][j] = true
				case http.StatusUnprocessableEntity:
					// insufficient funds, excluded from the sum
				default:
					t.Errorf("worker %d op %d: unexpected status %d: %s",
						worker, j, resp.Code, resp.Body.String())
				}
			}
		}(i)
	}
	wg.Wait()

	expected := initial
	for i := range ops {
		for j, o := range ops[i] {
			if !applied[i][j] {
				continue
			}
			amount := decimal.NewFromInt(o.amount)
			if o.deposit {
				expected = expected.Add(amount)
			} else {
				expected = expected.Sub(amount)
			}
		}
	}

	_, got := suite.GetAccount(t, id)
	require.True(t, got.Balance.Equal(expected),
		"final balance %s does not match the algebraic sum %s of committed operations", got.Balance, expected)
}

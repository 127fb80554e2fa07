package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountsCreate() {
	u := registerTestUser(suite.T())

	account := createTestAccount(suite.T(), u, v1.AccountEditable{
		Name:           "Savings",
		Note:           "For a rainy day",
		InitialBalance: decimal.NewFromFloat(173.12),
		OverdraftLimit: decimal.NewFromFloat(50),
	})

	suite.Assert().Equal("Savings", account.Data.Name)
	suite.Assert().True(account.Data.Balance.Equal(decimal.NewFromFloat(173.12)), "Balance must start at the initial balance, is %s", account.Data.Balance)
	suite.Assert().True(account.Data.Available.Equal(decimal.NewFromFloat(223.12)), "Available must include the overdraft limit, is %s", account.Data.Available)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/accounts/%s/ledger", account.Data.ID), account.Data.Links.Ledger)
}

func (suite *TestSuiteStandard) TestAccountsCreateFails() {
	u := registerTestUser(suite.T())
	createTestAccount(suite.T(), u, v1.AccountEditable{Name: "Taken"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `[{ "name": 2 }]`, http.StatusBadRequest},
		{"Empty name", []v1.AccountEditable{{Name: ""}}, http.StatusBadRequest},
		{"Duplicate name", []v1.AccountEditable{{Name: "Taken"}}, http.StatusBadRequest},
		{"Negative overdraft limit", []v1.AccountEditable{{Name: "Negative", OverdraftLimit: decimal.NewFromFloat(-10)}}, http.StatusBadRequest},
		{"Too much precision", []v1.AccountEditable{{Name: "Precise", InitialBalance: decimal.NewFromFloat(1.234)}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/accounts", tt.body, u.headers())
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsGetFilter() {
	u := registerTestUser(suite.T())

	createTestAccount(suite.T(), u, v1.AccountEditable{Name: "Checking", Note: "Everyday spending"})
	createTestAccount(suite.T(), u, v1.AccountEditable{Name: "Savings", Note: "Rainy day"})
	createTestAccount(suite.T(), u, v1.AccountEditable{Name: "Cash"})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"All", "", 4, 4},
		{"Name", "name=Sav", 1, 1},
		{"Note", "note=day", 2, 2},
		{"Empty note", "note=", 2, 2},
		{"Search", "search=cash", 1, 1},
		{"Limit", "limit=2", 2, 4},
		{"Offset", "offset=3", 1, 4},
		{"No results", "name=Stocks", 0, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts?%s", tt.query), "", u.headers())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.AccountListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len, "Request ID: %s", r.Result().Header.Get("x-request-id"))
			assert.Equal(t, tt.total, list.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsIsolation() {
	u := registerTestUser(suite.T())
	other := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts", "", other.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal(other.AccountID, list.Data[0].ID, "Only accounts of the user must be listed")

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete, http.MethodOptions} {
		suite.T().Run(method, func(t *testing.T) {
			r := test.Request(t, method, "http://example.com/v1/accounts/"+u.AccountID.String(), `{ "name": "Mine now" }`, other.headers())
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsGetSingle() {
	u := registerTestUser(suite.T())

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", u.AccountID.String(), http.StatusOK},
		{"Not found", uuid.NewString(), http.StatusNotFound},
		{"Not a UUID", "Checking", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/accounts/"+tt.id, "", u.headers())
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsUpdate() {
	u := registerTestUser(suite.T())
	account := createTestAccount(suite.T(), u, v1.AccountEditable{Name: "Checking", InitialBalance: decimal.NewFromFloat(100)})
	path := "http://example.com/v1/accounts/" + account.Data.ID.String()

	r := test.Request(suite.T(), http.MethodPatch, path, map[string]any{
		"name":           "Joint checking",
		"overdraftLimit": "250",
	}, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Joint checking", updated.Data.Name)
	suite.Assert().True(updated.Data.OverdraftLimit.Equal(decimal.NewFromFloat(250)))
	suite.Assert().True(updated.Data.Available.Equal(decimal.NewFromFloat(350)), "Available is %s", updated.Data.Available)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest},
		{"Initial balance", map[string]any{"initialBalance": "500"}, http.StatusBadRequest},
		{"Empty name", map[string]any{"name": ""}, http.StatusBadRequest},
		{"Negative overdraft limit", map[string]any{"overdraftLimit": "-1"}, http.StatusBadRequest},
		{"Duplicate name", map[string]any{"name": "Main account"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, path, tt.body, u.headers())
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	a := getAccount(suite.T(), u, account.Data.ID)
	suite.Assert().True(a.InitialBalance.Equal(decimal.NewFromFloat(100)), "Failed updates must not change the account")
	suite.Assert().Equal("Joint checking", a.Name)
}

func (suite *TestSuiteStandard) TestAccountsDelete() {
	u := registerTestUser(suite.T())
	account := createTestAccount(suite.T(), u, v1.AccountEditable{InitialBalance: decimal.NewFromFloat(20)})
	path := "http://example.com/v1/accounts/" + account.Data.ID.String()

	createTestScheduledPayment(suite.T(), u, v1.ScheduledPaymentEditable{AccountID: account.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, path, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Move the money to another account to be able to delete it
	createTestTransaction(suite.T(), u, v1.TransactionEditable{
		AccountID:            account.Data.ID,
		DestinationAccountID: &u.AccountID,
		Type:                 "TRANSFER",
		Amount:               decimal.NewFromFloat(20),
	})

	r = test.Request(suite.T(), http.MethodDelete, path, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, path, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/scheduled-payments?account="+account.Data.ID.String(), "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var payments v1.ScheduledPaymentListResponse
	test.DecodeResponse(suite.T(), &r, &payments)
	suite.Assert().Len(payments.Data, 0, "Scheduled payments must be deleted with the account")

	// The transfer is still in the ledger of the other account
	main := getAccount(suite.T(), u, u.AccountID)
	suite.Assert().True(main.Balance.Equal(decimal.NewFromFloat(20)))
}

func (suite *TestSuiteStandard) TestAccountsLedger() {
	u := registerTestUser(suite.T())
	account := createTestAccount(suite.T(), u, v1.AccountEditable{InitialBalance: decimal.NewFromFloat(50), OverdraftLimit: decimal.NewFromFloat(100)})

	createTestTransaction(suite.T(), u, v1.TransactionEditable{AccountID: account.Data.ID, Amount: decimal.NewFromFloat(12.5)})
	createTestTransaction(suite.T(), u, v1.TransactionEditable{AccountID: account.Data.ID, Type: "WITHDRAWAL", Amount: decimal.NewFromFloat(99.99)})
	createTestTransaction(suite.T(), u, v1.TransactionEditable{AccountID: u.AccountID, DestinationAccountID: &account.Data.ID, Type: "TRANSFER", Amount: decimal.NewFromFloat(5)}, http.StatusBadRequest)
	createTestTransaction(suite.T(), u, v1.TransactionEditable{AccountID: account.Data.ID, DestinationAccountID: &u.AccountID, Type: "TRANSFER", Amount: decimal.NewFromFloat(0.51)})

	r := test.Request(suite.T(), http.MethodGet, account.Data.Links.Ledger, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var ledger v1.AccountLedgerResponse
	test.DecodeResponse(suite.T(), &r, &ledger)
	suite.Assert().True(ledger.Data.Consistent)
	suite.Assert().True(ledger.Data.Balance.Equal(decimal.NewFromFloat(-38)), "Balance is %s", ledger.Data.Balance)
	suite.Assert().True(ledger.Data.LedgerBalance.Equal(ledger.Data.Balance))

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts/"+uuid.NewString()+"/ledger", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountsDatabaseError() {
	u := registerTestUser(suite.T())

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"List", http.MethodGet, "http://example.com/v1/accounts", ""},
		{"Create", http.MethodPost, "http://example.com/v1/accounts", []v1.AccountEditable{{Name: "Broken"}}},
		{"Single", http.MethodGet, "http://example.com/v1/accounts/" + u.AccountID.String(), ""},
	}

	suite.CloseDB()

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.path, tt.body, u.headers())
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}

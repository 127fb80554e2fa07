package v1_test

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsBalances() {
	u := registerTestUser(suite.T())
	savings := createTestAccount(suite.T(), u, v1.AccountEditable{Name: "Savings"})

	deposit := createTestTransaction(suite.T(), u, v1.TransactionEditable{Type: "DEPOSIT", Amount: decimal.NewFromFloat(100)})
	suite.Assert().True(deposit.Data.BalanceAfter.Equal(decimal.NewFromFloat(100)), "Balance after is %s", deposit.Data.BalanceAfter)
	suite.Assert().True(strings.HasPrefix(deposit.Data.Reference, "TRX-"), "Reference must be generated, is %s", deposit.Data.Reference)

	withdrawal := createTestTransaction(suite.T(), u, v1.TransactionEditable{Type: "WITHDRAWAL", Amount: decimal.NewFromFloat(30.55)})
	suite.Assert().True(withdrawal.Data.BalanceAfter.Equal(decimal.NewFromFloat(69.45)), "Balance after is %s", withdrawal.Data.BalanceAfter)

	transfer := createTestTransaction(suite.T(), u, v1.TransactionEditable{
		Type:                 "TRANSFER",
		DestinationAccountID: &savings.Data.ID,
		Amount:               decimal.NewFromFloat(50),
		Reference:            "Monthly savings",
	})
	suite.Assert().Equal("Monthly savings", transfer.Data.Reference)
	suite.Assert().True(transfer.Data.BalanceAfter.Equal(decimal.NewFromFloat(19.45)), "Balance after is %s", transfer.Data.BalanceAfter)

	main := getAccount(suite.T(), u, u.AccountID)
	suite.Assert().True(main.Balance.Equal(decimal.NewFromFloat(19.45)), "Balance is %s", main.Balance)

	s := getAccount(suite.T(), u, savings.Data.ID)
	suite.Assert().True(s.Balance.Equal(decimal.NewFromFloat(50)), "Balance is %s", s.Balance)
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	u := registerTestUser(suite.T())
	other := registerTestUser(suite.T())
	savings := createTestAccount(suite.T(), u, v1.AccountEditable{})
	foreignCategory := createTestCategory(suite.T(), other, v1.CategoryEditable{})
	unknown := uuid.New()

	tests := []struct {
		name        string
		transaction v1.TransactionEditable
		status      int
	}{
		{"Insufficient funds", v1.TransactionEditable{Type: "WITHDRAWAL", Amount: decimal.NewFromFloat(0.01)}, http.StatusBadRequest},
		{"Invalid type", v1.TransactionEditable{Type: "REFUND"}, http.StatusBadRequest},
		{"Negative amount", v1.TransactionEditable{Amount: decimal.NewFromFloat(-5)}, http.StatusBadRequest},
		{"Too much precision", v1.TransactionEditable{Amount: decimal.NewFromFloat(1.005)}, http.StatusBadRequest},
		{"Transfer without destination", v1.TransactionEditable{Type: "TRANSFER"}, http.StatusBadRequest},
		{"Transfer to same account", v1.TransactionEditable{Type: "TRANSFER", DestinationAccountID: &u.AccountID}, http.StatusBadRequest},
		{"Transfer to other user", v1.TransactionEditable{Type: "TRANSFER", DestinationAccountID: &other.AccountID}, http.StatusBadRequest},
		{"Transfer to unknown account", v1.TransactionEditable{Type: "TRANSFER", DestinationAccountID: &unknown}, http.StatusNotFound},
		{"Deposit with destination", v1.TransactionEditable{DestinationAccountID: &savings.Data.ID}, http.StatusBadRequest},
		{"Account of other user", v1.TransactionEditable{AccountID: other.AccountID}, http.StatusNotFound},
		{"Category of other user", v1.TransactionEditable{CategoryID: &foreignCategory.Data.ID}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := createTestTransaction(t, u, tt.transaction, tt.status)
			assert.NotNil(t, transaction.Error)
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", `[{ "amount": false }]`, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Failed transactions do not change any balance
	for _, id := range []uuid.UUID{u.AccountID, savings.Data.ID} {
		a := getAccount(suite.T(), u, id)
		suite.Assert().True(a.Balance.IsZero(), "Balance of %s is %s", a.Name, a.Balance)
	}

	a := getAccount(suite.T(), other, other.AccountID)
	suite.Assert().True(a.Balance.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionsOverdraft() {
	u := registerTestUser(suite.T())
	account := createTestAccount(suite.T(), u, v1.AccountEditable{InitialBalance: decimal.NewFromFloat(20), OverdraftLimit: decimal.NewFromFloat(100)})

	// Not overdrawn yet
	createTestTransaction(suite.T(), u, v1.TransactionEditable{AccountID: account.Data.ID, Type: "WITHDRAWAL", Amount: decimal.NewFromFloat(20)})

	withdrawal := createTestTransaction(suite.T(), u, v1.TransactionEditable{AccountID: account.Data.ID, Type: "WITHDRAWAL", Amount: decimal.NewFromFloat(60)})
	suite.Assert().True(withdrawal.Data.BalanceAfter.Equal(decimal.NewFromFloat(-60)))

	// Exceeds the overdraft limit
	createTestTransaction(suite.T(), u, v1.TransactionEditable{AccountID: account.Data.ID, Type: "WITHDRAWAL", Amount: decimal.NewFromFloat(40.01)}, http.StatusBadRequest)

	// Exactly at the overdraft limit
	createTestTransaction(suite.T(), u, v1.TransactionEditable{AccountID: account.Data.ID, Type: "WITHDRAWAL", Amount: decimal.NewFromFloat(40)})

	a := getAccount(suite.T(), u, account.Data.ID)
	suite.Assert().True(a.Balance.Equal(decimal.NewFromFloat(-100)), "Balance is %s", a.Balance)
	suite.Assert().True(a.Available.IsZero(), "Available is %s", a.Available)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/alerts?type=OVERDRAFT", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var alerts v1.AlertListResponse
	test.DecodeResponse(suite.T(), &r, &alerts)
	suite.Require().Len(alerts.Data, 2, "Every debit leaving the balance negative creates an alert")
	suite.Assert().Equal(account.Data.ID, *alerts.Data[0].AccountID)
	suite.Assert().NotNil(alerts.Data[0].TransactionID)
	suite.Assert().Contains(alerts.Data[0].Message, "€")
}

func (suite *TestSuiteStandard) TestTransactionsAutoCategorize() {
	u := registerTestUser(suite.T())
	meals := defaultCategory(suite.T(), u, "Meals")
	income := defaultCategory(suite.T(), u, "Income")
	rule := createTestCategoryRule(suite.T(), u, v1.CategoryRuleEditable{CategoryID: meals.ID, Match: "*bakery*"})

	categorized := createTestTransaction(suite.T(), u, v1.TransactionEditable{Note: "Bakery Miller"})
	suite.Assert().Equal(meals.ID, *categorized.Data.CategoryID)
	suite.Assert().Equal(rule.Data.ID, *categorized.Data.CategoryRuleID)

	explicit := createTestTransaction(suite.T(), u, v1.TransactionEditable{Note: "Bakery salary", CategoryID: &income.ID})
	suite.Assert().Equal(income.ID, *explicit.Data.CategoryID, "Explicit categories take precedence over rules")
	suite.Assert().Nil(explicit.Data.CategoryRuleID)

	none := createTestTransaction(suite.T(), u, v1.TransactionEditable{Note: "Lottery"})
	suite.Assert().Nil(none.Data.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	u := registerTestUser(suite.T())
	savings := createTestAccount(suite.T(), u, v1.AccountEditable{})
	meals := defaultCategory(suite.T(), u, "Meals")

	yesterday := time.Now().AddDate(0, 0, -1)
	lastWeek := time.Now().AddDate(0, 0, -7)

	createTestTransaction(suite.T(), u, v1.TransactionEditable{Amount: decimal.NewFromFloat(500), Note: "Salary", Date: lastWeek, Reference: "SAL-1"})
	createTestTransaction(suite.T(), u, v1.TransactionEditable{Type: "WITHDRAWAL", Amount: decimal.NewFromFloat(12.5), Note: "Lunch", CategoryID: &meals.ID, Date: yesterday})
	createTestTransaction(suite.T(), u, v1.TransactionEditable{Type: "TRANSFER", DestinationAccountID: &savings.Data.ID, Amount: decimal.NewFromFloat(100)})
	createTestTransaction(suite.T(), u, v1.TransactionEditable{AccountID: savings.Data.ID, Type: "WITHDRAWAL", Amount: decimal.NewFromFloat(20)})

	tests := []struct {
		name   string
		query  string
		len    int
		status int
	}{
		{"All", "", 4, http.StatusOK},
		{"Main account", "account=" + u.AccountID.String(), 3, http.StatusOK},
		{"Savings account, as source or destination", "account=" + savings.Data.ID.String(), 2, http.StatusOK},
		{"Type", "type=WITHDRAWAL", 2, http.StatusOK},
		{"Category", "category=" + meals.ID.String(), 1, http.StatusOK},
		{"Reference", "reference=SAL-1", 1, http.StatusOK},
		{"Note", "note=lun", 1, http.StatusOK},
		{"Empty note", "note=", 2, http.StatusOK},
		{"Amount less or equal", "amountLessOrEqual=20", 2, http.StatusOK},
		{"Amount more or equal", "amountMoreOrEqual=100", 2, http.StatusOK},
		{"From date", "fromDate=" + url.QueryEscape(yesterday.Format(time.RFC3339)), 3, http.StatusOK},
		{"Until date", "untilDate=" + url.QueryEscape(yesterday.Format(time.RFC3339)), 2, http.StatusOK},
		{"Limit", "limit=1", 1, http.StatusOK},
		{"Invalid sort", "sort=reference", 0, http.StatusBadRequest},
		{"Invalid order", "order=up", 0, http.StatusBadRequest},
		{"Invalid account", "account=savings", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "", u.headers())
			test.AssertHTTPStatus(t, &r, tt.status)

			var list v1.TransactionListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsSort() {
	u := registerTestUser(suite.T())

	createTestTransaction(suite.T(), u, v1.TransactionEditable{Amount: decimal.NewFromFloat(20), Date: time.Now().AddDate(0, 0, -3)})
	createTestTransaction(suite.T(), u, v1.TransactionEditable{Amount: decimal.NewFromFloat(5), Date: time.Now().AddDate(0, 0, -1)})
	createTestTransaction(suite.T(), u, v1.TransactionEditable{Amount: decimal.NewFromFloat(300), Date: time.Now().AddDate(0, 0, -2)})

	tests := []struct {
		query   string
		amounts []float64
	}{
		{"", []float64{5, 300, 20}},
		{"order=asc", []float64{20, 300, 5}},
		{"sort=amount", []float64{300, 20, 5}},
		{"sort=amount&order=asc", []float64{5, 20, 300}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "", u.headers())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.TransactionListResponse
			test.DecodeResponse(t, &r, &list)
			if !assert.Len(t, list.Data, len(tt.amounts)) {
				return
			}

			for i, amount := range tt.amounts {
				assert.True(t, list.Data[i].Amount.Equal(decimal.NewFromFloat(amount)), "Position %d: expected %v, got %s", i, amount, list.Data[i].Amount)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsExternalTransfer() {
	u := registerTestUser(suite.T())
	createTestTransaction(suite.T(), u, v1.TransactionEditable{Amount: decimal.NewFromFloat(100)})

	transaction := createTestTransaction(suite.T(), u, v1.TransactionEditable{
		Type:        "EXTERNAL_TRANSFER",
		Amount:      decimal.NewFromFloat(60),
		Beneficiary: "Landlord Ltd",
		IBAN:        "gb82 west 1234 5698 7654 32",
		Note:        "Rent",
	})
	suite.Assert().Equal("GB82WEST12345698765432", transaction.Data.IBAN)
	suite.Assert().Equal("PENDING", string(transaction.Data.Status))
	suite.Assert().True(transaction.Data.BalanceAfter.Equal(decimal.NewFromFloat(40)), transaction.Data.BalanceAfter.String())

	a := getAccount(suite.T(), u, u.AccountID)
	suite.Assert().True(a.Balance.Equal(decimal.NewFromFloat(40)), "Balance is %s", a.Balance)

	tests := []struct {
		name        string
		transaction v1.TransactionEditable
		status      int
	}{
		{"Invalid IBAN", v1.TransactionEditable{Type: "EXTERNAL_TRANSFER", Beneficiary: "Landlord Ltd", IBAN: "GB00WEST12345698765432"}, http.StatusBadRequest},
		{"No beneficiary", v1.TransactionEditable{Type: "EXTERNAL_TRANSFER", IBAN: "GB82WEST12345698765432"}, http.StatusBadRequest},
		{"IBAN on withdrawal", v1.TransactionEditable{Type: "WITHDRAWAL", IBAN: "GB82WEST12345698765432"}, http.StatusBadRequest},
		{"Insufficient funds", v1.TransactionEditable{Type: "EXTERNAL_TRANSFER", Amount: decimal.NewFromFloat(40.01), Beneficiary: "Landlord Ltd", IBAN: "GB82WEST12345698765432"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestTransaction(t, u, tt.transaction, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{"beneficiary": "Someone else"}, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	a = getAccount(suite.T(), u, u.AccountID)
	suite.Assert().True(a.Balance.Equal(decimal.NewFromFloat(40)), "Rejected transfers must not change the balance, is %s", a.Balance)
}

func (suite *TestSuiteStandard) TestTransactionsSortCategory() {
	u := registerTestUser(suite.T())

	for _, name := range []string{"Mortgage", "Bakery", "Zoo", "Insurance"} {
		category := createTestCategory(suite.T(), u, v1.CategoryEditable{Name: name})
		createTestTransaction(suite.T(), u, v1.TransactionEditable{CategoryID: &category.Data.ID, Note: name})
	}

	tests := []struct {
		query string
		notes []string
	}{
		{"sort=category&order=asc", []string{"Bakery", "Insurance", "Mortgage", "Zoo"}},
		{"sort=category", []string{"Zoo", "Mortgage", "Insurance", "Bakery"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "", u.headers())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.TransactionListResponse
			test.DecodeResponse(t, &r, &list)
			if !assert.Len(t, list.Data, len(tt.notes)) {
				return
			}

			for i, note := range tt.notes {
				assert.Equal(t, note, list.Data[i].Note, "Position %d", i)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsIsolation() {
	u := registerTestUser(suite.T())
	other := registerTestUser(suite.T())
	transaction := createTestTransaction(suite.T(), u, v1.TransactionEditable{Note: "Private"})

	r := test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "", other.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{"note": "Mine"}, other.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "", other.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	u := registerTestUser(suite.T())
	leisure := defaultCategory(suite.T(), u, "Leisure")
	transaction := createTestTransaction(suite.T(), u, v1.TransactionEditable{Note: "Cinema", Amount: decimal.NewFromFloat(15)})
	path := transaction.Data.Links.Self

	r := test.Request(suite.T(), http.MethodPatch, path, map[string]any{
		"note":       "Cinema with Ada",
		"categoryId": leisure.ID,
	}, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Cinema with Ada", updated.Data.Note)
	suite.Assert().Equal(leisure.ID, *updated.Data.CategoryID)

	r = test.Request(suite.T(), http.MethodPatch, path, map[string]any{"note": "  Cinema with Ada and Grace \t"}, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, path, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Cinema with Ada and Grace", updated.Data.Note, "Updated notes must be trimmed")

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Amount", map[string]any{"amount": "20"}, http.StatusBadRequest},
		{"Type", map[string]any{"type": "WITHDRAWAL"}, http.StatusBadRequest},
		{"Account", map[string]any{"accountId": uuid.New()}, http.StatusBadRequest},
		{"Date", map[string]any{"date": "2020-01-01T00:00:00Z"}, http.StatusBadRequest},
		{"Reference", map[string]any{"reference": "Changed"}, http.StatusBadRequest},
		{"Unknown category", map[string]any{"categoryId": uuid.New()}, http.StatusNotFound},
		{"Empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, path, tt.body, u.headers())
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	a := getAccount(suite.T(), u, u.AccountID)
	suite.Assert().True(a.Balance.Equal(decimal.NewFromFloat(15)), "Rejected updates must not change the balance, is %s", a.Balance)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	u := registerTestUser(suite.T())
	transaction := createTestTransaction(suite.T(), u, v1.TransactionEditable{})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestTransactionsExport() {
	u := registerTestUser(suite.T())
	savings := createTestAccount(suite.T(), u, v1.AccountEditable{})

	deposit := createTestTransaction(suite.T(), u, v1.TransactionEditable{Amount: decimal.NewFromFloat(42), Note: "Birthday, from grandma"})
	createTestTransaction(suite.T(), u, v1.TransactionEditable{Type: "TRANSFER", DestinationAccountID: &savings.Data.ID, Amount: decimal.NewFromFloat(2)})
	createTestTransaction(suite.T(), u, v1.TransactionEditable{Type: "EXTERNAL_TRANSFER", Amount: decimal.NewFromFloat(5), Beneficiary: "Landlord Ltd", IBAN: "DE89 3704 0044 0532 0130 00"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/export?order=asc", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("text/csv", r.Header().Get("Content-Type"))
	suite.Assert().Equal(fmt.Sprintf("attachment;filename=transactions-%s.csv", time.Now().Format("2006-01-02")), r.Header().Get("Content-Disposition"))

	records, err := csv.NewReader(strings.NewReader(r.Body.String())).ReadAll()
	suite.Require().Nil(err)
	suite.Require().Len(records, 4)
	suite.Assert().Equal([]string{"id", "date", "type", "account_id", "destination_account_id", "amount", "balance_after", "category_id", "reference", "note", "beneficiary", "iban", "status"}, records[0])

	suite.Assert().Equal(deposit.Data.ID.String(), records[1][0])
	suite.Assert().Equal("DEPOSIT", records[1][2])
	suite.Assert().Equal("42.00", records[1][5])
	suite.Assert().Equal("Birthday, from grandma", records[1][9])

	suite.Assert().Equal("TRANSFER", records[2][2])
	suite.Assert().Equal(savings.Data.ID.String(), records[2][4])
	suite.Assert().Equal("40.00", records[2][6])
	suite.Assert().Empty(records[2][12])

	suite.Assert().Equal("EXTERNAL_TRANSFER", records[3][2])
	suite.Assert().Equal("35.00", records[3][6])
	suite.Assert().Equal([]string{"Landlord Ltd", "DE89370400440532013000", "PENDING"}, records[3][10:])

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/export?type=TRANSFER", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(2, strings.Count(r.Body.String(), "\n"), "Header and one row expected")

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/export?sort=note", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

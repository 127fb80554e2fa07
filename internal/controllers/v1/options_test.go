package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsCollections() {
	u := registerTestUser(suite.T())

	tests := []struct {
		path  string
		allow string
	}{
		{"/v1", "OPTIONS, GET"},
		{"/v1/auth/register", "OPTIONS, POST"},
		{"/v1/auth/login", "OPTIONS, POST"},
		{"/v1/me", "OPTIONS, GET, PATCH, DELETE"},
		{"/v1/me/password", "OPTIONS, POST"},
		{"/v1/me/export", "OPTIONS, GET"},
		{"/v1/accounts", "OPTIONS, GET, POST"},
		{"/v1/alerts", "OPTIONS, GET"},
		{"/v1/categories", "OPTIONS, GET, POST"},
		{"/v1/category-rules", "OPTIONS, GET, POST"},
		{"/v1/category-rules/check", "OPTIONS, POST"},
		{"/v1/reports", "OPTIONS, GET"},
		{"/v1/reports/monthly", "OPTIONS, GET"},
		{"/v1/reports/categories", "OPTIONS, GET"},
		{"/v1/scheduled-payments", "OPTIONS, GET, POST"},
		{"/v1/scheduled-payments/process", "OPTIONS, POST"},
		{"/v1/transactions", "OPTIONS, GET, POST"},
		{"/v1/transactions/export", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com"+tt.path, "", u.headers())
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsDetails() {
	u := registerTestUser(suite.T())
	meals := defaultCategory(suite.T(), u, "Meals")
	category := createTestCategory(suite.T(), u, v1.CategoryEditable{})
	rule := createTestCategoryRule(suite.T(), u, v1.CategoryRuleEditable{CategoryID: meals.ID, Match: "*"})
	payment := createTestScheduledPayment(suite.T(), u, v1.ScheduledPaymentEditable{NextDate: time.Now().AddDate(0, 1, 0)})
	transaction := createTestTransaction(suite.T(), u, v1.TransactionEditable{})
	account := createTestAccount(suite.T(), u, v1.AccountEditable{OverdraftLimit: decimal.NewFromFloat(10)})
	createTestTransaction(suite.T(), u, v1.TransactionEditable{AccountID: account.Data.ID, Type: "WITHDRAWAL", Amount: decimal.NewFromFloat(1)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/alerts", "", u.headers())
	var alerts v1.AlertListResponse
	test.DecodeResponse(suite.T(), &r, &alerts)
	suite.Require().Len(alerts.Data, 1)

	tests := []struct {
		name  string
		url   string
		allow string
	}{
		{"Account", account.Data.Links.Self, "OPTIONS, GET, PATCH, DELETE"},
		{"Account ledger", account.Data.Links.Ledger, "OPTIONS, GET"},
		{"Alert", alerts.Data[0].Links.Self, "OPTIONS, GET, PATCH, DELETE"},
		{"Category", category.Data.Links.Self, "OPTIONS, GET, PATCH, DELETE"},
		{"Default category", meals.Links.Self, "OPTIONS, GET"},
		{"Category rule", rule.Data.Links.Self, "OPTIONS, GET, PATCH, DELETE"},
		{"Scheduled payment", payment.Data.Links.Self, "OPTIONS, GET, PATCH, DELETE"},
		{"Transaction", transaction.Data.Links.Self, "OPTIONS, GET, PATCH"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.url, "", u.headers())
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsDetailsNotFound() {
	u := registerTestUser(suite.T())

	for _, collection := range []string{"accounts", "alerts", "categories", "category-rules", "scheduled-payments", "transactions"} {
		suite.T().Run(collection, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/"+collection+"/"+uuid.NewString(), "", u.headers())
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)

			r = test.Request(t, http.MethodOptions, "http://example.com/v1/"+collection+"/not-a-uuid", "", u.headers())
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

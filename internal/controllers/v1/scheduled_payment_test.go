package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/budget-buddy/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestScheduledPaymentsCreate() {
	u := registerTestUser(suite.T())
	next := time.Date(2030, 1, 31, 15, 4, 5, 0, time.UTC)

	payment := createTestScheduledPayment(suite.T(), u, v1.ScheduledPaymentEditable{Reference: " Rent ", NextDate: next})
	suite.Assert().Equal("Rent", payment.Data.Reference)
	suite.Assert().Equal(time.Date(2030, 1, 31, 0, 0, 0, 0, time.UTC), payment.Data.NextDate, "The time of the next date is dropped")
	suite.Assert().Equal(31, payment.Data.AnchorDay)
	suite.Assert().Equal("http://example.com/v1/transactions?scheduledPayment="+payment.Data.ID.String(), payment.Data.Links.Transactions)

	other := registerTestUser(suite.T())
	foreignCategory := createTestCategory(suite.T(), other, v1.CategoryEditable{})

	tests := []struct {
		name    string
		payment v1.ScheduledPaymentEditable
		status  int
	}{
		{"Negative amount", v1.ScheduledPaymentEditable{Amount: decimal.NewFromFloat(-1)}, http.StatusBadRequest},
		{"Invalid frequency", v1.ScheduledPaymentEditable{Frequency: "DAILY"}, http.StatusBadRequest},
		{"Account of other user", v1.ScheduledPaymentEditable{AccountID: other.AccountID}, http.StatusNotFound},
		{"Category of other user", v1.ScheduledPaymentEditable{CategoryID: &foreignCategory.Data.ID}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestScheduledPayment(t, u, tt.payment, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/scheduled-payments", []map[string]any{{
		"accountId": u.AccountID,
		"amount":    "10",
		"frequency": "WEEKLY",
	}}, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestScheduledPaymentsGetFilter() {
	u := registerTestUser(suite.T())
	savings := createTestAccount(suite.T(), u, v1.AccountEditable{})
	housing := defaultCategory(suite.T(), u, "Housing")

	createTestScheduledPayment(suite.T(), u, v1.ScheduledPaymentEditable{Reference: "Rent", CategoryID: &housing.ID, NextDate: time.Now().AddDate(0, 0, 3)})
	createTestScheduledPayment(suite.T(), u, v1.ScheduledPaymentEditable{Reference: "Gym", Frequency: "WEEKLY", Paused: true, NextDate: time.Now().AddDate(0, 0, 1)})
	createTestScheduledPayment(suite.T(), u, v1.ScheduledPaymentEditable{Reference: "Insurance", Frequency: "YEARLY", AccountID: savings.Data.ID})

	tests := []struct {
		name  string
		query string
		first string
		len   int
	}{
		{"All, by next date", "", "Gym", 3},
		{"Account", "account=" + savings.Data.ID.String(), "Insurance", 1},
		{"Category", "category=" + housing.ID.String(), "Rent", 1},
		{"Frequency", "frequency=MONTHLY", "Rent", 1},
		{"Paused", "paused=true", "Gym", 1},
		{"Active", "paused=false", "Rent", 2},
		{"Reference", "reference=sur", "Insurance", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/scheduled-payments?"+tt.query, "", u.headers())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.ScheduledPaymentListResponse
			test.DecodeResponse(t, &r, &list)
			if assert.Len(t, list.Data, tt.len) {
				assert.Equal(t, tt.first, list.Data[0].Reference)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestScheduledPaymentsUpdate() {
	u := registerTestUser(suite.T())
	other := registerTestUser(suite.T())
	savings := createTestAccount(suite.T(), u, v1.AccountEditable{})

	payment := createTestScheduledPayment(suite.T(), u, v1.ScheduledPaymentEditable{NextDate: time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)})
	path := payment.Data.Links.Self

	r := test.Request(suite.T(), http.MethodPatch, path, map[string]any{
		"nextDate":  "2030-03-31T10:00:00Z",
		"accountId": savings.Data.ID,
		"paused":    true,
	}, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ScheduledPaymentResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(time.Date(2030, 3, 31, 0, 0, 0, 0, time.UTC), updated.Data.NextDate)
	suite.Assert().Equal(31, updated.Data.AnchorDay, "The anchor day must follow the next date")
	suite.Assert().Equal(savings.Data.ID, updated.Data.AccountID)
	suite.Assert().True(updated.Data.Paused)
	suite.Assert().True(updated.Data.Amount.Equal(decimal.NewFromFloat(25)), "Fields not in the body must not be changed")

	tests := []struct {
		name    string
		body    any
		headers map[string]string
		status  int
	}{
		{"Zero amount", map[string]any{"amount": "0"}, u.headers(), http.StatusBadRequest},
		{"Invalid frequency", map[string]any{"frequency": "HOURLY"}, u.headers(), http.StatusBadRequest},
		{"Account of other user", map[string]any{"accountId": other.AccountID}, u.headers(), http.StatusBadRequest},
		{"Other user", map[string]any{"paused": false}, other.headers(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, path, tt.body, tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r = test.Request(suite.T(), http.MethodDelete, path, "", other.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, path, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, path, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestScheduledPaymentsProcess() {
	u := registerTestUser(suite.T())
	createTestTransaction(suite.T(), u, v1.TransactionEditable{Amount: decimal.NewFromFloat(100)})

	weekly := createTestScheduledPayment(suite.T(), u, v1.ScheduledPaymentEditable{
		Reference: "Cleaning",
		Frequency: "WEEKLY",
		NextDate:  time.Now().AddDate(0, 0, -14),
	})
	createTestScheduledPayment(suite.T(), u, v1.ScheduledPaymentEditable{Reference: "Paused", Paused: true, NextDate: time.Now().AddDate(0, 0, -1)})
	createTestScheduledPayment(suite.T(), u, v1.ScheduledPaymentEditable{Reference: "Future"})

	// Payments of other users are not processed
	other := registerTestUser(suite.T())
	createTestTransaction(suite.T(), other, v1.TransactionEditable{Amount: decimal.NewFromFloat(100)})
	foreign := createTestScheduledPayment(suite.T(), other, v1.ScheduledPaymentEditable{NextDate: time.Now().AddDate(0, 0, -1)})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/scheduled-payments/process", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var result v1.ScheduledPaymentProcessResponse
	test.DecodeResponse(suite.T(), &r, &result)
	suite.Assert().Equal(3, result.Data.Posted, "Three weekly occurrences are due")
	suite.Assert().Equal(0, result.Data.Failed)

	a := getAccount(suite.T(), u, u.AccountID)
	suite.Assert().True(a.Balance.Equal(decimal.NewFromFloat(25)), "Balance is %s", a.Balance)

	r = test.Request(suite.T(), http.MethodGet, weekly.Data.Links.Transactions, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	suite.Assert().Len(transactions.Data, 3)
	for _, transaction := range transactions.Data {
		suite.Assert().Equal("Cleaning", transaction.Note, "The reference is used as note")
		suite.Assert().Equal(models.TransactionTypeWithdrawal, transaction.Type)
	}

	r = test.Request(suite.T(), http.MethodGet, weekly.Data.Links.Self, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var processed v1.ScheduledPaymentResponse
	test.DecodeResponse(suite.T(), &r, &processed)
	suite.Assert().True(processed.Data.NextDate.After(time.Now()), "Next date must be in the future, is %s", processed.Data.NextDate)

	// Processing again posts nothing
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/scheduled-payments/process", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &result)
	suite.Assert().Equal(0, result.Data.Posted)

	r = test.Request(suite.T(), http.MethodGet, foreign.Data.Links.Self, "", other.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var untouched v1.ScheduledPaymentResponse
	test.DecodeResponse(suite.T(), &r, &untouched)
	suite.Assert().Equal(foreign.Data.NextDate, untouched.Data.NextDate)
}

func (suite *TestSuiteStandard) TestScheduledPaymentsProcessInsufficientFunds() {
	u := registerTestUser(suite.T())

	payment := createTestScheduledPayment(suite.T(), u, v1.ScheduledPaymentEditable{
		Reference: "Rent",
		Amount:    decimal.NewFromFloat(850),
		NextDate:  time.Now().AddDate(0, 0, -1),
	})

	for range 2 {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/scheduled-payments/process", "", u.headers())
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var result v1.ScheduledPaymentProcessResponse
		test.DecodeResponse(suite.T(), &r, &result)
		suite.Assert().Equal(0, result.Data.Posted)
		suite.Assert().Equal(1, result.Data.Failed)
	}

	r := test.Request(suite.T(), http.MethodGet, payment.Data.Links.Self, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var unchanged v1.ScheduledPaymentResponse
	test.DecodeResponse(suite.T(), &r, &unchanged)
	suite.Assert().Equal(payment.Data.NextDate, unchanged.Data.NextDate, "Failed payments stay at their next date")

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/alerts?type=SCHEDULED_PAYMENT_FAILED", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var alerts v1.AlertListResponse
	test.DecodeResponse(suite.T(), &r, &alerts)
	suite.Require().Len(alerts.Data, 1, "Failure alerts must not be repeated while unread")
	suite.Assert().Equal(payment.Data.ID, *alerts.Data[0].ScheduledPaymentID)
	suite.Assert().Contains(alerts.Data[0].Message, "Rent")
}

func (suite *TestSuiteStandard) TestScheduledPaymentsGetSingle() {
	u := registerTestUser(suite.T())
	payment := createTestScheduledPayment(suite.T(), u, v1.ScheduledPaymentEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", payment.Data.ID.String(), http.StatusOK},
		{"Not found", uuid.NewString(), http.StatusNotFound},
		{"Not a UUID", "rent", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/scheduled-payments/"+tt.id, "", u.headers())
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

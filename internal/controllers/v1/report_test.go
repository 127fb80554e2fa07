package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/budget-buddy/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createReportData creates transactions in the current and the previous month.
func createReportData(t *testing.T, u testUser) (current, previous types.Month, meals v1.Category) {
	current = types.MonthOf(time.Now())
	previous = current.AddDate(0, -1)
	meals = defaultCategory(t, u, "Meals")
	savings := createTestAccount(t, u, v1.AccountEditable{})

	createTestTransaction(t, u, v1.TransactionEditable{Amount: decimal.NewFromFloat(50), Date: previous.Date(15)})
	createTestTransaction(t, u, v1.TransactionEditable{Amount: decimal.NewFromFloat(100), Date: current.Start()})
	createTestTransaction(t, u, v1.TransactionEditable{Type: "WITHDRAWAL", Amount: decimal.NewFromFloat(30), CategoryID: &meals.ID, Date: current.Start()})
	createTestTransaction(t, u, v1.TransactionEditable{Type: "WITHDRAWAL", Amount: decimal.NewFromFloat(20), Date: current.Start()})
	createTestTransaction(t, u, v1.TransactionEditable{Type: "TRANSFER", DestinationAccountID: &savings.Data.ID, Amount: decimal.NewFromFloat(10), Date: current.Start()})

	return current, previous, meals
}

func (suite *TestSuiteStandard) TestReportsRoot() {
	u := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var root v1.ReportRootResponse
	test.DecodeResponse(suite.T(), &r, &root)
	suite.Assert().Equal("http://example.com/v1/reports/monthly", root.Links.Monthly)
	suite.Assert().Equal("http://example.com/v1/reports/categories", root.Links.Categories)
}

func (suite *TestSuiteStandard) TestReportsMonthly() {
	u := registerTestUser(suite.T())
	current, previous, _ := createReportData(suite.T(), u)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/monthly?months=2", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var report v1.MonthlyReportResponse
	test.DecodeResponse(suite.T(), &r, &report)
	suite.Require().Len(report.Data, 2)

	suite.Assert().Equal(previous, report.Data[0].Month)
	suite.Assert().True(report.Data[0].Income.Equal(decimal.NewFromFloat(50)), "Income is %s", report.Data[0].Income)
	suite.Assert().True(report.Data[0].Expenses.IsZero())

	suite.Assert().Equal(current, report.Data[1].Month)
	suite.Assert().True(report.Data[1].Income.Equal(decimal.NewFromFloat(100)), "Income is %s", report.Data[1].Income)
	suite.Assert().True(report.Data[1].Expenses.Equal(decimal.NewFromFloat(50)), "Transfers must not count as expenses, expenses are %s", report.Data[1].Expenses)
	suite.Assert().True(report.Data[1].Net.Equal(decimal.NewFromFloat(50)), "Net is %s", report.Data[1].Net)

	// Defaults to twelve months up to the current one
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/monthly", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &report)
	suite.Require().Len(report.Data, models.DefaultReportMonths)
	suite.Assert().Equal(current, report.Data[len(report.Data)-1].Month)

	// Ending with the previous month
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/monthly?months=1&month="+previous.String(), "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &report)
	suite.Require().Len(report.Data, 1)
	suite.Assert().True(report.Data[0].Net.Equal(decimal.NewFromFloat(50)))
}

func (suite *TestSuiteStandard) TestReportsMonthlyFails() {
	u := registerTestUser(suite.T())

	for _, query := range []string{"months=0", "months=-3", "months=121", "months=many", "month=2024-13"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/reports/monthly?"+query, "", u.headers())
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestReportsCategories() {
	u := registerTestUser(suite.T())
	current, previous, meals := createReportData(suite.T(), u)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/categories", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var report v1.CategoryReportResponse
	test.DecodeResponse(suite.T(), &r, &report)
	suite.Assert().Equal(current, report.Month)
	suite.Require().Len(report.Data, 2)

	suite.Assert().Equal(meals.ID, *report.Data[0].CategoryID)
	suite.Assert().Equal("Meals", report.Data[0].Name)
	suite.Assert().True(report.Data[0].Total.Equal(decimal.NewFromFloat(30)))
	suite.Assert().Equal(1, report.Data[0].Count)

	suite.Assert().Nil(report.Data[1].CategoryID)
	suite.Assert().Equal(models.UncategorizedName, report.Data[1].Name)
	suite.Assert().True(report.Data[1].Total.Equal(decimal.NewFromFloat(20)))

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/categories?month="+previous.String(), "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &report)
	assert.Len(suite.T(), report.Data, 0, "Deposits are not expenses")

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/categories?month=March", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

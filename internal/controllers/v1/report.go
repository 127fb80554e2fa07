package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/budget-buddy/backend/internal/auth"
	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/budget-buddy/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

var errMonthsInvalid = errors.New("the number of months must be between 1 and 120")

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsReports)
		r.GET("", GetReports)
	}

	{
		r.OPTIONS("/monthly", OptionsReports)
		r.GET("/monthly", GetMonthlyReport)
	}

	{
		r.OPTIONS("/categories", OptionsReports)
		r.GET("/categories", GetCategoryReport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Security		BearerAuth
// @Router			/v1/reports [options]
// @Router			/v1/reports/monthly [options]
// @Router			/v1/reports/categories [options]
func OptionsReports(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Reports
// @Description	Returns links to the available reports
// @Tags			Reports
// @Success		200	{object}	ReportRootResponse
// @Security		BearerAuth
// @Router			/v1/reports [get]
func GetReports(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, ReportRootResponse{
		Links: ReportLinks{
			Monthly:    url + "/v1/reports/monthly",
			Categories: url + "/v1/reports/categories",
		},
	})
}

// @Summary		Monthly report
// @Description	Returns income, expenses and their difference for each month. Transfers between accounts are neither income nor expenses.
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	MonthlyReportResponse
// @Failure		400		{object}	MonthlyReportResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	MonthlyReportResponse
// @Param			month	query		string	false	"Last month of the report, YYYY-MM. Defaults to the current month."
// @Param			months	query		int		false	"Number of months. Defaults to 12."
// @Security		BearerAuth
// @Router			/v1/reports/monthly [get]
func GetMonthlyReport(c *gin.Context) {
	var query MonthlyReportQuery
	if err := c.Bind(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, MonthlyReportResponse{
			Error: &e,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, query)
	if query.Months > models.MaxReportMonths || (slices.Contains(setFields, "Months") && query.Months <= 0) {
		e := errMonthsInvalid.Error()
		c.JSON(http.StatusBadRequest, MonthlyReportResponse{
			Error: &e,
		})
		return
	}

	month := query.Month
	if month.IsZero() {
		month = types.MonthOf(time.Now())
	}

	summaries, err := models.MonthlySummaries(models.DB, auth.User(c).ID, month, query.Months)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyReportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, MonthlyReportResponse{Data: summaries})
}

// @Summary		Category report
// @Description	Returns the expenses of a month grouped by category
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	CategoryReportResponse
// @Failure		400		{object}	CategoryReportResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	CategoryReportResponse
// @Param			month	query		string	false	"Month of the report, YYYY-MM. Defaults to the current month."
// @Security		BearerAuth
// @Router			/v1/reports/categories [get]
func GetCategoryReport(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, CategoryReportResponse{
			Error: &e,
		})
		return
	}

	month := query.Month
	if month.IsZero() {
		month = types.MonthOf(time.Now())
	}

	summaries, err := models.CategorySummaries(models.DB, auth.User(c).ID, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryReportResponse{
			Error: &e,
			Month: month,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryReportResponse{Data: summaries, Month: month})
}

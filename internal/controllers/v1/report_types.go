package v1

import (
	"github.com/budget-buddy/backend/internal/models"
	"github.com/budget-buddy/backend/internal/types"
)

type ReportLinks struct {
	Monthly    string `json:"monthly" example:"https://example.com/api/v1/reports/monthly"`       // Income and expenses per month
	Categories string `json:"categories" example:"https://example.com/api/v1/reports/categories"` // Expenses per category for a month
}

type ReportRootResponse struct {
	Links ReportLinks `json:"links"`
}

type MonthlyReportQuery struct {
	Month  types.Month `form:"month" example:"2024-03"` // Last month of the report. Defaults to the current month
	Months int         `form:"months" example:"12"`     // Number of months. Defaults to 12, at most 120
}

type MonthlyReportResponse struct {
	Error *string                 `json:"error" example:"the specified month is not valid"` // The error, if any occurred
	Data  []models.MonthlySummary `json:"data"`                                             // Summaries, oldest month first
}

type CategoryReportResponse struct {
	Error *string                  `json:"error" example:"the specified month is not valid"` // The error, if any occurred
	Month types.Month              `json:"month" swaggertype:"string" example:"2024-03"`     // The month of the report
	Data  []models.CategorySummary `json:"data"`                                             // Expenses per category, highest total first
}

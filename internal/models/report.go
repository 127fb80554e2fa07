package models

import (
	"strings"

	"github.com/budget-buddy/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const (
	DefaultReportMonths = 12
	MaxReportMonths     = 120
)

// MonthlySummary is the income and the expenses of a user for one month.
type MonthlySummary struct {
	Month    types.Month     `json:"month" swaggertype:"string" example:"2024-01"` // The month
	Income   decimal.Decimal `json:"income" example:"2500"`                        // Sum of all deposits
	Expenses decimal.Decimal `json:"expenses" example:"1834.56"`                   // Sum of all withdrawals and external transfers
	Net      decimal.Decimal `json:"net" example:"665.44"`                         // Income minus expenses
}

// CategorySummary is the sum of expenses for a category in a month.
type CategorySummary struct {
	CategoryID *uuid.UUID      `json:"categoryId" example:"0c0a54e4-5f2f-4e7b-9e1c-3b5cf6d3e1a4"` // ID of the category, null for uncategorized withdrawals
	Name       string          `json:"name" example:"Meals"`                                      // Name of the category
	Total      decimal.Decimal `json:"total" example:"412.37"`                                    // Sum of all withdrawals and external transfers
	Count      int             `json:"count" example:"17"`                                        // Number of withdrawals and external transfers
}

// UncategorizedName is used for withdrawals without a category.
const UncategorizedName = "Uncategorized"

// MonthlySummaries returns the summaries for the given number of months
// ending with the current month, oldest first. Months without transactions
// are included. Transfers move money between accounts of the user and are
// neither income nor expenses.
func MonthlySummaries(db *gorm.DB, userID uuid.UUID, current types.Month, months int) ([]MonthlySummary, error) {
	if months <= 0 {
		months = DefaultReportMonths
	}
	if months > MaxReportMonths {
		months = MaxReportMonths
	}

	first := current.AddDate(0, -(months - 1))

	var transactions []Transaction
	err := db.
		Scopes(TransactionsOf(userID)).
		Where("transactions.type IN (?)", append([]TransactionType{TransactionTypeDeposit}, ExpenseTypes...)).
		Where("transactions.date >= date(?) AND transactions.date < date(?)", first.Start(), current.End()).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]MonthlySummary, months)
	index := make(map[string]int, months)
	for i := range summaries {
		month := first.AddDate(0, i)
		summaries[i] = MonthlySummary{
			Month:    month,
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Net:      decimal.Zero,
		}
		index[month.String()] = i
	}

	for _, t := range transactions {
		i, ok := index[types.MonthOf(t.Date).String()]
		if !ok {
			continue
		}

		if t.Type == TransactionTypeDeposit {
			summaries[i].Income = summaries[i].Income.Add(t.Amount)
		} else {
			summaries[i].Expenses = summaries[i].Expenses.Add(t.Amount)
		}
	}

	for i := range summaries {
		summaries[i].Net = summaries[i].Income.Sub(summaries[i].Expenses)
	}

	return summaries, nil
}

// CategorySummaries returns the expenses of the user in the month
// grouped by category, highest total first.
func CategorySummaries(db *gorm.DB, userID uuid.UUID, month types.Month) ([]CategorySummary, error) {
	var transactions []Transaction
	err := db.
		Scopes(TransactionsOf(userID)).
		Where("transactions.type IN (?)", ExpenseTypes).
		Where("transactions.date >= date(?) AND transactions.date < date(?)", month.Start(), month.End()).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	// Categories deleted after posting are still reported with their name
	var categories []Category
	err = db.Unscoped().Scopes(CategoriesVisibleTo(userID)).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	totals := make(map[uuid.UUID]*CategorySummary)
	for _, t := range transactions {
		key := uuid.Nil
		if t.CategoryID != nil {
			key = *t.CategoryID
		}

		summary, ok := totals[key]
		if !ok {
			summary = &CategorySummary{Name: UncategorizedName, Total: decimal.Zero}
			if key != uuid.Nil {
				id := key
				summary.CategoryID = &id
				summary.Name = names[key]
			}
			totals[key] = summary
		}

		summary.Total = summary.Total.Add(t.Amount)
		summary.Count++
	}

	summaries := make([]CategorySummary, 0, len(totals))
	for _, s := range totals {
		summaries = append(summaries, *s)
	}

	slices.SortFunc(summaries, func(a, b CategorySummary) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	return summaries, nil
}

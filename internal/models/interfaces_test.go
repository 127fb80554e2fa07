package models_test

import (
	"encoding/json"

	"github.com/budget-buddy/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExport() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestAccount(models.Account{UserID: user.ID, InitialBalance: decimal.NewFromFloat(10)})
	_ = suite.createTestCategory(models.Category{UserID: &user.ID})
	_ = suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Type:      models.TransactionTypeWithdrawal,
		Amount:    decimal.NewFromFloat(10),
	})

	// Resources of other users are never exported
	other := suite.createTestAccount(models.Account{})
	_ = suite.createTestCategory(models.Category{UserID: &other.UserID})
	_ = suite.createTestTransaction(models.Transaction{
		AccountID: other.ID,
		Type:      models.TransactionTypeDeposit,
		Amount:    decimal.NewFromFloat(10),
	})

	// Deleted accounts are part of the export
	account = suite.reloadAccount(account)
	suite.Require().Nil(models.DB.Delete(&account).Error)

	tests := []struct {
		model models.Exporter
		count int
	}{
		{models.User{}, 1},
		{models.Account{}, 1},
		{models.Category{}, 1},
		{models.Transaction{}, 1},
		{models.Alert{}, 0},
		{models.CategoryRule{}, 0},
		{models.ScheduledPayment{}, 0},
	}

	for _, tt := range tests {
		raw, err := tt.model.Export(models.DB, user.ID)
		suite.Require().Nil(err)

		var resources []map[string]any
		suite.Require().Nil(json.Unmarshal(raw, &resources))
		suite.Assert().Len(resources, tt.count, "Wrong number of resources for %T", tt.model)
	}

	suite.Assert().Len(models.Registry, len(tests), "Every exported model needs to be tested")
}

func (suite *TestSuiteStandard) TestExportPasswordHashHidden() {
	user := suite.createTestUser(models.User{PasswordHash: "$2a$10$secret"})

	raw, err := models.User{}.Export(models.DB, user.ID)
	suite.Require().Nil(err)
	suite.Assert().NotContains(string(raw), "secret")
}

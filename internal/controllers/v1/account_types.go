package v1

import (
	"fmt"

	"github.com/budget-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountEditable struct {
	Name           string          `json:"name" example:"Checking account" default:""`       // Name of the account
	Note           string          `json:"note" example:"Joint account with Ada" default:""` // A longer description for the account
	InitialBalance decimal.Decimal `json:"initialBalance" example:"173.12" default:"0"`      // Balance of the account before any transactions. Cannot be changed after creation
	OverdraftLimit decimal.Decimal `json:"overdraftLimit" example:"500" default:"0"`         // How far the balance may go below zero
}

// model returns the database resource for the API representation of the editable fields
func (editable AccountEditable) model(userID uuid.UUID) models.Account {
	return models.Account{
		UserID:         userID,
		Name:           editable.Name,
		Note:           editable.Note,
		InitialBalance: editable.InitialBalance,
		OverdraftLimit: editable.OverdraftLimit,
	}
}

type AccountLinks struct {
	Self              string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                // The account itself
	Ledger            string `json:"ledger" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2/ledger"`                       // Verification of the balance against the ledger
	Transactions      string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`            // Transactions of the account
	ScheduledPayments string `json:"scheduledPayments" example:"https://example.com/api/v1/scheduled-payments?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Scheduled payments of the account
}

// Account is the representation of an Account in API v1.
type Account struct {
	models.DefaultModel
	AccountEditable
	Balance   decimal.Decimal `json:"balance" example:"2735.17"`   // Current balance
	Available decimal.Decimal `json:"available" example:"3235.17"` // Amount that can be spent, including the overdraft limit
	Links     AccountLinks    `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:           model.Name,
			Note:           model.Note,
			InitialBalance: model.InitialBalance,
			OverdraftLimit: model.OverdraftLimit,
		},
		Balance:   model.Balance,
		Available: model.Available(),
		Links: AccountLinks{
			Self:              fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Ledger:            fmt.Sprintf("%s/v1/accounts/%s/ledger", url, model.ID),
			Transactions:      fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
			ScheduledPayments: fmt.Sprintf("%s/v1/scheduled-payments?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created Accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this Account
	Data  *Account `json:"data"`                                                          // Data for the Account
}

type AccountQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Fuzzy filter for the account name
	Note   string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Search string `form:"search" filterField:"false"` // Search for this text in name and note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Account returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Accounts to return. Defaults to 50.
}

// AccountLedger is the result of the verification of an account
// balance against its ledger.
type AccountLedger struct {
	Balance       decimal.Decimal `json:"balance" example:"2735.17"`       // Stored balance of the account
	LedgerBalance decimal.Decimal `json:"ledgerBalance" example:"2735.17"` // Balance computed from the initial balance and all transactions
	Consistent    bool            `json:"consistent" example:"true"`       // Whether both balances are equal
}

type AccountLedgerResponse struct {
	Error *string        `json:"error" example:"there is no account matching your query"` // The error, if any occurred
	Data  *AccountLedger `json:"data"`                                                    // The verification result
}

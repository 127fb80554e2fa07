package v1

import (
	"fmt"
	"time"

	"github.com/budget-buddy/backend/internal/models"
	bb_uuid "github.com/budget-buddy/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	AccountID            uuid.UUID              `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                        // ID of the account the transaction is posted to
	DestinationAccountID *uuid.UUID             `json:"destinationAccountId" example:"7a9ba59d-4e43-4bfa-a83e-5e7b6d3eb50c"`             // ID of the destination account. Only set for transfers
	Type                 models.TransactionType `json:"type" example:"WITHDRAWAL" enums:"DEPOSIT,WITHDRAWAL,TRANSFER,EXTERNAL_TRANSFER"` // Type of the transaction
	Amount               decimal.Decimal        `json:"amount" example:"14.03" minimum:"0.01"`                                           // The amount. Must be positive, with no more than two decimal places
	Reference            string                 `json:"reference" example:"INV-2024-0117" default:""`                                    // Reference of the transaction. Generated if empty
	Note                 string                 `json:"note" example:"Lunch" default:""`                                                 // A note for the transaction
	CategoryID           *uuid.UUID             `json:"categoryId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"`                       // ID of the category. If not set, the category rules are applied
	Date                 time.Time              `json:"date" example:"1815-12-10T18:43:00.271152Z"`                                      // Date of the transaction. Defaults to now
	Beneficiary          string                 `json:"beneficiary" example:"Landlord Ltd" default:""`                                   // Recipient of an external transfer
	IBAN                 string                 `json:"iban" example:"DE89 3704 0044 0532 0130 00" default:""`                           // IBAN the external transfer is sent to. Spaces are removed
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		AccountID:            editable.AccountID,
		DestinationAccountID: editable.DestinationAccountID,
		Type:                 editable.Type,
		Amount:               editable.Amount,
		Reference:            editable.Reference,
		Note:                 editable.Note,
		CategoryID:           editable.CategoryID,
		Date:                 editable.Date,
		Beneficiary:          editable.Beneficiary,
		IBAN:                 editable.IBAN,
	}
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Account string `json:"account" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`  // The account the transaction is posted to
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	BalanceAfter       decimal.Decimal       `json:"balanceAfter" example:"1034.17"`                                    // Balance of the account after the transaction was posted
	CategoryRuleID     *uuid.UUID            `json:"categoryRuleId" example:"95685c82-53c6-455d-b235-f49960b73b21"`     // The category rule that set the category, if any
	ScheduledPaymentID *uuid.UUID            `json:"scheduledPaymentId" example:"1e1a4b1c-2bb2-4f4c-9a51-d4b6bb0d3e66"` // The scheduled payment that created the transaction, if any
	Status             models.TransferStatus `json:"status" example:"PENDING" enums:"PENDING"`                          // Status of an external transfer. Empty for all other types
	Links              TransactionLinks      `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			AccountID:            model.AccountID,
			DestinationAccountID: model.DestinationAccountID,
			Type:                 model.Type,
			Amount:               model.Amount,
			Reference:            model.Reference,
			Note:                 model.Note,
			CategoryID:           model.CategoryID,
			Date:                 model.Date,
			Beneficiary:          model.Beneficiary,
			IBAN:                 model.IBAN,
		},
		Status:             model.Status,
		BalanceAfter:       model.BalanceAfter,
		CategoryRuleID:     model.CategoryRuleID,
		ScheduledPaymentID: model.ScheduledPaymentID,
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	AccountID          bb_uuid.UUID           `form:"account" filterField:"false"`           // ID of an account the transaction is posted to, either as source or destination
	Type               models.TransactionType `form:"type"`                                  // Type of the transaction
	CategoryID         bb_uuid.UUID           `form:"category"`                              // ID of the category
	Reference          string                 `form:"reference"`                             // Exact reference
	ScheduledPaymentID bb_uuid.UUID           `form:"scheduledPayment"`                      // ID of the scheduled payment that created the transaction
	FromDate           time.Time              `form:"fromDate" filterField:"false"`          // From this date. Time is ignored.
	UntilDate          time.Time              `form:"untilDate" filterField:"false"`         // Until this date. Time is ignored.
	AmountLessOrEqual  decimal.Decimal        `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual  decimal.Decimal        `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Note               string                 `form:"note" filterField:"false"`              // Note contains this string
	Sort               string                 `form:"sort" filterField:"false"`              // Field to sort by. One of date, amount, type or category
	Order              string                 `form:"order" filterField:"false"`             // Sort order. asc or desc
	Offset             uint                   `form:"offset" filterField:"false"`            // The offset of the first Transaction returned. Defaults to 0.
	Limit              int                    `form:"limit" filterField:"false"`             // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Type:               f.Type,
		CategoryID:         f.CategoryID.Ptr(),
		Reference:          f.Reference,
		ScheduledPaymentID: f.ScheduledPaymentID.Ptr(),
	}
}

// transactionSortColumns maps the sort parameter to the column to sort by.
var transactionSortColumns = map[string]string{
	"date":     "datetime(transactions.date)",
	"amount":   "transactions.amount",
	"type":     "transactions.type",
	"category": "(SELECT categories.name FROM categories WHERE categories.id = transactions.category_id)",
}

// order returns the ORDER BY clause for the filter.
func (f TransactionQueryFilter) order() (string, error) {
	sort := f.Sort
	if sort == "" {
		sort = "date"
	}

	column, ok := transactionSortColumns[sort]
	if !ok {
		return "", errSortInvalid
	}

	direction := "DESC"
	switch f.Order {
	case "":
	case "asc":
		direction = "ASC"
	case "desc":
		direction = "DESC"
	default:
		return "", errOrderInvalid
	}

	return fmt.Sprintf("%s %s, datetime(transactions.created_at) %s", column, direction, direction), nil
}

// TransactionCSV is a transaction in the CSV export.
type TransactionCSV struct {
	ID                   string `csv:"id"`
	Date                 string `csv:"date"`
	Type                 string `csv:"type"`
	AccountID            string `csv:"account_id"`
	DestinationAccountID string `csv:"destination_account_id"`
	Amount               string `csv:"amount"`
	BalanceAfter         string `csv:"balance_after"`
	CategoryID           string `csv:"category_id"`
	Reference            string `csv:"reference"`
	Note                 string `csv:"note"`
	Beneficiary          string `csv:"beneficiary"`
	IBAN                 string `csv:"iban"`
	Status               string `csv:"status"`
}

func newTransactionCSV(t models.Transaction) TransactionCSV {
	row := TransactionCSV{
		ID:           t.ID.String(),
		Date:         t.Date.Format(time.RFC3339),
		Type:         string(t.Type),
		AccountID:    t.AccountID.String(),
		Amount:       t.Amount.StringFixed(2),
		BalanceAfter: t.BalanceAfter.StringFixed(2),
		Reference:    t.Reference,
		Note:         t.Note,
		Beneficiary:  t.Beneficiary,
		IBAN:         t.IBAN,
		Status:       string(t.Status),
	}

	if t.DestinationAccountID != nil {
		row.DestinationAccountID = t.DestinationAccountID.String()
	}

	if t.CategoryID != nil {
		row.CategoryID = t.CategoryID.String()
	}

	return row
}

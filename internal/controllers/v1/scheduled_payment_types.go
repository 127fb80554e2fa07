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

type ScheduledPaymentEditable struct {
	AccountID  uuid.UUID        `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`  // ID of the account the payment is withdrawn from
	Reference  string           `json:"reference" example:"Rent" default:""`                       // Name of the payment
	Note       string           `json:"note" example:"Flat on Main Street" default:""`             // Note for the transactions. The reference is used if empty
	Amount     decimal.Decimal  `json:"amount" example:"850" minimum:"0.01"`                       // Amount withdrawn for every occurrence
	CategoryID *uuid.UUID       `json:"categoryId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"` // ID of the category for the transactions
	Frequency  models.Frequency `json:"frequency" example:"MONTHLY" enums:"WEEKLY,MONTHLY,YEARLY"` // How often the payment is due
	NextDate   time.Time        `json:"nextDate" example:"2024-02-01T00:00:00Z"`                   // Date the next payment is due. Time is ignored
	Paused     bool             `json:"paused" example:"false" default:"false"`                    // Paused payments are not posted
}

// model returns the database resource for the API representation of the editable fields.
//
// Monthly and yearly payments are anchored on the day of the next date.
func (editable ScheduledPaymentEditable) model() models.ScheduledPayment {
	payment := models.ScheduledPayment{
		AccountID:  editable.AccountID,
		Reference:  editable.Reference,
		Note:       editable.Note,
		Amount:     editable.Amount,
		CategoryID: editable.CategoryID,
		Frequency:  editable.Frequency,
		NextDate:   editable.NextDate,
		Paused:     editable.Paused,
	}

	if !payment.NextDate.IsZero() {
		payment.NextDate = models.Day(payment.NextDate)
		payment.AnchorDay = payment.NextDate.Day()
	}

	return payment
}

type ScheduledPaymentLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/scheduled-payments/1e1a4b1c-2bb2-4f4c-9a51-d4b6bb0d3e66"`                    // The scheduled payment itself
	Account      string `json:"account" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                           // The account the payment is withdrawn from
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?scheduledPayment=1e1a4b1c-2bb2-4f4c-9a51-d4b6bb0d3e66"` // Transactions posted for the payment
}

// ScheduledPayment is the representation of a ScheduledPayment in API v1.
type ScheduledPayment struct {
	models.DefaultModel
	ScheduledPaymentEditable
	AnchorDay int                   `json:"anchorDay" example:"31"` // Day of the month that monthly and yearly payments are due on
	Links     ScheduledPaymentLinks `json:"links"`
}

func newScheduledPayment(c *gin.Context, model models.ScheduledPayment) ScheduledPayment {
	url := c.GetString(string(models.DBContextURL))

	return ScheduledPayment{
		DefaultModel: model.DefaultModel,
		ScheduledPaymentEditable: ScheduledPaymentEditable{
			AccountID:  model.AccountID,
			Reference:  model.Reference,
			Note:       model.Note,
			Amount:     model.Amount,
			CategoryID: model.CategoryID,
			Frequency:  model.Frequency,
			NextDate:   model.NextDate,
			Paused:     model.Paused,
		},
		AnchorDay: model.AnchorDay,
		Links: ScheduledPaymentLinks{
			Self:         fmt.Sprintf("%s/v1/scheduled-payments/%s", url, model.ID),
			Account:      fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
			Transactions: fmt.Sprintf("%s/v1/transactions?scheduledPayment=%s", url, model.ID),
		},
	}
}

type ScheduledPaymentListResponse struct {
	Data       []ScheduledPayment `json:"data"`                                                          // List of scheduled payments
	Error      *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination        `json:"pagination"`                                                    // Pagination information
}

type ScheduledPaymentCreateResponse struct {
	Error *string                    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ScheduledPaymentResponse `json:"data"`                                                          // List of created scheduled payments
}

func (s *ScheduledPaymentCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, ScheduledPaymentResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ScheduledPaymentResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this scheduled payment
	Data  *ScheduledPayment `json:"data"`                                                          // Data for the scheduled payment
}

type ScheduledPaymentQueryFilter struct {
	AccountID  bb_uuid.UUID     `form:"account"`                       // By ID of the account
	CategoryID bb_uuid.UUID     `form:"category"`                      // By ID of the category
	Frequency  models.Frequency `form:"frequency"`                     // By frequency
	Paused     bool             `form:"paused"`                        // Paused or active payments
	Reference  string           `form:"reference" filterField:"false"` // Reference contains this string
	Offset     uint             `form:"offset" filterField:"false"`    // The offset of the first scheduled payment returned. Defaults to 0.
	Limit      int              `form:"limit" filterField:"false"`     // Maximum number of scheduled payments to return. Defaults to 50.
}

func (f ScheduledPaymentQueryFilter) model() models.ScheduledPayment {
	return models.ScheduledPayment{
		AccountID:  f.AccountID.UUID,
		CategoryID: f.CategoryID.Ptr(),
		Frequency:  f.Frequency,
		Paused:     f.Paused,
	}
}

type ScheduledPaymentProcessResponse struct {
	Error *string               `json:"error" example:"the database is busy, please try again"` // The error, if any occurred
	Data  *models.ProcessResult `json:"data"`                                                   // The result of processing
}

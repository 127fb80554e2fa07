package v1

import (
	"fmt"

	"github.com/budget-buddy/backend/internal/models"
	bb_uuid "github.com/budget-buddy/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AlertEditable contains the fields of an alert that can be changed.
type AlertEditable struct {
	Read bool `json:"read" example:"true"` // Whether the alert has been read
}

type AlertLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/alerts/4f3c4a4b-8c9e-4e3e-9d52-1c0d6f0c3b1e"` // The alert itself
}

// Alert is the representation of an Alert in API v1.
type Alert struct {
	models.DefaultModel
	AlertEditable
	AccountID          *uuid.UUID       `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`            // ID of the account the alert is about
	TransactionID      *uuid.UUID       `json:"transactionId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`        // ID of the transaction that caused the alert
	ScheduledPaymentID *uuid.UUID       `json:"scheduledPaymentId" example:"1e1a4b1c-2bb2-4f4c-9a51-d4b6bb0d3e66"`   // ID of the scheduled payment that failed
	Type               models.AlertType `json:"type" example:"OVERDRAFT" enums:"OVERDRAFT,SCHEDULED_PAYMENT_FAILED"` // Type of the alert
	Message            string           `json:"message" example:"Account \"Checking\" is overdrawn. The balance is €-12.50."`
	Links              AlertLinks       `json:"links"`
}

func newAlert(c *gin.Context, model models.Alert) Alert {
	url := c.GetString(string(models.DBContextURL))

	return Alert{
		DefaultModel:       model.DefaultModel,
		AlertEditable:      AlertEditable{Read: model.Read},
		AccountID:          model.AccountID,
		TransactionID:      model.TransactionID,
		ScheduledPaymentID: model.ScheduledPaymentID,
		Type:               model.Type,
		Message:            model.Message,
		Links: AlertLinks{
			Self: fmt.Sprintf("%s/v1/alerts/%s", url, model.ID),
		},
	}
}

type AlertListResponse struct {
	Data       []Alert     `json:"data"`                                                          // List of alerts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AlertResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this alert
	Data  *Alert  `json:"data"`                                                          // Data for the alert
}

type AlertQueryFilter struct {
	Read      bool             `form:"read"`                       // Read or unread alerts
	Type      models.AlertType `form:"type"`                       // By type
	AccountID bb_uuid.UUID     `form:"account"`                    // By ID of the account
	Offset    uint             `form:"offset" filterField:"false"` // The offset of the first alert returned. Defaults to 0.
	Limit     int              `form:"limit" filterField:"false"`  // Maximum number of alerts to return. Defaults to 50.
}

func (f AlertQueryFilter) model() models.Alert {
	return models.Alert{
		Read:      f.Read,
		Type:      f.Type,
		AccountID: f.AccountID.Ptr(),
	}
}

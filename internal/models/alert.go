package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gorm.io/gorm"
)

type AlertType string

const (
	AlertTypeOverdraft              AlertType = "OVERDRAFT"
	AlertTypeScheduledPaymentFailed AlertType = "SCHEDULED_PAYMENT_FAILED"
)

// Alert is a notification for a user.
type Alert struct {
	DefaultModel
	User               User      `json:"-"`
	UserID             uuid.UUID `gorm:"index"`
	Account            *Account  `json:"-"`
	AccountID          *uuid.UUID
	Transaction        *Transaction `json:"-"`
	TransactionID      *uuid.UUID
	ScheduledPayment   *ScheduledPayment `json:"-"`
	ScheduledPaymentID *uuid.UUID
	Type               AlertType
	Message            string
	Read               bool
}

func (Alert) Self() string {
	return "Alert"
}

func (Alert) Export(db *gorm.DB, userID uuid.UUID) (json.RawMessage, error) {
	return export[Alert](db, OwnedBy(userID))
}

func (a *Alert) BeforeSave(_ *gorm.DB) error {
	a.Message = strings.TrimSpace(a.Message)
	return nil
}

// formatAmount formats the amount with the currency symbol of the user.
func formatAmount(user User, amount decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", currency.Symbol(user.Unit().Amount(amount.InexactFloat64())))
}

// newOverdraftAlert prepares the alert for an account that is overdrawn.
func newOverdraftAlert(tx *gorm.DB, account Account) (Alert, error) {
	var user User
	err := tx.First(&user, account.UserID).Error
	if err != nil {
		return Alert{}, err
	}

	return Alert{
		UserID:    user.ID,
		AccountID: &account.ID,
		Type:      AlertTypeOverdraft,
		Message:   "Account \"" + account.Name + "\" is overdrawn. The balance is " + formatAmount(user, account.Balance) + ".",
	}, nil
}

// newScheduledPaymentFailedAlert creates an alert for a scheduled payment that
// could not be posted, unless an unread alert for it exists already.
func newScheduledPaymentFailedAlert(tx *gorm.DB, payment ScheduledPayment, due time.Time, reason error) error {
	var count int64
	err := tx.Model(&Alert{}).Where(&Alert{
		ScheduledPaymentID: &payment.ID,
		Type:               AlertTypeScheduledPaymentFailed,
	}).Where("alerts.read = ?", false).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	var account Account
	err = tx.Unscoped().First(&account, payment.AccountID).Error
	if err != nil {
		return err
	}

	var user User
	err = tx.First(&user, account.UserID).Error
	if err != nil {
		return err
	}

	text := "The scheduled payment \"" + payment.Reference + "\" of " + formatAmount(user, payment.Amount) +
		" due on " + due.Format(time.DateOnly) + " could not be posted: " + reason.Error()

	return tx.Create(&Alert{
		UserID:             user.ID,
		AccountID:          &account.ID,
		ScheduledPaymentID: &payment.ID,
		Type:               AlertTypeScheduledPaymentFailed,
		Message:            text,
	}).Error
}

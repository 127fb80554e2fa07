package models

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/budget-buddy/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Frequency string

const (
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

// Valid reports if the frequency is known.
func (f Frequency) Valid() bool {
	return f == FrequencyWeekly || f == FrequencyMonthly || f == FrequencyYearly
}

// maxOccurrences is the maximum number of transactions posted
// for a single scheduled payment in one run.
const maxOccurrences = 366

// ScheduledPayment is a recurring withdrawal from an account.
type ScheduledPayment struct {
	DefaultModel
	Account    Account   `json:"-"`
	AccountID  uuid.UUID `gorm:"index"`
	Reference  string
	Note       string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(15,2)"`
	Category   *Category       `json:"-"`
	CategoryID *uuid.UUID
	Frequency  Frequency
	NextDate   time.Time `gorm:"index"` // Date the next withdrawal is due
	AnchorDay  int       // Day of the month that monthly and yearly payments are due on
	Paused     bool
}

func (ScheduledPayment) Self() string {
	return "Scheduled Payment"
}

func (ScheduledPayment) Export(db *gorm.DB, userID uuid.UUID) (json.RawMessage, error) {
	return export[ScheduledPayment](db, ScheduledPaymentsOf(userID))
}

// Day returns the start of the UTC day of t.
func Day(t time.Time) time.Time {
	t = t.In(time.UTC)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (p *ScheduledPayment) AfterFind(tx *gorm.DB) (err error) {
	err = p.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	p.NextDate = p.NextDate.In(time.UTC)
	return
}

// BeforeSave trims strings, sets NextDate to the start of its day
// and ensures the category ID is nil instead of a nil UUID.
func (p *ScheduledPayment) BeforeSave(_ *gorm.DB) error {
	p.Reference = strings.TrimSpace(p.Reference)
	p.Note = strings.TrimSpace(p.Note)

	if p.CategoryID != nil && *p.CategoryID == uuid.Nil {
		p.CategoryID = nil
	}

	if !p.NextDate.IsZero() {
		p.NextDate = Day(p.NextDate)
	}

	return nil
}

func (p *ScheduledPayment) BeforeCreate(tx *gorm.DB) error {
	if err := p.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	err := validateSchedule(p.Amount, p.Frequency, p.NextDate)
	if err != nil {
		return err
	}

	if p.AnchorDay == 0 {
		p.AnchorDay = p.NextDate.Day()
	}

	var account Account
	err = tx.First(&account, p.AccountID).Error
	if err != nil {
		return err
	}

	if p.CategoryID != nil {
		_, err = visibleCategory(tx, account.UserID, *p.CategoryID)
	}

	return err
}

// BeforeUpdate validates the changed fields. A payment can only be
// moved to another account of the same user.
func (p *ScheduledPayment) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(ScheduledPayment)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("Amount") {
		if !toSave.Amount.IsPositive() {
			return ErrScheduledPaymentAmountNotPositive
		}

		if err := checkPrecision(toSave.Amount); err != nil {
			return err
		}
	}

	if tx.Statement.Changed("Frequency") && !toSave.Frequency.Valid() {
		return ErrFrequencyInvalid
	}

	if tx.Statement.Changed("NextDate") && toSave.NextDate.IsZero() {
		return ErrNextDateMissing
	}

	trimColumns(tx, map[string]string{"Reference": toSave.Reference, "Note": toSave.Note})

	var account Account
	err := tx.First(&account, p.AccountID).Error
	if err != nil {
		return err
	}

	if tx.Statement.Changed("AccountID") {
		var destination Account
		err = tx.First(&destination, toSave.AccountID).Error
		if err != nil {
			return err
		}

		if destination.UserID != account.UserID {
			return ErrTransferForeignAccount
		}
	}

	if tx.Statement.Changed("CategoryID") && toSave.CategoryID != nil && *toSave.CategoryID != uuid.Nil {
		_, err = visibleCategory(tx, account.UserID, *toSave.CategoryID)
	}

	return err
}

func validateSchedule(amount decimal.Decimal, frequency Frequency, nextDate time.Time) error {
	if !amount.IsPositive() {
		return ErrScheduledPaymentAmountNotPositive
	}

	if err := checkPrecision(amount); err != nil {
		return err
	}

	if !frequency.Valid() {
		return ErrFrequencyInvalid
	}

	if nextDate.IsZero() {
		return ErrNextDateMissing
	}

	return nil
}

// Advance returns the due date following date.
//
// Monthly and yearly payments stay on their anchor day. In months
// that are too short, the last day of the month is used instead.
func (p ScheduledPayment) Advance(date time.Time) time.Time {
	anchor := p.AnchorDay
	if anchor == 0 {
		anchor = date.Day()
	}

	switch p.Frequency {
	case FrequencyWeekly:
		return date.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return types.MonthOf(date).AddDate(0, 1).Date(anchor)
	case FrequencyYearly:
		return types.MonthOf(date).AddDate(1, 0).Date(anchor)
	}

	return date
}

// ProcessResult is the outcome of processing due scheduled payments.
type ProcessResult struct {
	Posted int `json:"posted" example:"3"` // Number of transactions posted
	Failed int `json:"failed" example:"1"` // Number of payments that could not be posted
}

// errScheduledPaymentMoved is returned when the next date of a payment
// changed after it was loaded, e.g. because another run posted it.
var errScheduledPaymentMoved = errors.New("the scheduled payment has been processed already")

// ProcessDue posts a withdrawal for every occurrence of a scheduled payment
// that is due on or before the day of now. Scopes restrict the payments
// that are processed.
//
// Every occurrence is posted in its own database transaction together with
// the update of the next date. When an occurrence cannot be posted, a failure
// alert is created, the payment stays at its current next date and processing
// continues with the next payment.
func ProcessDue(ctx context.Context, db *gorm.DB, now time.Time, scopes ...func(*gorm.DB) *gorm.DB) (ProcessResult, error) {
	today := Day(now)

	var payments []ScheduledPayment
	err := db.WithContext(ctx).
		Scopes(scopes...).
		Where("scheduled_payments.paused = ? AND scheduled_payments.next_date < date(?)", false, today.AddDate(0, 0, 1)).
		Order("scheduled_payments.next_date ASC").
		Find(&payments).Error
	if err != nil {
		return ProcessResult{}, err
	}

	var result ProcessResult
	for _, payment := range payments {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		posted, err := payment.process(ctx, db, today)
		result.Posted += posted

		if err != nil {
			result.Failed++
		}
	}

	return result, nil
}

// process posts all occurrences of the payment up to today and
// returns the number of transactions posted.
func (p ScheduledPayment) process(ctx context.Context, db *gorm.DB, today time.Time) (int, error) {
	posted := 0

	for posted < maxOccurrences && !p.NextDate.After(today) {
		due := p.NextDate
		next := p.Advance(due)

		err := WithRetry(ctx, func() error {
			return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				return p.post(tx, due, next)
			})
		})

		if errors.Is(err, errScheduledPaymentMoved) {
			log.Debug().Str("scheduled_payment", p.ID.String()).Time("due", due).Msg("scheduled payment processed concurrently")
			return posted, nil
		}

		if err != nil {
			p.fail(ctx, db, due, err)
			return posted, err
		}

		p.NextDate = next
		posted++
	}

	return posted, nil
}

// fail logs the failed occurrence and alerts the owner of the payment.
func (p ScheduledPayment) fail(ctx context.Context, db *gorm.DB, due time.Time, reason error) {
	event := log.Warn()
	if errors.Is(reason, ErrInsufficientFunds) {
		event = log.Info()
	}
	event.Str("scheduled_payment", p.ID.String()).Time("due", due).Err(reason).Msg("scheduled payment failed")

	err := WithRetry(ctx, func() error {
		return newScheduledPaymentFailedAlert(db.WithContext(ctx), p, due, reason)
	})
	if err != nil {
		log.Error().Str("scheduled_payment", p.ID.String()).Err(err).Msg("could not create alert for failed scheduled payment")
	}
}

// post creates the transaction for the occurrence due on the given date
// and moves the payment to its next date.
//
// The next date is only moved if it still is the due date, so that an
// occurrence is never posted twice.
func (p ScheduledPayment) post(tx *gorm.DB, due, next time.Time) error {
	moved := tx.Model(&ScheduledPayment{}).
		Where("id = ? AND paused = ? AND datetime(next_date) = datetime(?)", p.ID, false, due).
		UpdateColumn("next_date", next)
	if moved.Error != nil {
		return moved.Error
	}

	if moved.RowsAffected != 1 {
		return errScheduledPaymentMoved
	}

	note := p.Note
	if note == "" {
		note = p.Reference
	}

	transaction := Transaction{
		AccountID:          p.AccountID,
		Type:               TransactionTypeWithdrawal,
		Amount:             p.Amount,
		Note:               note,
		CategoryID:         p.CategoryID,
		ScheduledPaymentID: &p.ID,
		Date:               due,
	}

	return tx.Create(&transaction).Error
}

package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account is a balance-bearing account of a user, e.g. a bank account.
//
// Balance is only ever written by posting transactions.
type Account struct {
	DefaultModel
	User           User      `json:"-"`
	UserID         uuid.UUID `gorm:"uniqueIndex:account_user_name"`
	Name           string    `gorm:"uniqueIndex:account_user_name"`
	Note           string
	Balance        decimal.Decimal `gorm:"type:DECIMAL(15,2)"`
	InitialBalance decimal.Decimal `gorm:"type:DECIMAL(15,2)"`
	OverdraftLimit decimal.Decimal `gorm:"type:DECIMAL(15,2)"` // How far the balance may go below zero
}

func (Account) Self() string {
	return "Account"
}

func (Account) Export(db *gorm.DB, userID uuid.UUID) (json.RawMessage, error) {
	return export[Account](db, OwnedBy(userID))
}

// BeforeSave trims whitespace from all strings
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	return nil
}

// BeforeCreate validates the account and starts the balance
// at the initial balance.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if err := a.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	if a.Name == "" {
		return ErrAccountNameEmpty
	}

	if a.OverdraftLimit.IsNegative() {
		return ErrAccountOverdraftLimitNegative
	}

	if err := checkPrecision(a.InitialBalance, a.OverdraftLimit); err != nil {
		return err
	}

	a.Balance = a.InitialBalance

	return tx.First(&User{}, a.UserID).Error
}

// BeforeUpdate verifies the state of the account before
// committing an update to the database.
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Account)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("UserID") {
		return ErrAccountUserChanged
	}

	if tx.Statement.Changed("InitialBalance") || tx.Statement.Changed("Balance") {
		return ErrAccountInitialBalanceFixed
	}

	if tx.Statement.Changed("Name") && strings.TrimSpace(toSave.Name) == "" {
		return ErrAccountNameEmpty
	}

	trimColumns(tx, map[string]string{"Name": toSave.Name, "Note": toSave.Note})

	if tx.Statement.Changed("OverdraftLimit") {
		if toSave.OverdraftLimit.IsNegative() {
			return ErrAccountOverdraftLimitNegative
		}

		if err := checkPrecision(toSave.OverdraftLimit); err != nil {
			return err
		}
	}

	return nil
}

// BeforeDelete only allows deleting accounts that are settled.
// Scheduled payments of the account are removed with it.
func (a *Account) BeforeDelete(tx *gorm.DB) error {
	if !a.Balance.IsZero() {
		return ErrAccountBalanceNotZero
	}

	return tx.Where(&ScheduledPayment{AccountID: a.ID}).Delete(&ScheduledPayment{}).Error
}

// setBalance writes the balance. It skips hooks since the balance
// is not user editable.
func (a *Account) setBalance(tx *gorm.DB, balance decimal.Decimal) error {
	err := tx.Model(&Account{}).Where("id = ?", a.ID).UpdateColumn("balance", balance).Error
	if err != nil {
		return err
	}

	a.Balance = balance
	return nil
}

// Available returns the amount that can be spent from the account,
// including the overdraft limit.
func (a Account) Available() decimal.Decimal {
	return a.Balance.Add(a.OverdraftLimit)
}

// LedgerBalance recomputes the balance from the initial balance
// and all transactions of the account.
func (a Account) LedgerBalance(db *gorm.DB) (decimal.Decimal, error) {
	var transactions []Transaction
	err := db.
		Where(db.Where(&Transaction{AccountID: a.ID}).Or(&Transaction{DestinationAccountID: &a.ID})).
		Find(&transactions).Error
	if err != nil {
		return decimal.Zero, err
	}

	balance := a.InitialBalance
	for _, t := range transactions {
		balance = balance.Add(t.effect(a.ID))
	}

	return balance, nil
}

// Verify reports an error if the stored balance does not match the ledger.
func (a Account) Verify(db *gorm.DB) error {
	ledger, err := a.LedgerBalance(db)
	if err != nil {
		return err
	}

	if !ledger.Equal(a.Balance) {
		return fmt.Errorf("%w: balance is %s, ledger is %s", ErrBalanceDrift, a.Balance, ledger)
	}

	return nil
}

// checkPrecision verifies that no amount has more than two decimal places.
func checkPrecision(amounts ...decimal.Decimal) error {
	for _, amount := range amounts {
		if !amount.Equal(amount.Truncate(2)) {
			return ErrAmountPrecision
		}
	}

	return nil
}

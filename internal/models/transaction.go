package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeTransfer   TransactionType = "TRANSFER"

	// TransactionTypeExternalTransfer sends money to a bank account
	// outside of the application.
	TransactionTypeExternalTransfer TransactionType = "EXTERNAL_TRANSFER"
)

// Valid reports if the type is known.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer, TransactionTypeExternalTransfer:
		return true
	}

	return false
}

// debits reports if the type reduces the balance of the account.
func (t TransactionType) debits() bool {
	return t == TransactionTypeWithdrawal || t == TransactionTypeTransfer || t == TransactionTypeExternalTransfer
}

// ExpenseTypes are the transaction types that move money out of
// the accounts of the user.
var ExpenseTypes = []TransactionType{TransactionTypeWithdrawal, TransactionTypeExternalTransfer}

type TransferStatus string

// External transfers are recorded as pending. Settlement happens
// outside of the application.
const TransferStatusPending TransferStatus = "PENDING"

// Transaction is a ledger entry.
//
// Deposits add Amount to the account, withdrawals subtract it. Transfers
// subtract it from the account and add it to the destination account.
// External transfers subtract it from the account and name the
// beneficiary and the IBAN it is sent to.
//
// Creating a transaction posts it: balances are updated in the same
// database transaction that inserts the row.
type Transaction struct {
	DefaultModel
	Account              Account    `json:"-"`
	AccountID            uuid.UUID  `gorm:"index;check:account_destination_different,account_id != destination_account_id"`
	DestinationAccount   *Account   `json:"-"`
	DestinationAccountID *uuid.UUID `gorm:"index"`
	Type                 TransactionType
	Amount               decimal.Decimal `gorm:"type:DECIMAL(15,2)"`
	Reference            string          `gorm:"index"`
	Note                 string
	Category             *Category         `json:"-"`
	CategoryID           *uuid.UUID        `gorm:"index"`
	CategoryRule         *CategoryRule     `json:"-"`
	CategoryRuleID       *uuid.UUID        // The rule that set the category, if any
	ScheduledPayment     *ScheduledPayment `json:"-"`
	ScheduledPaymentID   *uuid.UUID        // The scheduled payment that created the transaction, if any
	Date                 time.Time
	BalanceAfter         decimal.Decimal `gorm:"type:DECIMAL(15,2)"` // Balance of the account after posting
	Beneficiary          string          // Recipient of an external transfer
	IBAN                 string          `gorm:"column:iban"`
	Status               TransferStatus  // Only set for external transfers

	// overdraft is set during posting when the account is overdrawn
	overdraft *Alert
}

func (Transaction) Self() string {
	return "Transaction"
}

func (Transaction) Export(db *gorm.DB, userID uuid.UUID) (json.RawMessage, error) {
	return export[Transaction](db, TransactionsOf(userID))
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - trims whitespace from string fields
//   - ensures optional IDs are nil and not pointers to a nil UUID
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)
	t.Reference = strings.TrimSpace(t.Reference)
	t.Beneficiary = strings.TrimSpace(t.Beneficiary)
	t.IBAN = normalizeIBAN(t.IBAN)

	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.DestinationAccountID != nil && *t.DestinationAccountID == uuid.Nil {
		t.DestinationAccountID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// BeforeCreate validates the transaction and posts it to the
// balances of the accounts involved.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if err := t.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	t.overdraft = nil

	err := t.validate()
	if err != nil {
		return err
	}

	var account Account
	err = tx.First(&account, t.AccountID).Error
	if err != nil {
		return err
	}

	var destination Account
	if t.Type == TransactionTypeTransfer {
		err = tx.First(&destination, *t.DestinationAccountID).Error
		if err != nil {
			return err
		}

		if destination.UserID != account.UserID {
			return ErrTransferForeignAccount
		}
	}

	err = t.categorize(tx, account.UserID)
	if err != nil {
		return err
	}

	if t.Reference == "" {
		t.Reference = newReference(t.Date, t.ID)
	}

	t.Status = ""
	if t.Type == TransactionTypeExternalTransfer {
		t.Status = TransferStatusPending
	}

	return t.post(tx, &account, &destination)
}

// AfterCreate stores the overdraft alert for the transaction
func (t *Transaction) AfterCreate(tx *gorm.DB) error {
	if t.overdraft == nil {
		return nil
	}

	t.overdraft.TransactionID = &t.ID
	err := tx.Create(t.overdraft).Error
	t.overdraft = nil
	return err
}

// BeforeUpdate only allows changes to the note and the category.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	for _, field := range []string{"AccountID", "DestinationAccountID", "Type", "Amount", "Reference", "Date", "BalanceAfter", "ScheduledPaymentID", "CategoryRuleID", "Beneficiary", "IBAN", "Status"} {
		if tx.Statement.Changed(field) {
			return ErrTransactionImmutable
		}
	}

	toSave, ok := tx.Statement.Dest.(Transaction)
	if !ok {
		return nil
	}

	trimColumns(tx, map[string]string{"Note": toSave.Note})

	if !tx.Statement.Changed("CategoryID") || toSave.CategoryID == nil || *toSave.CategoryID == uuid.Nil {
		return nil
	}

	var account Account
	err := tx.Unscoped().First(&account, t.AccountID).Error
	if err != nil {
		return err
	}

	_, err = visibleCategory(tx, account.UserID, *toSave.CategoryID)
	return err
}

// BeforeDelete prevents deletion. The ledger is append-only.
func (t *Transaction) BeforeDelete(_ *gorm.DB) error {
	return ErrTransactionImmutable
}

// validate checks the transaction without consulting the database.
func (t *Transaction) validate() error {
	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if err := checkPrecision(t.Amount); err != nil {
		return err
	}

	if t.Type == TransactionTypeTransfer {
		if t.DestinationAccountID == nil {
			return ErrTransferDestinationMissing
		}

		if *t.DestinationAccountID == t.AccountID {
			return ErrTransferSameAccount
		}
	} else if t.DestinationAccountID != nil {
		return ErrTransferDestinationNotAllowed
	}

	if t.Type == TransactionTypeExternalTransfer {
		if t.Beneficiary == "" {
			return ErrExternalTransferBeneficiaryMissing
		}

		return validateIBAN(t.IBAN)
	} else if t.Beneficiary != "" || t.IBAN != "" {
		return ErrExternalTransferFieldsNotAllowed
	}

	return nil
}

// categorize verifies the category or sets it with the
// category rules of the user.
func (t *Transaction) categorize(tx *gorm.DB, userID uuid.UUID) error {
	if t.CategoryID != nil {
		_, err := visibleCategory(tx, userID, *t.CategoryID)
		return err
	}

	if t.Note == "" {
		return nil
	}

	rule, err := MatchCategoryRule(tx, userID, t.Note)
	if err != nil || rule == nil {
		return err
	}

	t.CategoryID = &rule.CategoryID
	t.CategoryRuleID = &rule.ID
	return nil
}

// post applies the transaction to the account balances.
//
// A debit must not bring the balance below the negative overdraft limit.
// When a debit leaves the balance negative, an overdraft alert is prepared.
func (t *Transaction) post(tx *gorm.DB, account, destination *Account) error {
	balance := account.Balance.Add(t.effect(account.ID))

	if t.Type.debits() && balance.LessThan(account.OverdraftLimit.Neg()) {
		return fmt.Errorf("%w: %s is available on account %s, %s is needed", ErrInsufficientFunds, account.Available().StringFixed(2), account.Name, t.Amount.StringFixed(2))
	}

	err := account.setBalance(tx, balance)
	if err != nil {
		return err
	}
	t.BalanceAfter = balance

	if t.Type == TransactionTypeTransfer {
		err = destination.setBalance(tx, destination.Balance.Add(t.Amount))
		if err != nil {
			return err
		}
	}

	if t.Type.debits() && balance.IsNegative() {
		alert, err := newOverdraftAlert(tx, *account)
		if err != nil {
			return err
		}
		t.overdraft = &alert
	}

	return nil
}

// effect returns the change of the balance of the account
// caused by the transaction.
func (t Transaction) effect(accountID uuid.UUID) decimal.Decimal {
	switch {
	case t.Type == TransactionTypeDeposit && t.AccountID == accountID:
		return t.Amount
	case t.Type.debits() && t.AccountID == accountID:
		return t.Amount.Neg()
	case t.Type == TransactionTypeTransfer && t.DestinationAccountID != nil && *t.DestinationAccountID == accountID:
		return t.Amount
	}

	return decimal.Zero
}

// newReference generates a reference like TRX-20240131154500-1a2b.
func newReference(date time.Time, id uuid.UUID) string {
	return fmt.Sprintf("TRX-%s-%s", date.Format("20060102150405"), id.String()[:4])
}

package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrDatabaseBusy     = errors.New("the database is busy, please try again")
)

// User errors
var (
	ErrEmailInvalid    = errors.New("the email address is not valid")
	ErrEmailNotUnique  = errors.New("the email address is already registered")
	ErrNameMissing     = errors.New("first name and last name must be set")
	ErrCurrencyInvalid = errors.New("the currency must be a valid ISO 4217 code")
)

// Account errors
var (
	ErrAccountNameEmpty              = errors.New("the account name must not be empty")
	ErrAccountNameNotUnique          = errors.New("the account name must be unique for the user")
	ErrAccountOverdraftLimitNegative = errors.New("the overdraft limit must not be negative")
	ErrAccountInitialBalanceFixed    = errors.New("the initial balance cannot be changed after the account has been created")
	ErrAccountBalanceNotZero         = errors.New("only accounts with a balance of zero can be deleted")
	ErrAccountUserChanged            = errors.New("accounts cannot be moved to another user")
	ErrBalanceDrift                  = errors.New("the account balance does not match its ledger")
)

// Category errors
var (
	ErrCategoryNameEmpty      = errors.New("the category name must not be empty")
	ErrCategoryNameNotUnique  = errors.New("the category name must be unique for the user")
	ErrCategoryReadOnly       = errors.New("default categories cannot be modified")
	ErrCategoryRuleMatchEmpty = errors.New("the match pattern of a category rule must not be empty")
)

// Transaction errors
var (
	ErrTransactionTypeInvalid        = errors.New("the transaction type must be one of DEPOSIT, WITHDRAWAL, TRANSFER or EXTERNAL_TRANSFER")
	ErrTransactionAmountNotPositive  = errors.New("the transaction amount must be positive")
	ErrAmountPrecision               = errors.New("amounts must not have more than two decimal places")
	ErrTransferDestinationMissing    = errors.New("transfers need a destination account")
	ErrTransferDestinationNotAllowed = errors.New("only transfers can have a destination account")
	ErrTransferSameAccount           = errors.New("source and destination account of a transfer must be different")
	ErrTransferForeignAccount        = errors.New("transfers are only possible between accounts of the same user")
	ErrInsufficientFunds             = errors.New("insufficient funds")
	ErrTransactionImmutable          = errors.New("posted transactions can only have their note and category changed")
)

// External transfer errors
var (
	ErrExternalTransferBeneficiaryMissing = errors.New("external transfers need a beneficiary")
	ErrExternalTransferFieldsNotAllowed   = errors.New("only external transfers can have a beneficiary and an IBAN")
	ErrIBANInvalid                        = errors.New("the IBAN is not valid")
)

// Scheduled payment errors
var (
	ErrFrequencyInvalid                  = errors.New("the frequency must be one of WEEKLY, MONTHLY or YEARLY")
	ErrScheduledPaymentAmountNotPositive = errors.New("the amount of a scheduled payment must be positive")
	ErrNextDateMissing                   = errors.New("the next date of a scheduled payment must be set")
)

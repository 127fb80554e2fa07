package models

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

var validate = validator.New()

// User is a person using the budget.
type User struct {
	DefaultModel
	FirstName    string
	LastName     string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Currency     string `gorm:"default:EUR"` // ISO 4217 code
}

func (User) Self() string {
	return "User"
}

func (User) Export(db *gorm.DB, userID uuid.UUID) (json.RawMessage, error) {
	return export[User](db, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", userID)
	})
}

// BeforeSave normalizes and validates the user.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.FirstName == "" || u.LastName == "" {
		return ErrNameMissing
	}

	if err := validate.Var(u.Email, "required,email"); err != nil {
		return ErrEmailInvalid
	}

	if u.Currency != "" {
		unit, err := currency.ParseISO(u.Currency)
		if err != nil {
			return ErrCurrencyInvalid
		}
		u.Currency = unit.String()
	}

	return nil
}

// BeforeUpdate validates and normalizes fields that changed with the update.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(User)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("FirstName") && strings.TrimSpace(toSave.FirstName) == "" {
		return ErrNameMissing
	}

	if tx.Statement.Changed("LastName") && strings.TrimSpace(toSave.LastName) == "" {
		return ErrNameMissing
	}

	if tx.Statement.Changed("Email") {
		email := strings.ToLower(strings.TrimSpace(toSave.Email))
		if err := validate.Var(email, "required,email"); err != nil {
			return ErrEmailInvalid
		}
		tx.Statement.SetColumn("Email", email)
	}

	if tx.Statement.Changed("Currency") {
		unit, err := currency.ParseISO(toSave.Currency)
		if err != nil {
			return ErrCurrencyInvalid
		}
		tx.Statement.SetColumn("Currency", unit.String())
	}

	return nil
}

// Unit returns the currency of the user. It falls back to EUR for
// users stored without a valid currency.
func (u User) Unit() currency.Unit {
	unit, err := currency.ParseISO(u.Currency)
	if err != nil {
		return currency.EUR
	}

	return unit
}

// FindUserByEmail returns the user with the given email address.
func FindUserByEmail(db *gorm.DB, email string) (User, error) {
	var user User
	err := db.Where(&User{Email: strings.ToLower(strings.TrimSpace(email))}).First(&user).Error
	return user, err
}

// DeleteUser permanently deletes the user with all of their resources.
// Default categories are kept.
//
// The ledger cannot be deleted through the models, so hooks are skipped.
func DeleteUser(db *gorm.DB, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Every step needs a fresh statement, conditions must not leak into the next one
		session := func() *gorm.DB {
			return tx.Session(&gorm.Session{SkipHooks: true, NewDB: true}).Unscoped()
		}

		// Foreign keys are checked, resources are deleted
		// before the resources they reference
		steps := []struct {
			model any
			scope func(*gorm.DB) *gorm.DB
		}{
			{&Alert{}, OwnedBy(userID)},
			{&Transaction{}, TransactionsOf(userID)},
			{&ScheduledPayment{}, ScheduledPaymentsOf(userID)},
			{&CategoryRule{}, OwnedBy(userID)},
			{&Category{}, OwnedBy(userID)},
			{&Account{}, OwnedBy(userID)},
		}

		for _, step := range steps {
			err := session().Scopes(step.scope).Delete(step.model).Error
			if err != nil {
				return err
			}
		}

		return session().Where("id = ?", userID).Delete(&User{}).Error
	})
}

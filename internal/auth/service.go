package auth

import (
	"errors"

	"github.com/budget-buddy/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultAccountName is the name of the account created on registration.
const DefaultAccountName = "Main account"

// dummyHash is compared against when no user exists for an email
// address so that a login takes the same time in both cases.
var dummyHash, _ = HashPassword("Dummy password 1!")

// Registration contains the data to register a new user.
type Registration struct {
	FirstName string `json:"firstName" example:"Grace"`                   // First name
	LastName  string `json:"lastName" example:"Hopper"`                   // Last name
	Email     string `json:"email" example:"grace@example.com"`           // Email address, used to log in
	Password  string `json:"password" example:"Correct horse battery 1!"` // Password
	Currency  string `json:"currency" example:"EUR"`                      // ISO 4217 code of the currency. Defaults to the server setting
}

// Register creates the user and their default account in one
// database transaction.
func Register(db *gorm.DB, r Registration) (models.User, error) {
	err := ValidatePassword(r.Password)
	if err != nil {
		return models.User{}, err
	}

	hash, err := HashPassword(r.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		PasswordHash: hash,
		Currency:     r.Currency,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&user).Error
		if err != nil {
			return err
		}

		return tx.Create(&models.Account{UserID: user.ID, Name: DefaultAccountName}).Error
	})
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("user", user.ID.String()).Msg("user registered")
	return user, nil
}

// Login verifies the credentials and issues a token for the user.
func Login(db *gorm.DB, issuer Issuer, email, password string) (Token, error) {
	user, err := models.FindUserByEmail(db, email)
	if errors.Is(err, models.ErrResourceNotFound) {
		_, _ = CheckPassword(dummyHash, password)
		return Token{}, ErrInvalidCredentials
	}

	if err != nil {
		return Token{}, err
	}

	ok, err := CheckPassword(user.PasswordHash, password)
	if err != nil {
		return Token{}, err
	}

	if !ok {
		return Token{}, ErrInvalidCredentials
	}

	return issuer.Issue(user.ID)
}

// ChangePassword sets a new password for the user after verifying
// the current one.
func ChangePassword(db *gorm.DB, user models.User, current, password string) error {
	ok, err := CheckPassword(user.PasswordHash, current)
	if err != nil {
		return err
	}

	if !ok {
		return ErrPasswordIncorrect
	}

	err = ValidatePassword(password)
	if err != nil {
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	return db.Model(&user).UpdateColumn("password_hash", hash).Error
}

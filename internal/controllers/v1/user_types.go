package v1

import (
	"github.com/budget-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type UserEditable struct {
	FirstName string `json:"firstName" example:"Grace"`         // First name
	LastName  string `json:"lastName" example:"Hopper"`         // Last name
	Email     string `json:"email" example:"grace@example.com"` // Email address, used to log in
	Currency  string `json:"currency" example:"EUR"`            // ISO 4217 code of the currency amounts are displayed in
}

// model returns the database resource for the API representation of the editable fields
func (editable UserEditable) model() models.User {
	return models.User{
		FirstName: editable.FirstName,
		LastName:  editable.LastName,
		Email:     editable.Email,
		Currency:  editable.Currency,
	}
}

type UserLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/me"`              // The user itself
	Password string `json:"password" example:"https://example.com/api/v1/me/password"` // Endpoint to change the password
	Export   string `json:"export" example:"https://example.com/api/v1/me/export"`     // Export of all data of the user
	Accounts string `json:"accounts" example:"https://example.com/api/v1/accounts"`    // Accounts of the user
	Alerts   string `json:"alerts" example:"https://example.com/api/v1/alerts"`        // Alerts of the user
}

// User is the representation of a User in API v1.
type User struct {
	models.DefaultModel
	UserEditable
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			FirstName: model.FirstName,
			LastName:  model.LastName,
			Email:     model.Email,
			Currency:  model.Currency,
		},
		Links: UserLinks{
			Self:     url + "/v1/me",
			Password: url + "/v1/me/password",
			Export:   url + "/v1/me/export",
			Accounts: url + "/v1/accounts",
			Alerts:   url + "/v1/alerts",
		},
	}
}

type UserResponse struct {
	Error *string `json:"error" example:"the email address is already registered"` // The error, if any occurred
	Data  *User   `json:"data"`                                                    // Data for the user
}

type LoginEditable struct {
	Email    string `json:"email" example:"grace@example.com"`           // Email address
	Password string `json:"password" example:"Correct horse battery 1!"` // Password
}

type PasswordEditable struct {
	Current  string `json:"current" example:"Correct horse battery 1!"` // The current password
	Password string `json:"password" example:"Battery staple horse 2?"` // The new password
}

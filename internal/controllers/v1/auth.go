package v1

import (
	"net/http"

	"github.com/budget-buddy/backend/internal/auth"
	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/currency"
)

var (
	issuer          auth.Issuer
	defaultCurrency = currency.EUR
)

// RegisterAuthRoutes registers the routes for registration and login with
// the RouterGroup that is passed.
//
// Tokens are issued with i, new users default to the unit as currency.
func RegisterAuthRoutes(r *gin.RouterGroup, i auth.Issuer, unit currency.Unit) {
	issuer = i
	defaultCurrency = unit

	{
		r.OPTIONS("/register", OptionsRegister)
		r.POST("/register", Register)
	}

	{
		r.OPTIONS("/login", OptionsLogin)
		r.POST("/login", Login)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Registers a new user. An account named "Main account" is created for the user.
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		201				{object}	UserResponse
// @Failure		400				{object}	UserResponse
// @Failure		409				{object}	UserResponse
// @Failure		500				{object}	UserResponse
// @Param			registration	body		auth.Registration	true	"Registration"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var registration auth.Registration
	err := httputil.BindData(c, &registration)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	if registration.Currency == "" {
		registration.Currency = defaultCurrency.String()
	}

	user, err := auth.Register(models.DB, registration)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

type TokenResponse struct {
	Error *string     `json:"error" example:"the email address or the password is wrong"` // The error, if any occurred
	Data  *auth.Token `json:"data"`                                                       // The access token
}

// @Summary		Log in
// @Description	Returns an access token for the user. Send it as Bearer token in the Authorization header.
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	TokenResponse
// @Failure		401			{object}	TokenResponse
// @Failure		500			{object}	TokenResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var credentials LoginEditable
	err := httputil.BindData(c, &credentials)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{
			Error: &e,
		})
		return
	}

	token, err := auth.Login(models.DB, issuer, credentials.Email, credentials.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Data: &token})
}

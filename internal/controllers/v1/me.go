package v1

import (
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"github.com/budget-buddy/backend/internal/auth"
	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// deleteConfirmation must be sent as confirm parameter to delete a user.
const deleteConfirmation = "yes-please-delete-everything"

var backendVersion = "0.0.0"

// RegisterMeRoutes registers the routes for the authenticated user with
// the RouterGroup that is passed.
//
// The version is included in exports.
func RegisterMeRoutes(r *gin.RouterGroup, version string) {
	backendVersion = version

	{
		r.OPTIONS("", OptionsMe)
		r.GET("", GetMe)
		r.PATCH("", UpdateMe)
		r.DELETE("", DeleteMe)
	}

	{
		r.OPTIONS("/password", OptionsPassword)
		r.POST("/password", ChangePassword)
	}

	{
		r.OPTIONS("/export", OptionsExport)
		r.GET("/export", GetExport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Me
// @Success		204
// @Security		BearerAuth
// @Router			/v1/me [options]
func OptionsMe(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Me
// @Success		204
// @Security		BearerAuth
// @Router			/v1/me/password [options]
func OptionsPassword(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Me
// @Success		204
// @Security		BearerAuth
// @Router			/v1/me/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get authenticated user
// @Description	Returns the user the access token was issued for
// @Tags			Me
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Security		BearerAuth
// @Router			/v1/me [get]
func GetMe(c *gin.Context) {
	data := newUser(c, auth.User(c))
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Update authenticated user
// @Description	Updates the user. Only values to be updated need to be specified.
// @Tags			Me
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		401		{object}	httpError
// @Failure		409		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Security		BearerAuth
// @Router			/v1/me [patch]
func UpdateMe(c *gin.Context) {
	user := auth.User(c)

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	var data UserEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&user).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.First(&user, user.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	r := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &r})
}

// @Summary		Delete authenticated user
// @Description	Permanently deletes the user and all of their resources
// @Tags			Me
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete the user. Must have the value 'yes-please-delete-everything'"
// @Security		BearerAuth
// @Router			/v1/me [delete]
func DeleteMe(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != deleteConfirmation {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errDeleteConfirmation.Error(),
		})
		return
	}

	err = models.DeleteUser(models.DB, auth.User(c).ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Change password
// @Description	Changes the password of the user. The current password must be sent for verification.
// @Tags			Me
// @Accept			json
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			password	body		PasswordEditable	true	"Passwords"
// @Security		BearerAuth
// @Router			/v1/me/password [post]
func ChangePassword(c *gin.Context) {
	var data PasswordEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = auth.ChangePassword(models.DB, auth.User(c), data.Current, data.Password)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

type ExportResponse struct {
	Version      string                     `json:"version" example:"1.2.0"`                         // Version of the backend that created the export
	CreationTime time.Time                  `json:"creationTime" example:"2024-01-27T19:39:02.123Z"` // Time the export was created
	Data         map[string]json.RawMessage `json:"data"`                                            // Resources by type
}

// @Summary		Export
// @Description	Exports all resources of the user
// @Tags			Me
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Security		BearerAuth
// @Router			/v1/me/export [get]
func GetExport(c *gin.Context) {
	userID := auth.User(c).ID
	resources := make(map[string]json.RawMessage)

	for _, model := range models.Registry {
		b, err := model.Export(models.DB, userID)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		resources[reflect.TypeOf(model).Name()] = b
	}

	c.JSON(http.StatusOK, ExportResponse{
		Version:      backendVersion,
		CreationTime: time.Now(),
		Data:         resources,
	})
}

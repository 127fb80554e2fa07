package v1

import (
	"net/http"

	"github.com/budget-buddy/backend/internal/auth"
	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAlertRoutes registers the routes for alerts with
// the RouterGroup that is passed.
//
// Alerts are created by the backend, there is no POST.
func RegisterAlertRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAlertList)
		r.GET("", GetAlerts)
	}

	// Alert with ID
	{
		r.OPTIONS("/:id", OptionsAlertDetail)
		r.GET("/:id", GetAlert)
		r.PATCH("/:id", UpdateAlert)
		r.DELETE("/:id", DeleteAlert)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Alerts
// @Success		204
// @Security		BearerAuth
// @Router			/v1/alerts [options]
func OptionsAlertList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Alerts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/alerts/{id} [options]
func OptionsAlertDetail(c *gin.Context) {
	resourceOptionsDetail[models.Alert](c, httputil.OptionsGetPatchDelete)
}

// @Summary		Get alerts
// @Description	Returns a list of alerts, newest first
// @Tags			Alerts
// @Produce		json
// @Success		200		{object}	AlertListResponse
// @Failure		400		{object}	AlertListResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	AlertListResponse
// @Param			read	query		bool	false	"Filter by read state"
// @Param			type	query		string	false	"Filter by type"
// @Param			account	query		string	false	"Filter by account ID"
// @Param			offset	query		uint	false	"The offset of the first alert returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of alerts to return. Defaults to 50."
// @Security		BearerAuth
// @Router			/v1/alerts [get]
func GetAlerts(c *gin.Context) {
	var filter AlertQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, AlertListResponse{
			Error: &e,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.
		Scopes(models.OwnedBy(auth.User(c).ID)).
		Order("datetime(alerts.created_at) DESC").
		Where(&model, queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var alerts []models.Alert
	err := q.Find(&alerts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Alert, 0)
	for _, alert := range alerts {
		data = append(data, newAlert(c, alert))
	}

	c.JSON(http.StatusOK, AlertListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get alert
// @Description	Returns a specific alert
// @Tags			Alerts
// @Produce		json
// @Success		200	{object}	AlertResponse
// @Failure		400	{object}	AlertResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	AlertResponse
// @Failure		500	{object}	AlertResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/alerts/{id} [get]
func GetAlert(c *gin.Context) {
	alert, err := getResource[models.Alert](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &e,
		})
		return
	}

	data := newAlert(c, alert)
	c.JSON(http.StatusOK, AlertResponse{Data: &data})
}

// @Summary		Update alert
// @Description	Marks an alert as read or unread
// @Tags			Alerts
// @Accept			json
// @Produce		json
// @Success		200		{object}	AlertResponse
// @Failure		400		{object}	AlertResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	AlertResponse
// @Failure		500		{object}	AlertResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			alert	body		AlertEditable	true	"Alert"
// @Security		BearerAuth
// @Router			/v1/alerts/{id} [patch]
func UpdateAlert(c *gin.Context) {
	alert, err := getResource[models.Alert](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AlertEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &e,
		})
		return
	}

	var data AlertEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&alert).Select("", updateFields...).Updates(models.Alert{Read: data.Read}).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AlertResponse{
			Error: &e,
		})
		return
	}

	r := newAlert(c, alert)
	c.JSON(http.StatusOK, AlertResponse{Data: &r})
}

// @Summary		Delete alert
// @Description	Deletes an alert
// @Tags			Alerts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/alerts/{id} [delete]
func DeleteAlert(c *gin.Context) {
	alert, err := getResource[models.Alert](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&alert).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

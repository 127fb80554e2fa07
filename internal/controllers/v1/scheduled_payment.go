package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/budget-buddy/backend/internal/auth"
	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterScheduledPaymentRoutes registers the routes for scheduled payments with
// the RouterGroup that is passed.
func RegisterScheduledPaymentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsScheduledPaymentList)
		r.GET("", GetScheduledPayments)
		r.POST("", CreateScheduledPayments)
	}

	{
		r.OPTIONS("/process", OptionsScheduledPaymentProcess)
		r.POST("/process", ProcessScheduledPayments)
	}

	// Scheduled payment with ID
	{
		r.OPTIONS("/:id", OptionsScheduledPaymentDetail)
		r.GET("/:id", GetScheduledPayment)
		r.PATCH("/:id", UpdateScheduledPayment)
		r.DELETE("/:id", DeleteScheduledPayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Scheduled Payments
// @Success		204
// @Security		BearerAuth
// @Router			/v1/scheduled-payments [options]
func OptionsScheduledPaymentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Scheduled Payments
// @Success		204
// @Security		BearerAuth
// @Router			/v1/scheduled-payments/process [options]
func OptionsScheduledPaymentProcess(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Scheduled Payments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/scheduled-payments/{id} [options]
func OptionsScheduledPaymentDetail(c *gin.Context) {
	resourceOptionsDetail[models.ScheduledPayment](c, httputil.OptionsGetPatchDelete)
}

// @Summary		Create scheduled payments
// @Description	Creates scheduled payments from the list of submitted data. The response code is the highest response code number that a single scheduled payment creation would have caused. If it is not equal to 201, at least one scheduled payment has an error.
// @Tags			Scheduled Payments
// @Produce		json
// @Success		201			{object}	ScheduledPaymentCreateResponse
// @Failure		400			{object}	ScheduledPaymentCreateResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	ScheduledPaymentCreateResponse
// @Failure		500			{object}	ScheduledPaymentCreateResponse
// @Param			payments	body		[]ScheduledPaymentEditable	true	"Scheduled Payments"
// @Security		BearerAuth
// @Router			/v1/scheduled-payments [post]
func CreateScheduledPayments(c *gin.Context) {
	var editables []ScheduledPaymentEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScheduledPaymentCreateResponse{
			Error: &e,
		})
		return
	}

	userID := auth.User(c).ID

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ScheduledPaymentCreateResponse{}

	for _, editable := range editables {
		var account models.Account
		err = models.DB.Scopes(models.OwnedBy(userID)).First(&account, editable.AccountID).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		payment := editable.model()
		err = models.DB.Create(&payment).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newScheduledPayment(c, payment)
		r.Data = append(r.Data, ScheduledPaymentResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get scheduled payments
// @Description	Returns a list of scheduled payments, ordered by their next date
// @Tags			Scheduled Payments
// @Produce		json
// @Success		200			{object}	ScheduledPaymentListResponse
// @Failure		400			{object}	ScheduledPaymentListResponse
// @Failure		401			{object}	httpError
// @Failure		500			{object}	ScheduledPaymentListResponse
// @Param			account		query		string	false	"Filter by account ID"
// @Param			category	query		string	false	"Filter by category ID"
// @Param			frequency	query		string	false	"Filter by frequency"
// @Param			paused		query		bool	false	"Filter by paused state"
// @Param			reference	query		string	false	"Filter by reference"
// @Param			offset		query		uint	false	"The offset of the first scheduled payment returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of scheduled payments to return. Defaults to 50."
// @Security		BearerAuth
// @Router			/v1/scheduled-payments [get]
func GetScheduledPayments(c *gin.Context) {
	var filter ScheduledPaymentQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ScheduledPaymentListResponse{
			Error: &e,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.
		Scopes(models.ScheduledPaymentsOf(auth.User(c).ID)).
		Order("scheduled_payments.next_date ASC, scheduled_payments.reference ASC").
		Where(&model, queryFields...)

	if filter.Reference != "" {
		q = q.Where("scheduled_payments.reference LIKE ?", fmt.Sprintf("%%%s%%", filter.Reference))
	} else if slices.Contains(setFields, "Reference") {
		q = q.Where("scheduled_payments.reference = ''")
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var payments []models.ScheduledPayment
	err := q.Find(&payments).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScheduledPaymentListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScheduledPaymentListResponse{
			Error: &e,
		})
		return
	}

	data := make([]ScheduledPayment, 0)
	for _, payment := range payments {
		data = append(data, newScheduledPayment(c, payment))
	}

	c.JSON(http.StatusOK, ScheduledPaymentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Process scheduled payments
// @Description	Posts all due scheduled payments of the user now instead of waiting for the scheduler
// @Tags			Scheduled Payments
// @Produce		json
// @Success		200	{object}	ScheduledPaymentProcessResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	ScheduledPaymentProcessResponse
// @Security		BearerAuth
// @Router			/v1/scheduled-payments/process [post]
func ProcessScheduledPayments(c *gin.Context) {
	result, err := models.ProcessDue(c.Request.Context(), models.DB, time.Now(), models.ScheduledPaymentsOf(auth.User(c).ID))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScheduledPaymentProcessResponse{
			Error: &e,
			Data:  &result,
		})
		return
	}

	c.JSON(http.StatusOK, ScheduledPaymentProcessResponse{Data: &result})
}

// @Summary		Get scheduled payment
// @Description	Returns a specific scheduled payment
// @Tags			Scheduled Payments
// @Produce		json
// @Success		200	{object}	ScheduledPaymentResponse
// @Failure		400	{object}	ScheduledPaymentResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	ScheduledPaymentResponse
// @Failure		500	{object}	ScheduledPaymentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/scheduled-payments/{id} [get]
func GetScheduledPayment(c *gin.Context) {
	payment, err := getResource[models.ScheduledPayment](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScheduledPaymentResponse{
			Error: &e,
		})
		return
	}

	data := newScheduledPayment(c, payment)
	c.JSON(http.StatusOK, ScheduledPaymentResponse{Data: &data})
}

// @Summary		Update scheduled payment
// @Description	Updates a scheduled payment. Only values to be updated need to be specified. Setting the next date also moves the day of the month the payment is due on.
// @Tags			Scheduled Payments
// @Accept			json
// @Produce		json
// @Success		200		{object}	ScheduledPaymentResponse
// @Failure		400		{object}	ScheduledPaymentResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	ScheduledPaymentResponse
// @Failure		500		{object}	ScheduledPaymentResponse
// @Param			id		path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		ScheduledPaymentEditable	true	"Scheduled Payment"
// @Security		BearerAuth
// @Router			/v1/scheduled-payments/{id} [patch]
func UpdateScheduledPayment(c *gin.Context) {
	payment, err := getResource[models.ScheduledPayment](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScheduledPaymentResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ScheduledPaymentEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScheduledPaymentResponse{
			Error: &e,
		})
		return
	}

	var data ScheduledPaymentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScheduledPaymentResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, any("NextDate")) {
		updateFields = append(updateFields, "AnchorDay")
	}

	err = models.DB.Model(&payment).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ScheduledPaymentResponse{
			Error: &e,
		})
		return
	}

	r := newScheduledPayment(c, payment)
	c.JSON(http.StatusOK, ScheduledPaymentResponse{Data: &r})
}

// @Summary		Delete scheduled payment
// @Description	Deletes a scheduled payment. Transactions it posted are kept.
// @Tags			Scheduled Payments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/scheduled-payments/{id} [delete]
func DeleteScheduledPayment(c *gin.Context) {
	payment, err := getResource[models.ScheduledPayment](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&payment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

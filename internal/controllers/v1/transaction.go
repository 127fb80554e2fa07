package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/budget-buddy/backend/internal/auth"
	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransactions)
	}

	{
		r.OPTIONS("/export", OptionsTransactionExport)
		r.GET("/export", ExportTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Security		BearerAuth
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Security		BearerAuth
// @Router			/v1/transactions/export [options]
func OptionsTransactionExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs. Transactions cannot be deleted.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail[models.Transaction](c, httputil.OptionsGetPatch)
}

// @Summary		Create transactions
// @Description	Posts transactions. Each transaction updates the balances of the accounts involved in the same database transaction. The response code is the highest response code number that a single transaction creation would have caused. If it is not equal to 201, at least one transaction has an error.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		401				{object}	httpError
// @Failure		404				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Security		BearerAuth
// @Router			/v1/transactions [post]
func CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	userID := auth.User(c).ID

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		// The account must belong to the user. Destination accounts
		// are verified when posting.
		var account models.Account
		err = models.DB.Scopes(models.OwnedBy(userID)).First(&account, editable.AccountID).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		transaction := editable.model()
		err = models.Post(c.Request.Context(), models.DB, &transaction)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// transactionQuery returns the query for the transactions of the user
// that match the filter. It is not paginated.
func transactionQuery(c *gin.Context, filter TransactionQueryFilter, queryFields []any, setFields []string) (*gorm.DB, error) {
	order, err := filter.order()
	if err != nil {
		return nil, err
	}

	model := filter.model()
	q := models.DB.
		Scopes(models.TransactionsOf(auth.User(c).ID)).
		Order(order).
		Where(&model, queryFields...)

	if !filter.AccountID.IsNil() {
		q = q.Where(models.DB.Where(&models.Transaction{
			AccountID: filter.AccountID.UUID,
		}).Or(&models.Transaction{
			DestinationAccountID: filter.AccountID.Ptr(),
		}))
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("transactions.date >= date(?)", models.Day(filter.FromDate))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("transactions.date < date(?)", models.Day(filter.UntilDate).AddDate(0, 0, 1))
	}

	if !filter.AmountLessOrEqual.IsZero() {
		q = q.Where("transactions.amount <= ?", filter.AmountLessOrEqual)
	}

	if !filter.AmountMoreOrEqual.IsZero() {
		q = q.Where("transactions.amount >= ?", filter.AmountMoreOrEqual)
	}

	if filter.Note != "" {
		q = q.Where("transactions.note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("transactions.note = ''")
	}

	return q, nil
}

// @Summary		Get transactions
// @Description	Returns a list of transactions. By default, the newest transactions are returned first.
// @Tags			Transactions
// @Produce		json
// @Success		200					{object}	TransactionListResponse
// @Failure		400					{object}	TransactionListResponse
// @Failure		401					{object}	httpError
// @Failure		500					{object}	TransactionListResponse
// @Param			account				query		string	false	"Filter by ID of associated account, regardless of source or destination"
// @Param			type				query		string	false	"Filter by type"
// @Param			category			query		string	false	"Filter by category ID"
// @Param			reference			query		string	false	"Filter by reference"
// @Param			scheduledPayment	query		string	false	"Filter by ID of the scheduled payment that created the transaction"
// @Param			fromDate			query		string	false	"Transactions at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate			query		string	false	"Transactions before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			amountLessOrEqual	query		string	false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query		string	false	"Amount more than or equal to this"
// @Param			note				query		string	false	"Filter by note"
// @Param			sort				query		string	false	"Sort by date, amount, type or category. Defaults to date."
// @Param			order				query		string	false	"Sort order, asc or desc. Defaults to desc."
// @Param			offset				query		uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit				query		int		false	"Maximum number of Transactions to return. Defaults to 50."
// @Security		BearerAuth
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &e,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q, err := transactionQuery(c, filter, queryFields, setFields)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var transactions []models.Transaction
	err = q.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Transaction, 0)
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Export transactions
// @Description	Returns all transactions matching the filter as CSV. Offset and limit are ignored.
// @Tags			Transactions
// @Produce		text/csv
// @Success		200					{string}	string
// @Failure		400					{object}	httpError
// @Failure		401					{object}	httpError
// @Failure		500					{object}	httpError
// @Param			account				query		string	false	"Filter by ID of associated account, regardless of source or destination"
// @Param			type				query		string	false	"Filter by type"
// @Param			category			query		string	false	"Filter by category ID"
// @Param			fromDate			query		string	false	"Transactions at and after this date"
// @Param			untilDate			query		string	false	"Transactions before and at this date"
// @Param			sort				query		string	false	"Sort by date, amount, type or category. Defaults to date."
// @Param			order				query		string	false	"Sort order, asc or desc. Defaults to desc."
// @Security		BearerAuth
// @Router			/v1/transactions/export [get]
func ExportTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidQueryString.Error(),
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q, err := transactionQuery(c, filter, queryFields, setFields)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var transactions []models.Transaction
	err = q.Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	rows := make([]TransactionCSV, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, newTransactionCSV(t))
	}

	csv, err := gocsv.MarshalString(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=transactions-%s.csv", time.Now().Format("2006-01-02")))
	c.String(http.StatusOK, csv)
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, err := getResource[models.Transaction](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Posted transactions can only have their note and category changed.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Security		BearerAuth
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	transaction, err := getResource[models.Transaction](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var data TransactionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&transaction).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	r := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &r})
}

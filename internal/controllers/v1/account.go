package v1

import (
	"net/http"

	"github.com/budget-buddy/backend/internal/auth"
	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAccountList)
		r.GET("", GetAccounts)
		r.POST("", CreateAccounts)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", OptionsAccountDetail)
		r.GET("/:id", GetAccount)
		r.PATCH("/:id", UpdateAccount)
		r.DELETE("/:id", DeleteAccount)
	}

	{
		r.OPTIONS("/:id/ledger", OptionsAccountLedger)
		r.GET("/:id/ledger", GetAccountLedger)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Security		BearerAuth
// @Router			/v1/accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/accounts/{id} [options]
func OptionsAccountDetail(c *gin.Context) {
	resourceOptionsDetail[models.Account](c, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/accounts/{id}/ledger [options]
func OptionsAccountLedger(c *gin.Context) {
	resourceOptionsDetail[models.Account](c, httputil.OptionsGet)
}

// @Summary		Create accounts
// @Description	Creates accounts from the list of submitted account data. The response code is the highest response code number that a single account creation would have caused. If it is not equal to 201, at least one account has an error.
// @Tags			Accounts
// @Produce		json
// @Success		201			{object}	AccountCreateResponse
// @Failure		400			{object}	AccountCreateResponse
// @Failure		401			{object}	httpError
// @Failure		500			{object}	AccountCreateResponse
// @Param			accounts	body		[]AccountEditable	true	"Accounts"
// @Security		BearerAuth
// @Router			/v1/accounts [post]
func CreateAccounts(c *gin.Context) {
	var editables []AccountEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountCreateResponse{
			Error: &e,
		})
		return
	}

	userID := auth.User(c).ID

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AccountCreateResponse{}

	for _, editable := range editables {
		account := editable.model(userID)
		err = models.DB.Create(&account).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newAccount(c, account)
		r.Data = append(r.Data, AccountResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get accounts
// @Description	Returns a list of accounts
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountListResponse
// @Failure		400		{object}	AccountListResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	AccountListResponse
// @Param			name	query		string	false	"Filter by name"
// @Param			note	query		string	false	"Filter by note"
// @Param			search	query		string	false	"Search for this text in name and note"
// @Param			offset	query		uint	false	"The offset of the first Account returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of Accounts to return. Defaults to 50."
// @Security		BearerAuth
// @Router			/v1/accounts [get]
func GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, AccountListResponse{
			Error: &e,
		})
		return
	}

	// Get the fields set in the filter
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Scopes(models.OwnedBy(auth.User(c).ID)).
		Order("accounts.name ASC")

	q = stringFilters(models.DB, q, setFields, "accounts", "note", filter.Name, filter.Note, filter.Search)
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var accounts []models.Account
	err := q.Find(&accounts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Account, 0)
	for _, account := range accounts {
		data = append(data, newAccount(c, account))
	}

	c.JSON(http.StatusOK, AccountListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/accounts/{id} [get]
func GetAccount(c *gin.Context) {
	account, err := getResource[models.Account](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Verify account balance
// @Description	Recomputes the balance of the account from its initial balance and all transactions and compares it to the stored balance
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountLedgerResponse
// @Failure		400	{object}	AccountLedgerResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	AccountLedgerResponse
// @Failure		500	{object}	AccountLedgerResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/accounts/{id}/ledger [get]
func GetAccountLedger(c *gin.Context) {
	account, err := getResource[models.Account](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountLedgerResponse{
			Error: &e,
		})
		return
	}

	ledger, err := account.LedgerBalance(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountLedgerResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, AccountLedgerResponse{Data: &AccountLedger{
		Balance:       account.Balance,
		LedgerBalance: ledger,
		Consistent:    ledger.Equal(account.Balance),
	}})
}

// @Summary		Update account
// @Description	Updates an account. Only values to be updated need to be specified. The initial balance cannot be changed.
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			account	body		AccountEditable	true	"Account"
// @Security		BearerAuth
// @Router			/v1/accounts/{id} [patch]
func UpdateAccount(c *gin.Context) {
	account, err := getResource[models.Account](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, AccountEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	var data AccountEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&account).Select("", updateFields...).Updates(data.model(account.UserID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	r := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &r})
}

// @Summary		Delete account
// @Description	Deletes an account. Only accounts with a balance of zero can be deleted. Their transactions are kept, scheduled payments are deleted with the account.
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	account, err := getResource[models.Account](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&account).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

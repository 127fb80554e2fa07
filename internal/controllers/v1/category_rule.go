package v1

import (
	"fmt"
	"net/http"

	"github.com/budget-buddy/backend/internal/auth"
	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterCategoryRuleRoutes registers the routes for category rules with
// the RouterGroup that is passed.
func RegisterCategoryRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryRuleList)
		r.GET("", GetCategoryRules)
		r.POST("", CreateCategoryRules)
	}

	{
		r.OPTIONS("/check", OptionsCategoryRuleCheck)
		r.POST("/check", CheckCategoryRules)
	}

	// Category rule with ID
	{
		r.OPTIONS("/:id", OptionsCategoryRuleDetail)
		r.GET("/:id", GetCategoryRule)
		r.PATCH("/:id", UpdateCategoryRule)
		r.DELETE("/:id", DeleteCategoryRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Success		204
// @Security		BearerAuth
// @Router			/v1/category-rules [options]
func OptionsCategoryRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Success		204
// @Security		BearerAuth
// @Router			/v1/category-rules/check [options]
func OptionsCategoryRuleCheck(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/category-rules/{id} [options]
func OptionsCategoryRuleDetail(c *gin.Context) {
	resourceOptionsDetail[models.CategoryRule](c, httputil.OptionsGetPatchDelete)
}

// @Summary		Create category rules
// @Description	Creates category rules from the list of submitted data. The response code is the highest response code number that a single category rule creation would have caused. If it is not equal to 201, at least one category rule has an error.
// @Tags			Category Rules
// @Produce		json
// @Success		201		{object}	CategoryRuleCreateResponse
// @Failure		400		{object}	CategoryRuleCreateResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	CategoryRuleCreateResponse
// @Failure		500		{object}	CategoryRuleCreateResponse
// @Param			rules	body		[]CategoryRuleEditable	true	"Category Rules"
// @Security		BearerAuth
// @Router			/v1/category-rules [post]
func CreateCategoryRules(c *gin.Context) {
	var editables []CategoryRuleEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleCreateResponse{
			Error: &e,
		})
		return
	}

	userID := auth.User(c).ID

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryRuleCreateResponse{}

	for _, editable := range editables {
		rule := editable.model(userID)
		err = models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategoryRule(c, rule)
		r.Data = append(r.Data, CategoryRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get category rules
// @Description	Returns a list of category rules ordered by priority
// @Tags			Category Rules
// @Produce		json
// @Success		200			{object}	CategoryRuleListResponse
// @Failure		400			{object}	CategoryRuleListResponse
// @Failure		401			{object}	httpError
// @Failure		500			{object}	CategoryRuleListResponse
// @Param			category	query		string	false	"Filter by category ID"
// @Param			priority	query		uint	false	"Filter by priority"
// @Param			match		query		string	false	"Filter by match"
// @Param			offset		query		uint	false	"The offset of the first Category Rule returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of Category Rules to return. Defaults to 50."
// @Security		BearerAuth
// @Router			/v1/category-rules [get]
func GetCategoryRules(c *gin.Context) {
	var filter CategoryRuleQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, CategoryRuleListResponse{
			Error: &e,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Scopes(models.OwnedBy(auth.User(c).ID)).
		Order("category_rules.priority ASC, category_rules.created_at ASC").
		Where(filter.model(), queryFields...)

	if filter.Match != "" {
		q = q.Where("category_rules.match LIKE ?", fmt.Sprintf("%%%s%%", filter.Match))
	} else if slices.Contains(setFields, "Match") {
		q = q.Where("category_rules.match = ''")
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var rules []models.CategoryRule
	err := q.Find(&rules).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]CategoryRule, 0)
	for _, rule := range rules {
		data = append(data, newCategoryRule(c, rule))
	}

	c.JSON(http.StatusOK, CategoryRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Check category rules
// @Description	Returns the category rule that would categorize a transaction with the note
// @Tags			Category Rules
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategoryRuleCheckResponse
// @Failure		400		{object}	CategoryRuleCheckResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	CategoryRuleCheckResponse
// @Param			note	body		CategoryRuleCheck	true	"Note to test"
// @Security		BearerAuth
// @Router			/v1/category-rules/check [post]
func CheckCategoryRules(c *gin.Context) {
	var data CategoryRuleCheck
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleCheckResponse{
			Error: &e,
		})
		return
	}

	rule, err := models.MatchCategoryRule(models.DB, auth.User(c).ID, data.Note)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleCheckResponse{
			Error: &e,
		})
		return
	}

	if rule == nil {
		c.JSON(http.StatusOK, CategoryRuleCheckResponse{})
		return
	}

	r := newCategoryRule(c, *rule)
	c.JSON(http.StatusOK, CategoryRuleCheckResponse{Data: &r})
}

// @Summary		Get category rule
// @Description	Returns a specific category rule
// @Tags			Category Rules
// @Produce		json
// @Success		200	{object}	CategoryRuleResponse
// @Failure		400	{object}	CategoryRuleResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	CategoryRuleResponse
// @Failure		500	{object}	CategoryRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/category-rules/{id} [get]
func GetCategoryRule(c *gin.Context) {
	rule, err := getResource[models.CategoryRule](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	data := newCategoryRule(c, rule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &data})
}

// @Summary		Update category rule
// @Description	Updates a category rule. Only values to be updated need to be specified.
// @Tags			Category Rules
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategoryRuleResponse
// @Failure		400		{object}	CategoryRuleResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	CategoryRuleResponse
// @Failure		500		{object}	CategoryRuleResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		CategoryRuleEditable	true	"Category Rule"
// @Security		BearerAuth
// @Router			/v1/category-rules/{id} [patch]
func UpdateCategoryRule(c *gin.Context) {
	rule, err := getResource[models.CategoryRule](c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryRuleEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	var data CategoryRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(data.model(rule.UserID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	r := newCategoryRule(c, rule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &r})
}

// @Summary		Delete category rule
// @Description	Deletes a category rule
// @Tags			Category Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/category-rules/{id} [delete]
func DeleteCategoryRule(c *gin.Context) {
	rule, err := getResource[models.CategoryRule](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

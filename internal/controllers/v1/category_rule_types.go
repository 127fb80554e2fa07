package v1

import (
	"fmt"

	"github.com/budget-buddy/backend/internal/models"
	bb_uuid "github.com/budget-buddy/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryRuleEditable struct {
	CategoryID uuid.UUID `json:"categoryId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"` // ID of the category to assign
	Priority   uint      `json:"priority" example:"3"`                                      // Rules are evaluated by ascending priority, the first match wins
	Match      string    `json:"match" example:"*Bakery*"`                                  // Glob pattern matched against the note of new transactions, case insensitive
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryRuleEditable) model(userID uuid.UUID) models.CategoryRule {
	return models.CategoryRule{
		UserID:     userID,
		CategoryID: editable.CategoryID,
		Priority:   editable.Priority,
		Match:      editable.Match,
	}
}

type CategoryRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/category-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The category rule itself
}

// CategoryRule is the representation of a CategoryRule in API v1.
type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
	Links CategoryRuleLinks `json:"links"`
}

func newCategoryRule(c *gin.Context, model models.CategoryRule) CategoryRule {
	url := c.GetString(string(models.DBContextURL))

	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			CategoryID: model.CategoryID,
			Priority:   model.Priority,
			Match:      model.Match,
		},
		Links: CategoryRuleLinks{
			Self: fmt.Sprintf("%s/v1/category-rules/%s", url, model.ID),
		},
	}
}

type CategoryRuleListResponse struct {
	Data       []CategoryRule `json:"data"`                                                          // List of Category Rules
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type CategoryRuleCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryRuleResponse `json:"data"`                                                          // List of created Category Rules
}

func (r *CategoryRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryRuleResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this Category Rule
	Data  *CategoryRule `json:"data"`                                                          // Data for the Category Rule
}

type CategoryRuleQueryFilter struct {
	CategoryID bb_uuid.UUID `form:"category"`                   // By ID of the category
	Priority   uint         `form:"priority"`                   // By priority
	Match      string       `form:"match" filterField:"false"`  // By match
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first Category Rule returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of Category Rules to return. Defaults to 50.
}

func (f CategoryRuleQueryFilter) model() models.CategoryRule {
	return models.CategoryRule{
		CategoryID: f.CategoryID.UUID,
		Priority:   f.Priority,
	}
}

// CategoryRuleCheck is the note to match against the rules of the user.
type CategoryRuleCheck struct {
	Note string `json:"note" example:"Bakery Miller, Main Street"` // The note of a transaction
}

type CategoryRuleCheckResponse struct {
	Error *string       `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Data  *CategoryRule `json:"data"`                                               // The first matching rule, null if no rule matches
}

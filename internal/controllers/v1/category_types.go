package v1

import (
	"fmt"

	"github.com/budget-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryEditable struct {
	Name        string `json:"name" example:"Subscriptions" default:""`             // Name of the category
	Description string `json:"description" example:"Streaming and news" default:""` // A longer description of the category
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID:      &userID,
		Name:        editable.Name,
		Description: editable.Description,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions of the category
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Default bool          `json:"default" example:"false"` // Default categories are shared by all users and cannot be modified
	Links   CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:        model.Name,
			Description: model.Description,
		},
		Default: model.UserID == nil,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created Categories
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this Category
	Data  *Category `json:"data"`                                                          // Data for the Category
}

type CategoryQueryFilter struct {
	Name        string `form:"name" filterField:"false"`        // By name
	Description string `form:"description" filterField:"false"` // By description
	Default     bool   `form:"default" filterField:"false"`     // Only default categories or only categories of the user
	Search      string `form:"search" filterField:"false"`      // By string in name or description
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first Category returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of Categories to return. Defaults to 50.
}

package v1

import (
	"github.com/budget-buddy/backend/internal/auth"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type resource interface {
	models.Account | models.Alert | models.Category | models.CategoryRule | models.ScheduledPayment | models.Transaction
}

// accessibleBy returns the scope limiting queries for the type of
// resource to the resources the user can access.
func accessibleBy(resource any, userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	switch resource.(type) {
	case *models.Category:
		return models.CategoriesVisibleTo(userID)
	case *models.Transaction:
		return models.TransactionsOf(userID)
	case *models.ScheduledPayment:
		return models.ScheduledPaymentsOf(userID)
	}

	return models.OwnedBy(userID)
}

// getResource returns the resource with the ID from the URI if the
// authenticated user can access it. Resources of other users are
// reported as not found.
func getResource[R resource](c *gin.Context) (R, error) {
	var r R

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return r, err
	}

	err = models.DB.Scopes(accessibleBy(&r, auth.User(c).ID)).First(&r, uri.ID).Error
	return r, err
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R resource](c *gin.Context, options gin.HandlerFunc) {
	_, err := getResource[R](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	options(c)
}

package v1

import (
	"github.com/budget-buddy/backend/internal/types"
	bb_uuid "github.com/budget-buddy/backend/internal/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// defaultLimit is the number of resources returned by list endpoints
// when no limit is set.
const defaultLimit = 50

type URIID struct {
	ID bb_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type QueryMonth struct {
	Month types.Month `form:"month" example:"2022-07"` // Year and month
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// paginate sets offset and limit on the query. The limit defaults
// to defaultLimit unless it is set in the query string.
func paginate(q *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	if !slices.Contains(setFields, "Limit") {
		limit = defaultLimit
	}

	return q.Offset(int(offset)).Limit(limit), limit
}

package v1

import (
	"net/http"

	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Register          string `json:"register" example:"https://example.com/api/v1/auth/register"`               // URL of the registration endpoint
	Login             string `json:"login" example:"https://example.com/api/v1/auth/login"`                     // URL of the login endpoint
	Me                string `json:"me" example:"https://example.com/api/v1/me"`                                // URL of the authenticated user
	Accounts          string `json:"accounts" example:"https://example.com/api/v1/accounts"`                    // URL of Account collection endpoint
	Alerts            string `json:"alerts" example:"https://example.com/api/v1/alerts"`                        // URL of Alert collection endpoint
	Categories        string `json:"categories" example:"https://example.com/api/v1/categories"`                // URL of Category collection endpoint
	CategoryRules     string `json:"categoryRules" example:"https://example.com/api/v1/category-rules"`         // URL of Category Rule collection endpoint
	Reports           string `json:"reports" example:"https://example.com/api/v1/reports"`                      // URL of Report endpoint
	ScheduledPayments string `json:"scheduledPayments" example:"https://example.com/api/v1/scheduled-payments"` // URL of Scheduled Payment collection endpoint
	Transactions      string `json:"transactions" example:"https://example.com/api/v1/transactions"`            // URL of Transaction collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Register:          url + "/v1/auth/register",
			Login:             url + "/v1/auth/login",
			Me:                url + "/v1/me",
			Accounts:          url + "/v1/accounts",
			Alerts:            url + "/v1/alerts",
			Categories:        url + "/v1/categories",
			CategoryRules:     url + "/v1/category-rules",
			Reports:           url + "/v1/reports",
			ScheduledPayments: url + "/v1/scheduled-payments",
			Transactions:      url + "/v1/transactions",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

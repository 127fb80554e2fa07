package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/budget-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const userKey = "bb-user"

// Middleware authenticates requests with the Bearer token in the
// Authorization header and stores the user in the context.
//
// Requests without a valid token for an existing user are aborted
// with 401 Unauthorized.
func Middleware(issuer Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abort(c, ErrTokenMissing)
			return
		}

		id, err := issuer.Parse(strings.TrimSpace(token))
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			abort(c, ErrTokenInvalid)
			return
		}

		var user models.User
		err = models.DB.First(&user, id).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			abort(c, ErrTokenInvalid)
			return
		}

		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", `Bearer realm="budget-buddy"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}

// User returns the authenticated user of the request.
//
// It must only be called in handlers behind the Middleware.
func User(c *gin.Context) models.User {
	return c.MustGet(userKey).(models.User)
}

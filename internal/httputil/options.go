package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// allow sets the allow header and sends an empty response.
func allow(c *gin.Context, methods string) {
	c.Header("allow", methods)
	c.Status(http.StatusNoContent)
}

func OptionsGet(c *gin.Context) {
	allow(c, "OPTIONS, GET")
}

func OptionsPost(c *gin.Context) {
	allow(c, "OPTIONS, POST")
}

func OptionsGetPost(c *gin.Context) {
	allow(c, "OPTIONS, GET, POST")
}

func OptionsGetPatch(c *gin.Context) {
	allow(c, "OPTIONS, GET, PATCH")
}

func OptionsGetDelete(c *gin.Context) {
	allow(c, "OPTIONS, GET, DELETE")
}

func OptionsGetPatchDelete(c *gin.Context) {
	allow(c, "OPTIONS, GET, PATCH, DELETE")
}

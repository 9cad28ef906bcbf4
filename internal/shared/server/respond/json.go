// Package respond writes the API's JSON bodies.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes payload with the given status. Model output routinely contains
// '<', '>' and '&', so HTML escaping is disabled.
func JSON(c *gin.Context, status int, payload any) {
	c.PureJSON(status, payload)
}

// OK writes a 200 response.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}

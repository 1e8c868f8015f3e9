package cookie

import (
	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// GetAccessToken reads the session cookie set by the external auth service.
func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

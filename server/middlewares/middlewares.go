package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pulseboard/pulseboard/utils/auth"
)

var jwtSecret []byte

// Setup initializes all package scoped variables that are needed to perform
// middleware functionalities. This function must be called before any
// middleware is used.
func Setup() {
	jwtSecret = auth.Secret()
}

// JWT middleware fetches the session token from the "Authorization: Bearer"
// header, falling back to the "token" query parameter. It then validates the
// token and adds a new header field "sub" storing the user's id. It aborts
// with 401 on token not provided or token invalid (wrong token or expired).
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "missing session token",
			})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(token, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": err.Error(),
			})
			c.Abort()
			return
		}

		// Successfully validated the token, expose the user's sub (id) to
		// downstream handlers.
		c.Request.Header.Del("token")
		c.Request.Header.Set("sub", claims.UserID)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

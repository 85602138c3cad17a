package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"campsite/response"
	"campsite/services"
)

// ContextEmployeeID is the gin context key holding the authenticated employee id.
const ContextEmployeeID = "employeeID"

// AuthMiddleware requires a valid bearer token and stores the employee id
// in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := services.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			response.HandleError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextEmployeeID, claims.ID)
		c.Next()
	}
}

// WebSocketAuthMiddleware authenticates the push channel. Browsers cannot
// set headers on websocket upgrades, so the token travels as ?token=.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := services.VerifyToken(token)
		if err != nil {
			response.HandleError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextEmployeeID, claims.ID)
		c.Next()
	}
}

// EmployeeIDFromContext returns the id set by the auth middleware.
func EmployeeIDFromContext(c *gin.Context) *uint {
	v, exists := c.Get(ContextEmployeeID)
	if !exists {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}

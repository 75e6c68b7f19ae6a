package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"washhub/models"
)

// RoleHeader carries the portal a request is acting in. This models the
// demo's role selector, not authentication: there is no identity and no
// token, only a declared role that must match the route group.
const RoleHeader = "X-Active-Role"

// RoleContextKey is where the resolved role is stored on the gin context.
const RoleContextKey = "activeRole"

// RequireRole scopes a route group to one portal. Requests declaring a
// different (or missing) role are rejected with 403.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		active := models.UserRole(c.GetHeader(RoleHeader))
		if !active.Valid() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Missing or invalid " + RoleHeader + " header.",
			})
			return
		}
		if active != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "This endpoint belongs to the " + string(role) + " portal.",
			})
			return
		}
		c.Set(RoleContextKey, active)
		c.Next()
	}
}

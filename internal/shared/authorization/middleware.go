package authorization

import (
	"github.com/gin-gonic/gin"

	"subtrack/internal/shared/constants"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(constants.ContextKeyUserAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessResourceByOwnerID reports whether a user may act on a resource
// owned by resourceOwnerID. Admins may act on anything.
func CanAccessResourceByOwnerID(userID uint, role UserRole, resourceOwnerID uint) bool {
	if role.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}

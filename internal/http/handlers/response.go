package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kamalkharel2002/trackship/domain"
)

// respondError writes the failure envelope shared by every endpoint
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// respondValidationError writes binding failures as a 400 with the
// validator messages in the errors list
func respondValidationError(c *gin.Context, err error) {
	c.JSON(400, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  []string{err.Error()},
	})
}

// userPayload maps a user to its public fields. The password hash never
// leaves the service.
func userPayload(user *domain.User) gin.H {
	return gin.H{
		"user_id":    user.ID,
		"user_name":  user.Name,
		"email":      user.Email,
		"phone":      user.Phone,
		"role":       user.Role,
		"created_at": user.CreatedAt.UTC().Format(time.RFC3339),
	}
}

package httpx

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamalkharel2002/trackship/internal/http/handlers"
	"github.com/kamalkharel2002/trackship/internal/http/middleware"
)

// BuildRouter assembles the HTTP surface. The ping func reports backing
// store health for the /health probe.
func BuildRouter(ah *handlers.AuthHandlers, uh *handlers.UserHandlers, jwtmw *middleware.AuthMW, ping func(context.Context) error) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		if err := ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success":  false,
				"message":  "Server is unhealthy",
				"database": "disconnected",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Server is healthy",
			"database": "connected",
		})
	})

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/request-otp", ah.RequestOTP)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/login", ah.Login)
	auth.POST("/refresh", ah.Refresh)
	auth.POST("/logout", jwtmw.WithJWT(), ah.Logout)

	users := api.Group("/users", jwtmw.WithJWT())
	users.GET("/me", uh.GetMe)
	users.PUT("/me", uh.UpdateMe)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	return r
}

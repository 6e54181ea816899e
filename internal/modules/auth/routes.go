package auth

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, requireAuth, optionalAuth gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/me", requireAuth, h.Me)
	}

	users := rg.Group("/users")
	{
		users.GET("", optionalAuth, h.ListUsers)
		users.GET("/:id", optionalAuth, h.GetUser)
	}
}

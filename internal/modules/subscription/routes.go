package subscription

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the subscription endpoints under /users. The
// static /subscriptions segment coexists with the :id routes registered
// by the auth module on the same group.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler, requireAuth gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.GET("/subscriptions", requireAuth, h.Subscriptions)
		users.POST("/:id/subscribe", requireAuth, h.Subscribe)
		users.DELETE("/:id/subscribe", requireAuth, h.Unsubscribe)
	}
}

package recipe

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the recipe endpoints. Reads are public (the
// viewer-specific flags degrade gracefully for anonymous requests),
// mutations require a valid token.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler, requireAuth, optionalAuth gin.HandlerFunc) {
	recipes := rg.Group("/recipes")
	{
		recipes.GET("", optionalAuth, h.List)
		recipes.POST("", requireAuth, h.Create)
		recipes.GET("/download_shopping_cart", requireAuth, h.DownloadShoppingCart)
		recipes.GET("/:id", optionalAuth, h.Get)
		recipes.PATCH("/:id", requireAuth, h.Update)
		recipes.DELETE("/:id", requireAuth, h.Delete)
		recipes.POST("/:id/favorite", requireAuth, h.AddFavorite)
		recipes.DELETE("/:id/favorite", requireAuth, h.RemoveFavorite)
		recipes.POST("/:id/shopping_cart", requireAuth, h.AddToCart)
		recipes.DELETE("/:id/shopping_cart", requireAuth, h.RemoveFromCart)
	}
}

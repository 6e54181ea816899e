package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	tags := rg.Group("/tags")
	{
		tags.GET("", h.GetTags)
		tags.GET("/:id", h.GetTagByID)
	}

	ingredients := rg.Group("/ingredients")
	{
		ingredients.GET("", h.GetIngredients)
		ingredients.GET("/:id", h.GetIngredientByID)
	}
}

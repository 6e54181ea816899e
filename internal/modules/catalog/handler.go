package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetTags handles GET /api/v1/tags. The tag list is small and unpaginated.
func (h *Handler) GetTags(c *gin.Context) {
	tags, err := h.service.Tags(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list tags")
		return
	}
	response.Success(c, http.StatusOK, tags)
}

// GetTagByID handles GET /api/v1/tags/:id
func (h *Handler) GetTagByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid tag ID")
		return
	}

	tag, err := h.service.Tag(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Tag not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load tag")
		return
	}
	response.Success(c, http.StatusOK, tag)
}

// GetIngredients handles GET /api/v1/ingredients?name=<prefix>
func (h *Handler) GetIngredients(c *gin.Context) {
	ingredients, err := h.service.Ingredients(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list ingredients")
		return
	}
	response.Success(c, http.StatusOK, ingredients)
}

// GetIngredientByID handles GET /api/v1/ingredients/:id
func (h *Handler) GetIngredientByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ingredient ID")
		return
	}

	ingredient, err := h.service.Ingredient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Ingredient not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load ingredient")
		return
	}
	response.Success(c, http.StatusOK, ingredient)
}

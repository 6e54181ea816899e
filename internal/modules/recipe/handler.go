package recipe

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/domain"
	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary List recipes
// @Tags Recipes
// @Produce json
// @Param author query int false "Author ID"
// @Param tags query []string false "Tag slugs"
// @Param is_favorited query int false "Only viewer's favorites"
// @Param is_in_shopping_cart query int false "Only viewer's cart"
// @Success 200 {object} map[string]interface{}
// @Router /recipes [get]
func (h *Handler) List(c *gin.Context) {
	limit, offset := pagination(c)

	filters := ListFilters{
		TagSlugs:      c.QueryArray("tags"),
		OnlyFavorited: c.Query("is_favorited") == "1",
		OnlyInCart:    c.Query("is_in_shopping_cart") == "1",
		Limit:         limit,
		Offset:        offset,
	}
	if v := c.Query("author"); v != "" {
		authorID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_AUTHOR", "Invalid author ID")
			return
		}
		filters.AuthorID = authorID
	}

	views, total, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list recipes")
		return
	}

	response.Success(c, http.StatusOK, response.Page(views, total))
}

// Get godoc
// @Summary Recipe by ID
// @Tags Recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{}
// @Router /recipes/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	view, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"), recipeID)
	if err != nil {
		if errors.Is(err, ErrRecipeNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load recipe")
		return
	}

	response.Success(c, http.StatusOK, view)
}

// Create godoc
// @Summary Publish a recipe
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateRecipeRequest true "Recipe"
// @Success 201 {object} map[string]interface{}
// @Router /recipes [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid recipe payload", details)
		return
	}

	view, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeMutationError(c, err, "failed to create recipe")
		return
	}

	response.Success(c, http.StatusCreated, view)
}

// Update godoc
// @Summary Update own recipe
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param body body UpdateRecipeRequest true "Recipe"
// @Success 200 {object} map[string]interface{}
// @Router /recipes/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid recipe payload", details)
		return
	}

	view, err := h.service.Update(c.Request.Context(), recipeID, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeMutationError(c, err, "failed to update recipe")
		return
	}

	response.Success(c, http.StatusOK, view)
}

// Delete godoc
// @Summary Delete own recipe
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Router /recipes/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), recipeID, c.GetInt64("user_id")); err != nil {
		h.writeMutationError(c, err, "failed to delete recipe")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddFavorite godoc
// @Summary Favorite a recipe
// @Tags Recipes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} map[string]interface{}
// @Router /recipes/{id}/favorite [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	view, err := h.service.AddFavorite(c.Request.Context(), c.GetInt64("user_id"), recipeID)
	if err != nil {
		h.writeMutationError(c, err, "failed to favorite recipe")
		return
	}

	response.Success(c, http.StatusCreated, view)
}

// RemoveFavorite godoc
// @Summary Unfavorite a recipe
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Router /recipes/{id}/favorite [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	if err := h.service.RemoveFavorite(c.Request.Context(), c.GetInt64("user_id"), recipeID); err != nil {
		h.writeMutationError(c, err, "failed to unfavorite recipe")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddToCart godoc
// @Summary Add recipe to shopping cart
// @Tags Recipes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} map[string]interface{}
// @Router /recipes/{id}/shopping_cart [post]
func (h *Handler) AddToCart(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	view, err := h.service.AddToCart(c.Request.Context(), c.GetInt64("user_id"), recipeID)
	if err != nil {
		h.writeMutationError(c, err, "failed to add recipe to cart")
		return
	}

	response.Success(c, http.StatusCreated, view)
}

// RemoveFromCart godoc
// @Summary Remove recipe from shopping cart
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Router /recipes/{id}/shopping_cart [delete]
func (h *Handler) RemoveFromCart(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	if err := h.service.RemoveFromCart(c.Request.Context(), c.GetInt64("user_id"), recipeID); err != nil {
		h.writeMutationError(c, err, "failed to remove recipe from cart")
		return
	}

	c.Status(http.StatusNoContent)
}

// DownloadShoppingCart godoc
// @Summary Download aggregated shopping list
// @Tags Recipes
// @Security BearerAuth
// @Produce plain
// @Success 200 {string} string
// @Router /recipes/download_shopping_cart [get]
func (h *Handler) DownloadShoppingCart(c *gin.Context) {
	items, err := h.service.ShoppingList(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to build shopping list")
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+ShoppingListFilename)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(RenderShoppingList(items)))
}

// writeMutationError переводит ошибки сервиса в HTTP-статусы.
func (h *Handler) writeMutationError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrCookingTimeOutOfRange),
		errors.Is(err, domain.ErrAmountOutOfRange),
		errors.Is(err, domain.ErrNoTags),
		errors.Is(err, domain.ErrNoIngredients),
		errors.Is(err, domain.ErrDuplicateIngredient):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrTagNotFound), errors.Is(err, ErrIngredientNotFound):
		response.Error(c, http.StatusBadRequest, "UNKNOWN_REFERENCE", err.Error())
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrAlreadyFavorited), errors.Is(err, ErrAlreadyInCart):
		response.Error(c, http.StatusConflict, "ALREADY_EXISTS", err.Error())
	case errors.Is(err, ErrNotFavorited), errors.Is(err, ErrNotInCart):
		response.Error(c, http.StatusBadRequest, "NOT_PRESENT", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", fallback)
	}
}

func recipeIDParam(c *gin.Context) (int64, bool) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return 0, false
	}
	return recipeID, true
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = (n - 1) * limit
		}
	}
	return limit, offset
}

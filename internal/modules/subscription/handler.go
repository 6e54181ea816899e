package subscription

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Subscribe godoc
// @Summary Follow an author
// @Tags Subscriptions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Author ID"
// @Param recipes_limit query int false "Max recipes in preview"
// @Success 201 {object} map[string]interface{}
// @Router /users/{id}/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	authorID, ok := authorIDParam(c)
	if !ok {
		return
	}

	view, err := h.service.Subscribe(c.Request.Context(), c.GetInt64("user_id"), authorID, recipesLimit(c))
	if err != nil {
		h.writeError(c, err, "failed to subscribe")
		return
	}

	response.Success(c, http.StatusCreated, view)
}

// Unsubscribe godoc
// @Summary Unfollow an author
// @Tags Subscriptions
// @Security BearerAuth
// @Param id path int true "Author ID"
// @Success 204
// @Router /users/{id}/subscribe [delete]
func (h *Handler) Unsubscribe(c *gin.Context) {
	authorID, ok := authorIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), c.GetInt64("user_id"), authorID); err != nil {
		h.writeError(c, err, "failed to unsubscribe")
		return
	}

	c.Status(http.StatusNoContent)
}

// Subscriptions godoc
// @Summary Authors the current user follows
// @Tags Subscriptions
// @Security BearerAuth
// @Produce json
// @Param recipes_limit query int false "Max recipes per author"
// @Success 200 {object} map[string]interface{}
// @Router /users/subscriptions [get]
func (h *Handler) Subscriptions(c *gin.Context) {
	limit, offset := pagination(c)

	views, total, err := h.service.Subscriptions(c.Request.Context(), c.GetInt64("user_id"), recipesLimit(c), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list subscriptions")
		return
	}

	response.Success(c, http.StatusOK, response.Page(views, total))
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrSelfSubscription):
		response.Error(c, http.StatusBadRequest, "SELF_SUBSCRIPTION", err.Error())
	case errors.Is(err, ErrAuthorNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrAlreadySubscribed):
		response.Error(c, http.StatusConflict, "ALREADY_EXISTS", err.Error())
	case errors.Is(err, ErrNotSubscribed):
		response.Error(c, http.StatusBadRequest, "NOT_SUBSCRIBED", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", fallback)
	}
}

func authorIDParam(c *gin.Context) (int64, bool) {
	authorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return 0, false
	}
	return authorID, true
}

func recipesLimit(c *gin.Context) int {
	if v := c.Query("recipes_limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
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

package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xgyuan/cookshare/backend/internal/activity"
	"github.com/xgyuan/cookshare/backend/internal/repositories"
	"gorm.io/gorm"
)

// ActivityHandler serves the merged per-profile activity timeline
type ActivityHandler struct {
	userRepository       repositories.UserRepository
	recipeRepository     repositories.RecipeRepository
	cookRecordRepository repositories.CookRecordRepository
	commentRepository    repositories.CommentRepository
	postRepository       repositories.PostRepository
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(
	userRepo repositories.UserRepository,
	recipeRepo repositories.RecipeRepository,
	cookRecordRepo repositories.CookRecordRepository,
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
) *ActivityHandler {
	return &ActivityHandler{
		userRepository:       userRepo,
		recipeRepository:     recipeRepo,
		cookRecordRepository: cookRecordRepo,
		commentRepository:    commentRepo,
		postRepository:       postRepo,
	}
}

// RegisterActivityRoutes registers the activity feed route
func (h *ActivityHandler) RegisterActivityRoutes(g *echo.Group) {
	g.GET("/users/:id/activity", h.GetActivity)
}

// GetActivity merges the profile's recipes, cook records, comments and
// posts into one reverse-chronological page. Rebuilt from scratch on
// every request.
func (h *ActivityHandler) GetActivity(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	userID := uint(id)

	if _, err := h.userRepository.GetUserByID(userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	recipes, err := h.recipeRepository.GetRecipesByUser(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	records, err := h.cookRecordRepository.GetCookRecordsByUser(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	comments, err := h.commentRepository.GetCommentsByUser(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	posts, err := h.postRepository.GetPostsByUser(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := activity.Merge(recipes, records, comments, posts)
	result := activity.Paginate(items, page)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"items": result.Items,
		},
		"meta": echo.Map{
			"currentPage":  result.Page,
			"totalPages":   result.Pages,
			"totalItems":   result.TotalItems,
			"itemsPerPage": activity.PageSize,
		},
	})
}

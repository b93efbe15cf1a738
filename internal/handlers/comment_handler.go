package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xgyuan/cookshare/backend/internal/gamification"
	"github.com/xgyuan/cookshare/backend/internal/models"
	"github.com/xgyuan/cookshare/backend/internal/repositories"
	"gorm.io/gorm"
)

// CommentHandler handles recipe comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	recipeRepository  repositories.RecipeRepository
	gamification      *gamification.Service
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	commentRepo repositories.CommentRepository,
	recipeRepo repositories.RecipeRepository,
	gamificationSvc *gamification.Service,
) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		recipeRepository:  recipeRepo,
		gamification:      gamificationSvc,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/recipes/:id/comments", h.CreateComment)
}

// CreateComment posts a rated comment on a recipe, then re-evaluates
// achievement rules.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}

	if _, err := h.recipeRepository.GetRecipeByID(uint(recipeID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment := &models.Comment{
		Content:  req.Content,
		Rating:   req.Rating,
		UserID:   currentUserID,
		RecipeID: uint(recipeID),
	}

	if err := h.commentRepository.CreateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.gamification.CheckAndAward(currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Comment posted", "comment": comment})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xgyuan/cookshare/backend/internal/models"
	"github.com/xgyuan/cookshare/backend/internal/repositories"
	"gorm.io/gorm"
)

// FavoriteHandler handles the recipe favorite toggle
type FavoriteHandler struct {
	favoriteRepository repositories.FavoriteRepository
	recipeRepository   repositories.RecipeRepository
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favoriteRepo repositories.FavoriteRepository, recipeRepo repositories.RecipeRepository) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteRepository: favoriteRepo,
		recipeRepository:   recipeRepo,
	}
}

// RegisterFavoriteRoutes registers favorite-related routes
func (h *FavoriteHandler) RegisterFavoriteRoutes(g *echo.Group) {
	g.POST("/recipes/:id/favorite", h.ToggleFavorite)
}

// ToggleFavorite flips the favorite state for (user, recipe): a row is
// removed when present, created when absent.
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
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

	hasFavorited, err := h.favoriteRepository.HasFavorited(currentUserID, uint(recipeID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if hasFavorited {
		if err := h.favoriteRepository.DeleteFavorite(currentUserID, uint(recipeID)); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":   true,
			"message":   "Removed from favorites",
			"favorited": false,
		})
	}

	favorite := &models.Favorite{UserID: currentUserID, RecipeID: uint(recipeID)}
	if err := h.favoriteRepository.CreateFavorite(favorite); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"message":   "Added to favorites",
		"favorited": true,
	})
}

package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xgyuan/cookshare/backend/internal/gamification"
	"github.com/xgyuan/cookshare/backend/internal/models"
	"github.com/xgyuan/cookshare/backend/internal/repositories"
	"gorm.io/gorm"
)

const recipesPerPage = 9

// RecipeHandler handles recipe browsing and CRUD
type RecipeHandler struct {
	recipeRepository   repositories.RecipeRepository
	categoryRepository repositories.CategoryRepository
	commentRepository  repositories.CommentRepository
	favoriteRepository repositories.FavoriteRepository
	gamification       *gamification.Service
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(
	recipeRepo repositories.RecipeRepository,
	categoryRepo repositories.CategoryRepository,
	commentRepo repositories.CommentRepository,
	favoriteRepo repositories.FavoriteRepository,
	gamificationSvc *gamification.Service,
) *RecipeHandler {
	return &RecipeHandler{
		recipeRepository:   recipeRepo,
		categoryRepository: categoryRepo,
		commentRepository:  commentRepo,
		favoriteRepository: favoriteRepo,
		gamification:       gamificationSvc,
	}
}

// RegisterPublicRoutes registers the unauthenticated browsing routes
func (h *RecipeHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/recipes", h.ListRecipes)
	g.GET("/recipes/hot", h.HotRecipes)
	g.GET("/recipes/:id", h.GetRecipe)
	g.GET("/categories", h.ListCategories)
}

// RegisterRecipeRoutes registers the authenticated recipe routes
func (h *RecipeHandler) RegisterRecipeRoutes(g *echo.Group) {
	g.POST("/recipes", h.CreateRecipe)
	g.PUT("/recipes/:id", h.UpdateRecipe)
	g.DELETE("/recipes/:id", h.DeleteRecipe)
}

// ListRecipes returns one newest-first page of recipes with optional
// category filter and title/description search.
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	categoryID, _ := strconv.ParseUint(c.QueryParam("category"), 10, 32)
	query := c.QueryParam("q")

	recipes, total, err := h.recipeRepository.ListRecipes(page, recipesPerPage, uint(categoryID), query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	totalPages := int(math.Ceil(float64(total) / float64(recipesPerPage)))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"recipes": recipes,
		},
		"meta": echo.Map{
			"currentPage":  page,
			"totalPages":   totalPages,
			"totalItems":   total,
			"itemsPerPage": recipesPerPage,
		},
	})
}

// HotRecipes returns the recipes with the most favorites.
func (h *RecipeHandler) HotRecipes(c echo.Context) error {
	categoryID, _ := strconv.ParseUint(c.QueryParam("category"), 10, 32)

	recipes, err := h.recipeRepository.HotRecipes(uint(categoryID), 10)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"recipes": recipes}})
}

// GetRecipe returns a recipe with its categories, comments, average
// rating and favorite count.
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}

	recipe, err := h.recipeRepository.GetRecipeByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comments, err := h.commentRepository.GetCommentsByRecipe(recipe.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	avgRating, err := h.commentRepository.AverageRating(recipe.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	favoriteCount, err := h.favoriteRepository.CountByRecipe(recipe.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Viewer-specific favorite state, when authenticated
	isFavorited := false
	if viewerID := getUserIDFromContext(c); viewerID != 0 {
		isFavorited, _ = h.favoriteRepository.HasFavorited(viewerID, recipe.ID)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"recipe":         recipe,
			"comments":       comments,
			"average_rating": avgRating,
			"favorite_count": favoriteCount,
			"is_favorited":   isFavorited,
		},
	})
}

// ListCategories returns the category catalog.
func (h *RecipeHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryRepository.GetCategories()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"categories": categories}})
}

// CreateRecipe publishes a recipe, then re-evaluates achievement rules.
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	categories, err := h.categoryRepository.GetCategoriesByIDs(req.CategoryIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	recipe := &models.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CookingTime:  req.CookingTime,
		Difficulty:   req.Difficulty,
		Servings:     req.Servings,
		ImageURL:     req.ImageURL,
		UserID:       currentUserID,
		Categories:   categories,
	}

	if err := h.recipeRepository.CreateRecipe(recipe); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Achievement checks run their own commit cycle after the insert.
	if err := h.gamification.CheckAndAward(currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Recipe published", "recipe": recipe})
}

// UpdateRecipe edits a recipe. Only the author may edit.
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}

	recipe, err := h.recipeRepository.GetRecipeByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if recipe.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to edit this recipe")
	}

	var req models.UpdateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	recipe.Title = req.Title
	recipe.Description = req.Description
	recipe.Ingredients = req.Ingredients
	recipe.Instructions = req.Instructions
	recipe.CookingTime = req.CookingTime
	recipe.Difficulty = req.Difficulty
	recipe.Servings = req.Servings
	recipe.ImageURL = req.ImageURL

	if err := h.recipeRepository.UpdateRecipe(recipe); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	categories, err := h.categoryRepository.GetCategoriesByIDs(req.CategoryIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.recipeRepository.ReplaceCategories(recipe, categories); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Recipe updated", "recipe": recipe})
}

// DeleteRecipe removes a recipe and its comments and favorites. Only
// the author may delete.
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}

	recipe, err := h.recipeRepository.GetRecipeByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Recipe not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if recipe.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to delete this recipe")
	}

	if err := h.recipeRepository.DeleteRecipe(recipe.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Recipe deleted"})
}

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

// CookRecordHandler handles "I cooked this" journal entries
type CookRecordHandler struct {
	cookRecordRepository repositories.CookRecordRepository
	recipeRepository     repositories.RecipeRepository
	gamification         *gamification.Service
}

// NewCookRecordHandler creates a new CookRecordHandler
func NewCookRecordHandler(
	cookRecordRepo repositories.CookRecordRepository,
	recipeRepo repositories.RecipeRepository,
	gamificationSvc *gamification.Service,
) *CookRecordHandler {
	return &CookRecordHandler{
		cookRecordRepository: cookRecordRepo,
		recipeRepository:     recipeRepo,
		gamification:         gamificationSvc,
	}
}

// RegisterCookRecordRoutes registers cook record routes
func (h *CookRecordHandler) RegisterCookRecordRoutes(g *echo.Group) {
	g.GET("/recipes/:id/cook-records", h.ListCookRecords)
	g.POST("/recipes/:id/cook-records", h.CreateCookRecord)
}

// ListCookRecords lists the cook records logged against a recipe.
func (h *CookRecordHandler) ListCookRecords(c echo.Context) error {
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}

	records, err := h.cookRecordRepository.GetCookRecordsByRecipe(uint(recipeID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"cook_records": records}})
}

// CreateCookRecord logs a cook record, then re-evaluates rules (badge
// thresholds include cook record counts).
func (h *CookRecordHandler) CreateCookRecord(c echo.Context) error {
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

	var req models.CreateCookRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record := &models.CookRecord{
		UserID:   currentUserID,
		RecipeID: uint(recipeID),
		Content:  req.Content,
		Rating:   req.Rating,
		ImageURL: req.ImageURL,
	}

	if err := h.cookRecordRepository.CreateCookRecord(record); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.gamification.CheckAndAward(currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Cook record logged", "cook_record": record})
}

package repositories

import (
	"fmt"

	"github.com/xgyuan/cookshare/backend/internal/models"
	"gorm.io/gorm"
)

// FavoriteRepository defines the interface for favorite toggle operations
type FavoriteRepository interface {
	CreateFavorite(favorite *models.Favorite) error
	DeleteFavorite(userID, recipeID uint) error
	HasFavorited(userID, recipeID uint) (bool, error)
	CountByRecipe(recipeID uint) (int64, error)
	GetFavoriteRecipes(userID uint) ([]models.Recipe, error)
}

// PostgresFavoriteRepository implements FavoriteRepository for PostgreSQL
type PostgresFavoriteRepository struct {
	db *gorm.DB
}

// NewPostgresFavoriteRepository creates a new PostgresFavoriteRepository
func NewPostgresFavoriteRepository(db *gorm.DB) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{db: db}
}

func (r *PostgresFavoriteRepository) CreateFavorite(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

func (r *PostgresFavoriteRepository) DeleteFavorite(userID, recipeID uint) error {
	res := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("favorite not found")
	}
	return nil
}

func (r *PostgresFavoriteRepository) HasFavorited(userID, recipeID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Favorite{}).Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresFavoriteRepository) CountByRecipe(recipeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).Where("recipe_id = ?", recipeID).Count(&count).Error
	return count, err
}

// GetFavoriteRecipes returns the recipes the user has favorited,
// newest favorite first.
func (r *PostgresFavoriteRepository) GetFavoriteRecipes(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&recipes).Error
	return recipes, err
}

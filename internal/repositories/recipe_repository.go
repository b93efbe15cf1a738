package repositories

import (
	"github.com/xgyuan/cookshare/backend/internal/models"
	"gorm.io/gorm"
)

// RecipeRepository defines the interface for recipe data operations
type RecipeRepository interface {
	CreateRecipe(recipe *models.Recipe) error
	GetRecipeByID(id uint) (*models.Recipe, error)
	UpdateRecipe(recipe *models.Recipe) error
	ReplaceCategories(recipe *models.Recipe, categories []models.Category) error
	DeleteRecipe(id uint) error
	ListRecipes(page, perPage int, categoryID uint, query string) ([]models.Recipe, int64, error)
	HotRecipes(categoryID uint, limit int) ([]models.Recipe, error)
	GetRecipesByUser(userID uint) ([]models.Recipe, error)
	CountByUser(userID uint) (int64, error)
}

// PostgresRecipeRepository implements RecipeRepository for PostgreSQL
type PostgresRecipeRepository struct {
	db *gorm.DB
}

// NewPostgresRecipeRepository creates a new PostgresRecipeRepository
func NewPostgresRecipeRepository(db *gorm.DB) *PostgresRecipeRepository {
	return &PostgresRecipeRepository{db: db}
}

func (r *PostgresRecipeRepository) CreateRecipe(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *PostgresRecipeRepository) GetRecipeByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.Preload("Categories").First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *PostgresRecipeRepository) UpdateRecipe(recipe *models.Recipe) error {
	return r.db.Save(recipe).Error
}

// ReplaceCategories swaps the recipe's category set for the given one.
func (r *PostgresRecipeRepository) ReplaceCategories(recipe *models.Recipe, categories []models.Category) error {
	return r.db.Model(recipe).Association("Categories").Replace(categories)
}

// DeleteRecipe removes the recipe and its comments and favorites in
// one transaction. The cascade is done explicitly so it holds on any
// backing database.
func (r *PostgresRecipeRepository) DeleteRecipe(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipe_categories WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}

// ListRecipes returns one newest-first page of recipes, optionally
// filtered by category and by a title/description substring match.
func (r *PostgresRecipeRepository) ListRecipes(page, perPage int, categoryID uint, query string) ([]models.Recipe, int64, error) {
	q := r.db.Model(&models.Recipe{})

	if categoryID != 0 {
		q = q.Joins("JOIN recipe_categories rc ON rc.recipe_id = recipes.id").
			Where("rc.category_id = ?", categoryID)
	}
	if query != "" {
		q = q.Where("title LIKE ? OR description LIKE ?", "%"+query+"%", "%"+query+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	offset := (page - 1) * perPage
	err := q.Preload("Categories").
		Order("recipes.created_at DESC").
		Offset(offset).Limit(perPage).
		Find(&recipes).Error
	return recipes, total, err
}

// HotRecipes returns the recipes with the most favorites, optionally
// restricted to a category.
func (r *PostgresRecipeRepository) HotRecipes(categoryID uint, limit int) ([]models.Recipe, error) {
	q := r.db.Model(&models.Recipe{}).
		Joins("LEFT JOIN favorites ON favorites.recipe_id = recipes.id")

	if categoryID != 0 {
		q = q.Joins("JOIN recipe_categories rc ON rc.recipe_id = recipes.id").
			Where("rc.category_id = ?", categoryID)
	}

	var recipes []models.Recipe
	err := q.Group("recipes.id").
		Order("COUNT(favorites.id) DESC, recipes.created_at DESC").
		Limit(limit).
		Preload("Categories").
		Find(&recipes).Error
	return recipes, err
}

func (r *PostgresRecipeRepository) GetRecipesByUser(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

func (r *PostgresRecipeRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

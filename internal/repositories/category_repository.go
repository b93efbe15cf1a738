package repositories

import (
	"github.com/xgyuan/cookshare/backend/internal/models"
	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	GetCategories() ([]models.Category, error)
	GetCategoriesByIDs(ids []uint) ([]models.Category, error)
}

// PostgresCategoryRepository implements CategoryRepository for PostgreSQL
type PostgresCategoryRepository struct {
	db *gorm.DB
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository
func NewPostgresCategoryRepository(db *gorm.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("id").Find(&categories).Error
	return categories, err
}

func (r *PostgresCategoryRepository) GetCategoriesByIDs(ids []uint) ([]models.Category, error) {
	var categories []models.Category
	if len(ids) == 0 {
		return categories, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&categories).Error
	return categories, err
}

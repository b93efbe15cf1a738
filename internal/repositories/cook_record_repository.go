package repositories

import (
	"github.com/xgyuan/cookshare/backend/internal/models"
	"gorm.io/gorm"
)

// CookRecordRepository defines the interface for cook record operations
type CookRecordRepository interface {
	CreateCookRecord(record *models.CookRecord) error
	GetCookRecordsByRecipe(recipeID uint) ([]models.CookRecord, error)
	GetCookRecordsByUser(userID uint) ([]models.CookRecord, error)
	CountByUser(userID uint) (int64, error)
}

// PostgresCookRecordRepository implements CookRecordRepository for PostgreSQL
type PostgresCookRecordRepository struct {
	db *gorm.DB
}

// NewPostgresCookRecordRepository creates a new PostgresCookRecordRepository
func NewPostgresCookRecordRepository(db *gorm.DB) *PostgresCookRecordRepository {
	return &PostgresCookRecordRepository{db: db}
}

func (r *PostgresCookRecordRepository) CreateCookRecord(record *models.CookRecord) error {
	return r.db.Create(record).Error
}

func (r *PostgresCookRecordRepository) GetCookRecordsByRecipe(recipeID uint) ([]models.CookRecord, error) {
	var records []models.CookRecord
	err := r.db.Where("recipe_id = ?", recipeID).Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *PostgresCookRecordRepository) GetCookRecordsByUser(userID uint) ([]models.CookRecord, error) {
	var records []models.CookRecord
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *PostgresCookRecordRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CookRecord{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

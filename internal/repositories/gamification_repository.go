package repositories

import (
	"github.com/xgyuan/cookshare/backend/internal/models"
	"gorm.io/gorm"
)

// GamificationRepository exposes a user's earned achievements and badges.
type GamificationRepository interface {
	GetUserAchievements(userID uint) ([]models.UserAchievement, error)
	GetUserBadges(userID uint) ([]models.UserBadge, error)
}

// PostgresGamificationRepository implements GamificationRepository for PostgreSQL
type PostgresGamificationRepository struct {
	db *gorm.DB
}

// NewPostgresGamificationRepository creates a new PostgresGamificationRepository
func NewPostgresGamificationRepository(db *gorm.DB) *PostgresGamificationRepository {
	return &PostgresGamificationRepository{db: db}
}

func (r *PostgresGamificationRepository) GetUserAchievements(userID uint) ([]models.UserAchievement, error) {
	var grants []models.UserAchievement
	err := r.db.Preload("Achievement").Where("user_id = ?", userID).Order("achieved_at DESC").Find(&grants).Error
	return grants, err
}

func (r *PostgresGamificationRepository) GetUserBadges(userID uint) ([]models.UserBadge, error) {
	var grants []models.UserBadge
	err := r.db.Preload("Badge").Where("user_id = ?", userID).Order("awarded_at DESC").Find(&grants).Error
	return grants, err
}

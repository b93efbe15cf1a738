package repositories

import (
	"fmt"

	"github.com/xgyuan/cookshare/backend/internal/models"
	"gorm.io/gorm"
)

// PostLikeRepository defines the interface for post like toggle operations
type PostLikeRepository interface {
	CreateLike(like *models.PostLike) error
	DeleteLike(userID, postID uint) error
	HasUserLikedPost(userID, postID uint) (bool, error)
	CountByPost(postID uint) (int64, error)
}

// PostgresPostLikeRepository implements PostLikeRepository for PostgreSQL
type PostgresPostLikeRepository struct {
	db *gorm.DB
}

// NewPostgresPostLikeRepository creates a new PostgresPostLikeRepository
func NewPostgresPostLikeRepository(db *gorm.DB) *PostgresPostLikeRepository {
	return &PostgresPostLikeRepository{db: db}
}

func (r *PostgresPostLikeRepository) CreateLike(like *models.PostLike) error {
	return r.db.Create(like).Error
}

func (r *PostgresPostLikeRepository) DeleteLike(userID, postID uint) error {
	res := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.PostLike{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("like not found")
	}
	return nil
}

func (r *PostgresPostLikeRepository) HasUserLikedPost(userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.PostLike{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresPostLikeRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

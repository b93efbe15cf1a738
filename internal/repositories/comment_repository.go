package repositories

import (
	"github.com/xgyuan/cookshare/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for recipe comment operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentsByRecipe(recipeID uint) ([]models.Comment, error)
	GetCommentsByUser(userID uint) ([]models.Comment, error)
	CountByUser(userID uint) (int64, error)
	AverageRating(recipeID uint) (float64, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *PostgresCommentRepository) GetCommentsByRecipe(recipeID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("recipe_id = ?", recipeID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (r *PostgresCommentRepository) GetCommentsByUser(userID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (r *PostgresCommentRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// AverageRating returns the mean star rating across the recipe's
// comments, 0 when there are none.
func (r *PostgresCommentRepository) AverageRating(recipeID uint) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Comment{}).Where("recipe_id = ?", recipeID).
		Select("AVG(rating)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

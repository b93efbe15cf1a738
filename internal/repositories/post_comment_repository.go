package repositories

import (
	"github.com/xgyuan/cookshare/backend/internal/models"
	"gorm.io/gorm"
)

// PostCommentRepository defines the interface for post reply operations
type PostCommentRepository interface {
	CreatePostComment(comment *models.PostComment) error
	GetCommentsByPost(postID uint) ([]models.PostComment, error)
}

// PostgresPostCommentRepository implements PostCommentRepository for PostgreSQL
type PostgresPostCommentRepository struct {
	db *gorm.DB
}

// NewPostgresPostCommentRepository creates a new PostgresPostCommentRepository
func NewPostgresPostCommentRepository(db *gorm.DB) *PostgresPostCommentRepository {
	return &PostgresPostCommentRepository{db: db}
}

func (r *PostgresPostCommentRepository) CreatePostComment(comment *models.PostComment) error {
	return r.db.Create(comment).Error
}

func (r *PostgresPostCommentRepository) GetCommentsByPost(postID uint) ([]models.PostComment, error) {
	var comments []models.PostComment
	err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

package repositories

import (
	"github.com/xgyuan/cookshare/backend/internal/models"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for direct message operations
type MessageRepository interface {
	CreateMessage(message *models.Message) error
	GetThread(userID, peerID uint) ([]models.Message, error)
	MarkThreadRead(viewerID, peerID uint) error
}

// PostgresMessageRepository implements MessageRepository for PostgreSQL
type PostgresMessageRepository struct {
	db *gorm.DB
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(db *gorm.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) CreateMessage(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetThread returns the full bidirectional conversation between two
// users, oldest first.
func (r *PostgresMessageRepository) GetThread(userID, peerID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userID, peerID, peerID, userID,
	).Order("created_at ASC").Find(&messages).Error
	return messages, err
}

// MarkThreadRead flags every unread message from peerID to viewerID as
// read in one update.
func (r *PostgresMessageRepository) MarkThreadRead(viewerID, peerID uint) error {
	return r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", viewerID, peerID, false).
		Update("is_read", true).Error
}

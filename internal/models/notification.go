package models

import "time"

// Notification types.
const (
	NotificationGeneral       = "general"
	NotificationAchievement   = "achievement"
	NotificationBadge         = "badge"
	NotificationFriendMessage = "friend_message"
)

// Notification is a user-targeted event record. Senders are optional;
// grant notifications carry none.
type Notification struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	Message        string    `json:"message" gorm:"size:256;not null"`
	Type           string    `json:"type" gorm:"size:32;default:'general';index"`
	SenderID       uint      `json:"sender_id,omitempty"`
	SenderUsername string    `json:"sender_username,omitempty" gorm:"size:64"`
	IsRead         bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
}

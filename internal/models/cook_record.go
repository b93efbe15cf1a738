package models

import "time"

// CookRecord is a user's "I cooked this" journal entry for a recipe.
type CookRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	RecipeID  uint      `json:"recipe_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	ImageURL  string    `json:"image_url" gorm:"size:256"`
	Rating    int       `json:"rating"` // 1-5 stars
	CreatedAt time.Time `json:"created_at"`
}

// CreateCookRecordRequest defines the request body for logging a cook record.
type CreateCookRecordRequest struct {
	Content  string `json:"content" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
}

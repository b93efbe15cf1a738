package models

import "time"

// Comment is a rated review on a recipe.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Rating    int       `json:"rating"` // 1-5 stars
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	RecipeID  uint      `json:"recipe_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for commenting on a recipe.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

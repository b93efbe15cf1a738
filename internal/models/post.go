package models

import "time"

// Post is a lightweight social feed item. Likes and comments are
// removed with the post.
type Post struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Content   string        `json:"content" gorm:"type:text;not null"`
	ImageURL  string        `json:"image_url" gorm:"size:256"`
	UserID    uint          `json:"user_id" gorm:"index;not null"`
	Likes     []PostLike    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Comments  []PostComment `json:"comments,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time     `json:"created_at" gorm:"index"`
}

// PostLike is a toggle row, one per (user, post) pair.
type PostLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_post_like"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_user_post_like"`
	CreatedAt time.Time `json:"created_at"`
}

// PostComment is a reply on a social feed post.
type PostComment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest defines the request body for publishing a post.
type CreatePostRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=500"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// UpdatePostRequest defines the request body for editing a post.
type UpdatePostRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=500"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// CreatePostCommentRequest defines the request body for replying to a post.
type CreatePostCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

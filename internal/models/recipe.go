package models

import "time"

// Recipe is a published recipe authored by exactly one user.
// Categories is a many-to-many association through recipe_categories.
// Comments and Favorites are removed with the recipe.
type Recipe struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Title        string     `json:"title" gorm:"size:200;not null"`
	Description  string     `json:"description" gorm:"type:text"`
	Ingredients  string     `json:"ingredients" gorm:"type:text;not null"`
	Instructions string     `json:"instructions" gorm:"type:text;not null"`
	CookingTime  int        `json:"cooking_time"` // minutes
	Difficulty   string     `json:"difficulty" gorm:"size:20"`
	Servings     int        `json:"servings"`
	ImageURL     string     `json:"image_url" gorm:"size:500"`
	UserID       uint       `json:"user_id" gorm:"index;not null"`
	Categories   []Category `json:"categories,omitempty" gorm:"many2many:recipe_categories"`
	Comments     []Comment  `json:"comments,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Favorites    []Favorite `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreateRecipeRequest defines the request body for publishing a recipe.
type CreateRecipeRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description,omitempty"`
	Ingredients  string `json:"ingredients" validate:"required"`
	Instructions string `json:"instructions" validate:"required"`
	CookingTime  int    `json:"cooking_time" validate:"required,min=1"`
	Difficulty   string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Servings     int    `json:"servings" validate:"required,min=1"`
	ImageURL     string `json:"image_url,omitempty" validate:"omitempty,url"`
	CategoryIDs  []uint `json:"category_ids,omitempty"`
}

// UpdateRecipeRequest defines the request body for editing a recipe.
// The full field set is resubmitted, mirroring the publish form.
type UpdateRecipeRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description,omitempty"`
	Ingredients  string `json:"ingredients" validate:"required"`
	Instructions string `json:"instructions" validate:"required"`
	CookingTime  int    `json:"cooking_time" validate:"required,min=1"`
	Difficulty   string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Servings     int    `json:"servings" validate:"required,min=1"`
	ImageURL     string `json:"image_url,omitempty" validate:"omitempty,url"`
	CategoryIDs  []uint `json:"category_ids,omitempty"`
}

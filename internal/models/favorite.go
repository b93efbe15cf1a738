package models

import "time"

// Favorite is a toggle row: its presence means the user has favorited
// the recipe. The composite unique index keeps one row per pair even
// if two toggle requests race.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_recipe_fav"`
	RecipeID  uint      `json:"recipe_id" gorm:"index;uniqueIndex:idx_user_recipe_fav"`
	CreatedAt time.Time `json:"created_at"`
}

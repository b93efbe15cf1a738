package handlers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/xgyuan/cookshare/backend/internal/models"
	"github.com/xgyuan/cookshare/backend/internal/repositories"
)

func TestToggleFavorite(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewFavoriteHandler(
		repositories.NewPostgresFavoriteRepository(db),
		repositories.NewPostgresRecipeRepository(db),
	)

	author := createUser(t, db, "author")
	reader := createUser(t, db, "reader")
	recipe := &models.Recipe{
		Title:        "Tomato Egg Stir Fry",
		Ingredients:  "tomatoes, eggs",
		Instructions: "stir fry",
		CookingTime:  10,
		Difficulty:   "easy",
		Servings:     2,
		UserID:       author.ID,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	toggle := func(t *testing.T) int {
		t.Helper()
		c, rec := newTestContext(e, http.MethodPost, "/recipes/:id/favorite", "", reader)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(int(recipe.ID)))
		if err := h.ToggleFavorite(c); err != nil {
			t.Fatalf("ToggleFavorite: %v", err)
		}
		return rec.Code
	}

	countFavorites := func() int64 {
		var n int64
		db.Model(&models.Favorite{}).
			Where("user_id = ? AND recipe_id = ?", reader.ID, recipe.ID).
			Count(&n)
		return n
	}

	t.Run("double toggle returns to the original state", func(t *testing.T) {
		toggle(t)
		if got := countFavorites(); got != 1 {
			t.Fatalf("after first toggle expected 1 favorite, got %d", got)
		}
		toggle(t)
		if got := countFavorites(); got != 0 {
			t.Fatalf("after second toggle expected 0 favorites, got %d", got)
		}
		toggle(t)
		if got := countFavorites(); got != 1 {
			t.Fatalf("after third toggle expected 1 favorite, got %d", got)
		}
	})

	t.Run("unknown recipe is not found", func(t *testing.T) {
		c, _ := newTestContext(e, http.MethodPost, "/recipes/:id/favorite", "", reader)
		c.SetParamNames("id")
		c.SetParamValues("9999")
		err := h.ToggleFavorite(c)
		assertHTTPError(t, err, http.StatusNotFound)
	})

	t.Run("unauthenticated request is rejected", func(t *testing.T) {
		c, _ := newTestContext(e, http.MethodPost, "/recipes/:id/favorite", "", nil)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(int(recipe.ID)))
		err := h.ToggleFavorite(c)
		assertHTTPError(t, err, http.StatusUnauthorized)
	})
}

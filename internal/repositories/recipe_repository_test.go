package repositories

import (
	"testing"

	"github.com/xgyuan/cookshare/backend/internal/models"
)

func TestRecipeRepository(t *testing.T) {
	t.Run("delete cascades to comments and favorites", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresRecipeRepository(db)
		alice := createTestUser(t, db, "alice")
		bob := createTestUser(t, db, "bob")
		recipe := createTestRecipe(t, db, alice.ID, "Dumplings")

		db.Create(&models.Comment{Content: "great", Rating: 5, UserID: bob.ID, RecipeID: recipe.ID})
		db.Create(&models.Favorite{UserID: bob.ID, RecipeID: recipe.ID})

		if err := repo.DeleteRecipe(recipe.ID); err != nil {
			t.Fatalf("DeleteRecipe: %v", err)
		}

		var comments, favorites int64
		db.Model(&models.Comment{}).Where("recipe_id = ?", recipe.ID).Count(&comments)
		db.Model(&models.Favorite{}).Where("recipe_id = ?", recipe.ID).Count(&favorites)
		if comments != 0 || favorites != 0 {
			t.Errorf("comments = %d favorites = %d after delete, want 0 and 0", comments, favorites)
		}
	})

	t.Run("list filters by search query", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresRecipeRepository(db)
		alice := createTestUser(t, db, "alice")
		createTestRecipe(t, db, alice.ID, "Beef Noodle Soup")
		createTestRecipe(t, db, alice.ID, "Apple Pie")

		recipes, total, err := repo.ListRecipes(1, 9, 0, "Noodle")
		if err != nil {
			t.Fatalf("ListRecipes: %v", err)
		}
		if total != 1 || len(recipes) != 1 {
			t.Fatalf("total = %d len = %d, want 1 and 1", total, len(recipes))
		}
		if recipes[0].Title != "Beef Noodle Soup" {
			t.Errorf("title = %q", recipes[0].Title)
		}
	})

	t.Run("list filters by category", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresRecipeRepository(db)
		alice := createTestUser(t, db, "alice")

		baking := models.Category{Name: "Baking"}
		if err := db.Create(&baking).Error; err != nil {
			t.Fatalf("create category: %v", err)
		}

		pie := createTestRecipe(t, db, alice.ID, "Apple Pie")
		createTestRecipe(t, db, alice.ID, "Beef Noodle Soup")
		if err := db.Model(pie).Association("Categories").Append(&baking); err != nil {
			t.Fatalf("append category: %v", err)
		}

		recipes, total, err := repo.ListRecipes(1, 9, baking.ID, "")
		if err != nil {
			t.Fatalf("ListRecipes: %v", err)
		}
		if total != 1 || len(recipes) != 1 || recipes[0].ID != pie.ID {
			t.Fatalf("got %d recipes (total %d), want just the pie", len(recipes), total)
		}
	})

	t.Run("hot recipes ordered by favorite count", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresRecipeRepository(db)
		alice := createTestUser(t, db, "alice")
		bob := createTestUser(t, db, "bob")
		carol := createTestUser(t, db, "carol")

		plain := createTestRecipe(t, db, alice.ID, "Plain Rice")
		popular := createTestRecipe(t, db, alice.ID, "Mapo Tofu")
		db.Create(&models.Favorite{UserID: bob.ID, RecipeID: popular.ID})
		db.Create(&models.Favorite{UserID: carol.ID, RecipeID: popular.ID})
		db.Create(&models.Favorite{UserID: bob.ID, RecipeID: plain.ID})

		recipes, err := repo.HotRecipes(0, 10)
		if err != nil {
			t.Fatalf("HotRecipes: %v", err)
		}
		if len(recipes) != 2 || recipes[0].ID != popular.ID {
			t.Fatalf("hot order wrong: %v", recipes)
		}
	})
}

func TestFavoriteRepository(t *testing.T) {
	t.Run("toggle sequence returns to the original state", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresFavoriteRepository(db)
		alice := createTestUser(t, db, "alice")
		recipe := createTestRecipe(t, db, alice.ID, "Dumplings")

		// Two toggles: on, then off.
		if err := repo.CreateFavorite(&models.Favorite{UserID: alice.ID, RecipeID: recipe.ID}); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := repo.DeleteFavorite(alice.ID, recipe.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}

		has, err := repo.HasFavorited(alice.ID, recipe.ID)
		if err != nil || has {
			t.Fatalf("HasFavorited = %v, %v; want false", has, err)
		}

		// Third toggle: exactly one row again.
		if err := repo.CreateFavorite(&models.Favorite{UserID: alice.ID, RecipeID: recipe.ID}); err != nil {
			t.Fatalf("create again: %v", err)
		}
		var rows int64
		db.Model(&models.Favorite{}).Where("user_id = ? AND recipe_id = ?", alice.ID, recipe.ID).Count(&rows)
		if rows != 1 {
			t.Errorf("favorite rows = %d, want 1", rows)
		}
	})
}

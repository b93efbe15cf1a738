package repositories

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/xgyuan/cookshare/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Recipe{},
		&models.Comment{},
		&models.Favorite{},
		&models.CookRecord{},
		&models.Post{},
		&models.PostLike{},
		&models.PostComment{},
		&models.Follow{},
		&models.Message{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Level: 1}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createTestRecipe(t *testing.T, db *gorm.DB, userID uint, title string) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Title:        title,
		Ingredients:  "ingredients",
		Instructions: "instructions",
		UserID:       userID,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("create recipe %s: %v", title, err)
	}
	return recipe
}

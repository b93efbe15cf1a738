package seed

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/xgyuan/cookshare/backend/internal/gamification"
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
	if err := db.AutoMigrate(&models.Category{}, &models.Achievement{}, &models.Badge{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRunIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := Run(db); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	if int(categoryCount) != len(categories) {
		t.Fatalf("expected %d categories, got %d", len(categories), categoryCount)
	}

	var achievementCount int64
	db.Model(&models.Achievement{}).Count(&achievementCount)
	if int(achievementCount) != len(achievements) {
		t.Fatalf("expected %d achievements, got %d", len(achievements), achievementCount)
	}

	var badgeCount int64
	db.Model(&models.Badge{}).Count(&badgeCount)
	if int(badgeCount) != len(badges) {
		t.Fatalf("expected %d badges, got %d", len(badges), badgeCount)
	}
}

func TestRunSeedsRuleCatalogs(t *testing.T) {
	db := newTestDB(t)
	if err := Run(db); err != nil {
		t.Fatalf("run: %v", err)
	}

	// Every default rule must find its catalog row by name.
	for _, rule := range gamification.DefaultRules() {
		switch rule.Kind {
		case gamification.KindAchievement:
			var a models.Achievement
			if err := db.Where("name = ?", rule.Name).First(&a).Error; err != nil {
				t.Errorf("achievement %q not seeded: %v", rule.Name, err)
			}
		case gamification.KindBadge:
			var b models.Badge
			if err := db.Where("name = ?", rule.Name).First(&b).Error; err != nil {
				t.Errorf("badge %q not seeded: %v", rule.Name, err)
			}
		default:
			t.Errorf("rule %q has unknown kind %q", rule.Name, rule.Kind)
		}
	}
}

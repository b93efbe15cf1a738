// Package seed populates the fixed catalogs (categories, achievements,
// badges) at startup. Running it again is a no-op for rows that
// already exist, keyed by their unique names.
package seed

import (
	"log"

	"github.com/xgyuan/cookshare/backend/internal/gamification"
	"github.com/xgyuan/cookshare/backend/internal/models"
	"gorm.io/gorm"
)

var categories = []string{
	"Home Cooking", "Sichuan", "Cantonese", "Hunan", "Baking",
	"Vegetarian", "Soups", "Snacks", "Desserts", "Western", "Drinks",
}

var achievements = []models.Achievement{
	{
		Name:        gamification.AchievementFirstPost,
		Description: "Share your first recipe or post",
		Icon:        "icons/first_post.png",
		Exp:         20,
	},
	{
		Name:        gamification.AchievementProlificCommenter,
		Description: "Leave 10 comments on recipes",
		Icon:        "icons/prolific_commenter.png",
		Exp:         50,
	},
}

var badges = []models.Badge{
	{
		Name:        gamification.BadgeMasterChef,
		Description: "Publish 10 recipes",
		Icon:        "icons/master_chef.png",
	},
	{
		Name:        gamification.BadgeKitchenRegular,
		Description: "Log 5 cook records",
		Icon:        "icons/kitchen_regular.png",
	},
}

// Run seeds every catalog. Idempotent.
func Run(db *gorm.DB) error {
	for _, name := range categories {
		var count int64
		if err := db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&models.Category{Name: name}).Error; err != nil {
				return err
			}
		}
	}

	for _, a := range achievements {
		var count int64
		if err := db.Model(&models.Achievement{}).Where("name = ?", a.Name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			a := a
			if err := db.Create(&a).Error; err != nil {
				return err
			}
		}
	}

	for _, b := range badges {
		var count int64
		if err := db.Model(&models.Badge{}).Where("name = ?", b.Name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			b := b
			if err := db.Create(&b).Error; err != nil {
				return err
			}
		}
	}

	log.Println("Catalog seeding completed.")
	return nil
}

// Package gamification implements the achievement and badge layer:
// idempotent grant primitives plus a registry of rules evaluated after
// content-producing actions.
package gamification

import (
	"errors"
	"fmt"

	"github.com/xgyuan/cookshare/backend/internal/models"
	"gorm.io/gorm"
)

// Service grants achievements and badges. Grants are at-most-once per
// (user, catalog entry); each successful grant notifies the user and,
// for achievements, adds the entry's experience reward.
type Service struct {
	db    *gorm.DB
	rules []Rule
}

// NewService creates a Service with the default rule set.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db, rules: DefaultRules()}
}

// NewServiceWithRules creates a Service with a custom rule set.
func NewServiceWithRules(db *gorm.DB, rules []Rule) *Service {
	return &Service{db: db, rules: rules}
}

// AwardAchievement grants the named achievement to the user. Unknown
// names are a no-op (a configuration gap, not an error), as is a grant
// the user already holds. The grant, the exp award and the
// notification commit atomically.
func (s *Service) AwardAchievement(userID uint, name string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var achievement models.Achievement
		if err := tx.Where("name = ?", name).First(&achievement).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		var held int64
		if err := tx.Model(&models.UserAchievement{}).
			Where("user_id = ? AND achievement_id = ?", userID, achievement.ID).
			Count(&held).Error; err != nil {
			return err
		}
		if held > 0 {
			return nil
		}

		grant := models.UserAchievement{UserID: userID, AchievementID: achievement.ID}
		if err := tx.Create(&grant).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		user.AddExp(achievement.Exp)
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		notification := models.Notification{
			UserID:  userID,
			Type:    models.NotificationAchievement,
			Message: fmt.Sprintf("Congratulations, you earned the achievement: %s!", achievement.Name),
		}
		return tx.Create(&notification).Error
	})
}

// AwardBadge grants the named badge to the user. Same no-op semantics
// as AwardAchievement; badges carry no experience reward.
func (s *Service) AwardBadge(userID uint, name string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var badge models.Badge
		if err := tx.Where("name = ?", name).First(&badge).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		var held int64
		if err := tx.Model(&models.UserBadge{}).
			Where("user_id = ? AND badge_id = ?", userID, badge.ID).
			Count(&held).Error; err != nil {
			return err
		}
		if held > 0 {
			return nil
		}

		grant := models.UserBadge{UserID: userID, BadgeID: badge.ID}
		if err := tx.Create(&grant).Error; err != nil {
			return err
		}

		notification := models.Notification{
			UserID:  userID,
			Type:    models.NotificationBadge,
			Message: fmt.Sprintf("Congratulations, you earned the badge: %s!", badge.Name),
		}
		return tx.Create(&notification).Error
	})
}

// CheckAndAward gathers the user's activity stats and awards every
// registered rule whose predicate holds. Grant idempotence makes
// re-evaluation safe.
func (s *Service) CheckAndAward(userID uint) error {
	stats, err := s.collectStats(userID)
	if err != nil {
		return err
	}

	for _, rule := range s.rules {
		if !rule.Met(stats) {
			continue
		}
		switch rule.Kind {
		case KindAchievement:
			err = s.AwardAchievement(userID, rule.Name)
		case KindBadge:
			err = s.AwardBadge(userID, rule.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) collectStats(userID uint) (Stats, error) {
	var stats Stats
	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Recipe{}, &stats.Recipes},
		{&models.Post{}, &stats.Posts},
		{&models.Comment{}, &stats.Comments},
		{&models.CookRecord{}, &stats.CookRecords},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Where("user_id = ?", userID).Count(c.dst).Error; err != nil {
			return stats, err
		}
	}
	return stats, nil
}

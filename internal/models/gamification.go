package models

import "time"

// Achievement is a catalog entry with an experience reward.
type Achievement struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:64;uniqueIndex;not null"`
	Description string `json:"description" gorm:"size:256"`
	Icon        string `json:"icon" gorm:"size:128"`
	Exp         int    `json:"exp" gorm:"default:0"`
}

// Badge is a catalog entry without an experience reward.
type Badge struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:64;uniqueIndex;not null"`
	Description string `json:"description" gorm:"size:256"`
	Icon        string `json:"icon" gorm:"size:128"`
}

// UserAchievement records that a user holds an achievement, at most
// once per (user, achievement) pair.
type UserAchievement struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	UserID        uint        `json:"user_id" gorm:"index;uniqueIndex:idx_user_achievement"`
	AchievementID uint        `json:"achievement_id" gorm:"index;uniqueIndex:idx_user_achievement"`
	Achievement   Achievement `json:"achievement" gorm:"foreignKey:AchievementID"`
	AchievedAt    time.Time   `json:"achieved_at" gorm:"autoCreateTime"`
}

// UserBadge records that a user holds a badge, at most once per
// (user, badge) pair.
type UserBadge struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_badge"`
	BadgeID   uint      `json:"badge_id" gorm:"index;uniqueIndex:idx_user_badge"`
	Badge     Badge     `json:"badge" gorm:"foreignKey:BadgeID"`
	AwardedAt time.Time `json:"awarded_at" gorm:"autoCreateTime"`
}

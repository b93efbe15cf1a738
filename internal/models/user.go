package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is a registered account. Experience accrues through achievement
// grants; Level is derived from Exp and never lowered.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:80;uniqueIndex"`
	Email        string    `json:"email" gorm:"size:120;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:128"`
	AvatarURL    string    `json:"avatar_url" gorm:"size:256"`
	Exp          int       `json:"exp" gorm:"default:0"`
	Level        int       `json:"level" gorm:"default:1"`
	CreatedAt    time.Time `json:"created_at"`
}

// AddExp adds a non-negative amount of experience and recomputes the
// level (one level per 100 exp). The stored level only ever goes up.
// The caller persists the mutation.
func (u *User) AddExp(amount int) {
	if amount < 0 {
		return
	}
	u.Exp += amount
	newLevel := u.Exp/100 + 1
	if newLevel > u.Level {
		u.Level = newLevel
	}
}

// ToCompact returns the fields safe to embed in other payloads.
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:        u.ID,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		Level:     u.Level,
	}
}

// UserCompact is the embedded author/actor representation.
type UserCompact struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	Level     int    `json:"level"`
}

// RegisterRequest defines the request body for account registration.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=2,max=20"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// LoginRequest defines the request body for signing in.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for editing the
// authenticated user's profile.
type UpdateProfileRequest struct {
	Username  string `json:"username,omitempty" validate:"omitempty,min=2,max=20"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/xgyuan/cookshare/backend/internal/models"
)

// getUserIDFromContext returns the authenticated user's ID, or 0 when
// the request carries no valid claims.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}

// getUsernameFromContext returns the authenticated user's username, or
// "" when the request carries no valid claims.
func getUsernameFromContext(c echo.Context) string {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return ""
	}
	return claims.Username
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xgyuan/cookshare/backend/pkg/storage"
)

// UploadHandler handles media uploads
type UploadHandler struct {
	store *storage.LocalStore
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(store *storage.LocalStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// RegisterUploadRoutes registers upload routes
func (h *UploadHandler) RegisterUploadRoutes(g *echo.Group) {
	g.POST("/uploads", h.Upload)
}

// Upload stores a multipart file and returns its public URL.
func (h *UploadHandler) Upload(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing 'file' form field")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read uploaded file")
	}
	defer src.Close()

	name, err := h.store.Save(fileHeader.Filename, src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"data":    echo.Map{"url": "/uploads/" + name},
	})
}

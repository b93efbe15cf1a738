package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xgyuan/cookshare/backend/internal/models"
	"github.com/xgyuan/cookshare/backend/internal/repositories"
	"gorm.io/gorm"
)

// MessageHandler handles direct messages
type MessageHandler struct {
	messageRepository      repositories.MessageRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository,
) *MessageHandler {
	return &MessageHandler{
		messageRepository:      messageRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterMessageRoutes registers message-related routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.POST("/messages", h.SendMessage)
	g.GET("/messages/:user_id", h.GetThread)
}

// SendMessage persists a message and, unconditionally, one paired
// friend_message notification carrying the sender identity.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.ReceiverID == currentUserID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot message yourself")
	}
	if _, err := h.userRepository.GetUserByID(req.ReceiverID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	message := &models.Message{
		SenderID:   currentUserID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := h.messageRepository.CreateMessage(message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	senderUsername := getUsernameFromContext(c)
	notif := &models.Notification{
		UserID:         req.ReceiverID,
		Type:           models.NotificationFriendMessage,
		SenderID:       currentUserID,
		SenderUsername: senderUsername,
		Message:        senderUsername + " sent you a message",
	}
	if err := h.notificationRepository.CreateNotification(notif); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Message sent", "data": message})
}

// GetThread returns the full conversation with the given peer, oldest
// first. Fetching is the read receipt: every unread message addressed
// to the viewer is flagged read in one commit.
func (h *MessageHandler) GetThread(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	peerID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	messages, err := h.messageRepository.GetThread(currentUserID, uint(peerID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.messageRepository.MarkThreadRead(currentUserID, uint(peerID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	// Reflect the receipt in the response without refetching
	for i := range messages {
		if messages[i].ReceiverID == currentUserID {
			messages[i].IsRead = true
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"messages": messages}})
}

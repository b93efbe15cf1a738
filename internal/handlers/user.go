package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xgyuan/cookshare/backend/internal/models"
	"github.com/xgyuan/cookshare/backend/internal/repositories"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository         repositories.UserRepository
	recipeRepository       repositories.RecipeRepository
	favoriteRepository     repositories.FavoriteRepository
	followRepository       repositories.FollowRepository
	gamificationRepository repositories.GamificationRepository
	commentRepository      repositories.CommentRepository
	cookRecordRepository   repositories.CookRecordRepository
	postRepository         repositories.PostRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	userRepo repositories.UserRepository,
	recipeRepo repositories.RecipeRepository,
	favoriteRepo repositories.FavoriteRepository,
	followRepo repositories.FollowRepository,
	gamificationRepo repositories.GamificationRepository,
	commentRepo repositories.CommentRepository,
	cookRecordRepo repositories.CookRecordRepository,
	postRepo repositories.PostRepository,
) *UserHandler {
	return &UserHandler{
		userRepository:         userRepo,
		recipeRepository:       recipeRepo,
		favoriteRepository:     favoriteRepo,
		followRepository:       followRepo,
		gamificationRepository: gamificationRepo,
		commentRepository:      commentRepo,
		cookRecordRepository:   cookRecordRepo,
		postRepository:         postRepo,
	}
}

// RegisterProfileRoutes registers the authenticated profile routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetOwnProfile)
	g.PUT("/profile", h.UpdateProfile)
}

// RegisterPublicRoutes registers the public profile routes
func (h *UserHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/users/:id", h.GetUser)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
	g.GET("/users/search", h.SearchUsers)
}

// GetUser returns a public profile: the user plus recipe/follow counts
// and earned achievements and badges.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.userRepository.GetUserByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	recipeCount, err := h.recipeRepository.CountByUser(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	commentCount, err := h.commentRepository.CountByUser(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	cookRecordCount, err := h.cookRecordRepository.CountByUser(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	postCount, err := h.postRepository.CountByUser(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	followerCount, err := h.followRepository.GetFollowersCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	followingCount, err := h.followRepository.GetFollowingCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	achievements, err := h.gamificationRepository.GetUserAchievements(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	badges, err := h.gamificationRepository.GetUserBadges(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Viewer-specific follow state, when authenticated
	isFollowing := false
	followsYou := false
	if viewerID := getUserIDFromContext(c); viewerID != 0 && viewerID != user.ID {
		isFollowing, _ = h.followRepository.IsFollowing(viewerID, user.ID)
		followsYou, _ = h.followRepository.IsFollowedBy(viewerID, user.ID)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"user":              user,
			"recipe_count":      recipeCount,
			"comment_count":     commentCount,
			"cook_record_count": cookRecordCount,
			"post_count":        postCount,
			"follower_count":    followerCount,
			"following_count":   followingCount,
			"achievements":      achievements,
			"badges":            badges,
			"is_following":      isFollowing,
			"follows_you":       followsYou,
		},
	})
}

// GetOwnProfile returns the authenticated user's profile together with
// their recipes and favorited recipes.
func (h *UserHandler) GetOwnProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	recipes, err := h.recipeRepository.GetRecipesByUser(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	favorites, err := h.favoriteRepository.GetFavoriteRecipes(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"user":             user,
			"recipes":          recipes,
			"favorite_recipes": favorites,
		},
	})
}

// UpdateProfile updates the authenticated user's username and avatar.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := h.userRepository.GetUserByUsername(req.Username); err == nil {
			return echo.NewHTTPError(http.StatusConflict, "Username already taken, please choose another")
		}
		user.Username = req.Username
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, user)
}

// GetFollowers lists the users following the given profile.
func (h *UserHandler) GetFollowers(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.followRepository.GetFollowers(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"users": compactUsers(users)}})
}

// GetFollowing lists the users the given profile follows.
func (h *UserHandler) GetFollowing(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.followRepository.GetFollowing(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"users": compactUsers(users)}})
}

// SearchUsers searches for users by a query string (username or email)
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'q' is required")
	}

	users, err := h.userRepository.SearchUsers(query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"users": compactUsers(users)}})
}

func compactUsers(users []models.User) []models.UserCompact {
	compact := make([]models.UserCompact, len(users))
	for i := range users {
		compact[i] = users[i].ToCompact()
	}
	return compact
}

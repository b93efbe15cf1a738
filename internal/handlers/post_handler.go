package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xgyuan/cookshare/backend/internal/gamification"
	"github.com/xgyuan/cookshare/backend/internal/models"
	"github.com/xgyuan/cookshare/backend/internal/repositories"
	"gorm.io/gorm"
)

const postsPerPage = 10

// PostHandler handles the social feed: posts, likes and replies
type PostHandler struct {
	postRepository        repositories.PostRepository
	postLikeRepository    repositories.PostLikeRepository
	postCommentRepository repositories.PostCommentRepository
	userRepository        repositories.UserRepository
	gamification          *gamification.Service
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	likeRepo repositories.PostLikeRepository,
	commentRepo repositories.PostCommentRepository,
	userRepo repositories.UserRepository,
	gamificationSvc *gamification.Service,
) *PostHandler {
	return &PostHandler{
		postRepository:        postRepo,
		postLikeRepository:    likeRepo,
		postCommentRepository: commentRepo,
		userRepository:        userRepo,
		gamification:          gamificationSvc,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts", h.ListPosts)
	g.POST("/posts", h.CreatePost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.POST("/posts/:id/like", h.LikePost)
	g.DELETE("/posts/:id/like", h.UnlikePost)
	g.POST("/posts/:id/comments", h.CreatePostComment)
	g.GET("/posts/:id/comments", h.ListPostComments)
}

// EnrichedPost is a post with author info and viewer-specific flags
type EnrichedPost struct {
	models.Post
	Author    models.UserCompact `json:"author"`
	LikeCount int64              `json:"like_count"`
	IsLiked   bool               `json:"is_liked"`
}

// ListPosts returns one newest-first page of the global feed, enriched
// with authors and the viewer's like state.
func (h *PostHandler) ListPosts(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	posts, total, err := h.postRepository.ListPosts(page, postsPerPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	userCache := make(map[uint]models.UserCompact)
	enriched := make([]EnrichedPost, len(posts))
	for i, p := range posts {
		author, ok := userCache[p.UserID]
		if !ok {
			if user, err := h.userRepository.GetUserByID(p.UserID); err == nil {
				author = user.ToCompact()
				userCache[p.UserID] = author
			}
		}

		likeCount, _ := h.postLikeRepository.CountByPost(p.ID)
		isLiked := false
		if currentUserID != 0 {
			isLiked, _ = h.postLikeRepository.HasUserLikedPost(currentUserID, p.ID)
		}

		enriched[i] = EnrichedPost{
			Post:      p,
			Author:    author,
			LikeCount: likeCount,
			IsLiked:   isLiked,
		}
	}

	totalPages := int(math.Ceil(float64(total) / float64(postsPerPage)))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"posts": enriched,
		},
		"meta": echo.Map{
			"currentPage":  page,
			"totalPages":   totalPages,
			"totalItems":   total,
			"itemsPerPage": postsPerPage,
		},
	})
}

// CreatePost publishes a feed post, then re-evaluates achievement rules.
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		Content:  req.Content,
		ImageURL: req.ImageURL,
		UserID:   currentUserID,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.gamification.CheckAndAward(currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Post published", "post": post})
}

// UpdatePost edits a post. Only the author may edit.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	post, httpErr := h.loadOwnPost(c, currentUserID)
	if httpErr != nil {
		return httpErr
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post.Content = req.Content
	if req.ImageURL != "" {
		post.ImageURL = req.ImageURL
	}

	if err := h.postRepository.UpdatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Post updated", "post": post})
}

// DeletePost removes a post and its likes and replies. Only the author
// may delete.
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	post, httpErr := h.loadOwnPost(c, currentUserID)
	if httpErr != nil {
		return httpErr
	}

	if err := h.postRepository.DeletePost(post.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted"})
}

// LikePost likes a post; liking twice is reported as an informational
// conflict.
func (h *PostHandler) LikePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if _, err := h.postRepository.GetPostByID(uint(postID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	hasLiked, err := h.postLikeRepository.HasUserLikedPost(currentUserID, uint(postID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if hasLiked {
		return c.JSON(http.StatusConflict, echo.Map{
			"success": false,
			"message": "Post already liked",
		})
	}

	like := &models.PostLike{UserID: currentUserID, PostID: uint(postID)}
	if err := h.postLikeRepository.CreateLike(like); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"liked": true}})
}

// UnlikePost removes a like; unliking when not liked is a no-op
// reported as an informational conflict.
func (h *PostHandler) UnlikePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	hasLiked, err := h.postLikeRepository.HasUserLikedPost(currentUserID, uint(postID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !hasLiked {
		return c.JSON(http.StatusConflict, echo.Map{
			"success": false,
			"message": "Post not liked",
		})
	}

	if err := h.postLikeRepository.DeleteLike(currentUserID, uint(postID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"liked": false}})
}

// CreatePostComment replies to a post.
func (h *PostHandler) CreatePostComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if _, err := h.postRepository.GetPostByID(uint(postID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var req models.CreatePostCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment := &models.PostComment{
		PostID:  uint(postID),
		UserID:  currentUserID,
		Content: req.Content,
	}

	if err := h.postCommentRepository.CreatePostComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Reply posted", "comment": comment})
}

// ListPostComments returns a post's replies, oldest first.
func (h *PostHandler) ListPostComments(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if _, err := h.postRepository.GetPostByID(uint(postID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comments, err := h.postCommentRepository.GetCommentsByPost(uint(postID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"comments": comments}})
}

// loadOwnPost fetches the post in :id and checks ownership.
func (h *PostHandler) loadOwnPost(c echo.Context, currentUserID uint) (*models.Post, error) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.GetPostByID(uint(postID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post.UserID != currentUserID {
		return nil, echo.NewHTTPError(http.StatusForbidden, "You do not have permission to modify this post")
	}
	return post, nil
}

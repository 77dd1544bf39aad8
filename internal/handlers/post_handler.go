package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/proconnect-app/backend/internal/interactions"
	"github.com/proconnect-app/backend/internal/middleware"
	"github.com/proconnect-app/backend/internal/models"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	service interactions.Service
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service interactions.Service) *PostHandler {
	return &PostHandler{service: service}
}

// RegisterPostRoutes registers post-related routes. Listing and reading
// are public; mutations require the auth middleware.
func (h *PostHandler) RegisterPostRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("", h.ListPosts)
	g.GET("/user/:userId", h.ListUserPosts)
	g.GET("/:postId", h.GetPost)
	g.POST("", h.CreatePost, auth)
	g.POST("/:postId/like", h.LikePost, auth)
	g.POST("/:postId/comment", h.CommentPost, auth)
	g.DELETE("/:postId", h.DeletePost, auth)
}

// CreatePost creates a new post authored by the caller
func (h *PostHandler) CreatePost(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.Request().Context(), callerID, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// ListPosts returns one page of the global feed
func (h *PostHandler) ListPosts(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	posts, window, err := h.service.ListPosts(c.Request().Context(), page, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts":      posts,
		"pagination": window,
	})
}

// ListUserPosts returns one page of a single user's posts
func (h *PostHandler) ListUserPosts(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	posts, window, err := h.service.ListUserPosts(c.Request().Context(), userID, page, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts":      posts,
		"pagination": window,
	})
}

// GetPost returns a single post with references expanded
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	post, err := h.service.GetPost(c.Request().Context(), postID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"post": post})
}

// LikePost toggles the caller's like on a post
func (h *PostHandler) LikePost(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	result, err := h.service.ToggleLike(c.Request().Context(), callerID, interactions.TargetPost, postID)
	if err != nil {
		return httpError(err)
	}

	message := "Post liked"
	if !result.Liked {
		message = "Post unliked"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":   message,
		"liked":     result.Liked,
		"likeCount": result.LikeCount,
		"postId":    postID,
	})
}

// CommentPost appends a comment to a post
func (h *PostHandler) CommentPost(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.service.AddComment(c.Request().Context(), callerID, interactions.TargetPost, postID, req.Content)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// DeletePost deletes a post; only the author may delete
func (h *PostHandler) DeletePost(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	if err := h.service.DeletePost(c.Request().Context(), callerID, postID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted successfully"})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/proconnect-app/backend/internal/interactions"
	"github.com/proconnect-app/backend/internal/middleware"
	"github.com/proconnect-app/backend/internal/models"
	"github.com/proconnect-app/backend/internal/pagination"
	"github.com/proconnect-app/backend/internal/repositories"
)

// UserHandler handles user directory and profile HTTP requests
type UserHandler struct {
	users   *repositories.MongoUserRepository
	service interactions.Service
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users *repositories.MongoUserRepository, service interactions.Service) *UserHandler {
	return &UserHandler{users: users, service: service}
}

// RegisterUserRoutes registers directory and profile routes. Reads are
// public; profile mutations and reactions require the auth middleware.
func (h *UserHandler) RegisterUserRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("/users", h.ListUsers)
	g.GET("/user/:userId", h.GetUser)
	g.GET("/user/:userId/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile, auth)
	g.POST("/user/:userId/like", h.LikeProfile, auth)
	g.POST("/user/:userId/comment", h.CommentProfile, auth)
}

// ListUsers returns one page of the user directory
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	total, err := h.users.Count(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	window := pagination.Paginate(total, page, limit, pagination.DefaultDirectoryLimit)

	users, err := h.users.List(c.Request().Context(), window.Skip, window.Limit)
	if err != nil {
		return httpError(err)
	}

	summaries := make([]models.UserSummary, len(users))
	for i := range users {
		summaries[i] = users[i].Summary()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"users":      summaries,
		"pagination": window,
	})
}

// GetUser returns a single user's public fields
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	user, err := h.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// GetProfile returns a profile with its likes and comments expanded
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	profile, err := h.service.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"profile": profile})
}

// UpdateProfile updates the caller's own profile fields
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), callerID, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// LikeProfile toggles the caller's like on another user's profile.
// Liking one's own profile is forbidden.
func (h *UserHandler) LikeProfile(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	result, err := h.service.ToggleLike(c.Request().Context(), callerID, interactions.TargetProfile, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"liked":     result.Liked,
		"likeCount": result.LikeCount,
	})
}

// CommentProfile appends a comment to a user's profile
func (h *UserHandler) CommentProfile(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.service.AddComment(c.Request().Context(), callerID, interactions.TargetProfile, userID, req.Content)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"comment": comment})
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/proconnect-app/backend/internal/middleware"
	"github.com/proconnect-app/backend/internal/models"
	"github.com/proconnect-app/backend/internal/repositories"
)

// AuthHandler handles authentication-related HTTP requests. Accounts
// (credentials) live in PostgreSQL; the displayable profile is a
// MongoDB user document linked by profile id.
type AuthHandler struct {
	accounts     repositories.AccountRepository
	users        *repositories.MongoUserRepository
	firebaseAuth *auth.Client // nil when Firebase login is not configured
	jwtSecret    string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accounts repositories.AccountRepository, users *repositories.MongoUserRepository, firebaseAuthClient *auth.Client, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		accounts:     accounts,
		users:        users,
		firebaseAuth: firebaseAuthClient,
		jwtSecret:    jwtSecret,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group, authMW echo.MiddlewareFunc) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	if h.firebaseAuth != nil {
		g.POST("/firebase-login", h.FirebaseLogin)
	}
	g.GET("/me", h.Me, authMW)
}

// Register creates a new account and its profile document
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Check if an account with this email already exists
	if _, err := h.accounts.GetByEmail(req.Email); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "User with this email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := h.users.Create(c.Request().Context(), user); err != nil {
		return httpError(err)
	}

	account := &models.Account{
		Email:     req.Email,
		Password:  string(hashedPassword),
		ProfileID: user.ID.Hex(),
	}
	if err := h.accounts.Create(account); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create account")
	}

	token, err := h.generateJWT(account)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusCreated, echo.Map{"token": token, "user": user})
}

// Login authenticates an account with email and password
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accounts.GetByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	user, err := h.profileOf(c.Request().Context(), account)
	if err != nil {
		return httpError(err)
	}

	token, err := h.generateJWT(account)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}

// Me returns the caller's own profile
func (h *AuthHandler) Me(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	user, err := h.users.GetByID(c.Request().Context(), callerID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// FirebaseLogin verifies a Firebase ID token, finds or creates the
// matching account and issues a local JWT
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	var req models.FirebaseLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.firebaseAuth.VerifyIDToken(context.Background(), req.IDToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Firebase ID token")
	}

	firebaseUID := token.UID
	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	if name == "" {
		name = email
	}

	account, err := h.accounts.GetByFirebaseUID(firebaseUID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
		}
		// Not linked yet; match by email or create a fresh identity
		account, err = h.accounts.GetByEmail(email)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
			}
			user := &models.User{Name: name, Email: email}
			if err := h.users.Create(c.Request().Context(), user); err != nil {
				return httpError(err)
			}
			account = &models.Account{
				Email:       email,
				FirebaseUID: firebaseUID,
				ProfileID:   user.ID.Hex(),
			}
			if err := h.accounts.Create(account); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create account")
			}
		} else {
			account.FirebaseUID = firebaseUID
			if err := h.accounts.Update(account); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to link Firebase account")
			}
		}
	}

	user, err := h.profileOf(c.Request().Context(), account)
	if err != nil {
		return httpError(err)
	}

	localJWT, err := h.generateJWT(account)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": localJWT, "user": user})
}

func (h *AuthHandler) profileOf(ctx context.Context, account *models.Account) (*models.User, error) {
	profileID, err := primitive.ObjectIDFromHex(account.ProfileID)
	if err != nil {
		return nil, err
	}
	return h.users.GetByID(ctx, profileID)
}

// generateJWT issues a token whose subject is the account's profile id
func (h *AuthHandler) generateJWT(account *models.Account) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: account.ProfileID,
		Email:  account.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)), // Token expires in 72 hours
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}

package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/techfolks/techfolks/config"
	"github.com/techfolks/techfolks/middleware"
	"github.com/techfolks/techfolks/models"
	"github.com/techfolks/techfolks/utils"
)

// AuthController implements the mock authentication endpoints. Accounts
// live in a fixed in-memory list; there is no registration and no
// persistence, but login still performs a real bcrypt comparison and
// issues a real JWT so clients exercise their full auth flow.
type AuthController struct {
	users []models.User
}

// NewAuthController creates an AuthController over the given accounts.
func NewAuthController(users []models.User) *AuthController {
	return &AuthController{users: users}
}

// Login verifies user credentials and issues a JWT.
func (a *AuthController) Login(ctx *gin.Context) {
	type request struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40003, "invalid request payload")
		return
	}

	user, ok := a.findByUsername(req.Username)
	if !ok || !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "invalid username or password")
		return
	}

	ttl := time.Duration(config.Get().TokenTTLHours) * time.Hour
	token, err := utils.GenerateToken(user.ID, user.Username, ttl)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50004, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me returns the profile of the authenticated user.
func (a *AuthController) Me(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	user, ok := a.findByID(userID)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
		return
	}

	utils.Success(ctx, gin.H{"user": user})
}

// Logout invalidates the token by blacklisting it until expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.Error(ctx, http.StatusUnauthorized, 40107, "invalid authorization header")
		return
	}

	token := strings.TrimSpace(parts[1])
	claims, err := utils.ParseToken(token)
	if err != nil {
		utils.Error(ctx, http.StatusUnauthorized, 40105, "invalid token")
		return
	}

	expiresAt := time.Now().Add(time.Duration(config.Get().TokenTTLHours) * time.Hour)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	utils.BlacklistToken(token, expiresAt)
	utils.Success(ctx, gin.H{"message": "logged out"})
}

func (a *AuthController) findByUsername(username string) (models.User, bool) {
	for _, u := range a.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

func (a *AuthController) findByID(id int) (models.User, bool) {
	for _, u := range a.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// getUserID extracts the authenticated user id set by the auth middleware.
func getUserID(ctx *gin.Context) (int, bool) {
	v, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// getUsername extracts the authenticated username set by the auth middleware.
func getUsername(ctx *gin.Context) (string, bool) {
	v, exists := ctx.Get(middleware.ContextUsernameKey)
	if !exists {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

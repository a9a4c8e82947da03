package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/techfolks/techfolks/config"
	"github.com/techfolks/techfolks/controllers"
	"github.com/techfolks/techfolks/middleware"
	"github.com/techfolks/techfolks/models"
	"github.com/techfolks/techfolks/store"
	"github.com/techfolks/techfolks/utils"
)

// Deps carries the long-lived state handed to the controllers.
type Deps struct {
	Store       *store.ForumStore
	Users       []models.User
	LastPostID  int
	LastReplyID int
}

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(deps Deps) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())

	// Replace the default console logger with the file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinLogPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(deps.Users)
	forumController := controllers.NewForumController(deps.Store, deps.LastPostID, deps.LastReplyID)
	platformController := controllers.NewPlatformController(deps.Store, deps.Users)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)

	api.GET("/problems", platformController.ListProblems)
	api.GET("/contests", platformController.ListContests)
	api.GET("/stats", platformController.GetStats)
	api.GET("/dashboard", middleware.AuthRequired(), platformController.Dashboard)

	api.GET("/groups/:groupId/posts", forumController.ListGroupPosts)
	api.GET("/posts/:id", forumController.GetPost)
	api.GET("/posts/:id/replies", forumController.ListReplies)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())
	protected.POST("/groups/:groupId/posts", forumController.CreatePost)
	protected.PUT("/posts/:id", forumController.UpdatePost)
	protected.DELETE("/posts/:id", forumController.DeletePost)
	protected.POST("/posts/:id/replies", forumController.CreateReply)
	protected.DELETE("/posts/:id/replies/:replyId", forumController.DeleteReply)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}

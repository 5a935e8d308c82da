package http

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/handler/http/middleware"
	"github.com/wuddevdet/platform-api/internal/infrastructure/metrics"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

type Router struct {
	authHandler      *AuthHandler
	userHandler      *UserHandler
	postHandler      *PostHandler
	projectHandler   *ProjectHandler
	contactHandler   *ContactHandler
	adminHandler     *AdminHandler
	contentHandler   *ContentHandler
	analyticsHandler *AnalyticsHandler
	statsHandler     *StatsHandler
	tokenService     usecasecontract.ITokenService
	userRepo         contract.IUserRepository
	postRepo         contract.IPostRepository
	config           usecasecontract.IConfigProvider
}

func NewRouter(authUsecase usecasecontract.IAuthUseCase, postUsecase usecasecontract.IPostUseCase, projectUsecase usecasecontract.IProjectUseCase, contactUsecase usecasecontract.IContactUseCase, adminUsecase usecasecontract.IAdminUseCase, contentUsecase usecasecontract.IContentUseCase, analyticsUsecase usecasecontract.IAnalyticsUseCase, tokenService usecasecontract.ITokenService, userRepo contract.IUserRepository, postRepo contract.IPostRepository, config usecasecontract.IConfigProvider) *Router {
	return &Router{
		authHandler:      NewAuthHandler(authUsecase, config),
		userHandler:      NewUserHandler(authUsecase),
		postHandler:      NewPostHandler(postUsecase),
		projectHandler:   NewProjectHandler(projectUsecase),
		contactHandler:   NewContactHandler(contactUsecase),
		adminHandler:     NewAdminHandler(adminUsecase),
		contentHandler:   NewContentHandler(contentUsecase),
		analyticsHandler: NewAnalyticsHandler(analyticsUsecase),
		statsHandler:     NewStatsHandler(analyticsUsecase),
		tokenService:     tokenService,
		userRepo:         userRepo,
		postRepo:         postRepo,
		config:           config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{r.config.GetCORSOrigin()},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimiter(20))
	router.Use(metrics.Middleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	requireAuth := middleware.AuthMiddleware(r.tokenService, r.userRepo)

	// Public routes
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", r.authHandler.Signup)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", requireAuth, r.authHandler.Logout)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	users := v1.Group("/users")
	{
		users.GET("/me", requireAuth, r.userHandler.GetCurrentUser)
		users.PUT("/me", requireAuth, r.userHandler.UpdateCurrentUser)
		users.GET("/:id", r.userHandler.GetUser)
	}

	posts := v1.Group("/posts")
	{
		posts.GET("", r.postHandler.ListPosts)
		posts.GET("/:id", r.postHandler.GetPost)
		posts.POST("", requireAuth, r.postHandler.CreatePost)
		posts.PUT("/:id", requireAuth, r.postOwnerGuard(), r.postHandler.UpdatePost)
		posts.DELETE("/:id", requireAuth, r.postOwnerGuard(), r.postHandler.DeletePost)
		posts.PATCH("/:id/pin", requireAuth, middleware.RequireAdmin(), r.postHandler.TogglePin)
		posts.POST("/:id/comments", requireAuth, r.postHandler.AddComment)
		posts.DELETE("/:id/comments/:commentId", requireAuth, r.postHandler.DeleteComment)
	}

	projects := v1.Group("/projects")
	{
		projects.GET("", r.projectHandler.ListProjects)
		projects.GET("/:id", r.projectHandler.GetProject)
		projects.POST("", requireAuth, middleware.RequireAdmin(), r.projectHandler.CreateProject)
		projects.PUT("/:id", requireAuth, middleware.RequireAdmin(), r.projectHandler.UpdateProject)
		projects.DELETE("/:id", requireAuth, middleware.RequireAdmin(), r.projectHandler.DeleteProject)
	}

	v1.POST("/contact", r.contactHandler.SubmitMessage)

	v1.POST("/analytics/pageview", r.analyticsHandler.TrackPageview)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(requireAuth, middleware.RequireAdmin())
	{
		admin.GET("/users", r.adminHandler.ListUsers)
		admin.DELETE("/users/:id", r.adminHandler.DeleteUser)
		admin.PATCH("/users/:id/role", r.adminHandler.UpdateUserRole)

		admin.GET("/messages", r.contactHandler.ListMessages)
		admin.PATCH("/messages/:id/respond", r.contactHandler.ToggleResponded)
		admin.DELETE("/messages/:id", r.contactHandler.DeleteMessage)
	}

	content := v1.Group("/content")
	content.Use(requireAuth, middleware.RequireAdmin())
	{
		content.GET("/items", r.contentHandler.ListItems)
		content.POST("/bulk", r.contentHandler.BulkAction)
		content.GET("/counts", r.contentHandler.Counts)
	}

	analytics := v1.Group("/analytics")
	analytics.Use(requireAuth, middleware.RequireAdmin())
	{
		analytics.GET("/data", r.analyticsHandler.GetAnalyticsData)
		analytics.GET("/geographic", r.analyticsHandler.GetGeographicData)
	}

	v1.GET("/stats/dashboard", requireAuth, middleware.RequireAdmin(), r.statsHandler.GetDashboardStats)
}

// postOwnerGuard resolves the post author so members can only touch their
// own posts while admins pass through.
func (r *Router) postOwnerGuard() gin.HandlerFunc {
	return middleware.ResourceOwner(r.lookupPostOwner, "id")
}

func (r *Router) lookupPostOwner(ctx context.Context, id string) (string, error) {
	post, err := r.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return "", err
	}
	return post.AuthorID, nil
}

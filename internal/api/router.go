package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/inkwell/blog-api/docs"
	"github.com/inkwell/blog-api/internal/api/handler"
	"github.com/inkwell/blog-api/internal/api/middleware"
	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/service"
	"github.com/inkwell/blog-api/internal/infrastructure/config"
	mongodb "github.com/inkwell/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/inkwell/blog-api/internal/infrastructure/db/redis"
	"github.com/inkwell/blog-api/internal/security"
	"github.com/inkwell/blog-api/internal/token"
	"github.com/inkwell/blog-api/pkg/logger"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("blog"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.For("http"))
	e.Validator = handler.NewValidator()

	// --- Dependencies ---
	tokens, err := token.New(cfg.AuthSecret, token.DefaultTTL)
	if err != nil {
		return nil, err
	}
	hasher := security.NewHasher()
	cache := redisdb.NewCache(rdb)

	userRepo := mongodb.NewUserRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	authService := service.NewAuthService(userRepo, hasher, tokens, logger.For("auth_service"))
	articleService := service.NewArticleService(articleRepo, cache, logger.For("article_service"))
	categoryService := service.NewCategoryService(categoryRepo, cache, logger.For("category_service"))
	commentService := service.NewCommentService(commentRepo, articleRepo, logger.For("comment_service"))

	authHandler := handler.NewAuthHandler(authService, token.DefaultTTL)
	articleHandler := handler.NewArticleHandler(articleService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	commentHandler := handler.NewCommentHandler(commentService)

	authn := middleware.Authenticate(authService)
	anyUser := middleware.RequireRoles(domain.RoleUser, domain.RoleAdmin)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/session", authHandler.Session, authn)

	// --- Articles ---
	articles := e.Group("/articles", authn)
	articles.GET("", articleHandler.List, anyUser)
	articles.GET("/:id", articleHandler.Get, anyUser)
	articles.POST("", articleHandler.Create, adminOnly)
	articles.PUT("/:id", articleHandler.Update, adminOnly)
	articles.DELETE("/:id", articleHandler.Delete, adminOnly)

	// --- Categories ---
	categories := e.Group("/categories", authn)
	categories.GET("", categoryHandler.List, anyUser)
	categories.GET("/:id", categoryHandler.Get, anyUser)
	categories.POST("", categoryHandler.Create, adminOnly)
	categories.PUT("/:id", categoryHandler.Update, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, adminOnly)

	// --- Comments ---
	comments := e.Group("/comments", authn)
	comments.GET("", commentHandler.List, anyUser)
	comments.GET("/:id", commentHandler.Get, anyUser)
	comments.POST("", commentHandler.Create, anyUser)
	comments.PUT("/:id", commentHandler.Update, anyUser)
	comments.DELETE("/:id", commentHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}

package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fisher-blog-api/pkg/cache"
	"fisher-blog-api/pkg/config"
	"fisher-blog-api/pkg/database"
	"fisher-blog-api/pkg/jwt"
	"fisher-blog-api/pkg/logger"
	"fisher-blog-api/pkg/mailer"
	"fisher-blog-api/pkg/middleware"
	"fisher-blog-api/pkg/s3"

	controller "fisher-blog-api/internal/controller/http"
	"fisher-blog-api/internal/model"
	"fisher-blog-api/internal/repo/persistent"
	"fisher-blog-api/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.PostModel{},
		&model.CommentModel{},
		&model.SessionModel{},
	); err != nil {
		log.Error("Failed to run migrations: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	jwtService := jwt.NewService(
		cfg.AccessTokenKey,
		cfg.RefreshTokenKey,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Repositories
	userRepo := persistent.NewUserRepository(a.db)
	postRepo := persistent.NewPostRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)
	sessionRepo := persistent.NewSessionRepository(a.db)

	// Use cases
	mail := mailer.New(a.cfg, a.log)
	tokensUseCase := usecase.NewTokensUseCase(sessionRepo, a.jwtService)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokensUseCase, mail, a.cfg.DefaultAvatarURL, a.cfg.DefaultPosterURL, a.log)
	postUseCase := usecase.NewPostUseCase(postRepo, commentRepo, a.s3Client, a.cfg.DefaultPosterURL, a.log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, a.log)
	userUseCase := usecase.NewUserUseCase(
		userRepo, postRepo, commentRepo, sessionRepo,
		postUseCase, commentUseCase, a.s3Client, mail, a.log,
	)

	// Handlers
	authHandler := controller.NewAuthHandler(authUseCase, a.cfg.RefreshTokenTTL)
	userHandler := controller.NewUserHandler(userUseCase)
	postHandler := controller.NewPostHandler(postUseCase)
	commentHandler := controller.NewCommentHandler(commentUseCase)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{a.cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGuard := middleware.AuthMiddleware(a.jwtService, tokensUseCase)
	loginLimit := middleware.NewRateLimiter(a.redisClient, 10, time.Minute).Throttle()

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/registration", loginLimit, authHandler.Registration)
			auth.POST("/login", loginLimit, authHandler.Login)
			auth.GET("/logout", authGuard, authHandler.Logout)
		}

		users := api.Group("/users")
		{
			users.GET("/activation-email/:activationToken", userHandler.ActivationEmail)
			users.POST("/repeat-activation-email", loginLimit, userHandler.RepeatActivationEmail)
			users.POST("/request-reset-password", loginLimit, userHandler.RequestResetPassword)
			users.POST("/reset-password", loginLimit, userHandler.ResetPassword)

			protected := users.Group("", authGuard)
			{
				protected.GET("/current", userHandler.Current)
				protected.GET("/all-users", userHandler.GetAll)
				protected.PATCH("/change-profile", userHandler.ChangeProfile)
				protected.POST("/change-email", userHandler.ChangeEmail)
				protected.PATCH("/change-password", userHandler.ChangePassword)
				protected.POST("/upload-avatar", userHandler.UploadAvatar)
				protected.POST("/upload-poster", userHandler.UploadPoster)
				protected.DELETE("/remove-profile", userHandler.RemoveProfile)
			}
		}

		posts := api.Group("/posts")
		{
			posts.GET("/all-posts", postHandler.GetAllPosts)
			posts.GET("/one-post/:postId", postHandler.GetOnePost)
			posts.GET("/view-post/:postId", postHandler.ViewPost)

			protected := posts.Group("", authGuard)
			{
				protected.POST("/create-post", postHandler.CreatePost)
				protected.PATCH("/update-post/:postId", postHandler.UpdatePost)
				protected.POST("/upload-poster/:postId", postHandler.UploadPoster)
				protected.POST("/upload-image/:postId", postHandler.UploadImage)
				protected.POST("/upload-video/:postId", postHandler.UploadVideo)
				protected.GET("/update-public/:postId", postHandler.UpdatePublic)
				protected.GET("/like-post/:postId", postHandler.LikePost)
				protected.DELETE("/delete-post/:postId", postHandler.DeletePost)
			}
		}

		comments := api.Group("/comments")
		{
			comments.GET("/all-comments/:postId", commentHandler.GetAllComments)

			protected := comments.Group("", authGuard)
			{
				protected.POST("/create-comment/:postId", commentHandler.CreateComment)
				protected.PATCH("/update-comment/:commentId", commentHandler.UpdateComment)
				protected.GET("/like-comment/:commentId", commentHandler.LikeComment)
				protected.DELETE("/delete-comment/:commentId/:postId", commentHandler.DeleteComment)
			}
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Fisher blog API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Drain in-flight requests before the stores they depend on go away
	shutdownErr := a.httpServer.Shutdown(ctx)

	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing redis: %v", err)
		}
	}

	return shutdownErr
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/feedbackboard-backend/docs"
	"github.com/rafabene/feedbackboard-backend/internal/handlers/dto"
	httphandlers "github.com/rafabene/feedbackboard-backend/internal/handlers/http"
	"github.com/rafabene/feedbackboard-backend/internal/handlers/middleware"
	"github.com/rafabene/feedbackboard-backend/internal/infrastructure/config"
	"github.com/rafabene/feedbackboard-backend/internal/infrastructure/i18n"
	"github.com/rafabene/feedbackboard-backend/internal/infrastructure/logging"
	"github.com/rafabene/feedbackboard-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/feedbackboard-backend/internal/services"
)

// @title Feedback Board API
// @version 1.0
// @description API do quadro de feedback: itens, threads de comentários, votos e transições de status.
// @BasePath /
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting feedbackboard backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Validações customizadas de enum nos bindings
	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("failed to register validators", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	feedbackRepo := postgres.NewFeedbackRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	statusLogRepo := postgres.NewStatusLogRepository(db)
	userRepo := postgres.NewUserRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	feedbackService := services.NewFeedbackService(feedbackRepo, statusLogRepo, uow, logger)
	commentService := services.NewCommentService(commentRepo, feedbackRepo, logger)
	voteService := services.NewVoteService(voteRepo, feedbackRepo, logger)
	userService := services.NewUserService(userRepo, logger)

	// Inicializar handlers
	feedbackHandler := httphandlers.NewFeedbackHandler(feedbackService)
	commentHandler := httphandlers.NewCommentHandler(commentService)
	voteHandler := httphandlers.NewVoteHandler(voteService)
	userHandler := httphandlers.NewUserHandler(userService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Middleware de identidade (JWT quando presente, placeholder senão)
	identityMiddleware := middleware.NewIdentityMiddleware(cfg.JWT.Secret)
	router.Use(identityMiddleware.Resolve())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	feedbacks := router.Group("/feedbacks")
	{
		feedbacks.POST("", feedbackHandler.CreateFeedback)
		feedbacks.GET("", feedbackHandler.ListFeedbacks)
		feedbacks.GET("/:id", feedbackHandler.GetFeedback)
		feedbacks.PATCH("/:id", feedbackHandler.UpdateFeedback)
		feedbacks.PATCH("/:id/status", feedbackHandler.ChangeStatus)
		feedbacks.GET("/:id/status-logs", feedbackHandler.StatusHistory)
		feedbacks.DELETE("/:id", feedbackHandler.DeleteFeedback)

		feedbacks.POST("/:id/comments", commentHandler.CreateComment)
		feedbacks.GET("/:id/comments", commentHandler.ListCommentTree)

		feedbacks.POST("/:id/votes", voteHandler.AddVote)
		feedbacks.GET("/:id/votes", voteHandler.ListVotes)
		feedbacks.GET("/:id/votes/count", voteHandler.CountVotes)
		feedbacks.DELETE("/:id/votes", voteHandler.RemoveVote)
	}

	router.DELETE("/comments/:id", commentHandler.DeleteComment)
	router.GET("/me", userHandler.GetMe)
	router.GET("/users/:id", userHandler.GetUser)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

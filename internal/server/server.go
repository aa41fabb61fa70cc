package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"squadhr/internal/auth"
	"squadhr/internal/config"
	"squadhr/internal/database"
	"squadhr/internal/handler"
	"squadhr/internal/middleware"
	"squadhr/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Config *config.Config
}

// Handlers groups everything the router serves.
type Handlers struct {
	Users        *handler.UserHandler
	Statuses     *handler.StatusHandler
	Boards       *handler.BoardHandler
	Tasks        *handler.TaskHandler
	Applications *handler.ApplicationHandler
	Requests     *handler.RequestHandler
}

func Init(cfg *config.Config) (*Server, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("❌ %w", err)
	}
	log.Println("✅ Connected to database")

	if cfg.MigrateOnStart {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("❌ migration failed: %w", err)
		}
	}

	if err := handler.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("❌ failed to register validators: %w", err)
	}

	rdb, limiter, err := newLimiter(cfg)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokens(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	// Initialize handlers
	h := Handlers{
		Users:        handler.NewUserHandler(userRepo, tokens),
		Statuses:     handler.NewStatusHandler(statusRepo),
		Boards:       handler.NewBoardHandler(boardRepo),
		Tasks:        handler.NewTaskHandler(taskRepo, boardRepo),
		Applications: handler.NewApplicationHandler(applicationRepo),
		Requests:     handler.NewRequestHandler(requestRepo),
	}

	r := gin.Default()
	Routes(r, h, middleware.JWTAuthMiddleware(tokens),
		middleware.RateLimit(limiter, cfg.RateLimitRequests, cfg.RateLimitWindow))

	return &Server{
		Engine: r,
		DB:     db,
		Redis:  rdb,
		Config: cfg,
	}, nil
}

// newLimiter shares rate limit windows through Redis when REDIS_URL is set
// and falls back to per-process counters otherwise.
func newLimiter(cfg *config.Config) (*redis.Client, middleware.Limiter, error) {
	if cfg.RedisURL == "" {
		log.Println("⚠️  REDIS_URL not set, using in-memory rate limiter")
		return nil, middleware.NewRateLimiter(), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("❌ invalid REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis unreachable (%v), rate limiter will fail open", err)
	} else {
		log.Println("✅ Connected to Redis")
	}
	return rdb, middleware.NewRedisLimiter(rdb), nil
}

// Routes mounts the public and authenticated endpoints on r. Workflow
// endpoints that write are rate limited.
func Routes(r *gin.Engine, h Handlers, authMiddleware, rateLimit gin.HandlerFunc) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	r.POST("/register", h.Users.Register)
	r.POST("/login", h.Users.Login)

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.GET("/me", h.Users.Me)

		// Status catalog
		authorized.GET("/statuses", h.Statuses.List)
		authorized.POST("/statuses", h.Statuses.Create)
		authorized.PUT("/statuses/:id", h.Statuses.Rename)
		authorized.DELETE("/statuses/:id", h.Statuses.Delete)

		// Squads and their boards
		authorized.POST("/squads", h.Boards.CreateSquad)
		authorized.GET("/squads/:id", h.Boards.GetSquad)
		authorized.DELETE("/squads/:id", h.Boards.DeleteSquad)
		authorized.GET("/squads/:id/columns", h.Boards.ListColumns)
		authorized.POST("/squads/:id/columns", h.Boards.AddColumn)
		authorized.GET("/squads/:id/tasks", h.Tasks.ListBySquad)

		// Recruitment
		authorized.POST("/applications", h.Applications.Create)
		authorized.GET("/applications/:id", h.Applications.GetByID)
		authorized.GET("/vacancies/:id/applications", h.Applications.ListByVacancy)

		// Requests
		authorized.POST("/requests", h.Requests.Create)
		authorized.GET("/requests", h.Requests.ListMine)

		authorized.GET("/tasks/:id", h.Tasks.GetByID)

		workflow := authorized.Group("/")
		workflow.Use(rateLimit)
		{
			workflow.POST("/squads/:id/tasks", h.Tasks.Create)
			workflow.POST("/tasks/:id/move", h.Tasks.Move)
			workflow.POST("/applications/:id/transition", h.Applications.Transition)
			workflow.POST("/requests/:id/resolve", h.Requests.Resolve)
		}
	}
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		}
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("✅ Server exited properly")
}

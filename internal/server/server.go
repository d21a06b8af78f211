// Package server contains the HTTP handlers and route wiring for the
// application's endpoints.
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"warbler/internal/cache"
	"warbler/internal/config"
	"warbler/internal/database"
	"warbler/internal/middleware"
	"warbler/internal/repository"
	"warbler/internal/service"
	"warbler/internal/session"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Prometheus collectors register in the process-global default registry, so
// the middleware is created once regardless of how many Server values exist
// (tests construct several per process).
var (
	promOnce       sync.Once
	promMiddleware *fiberprometheus.FiberPrometheus
)

func initMetrics() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMiddleware = fiberprometheus.New("warbler-api")
	})
	return promMiddleware
}

// Server holds all dependencies and provides handlers
type Server struct {
	config   *config.Config
	db       *gorm.DB
	redis    *redis.Client
	sessions *session.Store
	prom     *fiberprometheus.FiberPrometheus

	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	socialRepo  repository.SocialRepository
	dmRepo      repository.DirectMessageRepository

	authService    *service.AuthService
	messageService *service.MessageService
	socialService  *service.SocialService
	dmService      *service.DirectMessageService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	socialRepo := repository.NewSocialRepository(db)
	dmRepo := repository.NewDirectMessageRepository(db)

	srv := &Server{
		config:      cfg,
		db:          db,
		redis:       redisClient,
		sessions:    session.NewStore(redisClient, time.Duration(cfg.SessionTTLHours)*time.Hour),
		prom:        initMetrics(),
		userRepo:    userRepo,
		messageRepo: messageRepo,
		socialRepo:  socialRepo,
		dmRepo:      dmRepo,
	}

	srv.authService = service.NewAuthService(userRepo)
	srv.messageService = service.NewMessageService(messageRepo)
	srv.socialService = service.NewSocialService(socialRepo, userRepo, messageRepo)
	srv.dmService = service.NewDirectMessageService(dmRepo, userRepo)

	return srv
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Resolve session cookie to an acting identity before anything that
	// wants the user id (logging context, rate limit keys, handlers).
	app.Use(middleware.SessionLoader(s.sessions))

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// Request metrics
	if s.prom != nil {
		app.Use(s.prom.Middleware)
	}

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Responses are never cacheable; timelines and profiles change per request.
	app.Use(func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	})

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks and metrics
	app.Get("/health", s.HealthCheck)
	if s.prom != nil {
		s.prom.RegisterAt(app, "/metrics")
	}

	// Homepage: timeline for authenticated users, landing view otherwise
	app.Get("/", s.Homepage)

	// Auth routes
	app.Post("/signup", middleware.RateLimit(
		s.redis, s.config.Env, 3, 10*time.Minute, "signup"), s.Signup)
	app.Post("/login", middleware.RateLimit(
		s.redis, s.config.Env, 10, 5*time.Minute, "login"), s.Login)
	app.Get("/logout", s.Logout)

	// Public user routes
	users := app.Group("/users")
	users.Get("/", s.ListUsers)

	// Protected user routes; specific paths before the generic /:id
	users.Post("/follow/:id", middleware.AuthRequired(), s.FollowUser)
	users.Post("/stop-following/:id", middleware.AuthRequired(), s.UnfollowUser)
	users.Post("/block/:id", middleware.AuthRequired(), s.BlockUser)
	users.Post("/unblock/:id", middleware.AuthRequired(), s.UnblockUser)
	users.Post("/profile", middleware.AuthRequired(), s.UpdateProfile)
	users.Post("/delete", middleware.AuthRequired(), s.DeleteAccount)
	users.Get("/:id/following", middleware.AuthRequired(), s.GetFollowing)
	users.Get("/:id/followers", middleware.AuthRequired(), s.GetFollowers)
	users.Get("/:id/likes", middleware.AuthRequired(), s.GetLikes)
	users.Get("/:id", s.GetUser)

	// Message routes
	messages := app.Group("/messages")
	messages.Post("/new", middleware.AuthRequired(), s.CreateMessage)
	messages.Post("/:id/delete", middleware.AuthRequired(), s.DeleteMessage)
	messages.Post("/:id/like", middleware.AuthRequired(), s.ToggleLike)
	messages.Get("/:id", s.GetMessage)

	// Direct message routes
	dm := app.Group("/dm", middleware.AuthRequired())
	dm.Post("/send/:id", s.SendDirectMessage)
	dm.Post("/reply/:id", s.ReplyDirectMessage)
	dm.Get("/inbox", s.Inbox)
	dm.Get("/sent", s.Sent)
}

// HealthCheck handles GET /health
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	status := fiber.Map{"status": "ok"}

	sqlDB, err := s.db.DB()
	if err != nil || sqlDB.PingContext(c.Context()) != nil {
		status["status"] = "degraded"
		status["database"] = "unavailable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(status)
	}
	status["database"] = "ok"

	if s.redis == nil || s.redis.Ping(c.Context()).Err() != nil {
		status["status"] = "degraded"
		status["redis"] = "unavailable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(status)
	}
	status["redis"] = "ok"

	return c.JSON(status)
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

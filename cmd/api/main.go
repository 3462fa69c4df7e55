// @title EduTech AI API
// @version 1.0
// @description Backend API for the EduTech AI personalized learning platform.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"edutech/internal/adapter"
	"edutech/internal/adapter/assistant"
	"edutech/internal/cache"
	"edutech/internal/config"
	"edutech/internal/database"
	"edutech/internal/domain"
	"edutech/internal/handler"
	"edutech/internal/logger"
	"edutech/internal/middleware"
	"edutech/internal/repository"
	"edutech/internal/repository/memory"
	"edutech/internal/seed"
	"edutech/internal/service"
	"edutech/internal/validation"

	_ "edutech/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger logs every HTTP request with timing and client details.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("request_id", requestIDFromLocals(c)),
		)

		return err
	}
}

func requestIDFromLocals(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// repositories bundles every entity store the services are wired onto.
type repositories struct {
	users        domain.UserRepository
	courses      domain.CourseRepository
	enrollments  domain.EnrollmentRepository
	achievements domain.AchievementRepository
	awards       domain.UserAchievementRepository
	streaks      domain.StreakRepository
	txManager    domain.TransactionManager
}

func buildRepositories(cfg *config.Config, appLogger *zap.Logger) *repositories {
	switch cfg.Storage.Driver {
	case "sqlite":
		db, err := database.NewSQLXSQLiteDB(cfg.Storage.Path)
		if err != nil {
			appLogger.Fatal("Failed to open sqlite database", zap.Error(err))
		}
		if err := database.RunMigrations(db); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
		appLogger.Info("Using sqlite storage", zap.String("path", cfg.Storage.Path))
		return &repositories{
			users:        repository.NewSQLXUserRepository(db),
			courses:      repository.NewSQLXCourseRepository(db),
			enrollments:  repository.NewSQLXEnrollmentRepository(db),
			achievements: repository.NewSQLXAchievementRepository(db),
			awards:       repository.NewSQLXUserAchievementRepository(db),
			streaks:      repository.NewSQLXStreakRepository(db),
			txManager:    repository.NewTransactionManagerAdapter(db),
		}
	case "memory", "":
		appLogger.Info("Using in-memory storage")
		store := memory.NewStore()
		return &repositories{
			users:        store,
			courses:      store,
			enrollments:  store,
			achievements: store,
			awards:       store,
			streaks:      store,
			txManager:    store,
		}
	default:
		appLogger.Fatal("Unsupported storage driver", zap.String("driver", cfg.Storage.Driver))
		return nil
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	repos := buildRepositories(cfg, appLogger)

	if cfg.Storage.Seed {
		if err := seed.Run(context.Background(), repos.courses, repos.achievements); err != nil {
			appLogger.Fatal("Failed to seed sample data", zap.Error(err))
		}
	}

	// Redis is optional: without it the catalog is served straight from
	// the repository.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, continuing without catalog cache", zap.Error(err))
		} else {
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	// The assistant route stays mounted without an API key; queries then
	// report the assistant as unavailable.
	var courseAssistant domain.Assistant
	if cfg.Assistant.OpenAIAPIKey != "" {
		courseAssistant, err = assistant.NewOpenAIAssistant(cfg.Assistant.OpenAIAPIKey, cfg.Assistant.Model, cfg.Assistant.Timeout)
		if err != nil {
			appLogger.Fatal("Failed to create assistant", zap.Error(err))
		}
		appLogger.Info("Assistant initialized", zap.String("model", cfg.Assistant.Model))
	} else {
		courseAssistant = assistant.NewDisabledAssistant()
		appLogger.Warn("No OpenAI API key configured, assistant is disabled")
	}

	// Services
	authService, err := service.NewAuthService(repos.users, repos.streaks, repos.txManager, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	streakService := service.NewStreakService(repos.streaks)
	activityRecorder, ok := streakService.(domain.ActivityRecorder)
	if !ok {
		appLogger.Fatal("StreakService does not record activity")
	}
	courseService := service.NewCourseService(repos.courses, cacheAdapter, cfg.Redis.CatalogTTL)
	enrollmentService := service.NewEnrollmentService(repos.enrollments, repos.courses, activityRecorder, repos.txManager)
	achievementService := service.NewAchievementService(repos.achievements, repos.awards)
	recommendationService := service.NewRecommendationService(repos.courses, repos.enrollments)
	userService := service.NewUserService(repos.users, enrollmentService, achievementService, streakService, recommendationService)
	assistantService := service.NewAssistantService(courseAssistant)

	// Handlers
	validator := validation.NewValidator()
	authHandler := handler.NewAuthHandler(authService, validator)
	courseHandler := handler.NewCourseHandler(courseService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService, validator)
	achievementHandler := handler.NewAchievementHandler(achievementService, validator)
	userHandler := handler.NewUserHandler(userService, streakService, recommendationService)
	assistantHandler := handler.NewAssistantHandler(assistantService, validator)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Public catalog routes
	apiGroup.Get("/courses", courseHandler.GetCourses)
	apiGroup.Get("/courses/category/:category", courseHandler.GetCoursesByCategory)
	apiGroup.Get("/courses/:id", courseHandler.GetCourse)
	apiGroup.Get("/achievements", achievementHandler.GetAchievements)

	// User routes (all protected)
	userGroup := apiGroup.Group("/user", middleware.Protected(authService))
	userGroup.Get("/courses", enrollmentHandler.GetUserCourses)
	userGroup.Post("/courses", enrollmentHandler.Enroll)
	userGroup.Patch("/courses/:id/progress", enrollmentHandler.UpdateProgress)
	userGroup.Get("/achievements", achievementHandler.GetUserAchievements)
	userGroup.Post("/achievements", achievementHandler.Award)
	userGroup.Get("/streak", userHandler.GetStreak)
	userGroup.Patch("/streak", userHandler.TouchStreak)
	userGroup.Get("/recommended-courses", userHandler.GetRecommendedCourses)
	userGroup.Patch("/onboarding", userHandler.UpdateOnboarding)
	userGroup.Get("/profile", userHandler.GetProfile)
	userGroup.Patch("/profile", userHandler.UpdateProfile)
	userGroup.Get("/dashboard", userHandler.GetDashboard)

	// Assistant
	apiGroup.Post("/ai/assistant", middleware.Protected(authService), assistantHandler.Ask)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

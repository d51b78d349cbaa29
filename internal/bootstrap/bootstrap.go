package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/coursehub/backend/internal/app/controllers"
	appMigrations "github.com/coursehub/backend/internal/app/migrations"
	appRepos "github.com/coursehub/backend/internal/app/repositories"
	appRoutes "github.com/coursehub/backend/internal/app/routes"
	appServices "github.com/coursehub/backend/internal/app/services"
	"github.com/coursehub/backend/internal/config"
	"github.com/coursehub/backend/internal/db"
	appMiddleware "github.com/coursehub/backend/internal/middleware"
	"github.com/coursehub/backend/internal/pkg/logger"
	"github.com/coursehub/backend/internal/pkg/validation"
	"github.com/coursehub/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                   *appRepos.Repositories
	CourseAdminService      appServices.CourseAdminService   // Interface type
	CourseCatalogService    appServices.CourseCatalogService // Interface type
	CourseAdminController   *appControllers.CourseAdminController
	CourseCatalogController *appControllers.CourseCatalogController
	HealthCheck             appRoutes.HealthCheck
	Logger                  zerolog.Logger
}

// ConfigPath returns the config file location, overridable with CONFIG_PATH
func ConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return filepath.Join("configs", "config.yaml")
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL, applies migrations and, when enabled, seeds demo data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); err != nil {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, database, lgr); err != nil {
			// Demo data is optional; the API works on an empty catalog
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	if database == nil || database.Pool == nil {
		return nil, fmt.Errorf("database pool is required")
	}

	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.HealthCheck = database.Ping

	schema := validation.NewStructSchema()

	deps.CourseAdminService = appServices.NewCourseAdminService(deps.Repos.CourseRepository, schema)
	deps.CourseCatalogService = appServices.NewCourseCatalogService(deps.Repos.CourseRepository, schema, appServices.CatalogOptions{
		PageSize:      cfg.Catalog.PageSize,
		SearchConfig:  cfg.Catalog.SearchConfig,
		CategoryScope: cfg.Catalog.CategoryScope,
	})

	deps.CourseAdminController = appControllers.NewCourseAdminController(deps.CourseAdminService)
	deps.CourseCatalogController = appControllers.NewCourseCatalogController(deps.CourseCatalogService)

	lgr.Info().
		Int("pageSize", cfg.Catalog.PageSize).
		Str("categoryScope", cfg.Catalog.CategoryScope).
		Msg("Dependencies built")

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
	)

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.CourseAdminController,
		deps.CourseCatalogController,
		deps.HealthCheck,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

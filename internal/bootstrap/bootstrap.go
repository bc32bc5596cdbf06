package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ozanc/mentorhub/internal/app/controllers"
	appMigrations "github.com/ozanc/mentorhub/internal/app/migrations"
	appRepos "github.com/ozanc/mentorhub/internal/app/repositories"
	appRoutes "github.com/ozanc/mentorhub/internal/app/routes"
	appServices "github.com/ozanc/mentorhub/internal/app/services"
	"github.com/ozanc/mentorhub/internal/config"
	"github.com/ozanc/mentorhub/internal/db"
	appMiddleware "github.com/ozanc/mentorhub/internal/middleware"
	pkgAuth "github.com/ozanc/mentorhub/internal/pkg/auth"
	"github.com/ozanc/mentorhub/internal/pkg/helpers"
	"github.com/ozanc/mentorhub/internal/pkg/logger"
	"github.com/ozanc/mentorhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	StudentService    appServices.StudentService
	MentorService     appServices.MentorService
	ProjectService    appServices.ProjectService
	MessageService    appServices.MessageService
	AuthController    *appControllers.AuthController
	AdminController   *appControllers.AdminController
	MentorController  *appControllers.MentorController
	StudentController *appControllers.StudentController
	MessageController *appControllers.MessageController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "console"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.AdminRepository,
		deps.Repos.MentorRepository,
		deps.Repos.StudentRepository,
		deps.JWTService,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.MentorRepository)
	deps.MentorService = appServices.NewMentorService(deps.Repos.MentorRepository)
	deps.ProjectService = appServices.NewProjectService(
		deps.Repos.ProjectRepository,
		deps.Repos.StudentRepository,
		deps.Repos.MentorRepository,
	)
	deps.MessageService = appServices.NewMessageService(deps.Repos.MessageRepository, deps.Repos.ProjectRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AdminController = appControllers.NewAdminController(deps.StudentService, deps.MentorService, deps.ProjectService)
	deps.MentorController = appControllers.NewMentorController(deps.ProjectService, deps.StudentService)
	deps.StudentController = appControllers.NewStudentController(deps.ProjectService, deps.StudentService)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService)

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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.MentorController,
		deps.StudentController,
		deps.MessageController,
		deps.AuthMiddleware,
	)

	return router
}

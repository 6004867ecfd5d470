package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/registrar/internal/app/controllers"
	appRepos "github.com/yigit/registrar/internal/app/repositories"
	appRoutes "github.com/yigit/registrar/internal/app/routes"
	appServices "github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/db"
	"github.com/yigit/registrar/internal/events"
	appMiddleware "github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/logger"
	"github.com/yigit/registrar/internal/pkg/websocket"
	"github.com/yigit/registrar/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService      appServices.CatalogService
	StudentService      appServices.StudentService
	ProfessorService    appServices.ProfessorService
	EnrollmentService   appServices.EnrollmentService
	ReportService       appServices.ReportService
	CourseController    *appControllers.CourseController
	SectionController   *appControllers.SectionController
	StudentController   *appControllers.StudentController
	ProfessorController *appControllers.ProfessorController
	ReportController    *appControllers.ReportController
	EventController     *appControllers.EventController
	Repos               *appRepos.Repositories
	EventHub            *websocket.Hub
	Publisher           events.Publisher
	Logger              zerolog.Logger
}

// DefaultConfigPath is configs/config.yaml unless REGISTRAR_CONFIG says otherwise.
func DefaultConfigPath() string {
	return config.GetEnv("REGISTRAR_CONFIG", filepath.Join("configs", "config.yaml"))
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Format: logger.Format(strings.ToLower(cfg.Logging.Format)),
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// LoadCatalog reads the startup catalog from the configured source. It
// returns nil for the "none" source.
func LoadCatalog(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*seed.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceNone:
		return nil, nil
	case config.CatalogSourceFile:
		lgr.Info().Str("path", cfg.Catalog.Path).Msg("Loading catalog file...")
		return seed.LoadFile(cfg.Catalog.Path)
	case config.CatalogSourcePostgres:
		lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Importing catalog from PostgreSQL...")
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer database.Close()
		return seed.LoadPostgres(ctx, database)
	default:
		return seed.Default(), nil
	}
}

// SetupCatalog loads the startup catalog into repos. Entries that fail to
// apply are logged and skipped; failing to read the source is fatal.
func SetupCatalog(ctx context.Context, cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	catalog, err := LoadCatalog(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Str("source", cfg.Catalog.Source).Msg("Failed to load catalog")
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if catalog == nil {
		lgr.Info().Msg("Starting with an empty registry")
		return nil
	}

	if err := seed.Apply(repos, catalog, lgr); err != nil {
		lgr.Error().Err(err).Msg("Some catalog entries were not applied, proceeding anyway...")
	}
	return nil
}

// SetupPublisher connects the event publisher. Events are best effort, so a
// broker that cannot be reached downgrades to a no-op publisher.
func SetupPublisher(cfg *config.Config, lgr zerolog.Logger) events.Publisher {
	if !cfg.Events.Enabled {
		lgr.Info().Msg("Event publishing disabled")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewAMQPPublisher(cfg.Events.URL, cfg.Events.Queue)
	if err != nil {
		lgr.Warn().Err(err).Msg("Failed to connect to RabbitMQ, events will be dropped")
		return events.NoopPublisher{}
	}
	lgr.Info().Str("queue", cfg.Events.Queue).Msg("Publishing registry events to RabbitMQ")
	return events.WithTimeout(publisher, cfg.Events.PublishTimeout)
}

// BuildDependencies initializes application services and controllers on top
// of an already loaded registry. Events go to broker and to the WebSocket
// feed.
func BuildDependencies(repos *appRepos.Repositories, broker events.Publisher, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Repos:    repos,
		EventHub: websocket.NewHub(lgr.With().Str("component", "events-ws").Logger()),
		Logger:   lgr,
	}
	deps.Publisher = events.Fanout{broker, deps.EventHub}

	deps.CatalogService = appServices.NewCatalogService(repos, deps.Publisher, lgr.With().Str("component", "catalog").Logger())
	deps.StudentService = appServices.NewStudentService(repos, deps.Publisher, lgr.With().Str("component", "students").Logger())
	deps.ProfessorService = appServices.NewProfessorService(repos, lgr.With().Str("component", "professors").Logger())
	deps.EnrollmentService = appServices.NewEnrollmentService(repos, deps.Publisher, lgr.With().Str("component", "enrollment").Logger())
	deps.ReportService = appServices.NewReportService(repos)

	deps.CourseController = appControllers.NewCourseController(deps.CatalogService)
	deps.SectionController = appControllers.NewSectionController(deps.CatalogService, deps.ProfessorService, deps.EnrollmentService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.EnrollmentService)
	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.EventController = appControllers.NewEventController(deps.EventHub, lgr)

	return deps
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
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.SectionController,
		deps.StudentController,
		deps.ProfessorController,
		deps.ReportController,
		deps.EventController,
	)

	return router
}

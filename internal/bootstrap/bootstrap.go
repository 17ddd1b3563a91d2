// Package bootstrap wires the application together: configuration, logging,
// the store, the notification bus, services, controllers and routes.
package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/buraks/classtrack/internal/app/controllers"
	"github.com/buraks/classtrack/internal/app/events"
	appRoutes "github.com/buraks/classtrack/internal/app/routes"
	appServices "github.com/buraks/classtrack/internal/app/services"
	"github.com/buraks/classtrack/internal/app/store"
	"github.com/buraks/classtrack/internal/config"
	appMiddleware "github.com/buraks/classtrack/internal/middleware"
	"github.com/buraks/classtrack/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store *store.Store
	Bus   *events.Bus

	RegistryService *appServices.RegistryService
	MoveService     *appServices.MoveService
	PayrollService  *appServices.PayrollService
	ExportService   *appServices.ExportService

	CourseController  *appControllers.CourseController
	StudentController *appControllers.StudentController
	TeacherController *appControllers.TeacherController
	PayrollController *appControllers.PayrollController

	Logger zerolog.Logger
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
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies constructs the store, notification bus, services and
// controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	st := store.New(cfg.Payroll.SalaryPerBlock)

	bus := events.NewBus(lgr)
	bus.Subscribe(func(evt events.StudentChanged) error {
		lgr.Info().
			Int64("studentId", int64(evt.StudentID)).
			Str("name", evt.Name).
			Int64("courseId", int64(evt.CourseID)).
			Uint8("grade", evt.Grade).
			Msg("Student state changed")
		return nil
	})

	registryService := appServices.NewRegistryService(st, bus, lgr)
	moveService := appServices.NewMoveService(st, bus, lgr)
	payrollService := appServices.NewPayrollService(st, lgr)
	exportService := appServices.NewExportService(st, lgr)

	deps := &Dependencies{
		Store:             st,
		Bus:               bus,
		RegistryService:   registryService,
		MoveService:       moveService,
		PayrollService:    payrollService,
		ExportService:     exportService,
		CourseController:  appControllers.NewCourseController(registryService, exportService),
		StudentController: appControllers.NewStudentController(registryService, moveService),
		TeacherController: appControllers.NewTeacherController(registryService, payrollService),
		PayrollController: appControllers.NewPayrollController(payrollService),
		Logger:            lgr,
	}
	return deps, nil
}

// SetupRouter builds the gin engine with middleware and all routes attached.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(
		router,
		deps.CourseController,
		deps.StudentController,
		deps.TeacherController,
		deps.PayrollController,
	)

	return router
}

package routes

import (
	"caregiver-shifts-backend/internal/api/handlers"
	"caregiver-shifts-backend/internal/api/middleware"
	"caregiver-shifts-backend/internal/auth"
	"caregiver-shifts-backend/internal/config"
	"caregiver-shifts-backend/internal/repository"
	"caregiver-shifts-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	shiftRepo := repository.NewShiftRepository(db, cfg.StoreTimeout())
	caregiverRepo := repository.NewCaregiverRepository(db, cfg.StoreTimeout())

	// Initialize services
	directory, err := service.NewCaregiverDirectory(cfg, caregiverRepo)
	if err != nil {
		return nil, err
	}
	authorizer := auth.NewAuthorizer()
	shiftService := service.NewShiftService(shiftRepo, directory, authorizer, validator, cfg.Location())
	reportService := service.NewReportService(shiftRepo, authorizer)

	// Initialize auth
	authConfig, err := auth.NewAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	authService := auth.NewAuthService(authConfig)
	authHandler := auth.NewAuthHandler(authService, authConfig, validator)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")

	if authConfig.AllowIssue {
		logrus.Warn("Token issuing endpoint enabled; do not expose this instance publicly")
		v1.POST("/auth/token", authHandler.IssueToken)
	}

	secured := v1.Group("")
	secured.Use(authMiddleware.RequireAuth())
	{
		// Shift routes
		shifts := secured.Group("/shifts")
		{
			shifts.POST("", authMiddleware.RequireRole(auth.RoleSupervisor, auth.RoleFamily), shiftHandler.ScheduleShift)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.POST("/:id/confirm", shiftHandler.ConfirmShift)
			shifts.POST("/:id/check-in", shiftHandler.CheckIn)
			shifts.POST("/:id/check-out", shiftHandler.CheckOut)
			shifts.POST("/:id/cancel", shiftHandler.CancelShift)
		}

		// Patient calendar routes
		patients := secured.Group("/patients/:patientId")
		{
			patients.GET("/shifts", shiftHandler.ListPatientShifts)
			patients.GET("/timeline", shiftHandler.GetTimeline)
		}

		// Report routes
		reports := secured.Group("/reports")
		reports.Use(authMiddleware.RequireRole(auth.RoleSupervisor, auth.RoleFamily))
		{
			reports.GET("/hours", reportHandler.WeeklyHours)
			reports.GET("/hours.xlsx", reportHandler.ExportWeeklyHours)
		}
	}

	return router, nil
}

// File: shiftflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shiftflow/config"
	"shiftflow/cron"
	"shiftflow/database"
	employeeRepoPkg "shiftflow/database/repository/employee"
	positionRepoPkg "shiftflow/database/repository/position"
	shiftRepoPkg "shiftflow/database/repository/shift"
	templateRepoPkg "shiftflow/database/repository/template"
	unavailabilityRepoPkg "shiftflow/database/repository/unavailability"
	"shiftflow/handlers"
	"shiftflow/resolvers"
	"shiftflow/routes"
	"shiftflow/services/employee"
	"shiftflow/services/notification"
	"shiftflow/services/resource"
	"shiftflow/services/schedule"
	"shiftflow/services/storage"
	"shiftflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}
	storageService := storage.NewCloudinaryStorageService(cld)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories. Position lists are read on every page build, so they
	// ride through the Redis cache.
	shiftRepo := shiftRepoPkg.NewMongoShiftRepo()
	positionRepo := positionRepoPkg.NewCachedPositionRepo(positionRepoPkg.NewMongoPositionRepo(), utils.GetCacheClient())
	employeeRepo := employeeRepoPkg.NewMongoEmployeeRepo()
	unavailabilityRepo := unavailabilityRepoPkg.NewMongoUnavailabilityRepo()
	templateRepo := templateRepoPkg.NewMongoTemplateRepo()

	// reminder queue client.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	// services.
	notificationService, err := notification.NewDefaultNotificationService(employeeRepo, positionRepo, asynqClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	scheduleService := &schedule.DefaultScheduleService{
		ShiftRepo:          shiftRepo,
		PositionRepo:       positionRepo,
		EmployeeRepo:       employeeRepo,
		UnavailabilityRepo: unavailabilityRepo,
		Notifier:           notificationService,
	}

	resourceService := &resource.DefaultResourceService{
		PositionRepo: positionRepo,
		TemplateRepo: templateRepo,
		ShiftRepo:    shiftRepo,
		EmployeeRepo: employeeRepo,
	}

	employeeService := &employee.DefaultEmployeeService{
		EmployeeRepo:       employeeRepo,
		PositionRepo:       positionRepo,
		ShiftRepo:          shiftRepo,
		UnavailabilityRepo: unavailabilityRepo,
	}

	sessions := utils.NewSessionStore(utils.GetSessionClient())
	loginThrottle := utils.NewLoginThrottle(utils.GetRateLimitClient())

	resolver := &resolvers.Resolver{
		Schedule:  scheduleService,
		Resource:  resourceService,
		Employees: employeeService,
		Sessions:  sessions,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService, resolver, sessions)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	portalHandler := handlers.NewPortalHandler(scheduleService, resolver)
	accountHandler := handlers.NewAccountHandler(employeeService, storageService, resolver, sessions, loginThrottle)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Account endpoints.
		LoginPageHandler:      accountHandler.LoginPageHandler,
		LoginHandler:          accountHandler.LoginHandler,
		LogoutHandler:         accountHandler.LogoutHandler,
		HomeHandler:           accountHandler.HomeHandler,
		DemoLoginHandler:      accountHandler.DemoLoginHandler,
		ProfileHandler:        accountHandler.ProfileHandler,
		RegisterDeviceHandler: accountHandler.RegisterDeviceHandler,
		UploadAvatarHandler:   accountHandler.UploadAvatarHandler,

		// Manager schedule endpoints.
		ManagerShiftsPageHandler:   scheduleHandler.ManagerShiftsPageHandler,
		ManagerShiftsActionHandler: scheduleHandler.ManagerShiftsActionHandler,
		CreateShiftHandler:         scheduleHandler.CreateShiftHandler,
		UpdateShiftHandler:         scheduleHandler.UpdateShiftHandler,
		DeleteShiftHandler:         scheduleHandler.DeleteShiftHandler,
		PublishShiftHandler:        scheduleHandler.PublishShiftHandler,
		ShiftDetailsHandler:        scheduleHandler.ShiftDetailsHandler,
		UndoHandler:                scheduleHandler.UndoHandler,

		// Position and template endpoints.
		PositionsListHandler:  resourceHandler.PositionsListHandler,
		PositionCreateHandler: resourceHandler.PositionCreateHandler,
		PositionUpdateHandler: resourceHandler.PositionUpdateHandler,
		PositionDeleteHandler: resourceHandler.PositionDeleteHandler,
		TemplatesListHandler:  resourceHandler.TemplatesListHandler,
		TemplateCreateHandler: resourceHandler.TemplateCreateHandler,
		TemplateUpdateHandler: resourceHandler.TemplateUpdateHandler,
		TemplateDeleteHandler: resourceHandler.TemplateDeleteHandler,

		// Employee portal endpoints.
		EmployeeShiftsPageHandler:   portalHandler.EmployeeShiftsPageHandler,
		UnavailabilityPageHandler:   portalHandler.UnavailabilityPageHandler,
		UnavailabilityToggleHandler: portalHandler.UnavailabilityToggleHandler,

		// Employee directory endpoints.
		EmployeeDirectoryHandler:     accountHandler.EmployeeDirectoryHandler,
		CreateEmployeeHandler:        accountHandler.CreateEmployeeHandler,
		EmployeeDetailsHandler:       accountHandler.EmployeeDetailsHandler,
		UpdateEmployeeHandler:        accountHandler.UpdateEmployeeHandler,
		ResetEmployeePasswordHandler: accountHandler.ResetEmployeePasswordHandler,
		DeleteEmployeeHandler:        accountHandler.DeleteEmployeeHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, sessions)

	// Start the reminder worker and health monitor.
	cron.InitReminderWorker(notificationService, shiftRepo)
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetSessionClient(),
		utils.GetRateLimitClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

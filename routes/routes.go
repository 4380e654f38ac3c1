package routes

import (
	"net/http"
	"time"

	"shiftflow/config"
	"shiftflow/handlers"
	"shiftflow/middleware"
	"shiftflow/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers login, logout, demo login, and profile
// endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *utils.SessionStore) {
	r.GET("/login/", hb.LoginPageHandler)
	r.POST("/login/", hb.LoginHandler)
	r.GET("/login/demo/:role/", hb.DemoLoginHandler)

	// Authenticated account endpoints.
	authed := r.Group("")
	authed.Use(middleware.SessionAuthMiddleware(sessions))
	authed.GET("/", hb.HomeHandler)
	authed.POST("/logout/", hb.LogoutHandler)
	authed.GET("/profile/", hb.ProfileHandler)
	authed.POST("/profile/device/", hb.RegisterDeviceHandler)
	authed.POST("/profile/avatar/", hb.UploadAvatarHandler)
}

// RegisterManagerRoutes registers the manager calendar, shift CRUD,
// positions, templates, and the employee directory.
func RegisterManagerRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *utils.SessionStore) {
	manager := r.Group("/manager")
	manager.Use(middleware.SessionAuthMiddleware(sessions), middleware.ManagerRequired())
	{
		manager.GET("/shifts/", hb.ManagerShiftsPageHandler)
		manager.POST("/shifts/", hb.ManagerShiftsActionHandler)
		manager.POST("/shifts/create/", hb.CreateShiftHandler)
		manager.POST("/shifts/undo/", hb.UndoHandler)
		manager.GET("/shifts/:id/json/", hb.ShiftDetailsHandler)
		manager.POST("/shifts/:id/update/", hb.UpdateShiftHandler)
		manager.POST("/shifts/:id/delete/", hb.DeleteShiftHandler)
		manager.POST("/shifts/:id/publish/", hb.PublishShiftHandler)

		manager.GET("/positions/json/", hb.PositionsListHandler)
		manager.POST("/positions/create/", hb.PositionCreateHandler)
		manager.POST("/positions/:id/update/", hb.PositionUpdateHandler)
		manager.POST("/positions/:id/delete/", hb.PositionDeleteHandler)

		manager.GET("/templates/json/", hb.TemplatesListHandler)
		manager.POST("/templates/create/", hb.TemplateCreateHandler)
		manager.POST("/templates/:id/update/", hb.TemplateUpdateHandler)
		manager.POST("/templates/:id/delete/", hb.TemplateDeleteHandler)

		manager.GET("/employees/", hb.EmployeeDirectoryHandler)
		manager.POST("/employees/", hb.CreateEmployeeHandler)
		manager.GET("/employees/:id/json/", hb.EmployeeDetailsHandler)
		manager.POST("/employees/:id/update/", hb.UpdateEmployeeHandler)
		manager.POST("/employees/:id/reset-password/", hb.ResetEmployeePasswordHandler)
		manager.POST("/employees/:id/delete/", hb.DeleteEmployeeHandler)
	}
}

// RegisterEmployeeRoutes registers the employee portal endpoints.
func RegisterEmployeeRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *utils.SessionStore) {
	portal := r.Group("/employee")
	portal.Use(middleware.SessionAuthMiddleware(sessions), middleware.EmployeeRequired())
	{
		portal.GET("/shifts/", hb.EmployeeShiftsPageHandler)
		portal.GET("/unavailability/", hb.UnavailabilityPageHandler)
		portal.POST("/unavailability/toggle/", hb.UnavailabilityToggleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and global
// middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *utils.SessionStore) {
	allowOrigins := config.AppConfig.AllowedOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-CSRFToken", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.CSRFMiddleware())

	RegisterAccountRoutes(r, hb, sessions)
	RegisterManagerRoutes(r, hb, sessions)
	RegisterEmployeeRoutes(r, hb, sessions)
	RegisterHealthRoute(r)
}

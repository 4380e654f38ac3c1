// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Accounts
	LoginPageHandler      gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc
	HomeHandler           gin.HandlerFunc
	DemoLoginHandler      gin.HandlerFunc
	ProfileHandler        gin.HandlerFunc
	RegisterDeviceHandler gin.HandlerFunc
	UploadAvatarHandler   gin.HandlerFunc

	// Manager schedule
	ManagerShiftsPageHandler   gin.HandlerFunc
	ManagerShiftsActionHandler gin.HandlerFunc
	CreateShiftHandler         gin.HandlerFunc
	UpdateShiftHandler         gin.HandlerFunc
	DeleteShiftHandler         gin.HandlerFunc
	PublishShiftHandler        gin.HandlerFunc
	ShiftDetailsHandler        gin.HandlerFunc
	UndoHandler                gin.HandlerFunc

	// Positions & templates
	PositionsListHandler  gin.HandlerFunc
	PositionCreateHandler gin.HandlerFunc
	PositionUpdateHandler gin.HandlerFunc
	PositionDeleteHandler gin.HandlerFunc
	TemplatesListHandler  gin.HandlerFunc
	TemplateCreateHandler gin.HandlerFunc
	TemplateUpdateHandler gin.HandlerFunc
	TemplateDeleteHandler gin.HandlerFunc

	// Employee portal
	EmployeeShiftsPageHandler   gin.HandlerFunc
	UnavailabilityPageHandler   gin.HandlerFunc
	UnavailabilityToggleHandler gin.HandlerFunc

	// Employee directory
	EmployeeDirectoryHandler     gin.HandlerFunc
	CreateEmployeeHandler        gin.HandlerFunc
	EmployeeDetailsHandler       gin.HandlerFunc
	UpdateEmployeeHandler        gin.HandlerFunc
	ResetEmployeePasswordHandler gin.HandlerFunc
	DeleteEmployeeHandler        gin.HandlerFunc
}

// File: handlers/accounts.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"shiftflow/config"
	"shiftflow/middleware"
	"shiftflow/models"
	"shiftflow/resolvers"
	"shiftflow/services/employee"
	"shiftflow/services/storage"
	"shiftflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler serves authentication, the caller's profile, and the
// manager's employee directory.
type AccountHandler struct {
	Employees employee.EmployeeService
	Storage   storage.StorageService
	Resolver  *resolvers.Resolver
	Sessions  *utils.SessionStore
	Throttle  *utils.LoginThrottle
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc employee.EmployeeService, store storage.StorageService, res *resolvers.Resolver, sessions *utils.SessionStore, throttle *utils.LoginThrottle) *AccountHandler {
	return &AccountHandler{Employees: svc, Storage: store, Resolver: res, Sessions: sessions, Throttle: throttle}
}

// loginThrottleKey scopes failed-attempt counting to a client/username
// pair so one address cannot lock out every account.
func loginThrottleKey(c *gin.Context) string {
	return strings.ToLower(strings.TrimSpace(c.PostForm("username"))) + "@" + c.ClientIP()
}

// openSession creates the server-side session and sets the signed cookie.
func (h *AccountHandler) openSession(c *gin.Context, account *models.Employee) (string, error) {
	principal := utils.Principal{
		UserID:   account.ID,
		Role:     account.Role,
		Email:    account.Email,
		FullName: account.FullName(),
	}
	sessionID, err := h.Sessions.Create(c.Request.Context(), principal)
	if err != nil {
		return "", err
	}

	ttl := utils.SessionTTL()
	token, err := utils.GenerateSessionToken(sessionID, ttl)
	if err != nil {
		return "", err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.AppConfig.SessionCookie, token, int(ttl.Seconds()), "/", "", config.AppConfig.CookieSecure, true)
	return sessionID, nil
}

func (h *AccountHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.AppConfig.SessionCookie, "", -1, "/", "", config.AppConfig.CookieSecure, true)
}

// homeRedirect resolves where a fresh login lands: managers return to
// their last calendar URL when it is safe, employees to their shifts.
func (h *AccountHandler) homeRedirect(c *gin.Context, account *models.Employee) string {
	if account.IsManager() {
		last, err := h.Sessions.LastScheduleURL(c.Request.Context(), account.ID)
		if err != nil {
			utils.GetLogger().Warn("Failed to read last calendar URL", zap.Error(err))
		}
		if target := sameHostPath(c, last); target != "" {
			return target
		}
		return managerShiftsPath
	}
	return employeeShiftsPath
}

// LoginPageHandler handles GET /login/. The CSRF middleware issues the
// cookie the client echoes back on the POST.
func (h *AccountHandler) LoginPageHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "show_demo": config.AppConfig.DemoMode})
}

// LoginHandler handles POST /login/ with username and password form
// fields. Repeated failures for the same client/username pair lock the
// login out for the configured window; throttle errors fail open.
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	throttleKey := loginThrottleKey(c)
	blocked, err := h.Throttle.Blocked(c.Request.Context(), throttleKey)
	if err != nil {
		utils.GetLogger().Warn("Failed to read login throttle", zap.Error(err))
	}
	if blocked {
		c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "Too many failed login attempts. Try again later."})
		return
	}

	account, err := h.Employees.Authenticate(c.PostForm("username"), c.PostForm("password"))
	if errors.Is(err, employee.ErrInvalidLogin) {
		if err := h.Throttle.RecordFailure(c.Request.Context(), throttleKey); err != nil {
			utils.GetLogger().Warn("Failed to record login failure", zap.Error(err))
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid login."})
		return
	}
	if err != nil {
		utils.GetLogger().Error("Login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Authentication failed. Please try again.")
		return
	}

	if _, err := h.openSession(c, account); err != nil {
		utils.GetLogger().Error("Failed to open session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Authentication failed. Please try again.")
		return
	}
	if err := h.Throttle.Reset(c.Request.Context(), throttleKey); err != nil {
		utils.GetLogger().Warn("Failed to reset login throttle", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "redirect": h.homeRedirect(c, account)})
}

// LogoutHandler handles POST /logout/.
func (h *AccountHandler) LogoutHandler(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if err := h.Sessions.Destroy(c.Request.Context(), sessionID); err != nil {
		utils.GetLogger().Warn("Failed to destroy session", zap.Error(err))
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"ok": true, "redirect": loginPath})
}

// HomeHandler handles GET /: it only resolves where the caller belongs.
func (h *AccountHandler) HomeHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	account, err := h.Employees.GetByID(principal.UserID)
	if err != nil {
		utils.GetLogger().Error("Failed to load account", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load account")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "redirect": h.homeRedirect(c, account)})
}

// DemoLoginHandler handles GET /login/demo/:role/. It seeds the demo
// dataset on every call and signs the caller in as the requested role.
func (h *AccountHandler) DemoLoginHandler(c *gin.Context) {
	account, err := h.Employees.EnsureDemoData(c.Param("role"))
	switch {
	case errors.Is(err, employee.ErrDemoDisabled):
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "Demo login is disabled."})
		return
	case errors.Is(err, employee.ErrUnknownDemoRole):
		c.JSON(http.StatusOK, gin.H{"ok": false, "redirect": loginPath})
		return
	case err != nil:
		utils.GetLogger().Error("Demo login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Demo login failed. Please try again.")
		return
	}

	if _, err := h.openSession(c, account); err != nil {
		utils.GetLogger().Error("Failed to open demo session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Demo login failed. Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "redirect": h.homeRedirect(c, account)})
}

// ProfileHandler handles GET /profile/.
func (h *AccountHandler) ProfileHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	account, err := h.Employees.GetByID(principal.UserID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Account not found.")
		return
	}
	if err != nil {
		utils.GetLogger().Error("Failed to load profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, account)
}

// RegisterDeviceHandler handles POST /profile/device/ with a token form
// field. An empty token clears the registration.
func (h *AccountHandler) RegisterDeviceHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.Employees.RegisterDeviceToken(principal.UserID, c.PostForm("token")); err != nil {
		utils.GetLogger().Error("Failed to register device token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to register device")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UploadAvatarHandler handles POST /profile/avatar/ with an avatar file
// field.
func (h *AccountHandler) UploadAvatarHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "No file uploaded."})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.GetLogger().Error("Failed to open uploaded avatar", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadAvatar(c.Request.Context(), principal.UserID, file)
	if errors.Is(err, storage.ErrStorageDisabled) {
		utils.JSONError(c, http.StatusServiceUnavailable, "Avatar storage is not configured.")
		return
	}
	if err != nil {
		utils.GetLogger().Error("Avatar upload failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload avatar")
		return
	}

	if err := h.Employees.SetAvatarURL(principal.UserID, url); err != nil {
		utils.GetLogger().Error("Failed to store avatar URL", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save avatar")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "avatar_url": url})
}

// EmployeeDirectoryHandler handles GET /manager/employees/.
func (h *AccountHandler) EmployeeDirectoryHandler(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	page, err := h.Resolver.EmployeeDirectoryPage(c.Request.Context(), sessionID, c.Request.URL.Query())
	if err != nil {
		utils.GetLogger().Error("Failed to build employee directory", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load employees")
		return
	}
	c.JSON(http.StatusOK, page)
}

func readEmployeeInput(c *gin.Context) employee.EmployeeInput {
	return employee.EmployeeInput{
		FullName:   c.PostForm("full_name"),
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("phone"),
		PositionID: c.PostForm("position_id"),
	}
}

// CreateEmployeeHandler handles POST /manager/employees/. The generated
// credentials are stashed in the session and surface exactly once on the
// next directory load.
func (h *AccountHandler) CreateEmployeeHandler(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	created, creds, err := h.Employees.CreateEmployee(readEmployeeInput(c))
	if err != nil {
		var fields utils.FieldErrors
		if errors.As(err, &fields) {
			queueFlash(c, h.Sessions, sessionID, models.FlashError, "Please fix the errors and try again.")
			utils.JSONFieldErrors(c, fields)
			return
		}
		utils.GetLogger().Error("Failed to create employee", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	if err := h.Sessions.SetOneTimeCredentials(c.Request.Context(), sessionID, creds); err != nil {
		utils.GetLogger().Warn("Failed to stash one-time credentials", zap.String("employee", created.ID), zap.Error(err))
	}
	queueFlash(c, h.Sessions, sessionID, models.FlashSuccess, "Employee created.")
	c.JSON(http.StatusOK, gin.H{"ok": true, "redirect": managerEmployeesPath})
}

// EmployeeDetailsHandler handles GET /manager/employees/:id/json/.
func (h *AccountHandler) EmployeeDetailsHandler(c *gin.Context) {
	details, err := h.Employees.EmployeeDetails(c.Param("id"))
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Employee not found.")
		return
	}
	if err != nil {
		utils.GetLogger().Error("Failed to load employee", zap.String("id", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load employee")
		return
	}
	c.JSON(http.StatusOK, details)
}

// UpdateEmployeeHandler handles POST /manager/employees/:id/update/.
func (h *AccountHandler) UpdateEmployeeHandler(c *gin.Context) {
	updated, err := h.Employees.UpdateEmployee(c.Param("id"), readEmployeeInput(c))
	if err != nil {
		var fields utils.FieldErrors
		switch {
		case errors.Is(err, employee.ErrEmployeeNotFound):
			utils.JSONError(c, http.StatusNotFound, "Employee not found.")
		case errors.As(err, &fields):
			utils.JSONFieldErrors(c, fields)
		default:
			utils.GetLogger().Error("Failed to update employee", zap.String("id", c.Param("id")), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update employee")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "employee": updated})
}

// ResetEmployeePasswordHandler handles POST /manager/employees/:id/reset-password/.
func (h *AccountHandler) ResetEmployeePasswordHandler(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	creds, err := h.Employees.ResetPassword(c.Param("id"))
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Employee not found.")
		return
	}
	if err != nil {
		utils.GetLogger().Error("Failed to reset password", zap.String("id", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	if err := h.Sessions.SetOneTimeCredentials(c.Request.Context(), sessionID, creds); err != nil {
		utils.GetLogger().Warn("Failed to stash one-time credentials", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "redirect": managerEmployeesPath})
}

// DeleteEmployeeHandler handles POST /manager/employees/:id/delete/.
// Deleting cascades: the account's assignments and unavailability marks
// go with it.
func (h *AccountHandler) DeleteEmployeeHandler(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	name, err := h.Employees.DeleteEmployee(c.Param("id"))
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Employee not found.")
		return
	}
	if err != nil {
		utils.GetLogger().Error("Failed to delete employee", zap.String("id", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete employee")
		return
	}

	queueFlash(c, h.Sessions, sessionID, models.FlashSuccess, fmt.Sprintf("Deleted employee: %s.", name))
	c.JSON(http.StatusOK, gin.H{"ok": true, "redirect": managerEmployeesPath})
}

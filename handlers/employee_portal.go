// File: handlers/employee_portal.go
package handlers

import (
	"net/http"
	"strings"
	"time"

	"shiftflow/middleware"
	"shiftflow/resolvers"
	"shiftflow/services/schedule"
	"shiftflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PortalHandler serves the employee-facing pages: the "my shifts"
// calendar and the unavailability calendar with its toggle.
type PortalHandler struct {
	Schedule schedule.ScheduleService
	Resolver *resolvers.Resolver
}

// NewPortalHandler creates a new PortalHandler.
func NewPortalHandler(svc schedule.ScheduleService, res *resolvers.Resolver) *PortalHandler {
	return &PortalHandler{Schedule: svc, Resolver: res}
}

// EmployeeShiftsPageHandler handles GET /employee/shifts/.
func (h *PortalHandler) EmployeeShiftsPageHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	sessionID := middleware.GetSessionID(c)

	page, err := h.Resolver.EmployeeSchedulePage(c.Request.Context(), sessionID, principal.UserID, c.Request.URL.Query(), time.Now())
	if err != nil {
		utils.GetLogger().Error("Failed to build employee schedule page", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load shifts")
		return
	}
	c.JSON(http.StatusOK, page)
}

// UnavailabilityPageHandler handles GET /employee/unavailability/.
func (h *PortalHandler) UnavailabilityPageHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	sessionID := middleware.GetSessionID(c)

	page, err := h.Resolver.UnavailabilityPage(c.Request.Context(), sessionID, principal.UserID, c.Request.URL.Query(), time.Now())
	if err != nil {
		utils.GetLogger().Error("Failed to build unavailability page", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load availability")
		return
	}
	c.JSON(http.StatusOK, page)
}

// UnavailabilityToggleHandler handles POST /employee/unavailability/toggle/.
// Toggling never touches existing assignments; it only blocks future
// assignment and publishing.
func (h *PortalHandler) UnavailabilityToggleHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	date := strings.TrimSpace(c.PostForm("date"))
	if _, err := time.Parse(utils.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Enter a valid date."})
		return
	}

	unavailable, err := h.Schedule.ToggleUnavailability(principal.UserID, date)
	if err != nil {
		utils.GetLogger().Error("Failed to toggle unavailability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "date": date, "unavailable": unavailable})
}

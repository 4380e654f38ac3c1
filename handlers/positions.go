// File: handlers/positions.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"shiftflow/models"
	"shiftflow/services/resource"
	"shiftflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResourceHandler serves the positions and shift-template JSON APIs used
// by the manager settings panels.
type ResourceHandler struct {
	Resource resource.ResourceService
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(svc resource.ResourceService) *ResourceHandler {
	return &ResourceHandler{Resource: svc}
}

// parseCheckbox reads an HTML checkbox value.
func parseCheckbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// PositionsListHandler handles GET /manager/positions/json/.
func (h *ResourceHandler) PositionsListHandler(c *gin.Context) {
	positions, err := h.Resource.ListPositions()
	if err != nil {
		utils.GetLogger().Error("Failed to list positions", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load positions")
		return
	}
	if positions == nil {
		positions = []models.Position{}
	}
	c.JSON(http.StatusOK, gin.H{"positions": positions})
}

// PositionCreateHandler handles POST /manager/positions/create/.
func (h *ResourceHandler) PositionCreateHandler(c *gin.Context) {
	position, err := h.Resource.CreatePosition(c.PostForm("name"), parseCheckbox(c.PostForm("is_active")))
	if err != nil {
		var fields utils.FieldErrors
		if errors.As(err, &fields) {
			utils.JSONFieldErrors(c, fields)
			return
		}
		utils.GetLogger().Error("Failed to create position", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save position")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": position.ID})
}

// PositionUpdateHandler handles POST /manager/positions/:id/update/.
func (h *ResourceHandler) PositionUpdateHandler(c *gin.Context) {
	_, err := h.Resource.UpdatePosition(c.Param("id"), c.PostForm("name"), parseCheckbox(c.PostForm("is_active")))
	if err != nil {
		var fields utils.FieldErrors
		switch {
		case errors.Is(err, resource.ErrPositionNotFound):
			utils.JSONError(c, http.StatusNotFound, "Position not found.")
		case errors.As(err, &fields):
			utils.JSONFieldErrors(c, fields)
		default:
			utils.GetLogger().Error("Failed to update position", zap.String("id", c.Param("id")), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to save position")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// PositionDeleteHandler handles POST /manager/positions/:id/delete/.
// Deletion is refused while employees, shifts, or templates still
// reference the position.
func (h *ResourceHandler) PositionDeleteHandler(c *gin.Context) {
	err := h.Resource.DeletePosition(c.Param("id"))
	if err != nil {
		var protected *resource.ProtectedError
		switch {
		case errors.Is(err, resource.ErrPositionNotFound):
			utils.JSONError(c, http.StatusNotFound, "Position not found.")
		case errors.As(err, &protected):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": protected.Message})
		default:
			utils.GetLogger().Error("Failed to delete position", zap.String("id", c.Param("id")), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to delete position")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

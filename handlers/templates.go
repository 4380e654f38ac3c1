// File: handlers/templates.go
package handlers

import (
	"errors"
	"net/http"

	"shiftflow/middleware"
	"shiftflow/models"
	"shiftflow/services/resource"
	"shiftflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func readTemplateInput(c *gin.Context) resource.TemplateInput {
	return resource.TemplateInput{
		Name:       c.PostForm("name"),
		PositionID: c.PostForm("position_id"),
		StartTime:  c.PostForm("start_time"),
		EndTime:    c.PostForm("end_time"),
		Capacity:   c.PostForm("capacity"),
	}
}

// TemplatesListHandler handles GET /manager/templates/json/. Templates
// are per-manager.
func (h *ResourceHandler) TemplatesListHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	templates, err := h.Resource.ListTemplates(principal.UserID)
	if err != nil {
		utils.GetLogger().Error("Failed to list templates", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load templates")
		return
	}
	if templates == nil {
		templates = []models.TemplatePayload{}
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// TemplateCreateHandler handles POST /manager/templates/create/.
func (h *ResourceHandler) TemplateCreateHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	template, err := h.Resource.CreateTemplate(principal.UserID, readTemplateInput(c))
	if err != nil {
		var fields utils.FieldErrors
		if errors.As(err, &fields) {
			utils.JSONFieldErrors(c, fields)
			return
		}
		utils.GetLogger().Error("Failed to create template", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": template.ID})
}

// TemplateUpdateHandler handles POST /manager/templates/:id/update/.
func (h *ResourceHandler) TemplateUpdateHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	_, err := h.Resource.UpdateTemplate(principal.UserID, c.Param("id"), readTemplateInput(c))
	if err != nil {
		var fields utils.FieldErrors
		switch {
		case errors.Is(err, resource.ErrTemplateNotFound):
			utils.JSONError(c, http.StatusNotFound, "Template not found.")
		case errors.As(err, &fields):
			utils.JSONFieldErrors(c, fields)
		default:
			utils.GetLogger().Error("Failed to update template", zap.String("id", c.Param("id")), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to save template")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// TemplateDeleteHandler handles POST /manager/templates/:id/delete/.
func (h *ResourceHandler) TemplateDeleteHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.Resource.DeleteTemplate(principal.UserID, c.Param("id")); err != nil {
		if errors.Is(err, resource.ErrTemplateNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Template not found.")
			return
		}
		utils.GetLogger().Error("Failed to delete template", zap.String("id", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

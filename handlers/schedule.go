// File: handlers/schedule.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"shiftflow/middleware"
	"shiftflow/models"
	"shiftflow/resolvers"
	"shiftflow/services/schedule"
	"shiftflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the manager shift calendar: the page state,
// bulk actions, single-shift CRUD, and the one-shot undo.
type ScheduleHandler struct {
	Schedule schedule.ScheduleService
	Resolver *resolvers.Resolver
	Sessions *utils.SessionStore
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService, res *resolvers.Resolver, sessions *utils.SessionStore) *ScheduleHandler {
	return &ScheduleHandler{Schedule: svc, Resolver: res, Sessions: sessions}
}

// readShiftInput extracts the shift form fields. Values stay raw strings;
// the service validates.
func readShiftInput(c *gin.Context) schedule.ShiftInput {
	return schedule.ShiftInput{
		Date:        c.PostForm("date"),
		StartTime:   c.PostForm("start_time"),
		EndTime:     c.PostForm("end_time"),
		PositionID:  c.PostForm("position_id"),
		Capacity:    c.PostForm("capacity"),
		Publish:     c.PostForm("publish") == "1",
		EmployeeIDs: c.PostFormArray("employee_ids"),
	}
}

// ManagerShiftsPageHandler handles GET /manager/shifts/. It records the
// full URL so later saves can redirect back to the same view.
func (h *ScheduleHandler) ManagerShiftsPageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	sessionID := middleware.GetSessionID(c)

	if err := h.Sessions.SetLastScheduleURL(c.Request.Context(), principal.UserID, c.Request.URL.RequestURI()); err != nil {
		logger.Warn("Failed to record calendar URL", zap.Error(err))
	}

	page, err := h.Resolver.ManagerSchedulePage(c.Request.Context(), sessionID, principal.UserID, c.Request.URL.Query(), time.Now())
	if err != nil {
		logger.Error("Failed to build manager schedule page", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load schedule")
		return
	}
	c.JSON(http.StatusOK, page)
}

// ManagerShiftsActionHandler handles POST /manager/shifts/ bulk actions.
// The date range comes from the same query parameters the page was
// loaded with.
func (h *ScheduleHandler) ManagerShiftsActionHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	sessionID := middleware.GetSessionID(c)
	q := schedule.ResolveManagerQuery(c.Request.URL.Query(), time.Now())

	switch c.PostForm("action") {
	case "publish":
		h.publishAll(c, sessionID, principal.UserID, q)
	case "delete_drafts":
		h.deleteDrafts(c, sessionID, principal.UserID, q)
	case "publish_selected", "delete_selected":
		h.selectionAction(c, sessionID, principal.UserID, c.PostForm("action"))
	default:
		utils.JSONError(c, http.StatusBadRequest, "Unknown action.")
	}
}

func (h *ScheduleHandler) recordLastAction(c *gin.Context, sessionID, action string, shiftIDs []string) {
	record := models.LastAction{Action: action, ShiftIDs: shiftIDs}
	if err := h.Sessions.SetLastAction(c.Request.Context(), sessionID, record); err != nil {
		utils.GetLogger().Warn("Failed to record undo action", zap.Error(err))
	}
}

func (h *ScheduleHandler) respondBack(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "redirect": redirectBack(c, managerShiftsPath)})
}

func (h *ScheduleHandler) publishAll(c *gin.Context, sessionID, managerID string, q schedule.ViewQuery) {
	result, err := h.Schedule.PublishRange(managerID, q.Start, q.End)
	if err != nil {
		utils.GetLogger().Error("Bulk publish failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to publish shifts")
		return
	}
	if len(result.ShiftIDs) > 0 {
		h.recordLastAction(c, sessionID, models.ActionPublish, result.ShiftIDs)
		queueFlash(c, h.Sessions, sessionID, models.FlashSuccess,
			fmt.Sprintf("Published %d draft shift(s).", len(result.ShiftIDs)))
	}
	if len(result.Blocked) > 0 {
		queueFlash(c, h.Sessions, sessionID, models.FlashError,
			fmt.Sprintf("%d draft shift(s) were not published because assigned employees are unavailable.", len(result.Blocked)))
	}
	if len(result.ShiftIDs) == 0 && len(result.Blocked) == 0 {
		queueFlash(c, h.Sessions, sessionID, models.FlashInfo, "No draft shifts to publish.")
	}
	h.respondBack(c)
}

func (h *ScheduleHandler) deleteDrafts(c *gin.Context, sessionID, managerID string, q schedule.ViewQuery) {
	result, err := h.Schedule.DeleteDraftsInRange(managerID, q.Start, q.End)
	if err != nil {
		utils.GetLogger().Error("Bulk draft delete failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete drafts")
		return
	}
	if len(result.ShiftIDs) > 0 {
		h.recordLastAction(c, sessionID, models.ActionDelete, result.ShiftIDs)
		queueFlash(c, h.Sessions, sessionID, models.FlashSuccess,
			fmt.Sprintf("Deleted %d draft shift(s).", len(result.ShiftIDs)))
	} else {
		queueFlash(c, h.Sessions, sessionID, models.FlashInfo, "No draft shifts to delete.")
	}
	h.respondBack(c)
}

func (h *ScheduleHandler) selectionAction(c *gin.Context, sessionID, managerID, action string) {
	ids := schedule.NormalizeSelection(c.PostFormArray("shift_ids"))
	if len(ids) == 0 {
		queueFlash(c, h.Sessions, sessionID, models.FlashInfo, "No shifts selected.")
		h.respondBack(c)
		return
	}

	if action == "publish_selected" {
		result, err := h.Schedule.PublishSelected(managerID, ids)
		if err != nil {
			utils.GetLogger().Error("Selected publish failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to publish shifts")
			return
		}
		if len(result.ShiftIDs) > 0 {
			h.recordLastAction(c, sessionID, models.ActionPublish, result.ShiftIDs)
			queueFlash(c, h.Sessions, sessionID, models.FlashSuccess,
				fmt.Sprintf("Published %d selected shift(s).", len(result.ShiftIDs)))
		}
		if len(result.Blocked) > 0 {
			queueFlash(c, h.Sessions, sessionID, models.FlashError,
				fmt.Sprintf("%d selected shift(s) were not published because assigned employees are unavailable.", len(result.Blocked)))
		}
		if len(result.ShiftIDs) == 0 && len(result.Blocked) == 0 {
			queueFlash(c, h.Sessions, sessionID, models.FlashInfo, "No draft shifts selected to publish.")
		}
		h.respondBack(c)
		return
	}

	result, err := h.Schedule.DeleteSelected(managerID, ids)
	if err != nil {
		utils.GetLogger().Error("Selected delete failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete shifts")
		return
	}
	if len(result.ShiftIDs) > 0 {
		h.recordLastAction(c, sessionID, models.ActionDelete, result.ShiftIDs)
		queueFlash(c, h.Sessions, sessionID, models.FlashSuccess,
			fmt.Sprintf("Deleted %d selected shift(s).", len(result.ShiftIDs)))
	} else {
		queueFlash(c, h.Sessions, sessionID, models.FlashInfo, "No shifts deleted.")
	}
	h.respondBack(c)
}

// failShiftSave flashes the validation error, stashes the form state so
// the client reopens the modal with the user's input, and redirects back.
func (h *ScheduleHandler) failShiftSave(c *gin.Context, sessionID, mode, shiftID string, input schedule.ShiftInput, err error) {
	state := models.ShiftFormState{
		Mode:        mode,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		PositionID:  input.PositionID,
		Capacity:    input.Capacity,
		Publish:     input.Publish,
		EmployeeIDs: input.EmployeeIDs,
		ShiftID:     shiftID,
	}

	var fields utils.FieldErrors
	if errors.As(err, &fields) {
		state.ErrorField = fields.ErrorField()
		queueFlash(c, h.Sessions, sessionID, models.FlashError, fields.Error())
	} else {
		utils.GetLogger().Error("Shift save failed", zap.String("mode", mode), zap.Error(err))
		queueFlash(c, h.Sessions, sessionID, models.FlashError, fmt.Sprintf("Could not %s shift.", mode))
	}

	if err := h.Sessions.SetFormState(c.Request.Context(), sessionID, state); err != nil {
		utils.GetLogger().Warn("Failed to stash shift form state", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"ok": false, "redirect": redirectBack(c, managerShiftsPath)})
}

// finishShiftSave flashes success and redirects to a URL where the saved
// shift is visible.
func (h *ScheduleHandler) finishShiftSave(c *gin.Context, sessionID, managerID string, shift *models.Shift, message string) {
	queueFlash(c, h.Sessions, sessionID, models.FlashSuccess, message)
	lastURL, err := h.Sessions.LastScheduleURL(c.Request.Context(), managerID)
	if err != nil {
		utils.GetLogger().Warn("Failed to read last calendar URL", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "redirect": showShiftURL(c, lastURL, shift)})
}

// CreateShiftHandler handles POST /manager/shifts/create/.
func (h *ScheduleHandler) CreateShiftHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	sessionID := middleware.GetSessionID(c)

	input := readShiftInput(c)
	shift, err := h.Schedule.CreateShift(principal.UserID, input)
	if err != nil {
		h.failShiftSave(c, sessionID, "create", "", input, err)
		return
	}
	h.recordLastAction(c, sessionID, models.ActionCreate, []string{shift.ID})
	h.finishShiftSave(c, sessionID, principal.UserID, shift, "Shift created.")
}

// UpdateShiftHandler handles POST /manager/shifts/:id/update/.
func (h *ScheduleHandler) UpdateShiftHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	sessionID := middleware.GetSessionID(c)
	shiftID := c.Param("id")

	input := readShiftInput(c)
	shift, err := h.Schedule.UpdateShift(principal.UserID, shiftID, input)
	if errors.Is(err, schedule.ErrShiftNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Shift not found.")
		return
	}
	if err != nil {
		h.failShiftSave(c, sessionID, "update", shiftID, input, err)
		return
	}
	h.finishShiftSave(c, sessionID, principal.UserID, shift, "Shift updated.")
}

// DeleteShiftHandler handles POST /manager/shifts/:id/delete/.
func (h *ScheduleHandler) DeleteShiftHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	sessionID := middleware.GetSessionID(c)
	shiftID := c.Param("id")

	if _, err := h.Schedule.DeleteShift(principal.UserID, shiftID); err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Shift not found.")
			return
		}
		utils.GetLogger().Error("Shift delete failed", zap.String("shiftID", shiftID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete shift")
		return
	}
	h.recordLastAction(c, sessionID, models.ActionDelete, []string{shiftID})
	queueFlash(c, h.Sessions, sessionID, models.FlashSuccess, "Shift deleted.")
	h.respondBack(c)
}

// PublishShiftHandler handles POST /manager/shifts/:id/publish/. Blocked
// and already-published outcomes still redirect to the shift so the
// manager sees its current state.
func (h *ScheduleHandler) PublishShiftHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	sessionID := middleware.GetSessionID(c)
	shiftID := c.Param("id")

	shift, err := h.Schedule.PublishShift(principal.UserID, shiftID)
	switch {
	case errors.Is(err, schedule.ErrShiftNotFound):
		utils.JSONError(c, http.StatusNotFound, "Shift not found.")
		return
	case errors.Is(err, schedule.ErrAlreadyPublished):
		queueFlash(c, h.Sessions, sessionID, models.FlashInfo, "Shift is already published.")
	case errors.Is(err, schedule.ErrPublishBlocked):
		queueFlash(c, h.Sessions, sessionID, models.FlashError,
			"Cannot publish shift: one or more assigned employees are unavailable that day.")
	case err != nil:
		utils.GetLogger().Error("Shift publish failed", zap.String("shiftID", shiftID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to publish shift")
		return
	default:
		h.recordLastAction(c, sessionID, models.ActionPublish, []string{shiftID})
		queueFlash(c, h.Sessions, sessionID, models.FlashSuccess, "Shift published.")
	}

	lastURL, lastErr := h.Sessions.LastScheduleURL(c.Request.Context(), principal.UserID)
	if lastErr != nil {
		utils.GetLogger().Warn("Failed to read last calendar URL", zap.Error(lastErr))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "redirect": showShiftURL(c, lastURL, shift)})
}

// ShiftDetailsHandler handles GET /manager/shifts/:id/json/.
func (h *ScheduleHandler) ShiftDetailsHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	shiftID := c.Param("id")

	details, err := h.Schedule.ShiftDetails(principal.UserID, shiftID)
	if errors.Is(err, schedule.ErrShiftNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Shift not found.")
		return
	}
	if err != nil {
		utils.GetLogger().Error("Failed to load shift details", zap.String("shiftID", shiftID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load shift")
		return
	}
	c.JSON(http.StatusOK, details)
}

// UndoHandler handles POST /manager/shifts/undo/. The stored action is
// consumed even when it turns out stale.
func (h *ScheduleHandler) UndoHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	sessionID := middleware.GetSessionID(c)

	last, err := h.Sessions.PopLastAction(c.Request.Context(), sessionID)
	if err != nil {
		utils.GetLogger().Error("Failed to pop undo action", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to undo")
		return
	}
	if last == nil {
		queueFlash(c, h.Sessions, sessionID, models.FlashInfo, "Nothing to undo.")
		h.respondBack(c)
		return
	}

	result, err := h.Schedule.Undo(principal.UserID, *last)
	if err != nil {
		utils.GetLogger().Error("Undo failed", zap.String("action", last.Action), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to undo")
		return
	}

	switch {
	case result.Count == 0:
		queueFlash(c, h.Sessions, sessionID, models.FlashInfo, "Nothing to undo.")
	case result.Action == models.ActionCreate:
		queueFlash(c, h.Sessions, sessionID, models.FlashSuccess,
			fmt.Sprintf("Undid create (%d shift).", result.Count))
	case result.Action == models.ActionDelete:
		queueFlash(c, h.Sessions, sessionID, models.FlashSuccess,
			fmt.Sprintf("Restored %d shift(s).", result.Count))
	case result.Action == models.ActionPublish:
		queueFlash(c, h.Sessions, sessionID, models.FlashSuccess,
			fmt.Sprintf("Reverted %d shift(s) back to Draft.", result.Count))
	}
	h.respondBack(c)
}

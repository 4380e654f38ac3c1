// File: handlers/urls.go
package handlers

import (
	"net/url"
	"strings"

	"shiftflow/models"
	"shiftflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Paths handlers redirect to.
const (
	loginPath            = "/login/"
	managerShiftsPath    = "/manager/shifts/"
	managerEmployeesPath = "/manager/employees/"
	employeeShiftsPath   = "/employee/shifts/"
)

// sameHostPath validates a redirect target against open redirects.
// Relative paths pass through; absolute URLs must match the request host.
// Returns the path (with query) or "" when the target is unsafe.
func sameHostPath(c *gin.Context, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "" && parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	if parsed.Host != "" && parsed.Host != c.Request.Host {
		return ""
	}
	target := parsed.Path
	if !strings.HasPrefix(target, "/") {
		return ""
	}
	if parsed.RawQuery != "" {
		target += "?" + parsed.RawQuery
	}
	return target
}

// redirectBack picks the validated referer, falling back to the given
// path.
func redirectBack(c *gin.Context, fallback string) string {
	if ref := sameHostPath(c, c.Request.Referer()); ref != "" {
		return ref
	}
	return fallback
}

// showShiftURL builds a manager calendar URL guaranteed to display the
// given shift: jump to its date and relax any filter that would hide it.
// The base is the referer, then the last recorded calendar URL, then the
// bare calendar path.
func showShiftURL(c *gin.Context, lastURL string, shift *models.Shift) string {
	base := sameHostPath(c, c.Request.Referer())
	if base == "" {
		base = sameHostPath(c, lastURL)
	}
	if base == "" {
		base = managerShiftsPath
	}

	parsed, err := url.Parse(base)
	if err != nil || parsed.Path != managerShiftsPath {
		parsed = &url.URL{Path: managerShiftsPath}
	}

	qs := parsed.Query()

	// Always jump to the saved shift's date so it lands in the visible
	// period.
	qs.Set("date", shift.Date)

	status := strings.ToLower(qs.Get("status"))
	if (status == models.ShiftStatusDraft || status == models.ShiftStatusPublished) && status != shift.Status {
		qs.Del("status")
	}

	if strings.ToLower(qs.Get("show")) == "understaffed" {
		qs.Del("show")
	}

	var positions []string
	for _, p := range qs["positions"] {
		if strings.TrimSpace(p) != "" {
			positions = append(positions, p)
		}
	}
	if len(positions) > 0 {
		found := false
		for _, p := range positions {
			if p == shift.PositionID {
				found = true
				break
			}
		}
		if !found {
			positions = append(positions, shift.PositionID)
		}
		qs["positions"] = positions
	}

	parsed.RawQuery = qs.Encode()
	return parsed.String()
}

// queueFlash best-effort pushes a one-shot message for the next page
// load. Flash failures never fail the request.
func queueFlash(c *gin.Context, sessions *utils.SessionStore, sessionID, level, message string) {
	flash := models.Flash{Level: level, Message: message}
	if err := sessions.PushFlash(c.Request.Context(), sessionID, flash); err != nil {
		utils.GetLogger().Warn("Failed to queue flash", zap.String("message", message), zap.Error(err))
	}
}

package resolvers

import (
	"context"
	"net/url"
	"strings"
	"time"

	"shiftflow/models"
	"shiftflow/services/employee"
	"shiftflow/services/resource"
	"shiftflow/services/schedule"
	"shiftflow/utils"
)

// Resolver assembles typed page states from the domain services and the
// session's one-shot values (flashes, form state, credentials, undo).
type Resolver struct {
	Schedule  schedule.ScheduleService
	Resource  resource.ResourceService
	Employees employee.EmployeeService
	Sessions  *utils.SessionStore
}

// ManagerScheduleURLs maps client actions to endpoints. Templates carry a
// literal "/0/" segment the client substitutes the real id into.
func ManagerScheduleURLs() map[string]string {
	return map[string]string{
		"page":            "/manager/shifts/",
		"create_shift":    "/manager/shifts/create/",
		"update_shift":    "/manager/shifts/0/update/",
		"delete_shift":    "/manager/shifts/0/delete/",
		"publish_shift":   "/manager/shifts/0/publish/",
		"shift_details":   "/manager/shifts/0/json/",
		"undo":            "/manager/shifts/undo/",
		"positions":       "/manager/positions/json/",
		"create_position": "/manager/positions/create/",
		"update_position": "/manager/positions/0/update/",
		"delete_position": "/manager/positions/0/delete/",
		"templates":       "/manager/templates/json/",
		"create_template": "/manager/templates/create/",
		"update_template": "/manager/templates/0/update/",
		"delete_template": "/manager/templates/0/delete/",
	}
}

// EmployeeScheduleURLs are the endpoints reachable from the "my shifts"
// page.
func EmployeeScheduleURLs() map[string]string {
	return map[string]string{
		"page":           "/employee/shifts/",
		"unavailability": "/employee/unavailability/",
	}
}

// UnavailabilityURLs are the endpoints reachable from the availability
// calendar.
func UnavailabilityURLs() map[string]string {
	return map[string]string{
		"page":   "/employee/unavailability/",
		"toggle": "/employee/unavailability/toggle/",
		"shifts": "/employee/shifts/",
	}
}

// DirectoryURLs are the endpoints reachable from the employee directory.
func DirectoryURLs() map[string]string {
	return map[string]string{
		"page":           "/manager/employees/",
		"create":         "/manager/employees/",
		"details":        "/manager/employees/0/json/",
		"update":         "/manager/employees/0/update/",
		"reset_password": "/manager/employees/0/reset-password/",
		"delete":         "/manager/employees/0/delete/",
		"positions":      "/manager/positions/json/",
	}
}

func pageMeta(query schedule.ViewQuery, label string, today time.Time) models.PageMeta {
	return models.PageMeta{
		View:        query.View,
		Anchor:      query.Anchor.Format(utils.DateLayout),
		Start:       query.Start.Format(utils.DateLayout),
		End:         query.End.Format(utils.DateLayout),
		PeriodLabel: label,
		Today:       today.Format(utils.DateLayout),
	}
}

// ManagerSchedulePage builds the manager calendar page state, consuming
// the session's stashed form state and flash queue.
func (r *Resolver) ManagerSchedulePage(ctx context.Context, sessionID, managerID string, params url.Values, now time.Time) (*models.ManagerSchedulePage, error) {
	query := schedule.ResolveManagerQuery(params, now)

	shifts, err := r.Schedule.VisibleShifts(managerID, query)
	if err != nil {
		return nil, err
	}
	payloads, err := r.Schedule.ShiftPayloads(shifts, now)
	if err != nil {
		return nil, err
	}
	positions, err := r.Schedule.ActivePositions()
	if err != nil {
		return nil, err
	}
	options, err := r.Schedule.EmployeeOptions()
	if err != nil {
		return nil, err
	}

	islands := models.Islands{}
	if err := islands.Put(models.IslandShifts, payloads); err != nil {
		return nil, err
	}
	if err := islands.Put(models.IslandEmployees, options); err != nil {
		return nil, err
	}
	formState, err := r.Sessions.PopFormState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if formState != nil {
		if err := islands.Put(models.IslandShiftFormState, formState); err != nil {
			return nil, err
		}
	}

	lastAction, err := r.Sessions.PeekLastAction(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	flashes, err := r.Sessions.DrainFlashes(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	selected := query.PositionIDs
	if selected == nil {
		selected = []string{}
	}
	if positions == nil {
		positions = []models.Position{}
	}

	return &models.ManagerSchedulePage{
		PageMeta:          pageMeta(query, schedule.PeriodLabel(query.View, query.Anchor, query.Start, query.End), now),
		Positions:         positions,
		SelectedPositions: selected,
		Status:            query.Status,
		Understaffed:      query.Understaffed,
		CanUndo:           lastAction != nil,
		Calendar:          BuildCalendar(query, shifts, now, nil),
		Islands:           islands,
		Flashes:           flashes,
		URLs:              ManagerScheduleURLs(),
	}, nil
}

// EmployeeSchedulePage builds the "my shifts" page state.
func (r *Resolver) EmployeeSchedulePage(ctx context.Context, sessionID, employeeID string, params url.Values, now time.Time) (*models.EmployeeSchedulePage, error) {
	query := schedule.ResolveEmployeeQuery(params, now)

	shifts, err := r.Schedule.AssignedShifts(employeeID, query)
	if err != nil {
		return nil, err
	}
	payloads, err := r.Schedule.EmployeeShiftPayloads(shifts, now)
	if err != nil {
		return nil, err
	}
	upcoming, err := r.Schedule.UpcomingShifts(shifts, now)
	if err != nil {
		return nil, err
	}

	islands := models.Islands{}
	if err := islands.Put(models.IslandShifts, payloads); err != nil {
		return nil, err
	}
	flashes, err := r.Sessions.DrainFlashes(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	label := schedule.PeriodLabel(query.View, query.Anchor, query.Start, query.End)
	if query.View == models.ViewWeek {
		label = schedule.EmployeeWeekLabel(query.Start, query.End)
	}

	return &models.EmployeeSchedulePage{
		PageMeta: pageMeta(query, label, now),
		Calendar: BuildCalendar(query, shifts, now, nil),
		Upcoming: upcoming,
		Islands:  islands,
		Flashes:  flashes,
		URLs:     EmployeeScheduleURLs(),
	}, nil
}

// UnavailabilityPage builds the availability calendar page state. Month
// view only.
func (r *Resolver) UnavailabilityPage(ctx context.Context, sessionID, employeeID string, params url.Values, now time.Time) (*models.UnavailabilityPage, error) {
	anchor := schedule.ParseAnchor(params.Get("date"), now)
	start, end := schedule.MonthBounds(anchor)
	query := schedule.ViewQuery{View: models.ViewMonth, Anchor: anchor, Start: start, End: end}

	dates, err := r.Schedule.UnavailableDates(employeeID, start, end)
	if err != nil {
		return nil, err
	}
	if dates == nil {
		dates = []string{}
	}
	unavailable := make(map[string]bool, len(dates))
	for _, d := range dates {
		unavailable[d] = true
	}

	islands := models.Islands{}
	if err := islands.Put(models.IslandUnavailableDays, dates); err != nil {
		return nil, err
	}
	flashes, err := r.Sessions.DrainFlashes(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.UnavailabilityPage{
		PageMeta: pageMeta(query, schedule.PeriodLabel(models.ViewMonth, anchor, start, end), now),
		Calendar: BuildCalendar(query, nil, now, unavailable),
		Islands:  islands,
		Flashes:  flashes,
		URLs:     UnavailabilityURLs(),
	}, nil
}

// EmployeeDirectoryPage builds the manager's employee administration page
// state, consuming any stashed one-time credentials.
func (r *Resolver) EmployeeDirectoryPage(ctx context.Context, sessionID string, params url.Values) (*models.EmployeeDirectoryPage, error) {
	query := strings.TrimSpace(params.Get("q"))
	positionFilter := strings.TrimSpace(params.Get("position"))

	employees, err := r.Employees.Directory(query, positionFilter)
	if err != nil {
		return nil, err
	}
	positions, err := r.Resource.ListPositions()
	if err != nil {
		return nil, err
	}
	if positions == nil {
		positions = []models.Position{}
	}

	islands := models.Islands{}
	creds, err := r.Sessions.PopOneTimeCredentials(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if creds != nil {
		if err := islands.Put(models.IslandOneTimeCredentials, creds); err != nil {
			return nil, err
		}
	}
	flashes, err := r.Sessions.DrainFlashes(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.EmployeeDirectoryPage{
		Query:          query,
		PositionFilter: positionFilter,
		Positions:      positions,
		Employees:      employees,
		Islands:        islands,
		Flashes:        flashes,
		URLs:           DirectoryURLs(),
	}, nil
}

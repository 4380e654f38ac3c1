package schedule

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"shiftflow/models"
	"shiftflow/utils"
)

// ViewQuery is the resolved calendar navigation state for one page load.
// Start and End are inclusive date bounds derived from View and Anchor.
type ViewQuery struct {
	View         string
	Anchor       time.Time
	Start        time.Time
	End          time.Time
	PositionIDs  []string
	Status       string
	Understaffed bool
}

// DateOf truncates an instant to midnight in its own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MondayOf returns the Monday of the week containing the given date.
func MondayOf(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return DateOf(day).AddDate(0, 0, -offset)
}

// WeekBounds returns the Monday and Sunday of the anchor's week.
func WeekBounds(anchor time.Time) (time.Time, time.Time) {
	start := MondayOf(anchor)
	return start, start.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last day of the anchor's month.
func MonthBounds(anchor time.Time) (time.Time, time.Time) {
	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}

// PeriodBounds returns the inclusive date range a view shows around its
// anchor.
func PeriodBounds(view string, anchor time.Time) (time.Time, time.Time) {
	switch view {
	case models.ViewDay:
		day := DateOf(anchor)
		return day, day
	case models.ViewMonth:
		return MonthBounds(anchor)
	default:
		return WeekBounds(anchor)
	}
}

// PeriodLabel formats the manager calendar heading, e.g. "Mon • 05. Aug",
// "05. - 11. Aug", "29. Jul - 04. Aug", or "August 2025".
func PeriodLabel(view string, anchor, start, end time.Time) string {
	switch view {
	case models.ViewDay:
		return anchor.Format("Mon") + " • " + anchor.Format("02. Jan")
	case models.ViewMonth:
		return anchor.Format("January 2006")
	default:
		if start.Month() == end.Month() && start.Year() == end.Year() {
			return start.Format("02.") + " - " + end.Format("02. Jan")
		}
		return start.Format("02. Jan") + " - " + end.Format("02. Jan")
	}
}

// EmployeeWeekLabel formats the employee week heading with unpadded days,
// e.g. "August 5–11" or "July 29–August 4".
func EmployeeWeekLabel(start, end time.Time) string {
	if start.Month() == end.Month() && start.Year() == end.Year() {
		return fmt.Sprintf("%s %d–%d", start.Format("January"), start.Day(), end.Day())
	}
	return fmt.Sprintf("%s %d–%s %d",
		start.Format("January"), start.Day(),
		end.Format("January"), end.Day())
}

// ParseAnchor resolves the "date" query parameter, falling back to today on
// empty or invalid input.
func ParseAnchor(raw string, today time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DateOf(today)
	}
	parsed, err := time.ParseInLocation(utils.DateLayout, raw, today.Location())
	if err != nil {
		return DateOf(today)
	}
	return parsed
}

func cleanIDList(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	var ids []string
	for _, id := range raw {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// ResolveManagerQuery reads the manager calendar's navigation parameters.
// Unknown views fall back to week; unknown statuses are ignored.
func ResolveManagerQuery(params url.Values, today time.Time) ViewQuery {
	view := strings.ToLower(params.Get("view"))
	if view != models.ViewDay && view != models.ViewMonth {
		view = models.ViewWeek
	}
	anchor := ParseAnchor(params.Get("date"), today)
	start, end := PeriodBounds(view, anchor)

	status := strings.ToLower(params.Get("status"))
	if status != models.ShiftStatusDraft && status != models.ShiftStatusPublished {
		status = ""
	}

	return ViewQuery{
		View:         view,
		Anchor:       anchor,
		Start:        start,
		End:          end,
		PositionIDs:  cleanIDList(params["positions"]),
		Status:       status,
		Understaffed: strings.ToLower(params.Get("show")) == "understaffed",
	}
}

// ResolveEmployeeQuery reads the employee calendar's navigation parameters.
// Only week and month views exist there; month is the default.
func ResolveEmployeeQuery(params url.Values, today time.Time) ViewQuery {
	view := strings.ToLower(params.Get("view"))
	if view != models.ViewWeek {
		view = models.ViewMonth
	}
	anchor := ParseAnchor(params.Get("date"), today)
	start, end := PeriodBounds(view, anchor)

	return ViewQuery{
		View:   view,
		Anchor: anchor,
		Start:  start,
		End:    end,
	}
}

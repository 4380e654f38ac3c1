package models

import "shiftflow/layout"

// Calendar view names carried in the "view" query parameter.
const (
	ViewDay   = "day"
	ViewWeek  = "week"
	ViewMonth = "month"
)

// ShiftChip is one laid-out calendar entry: a shift reference plus the
// lane assignment and pixel box computed for the current view. Chips in
// the same day bucket never overlap visually; display data comes from the
// shift island keyed by ShiftID.
type ShiftChip struct {
	ShiftID   string     `json:"shift_id"`
	StartTime string     `json:"start_time"`
	EndTime   string     `json:"end_time"`
	Lane      int        `json:"lane"`
	LaneCount int        `json:"lane_count"`
	Box       layout.Box `json:"box"`
}

// DayColumn is one day's laid-out chips. Week views render seven vertical
// columns; the day view renders a single horizontal timeline.
type DayColumn struct {
	Date      string      `json:"date"`
	Today     bool        `json:"today"`
	LaneCount int         `json:"lane_count"`
	Chips     []ShiftChip `json:"chips"`
}

// MonthCell is one cell of the month grid. Chips are capped; Overflow
// counts the hidden remainder. Cells outside the anchor month still render
// (grids are whole Monday-started weeks).
type MonthCell struct {
	Date        string   `json:"date"`
	InMonth     bool     `json:"in_month"`
	Today       bool     `json:"today"`
	ShiftIDs    []string `json:"shift_ids"`
	Overflow    int      `json:"overflow"`
	Unavailable bool     `json:"unavailable,omitempty"`
}

// Calendar is the view-specific layout for a page. Exactly one of Day,
// Week, or Weeks is populated, matching View.
type Calendar struct {
	View  string        `json:"view"`
	Day   *DayColumn    `json:"day,omitempty"`
	Week  []DayColumn   `json:"week,omitempty"`
	Weeks [][]MonthCell `json:"weeks,omitempty"`
}

// EmployeeShiftPayload is the "my shifts" island entry.
type EmployeeShiftPayload struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Position  string `json:"position"`
	IsPast    bool   `json:"is_past"`
}

// UpcomingShift is a sidebar entry with the shift length in hours.
type UpcomingShift struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Position  string  `json:"position"`
	Hours     float64 `json:"hours"`
}

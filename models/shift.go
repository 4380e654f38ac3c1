package models

import (
	"time"

	"shiftflow/layout"
)

// Shift workflow states. Drafts are only visible to the manager who
// created them; published shifts appear on employee calendars.
const (
	ShiftStatusDraft     = "draft"
	ShiftStatusPublished = "published"
)

// Shift is a scheduled block of work for one position on one date.
// Assignments are embedded as employee ids; capacity caps their count.
// Deleting is soft (is_deleted) so the one-shot undo can restore.
type Shift struct {
	ID                  string    `bson:"id" json:"id"`
	Date                string    `bson:"date" json:"date"`             // "2006-01-02"
	StartTime           string    `bson:"start_time" json:"start_time"` // "15:04"
	EndTime             string    `bson:"end_time" json:"end_time"`
	PositionID          string    `bson:"position_id" json:"position_id"`
	Capacity            int       `bson:"capacity" json:"capacity"`
	Status              string    `bson:"status" json:"status"`
	IsDeleted           bool      `bson:"is_deleted" json:"-"`
	AssignedEmployeeIDs []string  `bson:"assigned_employee_ids" json:"assigned_employee_ids"`
	CreatedBy           string    `bson:"created_by" json:"created_by"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updated_at"`
}

// StartMinutes returns the start time as minutes from midnight.
func (s Shift) StartMinutes() int { return layout.ClockMinutes(s.StartTime) }

// EndMinutes returns the end time as minutes from midnight.
func (s Shift) EndMinutes() int { return layout.ClockMinutes(s.EndTime) }

// IsPast reports whether the shift has already ended at the given instant.
func (s Shift) IsPast(now time.Time) bool {
	day, err := time.ParseInLocation("2006-01-02", s.Date, now.Location())
	if err != nil {
		return false
	}
	end := day.Add(time.Duration(s.EndMinutes()) * time.Minute)
	return end.Before(now)
}

// ShiftPayload is the calendar list item bootstrapped to the client.
type ShiftPayload struct {
	ID                  string   `json:"id"`
	Date                string   `json:"date"`
	StartTime           string   `json:"start_time"`
	EndTime             string   `json:"end_time"`
	Position            string   `json:"position"`
	PositionID          string   `json:"position_id"`
	Capacity            int      `json:"capacity"`
	AssignedCount       int      `json:"assigned_count"`
	AssignedEmployeeIDs []string `json:"assigned_employee_ids"`
	Status              string   `json:"status"`
	IsPast              bool     `json:"is_past"`
}

// AssignedEmployee is one row of a shift detail's assignee list.
type AssignedEmployee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"`
}

// ShiftDetails is the full payload behind the shift popup.
type ShiftDetails struct {
	ID            string             `json:"id"`
	Date          string             `json:"date"`
	StartTime     string             `json:"start_time"`
	EndTime       string             `json:"end_time"`
	PositionID    string             `json:"position_id"`
	Position      string             `json:"position"`
	Status        string             `json:"status"`
	Capacity      int                `json:"capacity"`
	AssignedCount int                `json:"assigned_count"`
	Assigned      []AssignedEmployee `json:"assigned_employees"`
	CreatedBy     string             `json:"created_by"`
	UpdatedAt     string             `json:"updated_at"`
}

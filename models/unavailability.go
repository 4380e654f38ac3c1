package models

import "time"

// Unavailability marks one date an employee cannot work. One record per
// (employee, date); toggling availability creates or removes the record.
// Unavailable employees cannot be assigned, and shifts with an assigned
// employee unavailable on the shift date are blocked from publishing.
type Unavailability struct {
	ID         string    `bson:"id" json:"id"`
	EmployeeID string    `bson:"employee_id" json:"employee_id"`
	Date       string    `bson:"date" json:"date"` // "2006-01-02"
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

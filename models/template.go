package models

import "time"

// ShiftTemplate is a per-manager quick-fill preset for the shift form.
// Names are unique per creator.
type ShiftTemplate struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	PositionID string    `bson:"position_id" json:"position_id"`
	StartTime  string    `bson:"start_time" json:"start_time"`
	EndTime    string    `bson:"end_time" json:"end_time"`
	Capacity   int       `bson:"capacity" json:"capacity"`
	CreatedBy  string    `bson:"created_by" json:"-"`
	CreatedAt  time.Time `bson:"created_at" json:"-"`
	UpdatedAt  time.Time `bson:"updated_at" json:"-"`
}

// TemplatePayload is the template list entry for the manager UI.
type TemplatePayload struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PositionID string `json:"position_id"`
	Position   string `json:"position"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Capacity   int    `json:"capacity"`
}

package models

// MaxPositionNameLen bounds position names so calendar chips stay readable.
const MaxPositionNameLen = 25

// Position is a job role employees hold and shifts require.
// Deactivation hides a position from pickers without breaking the shifts
// and employees that reference it.
type Position struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	IsActive bool   `bson:"is_active" json:"is_active"`
}

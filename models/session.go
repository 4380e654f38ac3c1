package models

// Flash levels. Error toasts are styled distinctly and shown longer.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash is a one-shot message queued in the session and drained into the
// next page state as a toast.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Undoable action kinds recorded in the session.
const (
	ActionCreate  = "create"
	ActionDelete  = "delete"
	ActionPublish = "publish"
)

// LastAction is the single-step undo record. It is consumed on use; there
// is no history and no redo.
type LastAction struct {
	Action   string   `json:"action"`
	ShiftIDs []string `json:"shift_ids"`
}

// ShiftFormState round-trips a failed shift submit back into the form.
// Raw strings preserve exactly what the user typed; ErrorField tells the
// client which input to highlight.
type ShiftFormState struct {
	Mode        string   `json:"mode"` // "create" or "update"
	Date        string   `json:"date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	PositionID  string   `json:"position_id"`
	Capacity    string   `json:"capacity"`
	Publish     bool     `json:"publish"`
	EmployeeIDs []string `json:"employee_ids"`
	ShiftID     string   `json:"shift_id,omitempty"`
	ErrorField  string   `json:"error_field,omitempty"`
}

// ReminderPayload is the asynq task body for a scheduled shift reminder.
// The worker re-validates the shift and assignment at fire time.
type ReminderPayload struct {
	ShiftID    string `json:"shift_id"`
	EmployeeID string `json:"employee_id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fire_date"`
}

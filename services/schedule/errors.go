package schedule

import "errors"

// Flow errors handlers branch on. Validation failures travel separately as
// utils.FieldErrors.
var (
	// ErrShiftNotFound means the shift does not exist, is deleted, or
	// belongs to another manager.
	ErrShiftNotFound = errors.New("shift not found")
	// ErrAlreadyPublished means a single publish hit a published shift.
	ErrAlreadyPublished = errors.New("shift is already published")
	// ErrPublishBlocked means an assigned employee is unavailable on the
	// shift date.
	ErrPublishBlocked = errors.New("assigned employee unavailable on shift date")
)

package resource

import "errors"

var (
	// ErrPositionNotFound means the position id matches nothing.
	ErrPositionNotFound = errors.New("position not found")
	// ErrTemplateNotFound means the template id matches nothing owned by
	// the manager.
	ErrTemplateNotFound = errors.New("template not found")
)

// ProtectedError blocks a delete because other records still reference the
// target. Message is user-facing.
type ProtectedError struct {
	Message string
}

func (e *ProtectedError) Error() string {
	return e.Message
}

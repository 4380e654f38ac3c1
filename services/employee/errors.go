package employee

import "errors"

var (
	// ErrInvalidLogin is returned for any failed credential check.
	ErrInvalidLogin = errors.New("invalid login")

	// ErrEmployeeNotFound is returned when the id does not belong to an
	// employee account.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDemoDisabled is returned when demo logins are switched off.
	ErrDemoDisabled = errors.New("demo login is disabled")

	// ErrUnknownDemoRole is returned for demo roles other than manager or
	// employee.
	ErrUnknownDemoRole = errors.New("unknown demo role")
)

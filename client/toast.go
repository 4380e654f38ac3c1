package client

import (
	"errors"
	"time"

	"shiftflow/models"
)

// Toast display durations. Errors stay on screen longer.
const (
	ToastDuration      = 3 * time.Second
	ToastErrorDuration = 5 * time.Second
)

// Toast is a transient notification. Failures are surfaced this way; none
// of them are fatal to the client state.
type Toast struct {
	Level    string
	Message  string
	Duration time.Duration
}

// NewToast builds a toast with the duration for its level.
func NewToast(level, message string) Toast {
	d := ToastDuration
	if level == models.FlashError {
		d = ToastErrorDuration
	}
	return Toast{Level: level, Message: message, Duration: d}
}

// ErrorToast wraps a call failure. API errors keep their server message.
func ErrorToast(err error) Toast {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return NewToast(models.FlashError, apiErr.Error())
	}
	return NewToast(models.FlashError, err.Error())
}

// FlashToasts converts a page's drained flash messages into toasts.
func FlashToasts(flashes []models.Flash) []Toast {
	toasts := make([]Toast, 0, len(flashes))
	for _, f := range flashes {
		toasts = append(toasts, NewToast(f.Level, f.Message))
	}
	return toasts
}

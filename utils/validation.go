package utils

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors collects validation messages keyed by form field. It renders
// on the wire as {"errors": {"field": ["msg", ...]}} and implements error
// so services can return it directly.
type FieldErrors map[string][]string

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	var parts []string
	for _, field := range fe.fieldsInOrder() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(fe[field], "; ")))
	}
	return strings.Join(parts, ", ")
}

// Add appends a message for a field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// FieldError builds a single-field error.
func FieldError(field, message string) FieldErrors {
	return FieldErrors{field: {message}}
}

// errorFieldOrder is the precedence used to pick which input the form
// highlights when several fields fail at once.
var errorFieldOrder = []string{
	"capacity", "employee_ids", "position_id", "position",
	"date", "start_time", "end_time", "name",
	"full_name", "email", "phone",
}

// First returns the highest-precedence failing field and its first
// message, for clients that surface a single error at a time.
func (fe FieldErrors) First() (field, message string) {
	for _, f := range errorFieldOrder {
		if msgs := fe[f]; len(msgs) > 0 {
			return f, msgs[0]
		}
	}
	for _, f := range fe.fieldsInOrder() {
		return f, fe[f][0]
	}
	return "", ""
}

// ErrorField names the form input the client should highlight for the
// first failing field. Position lookups report under "position" but
// highlight the "position_id" input.
func (fe FieldErrors) ErrorField() string {
	field, _ := fe.First()
	if field == "position" {
		return "position_id"
	}
	return field
}

func (fe FieldErrors) fieldsInOrder() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

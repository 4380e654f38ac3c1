package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

// APIError is a non-2xx JSON response. Message is the first available
// message from the body; field-level validation errors are preserved in
// Fields.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed: %s", http.StatusText(e.Status))
}

// FieldMessages returns the messages recorded for one form field.
func (e *APIError) FieldMessages(field string) []string {
	return e.Fields[field]
}

// errorBody covers both wire shapes: {error: string} and
// {errors: {field: [string | {message: string}, ...]}}.
type errorBody struct {
	Error  string                       `json:"error"`
	Errors map[string][]json.RawMessage `json:"errors"`
}

// parseAPIError builds an *APIError from a non-2xx response body. Bodies
// that are not JSON in a known shape still produce a usable error.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}
	if parsed.Error != "" {
		apiErr.Message = parsed.Error
		return apiErr
	}
	if len(parsed.Errors) == 0 {
		return apiErr
	}

	apiErr.Fields = make(map[string][]string, len(parsed.Errors))
	fields := make([]string, 0, len(parsed.Errors))
	for field, items := range parsed.Errors {
		fields = append(fields, field)
		for _, item := range items {
			if msg := errorItemMessage(item); msg != "" {
				apiErr.Fields[field] = append(apiErr.Fields[field], msg)
			}
		}
	}

	// First available message, by field name for determinism.
	sort.Strings(fields)
	for _, field := range fields {
		if msgs := apiErr.Fields[field]; len(msgs) > 0 {
			apiErr.Message = msgs[0]
			break
		}
	}
	return apiErr
}

// errorItemMessage extracts one message from a field-error entry, which
// is either a bare string or {message: string}.
func errorItemMessage(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Message
	}
	return ""
}

func decodeJSON(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("client: failed to decode response: %w", err)
	}
	return nil
}

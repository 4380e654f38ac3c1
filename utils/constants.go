// File: utils/constants.go
package utils

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for shift clock times.
const TimeLayout = "15:04"

// CSRFTokenLength is the length of generated CSRF cookie values.
const CSRFTokenLength = 32

package layout

import "fmt"

// ClockMinutes parses an "HH:MM" clock string into minutes from midnight.
// Any malformed value yields 0 rather than an error; strict validation of
// user input happens before times reach the layout path.
func ClockMinutes(clock string) int {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0
	}
	if h < 0 || m < 0 || m > 59 {
		return 0
	}
	return h*60 + m
}

// FormatMinutes renders minutes from midnight as an "HH:MM" clock string.
func FormatMinutes(min int) string {
	if min < 0 {
		min = 0
	}
	return fmt.Sprintf("%02d:%02d", (min/60)%24, min%60)
}

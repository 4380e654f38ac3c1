package client

import "strings"

// Entry-point paths. Every other endpoint is reached through the URL
// templates a loaded page carries.
const (
	LoginPath            = "/login/"
	LogoutPath           = "/logout/"
	HomePath             = "/"
	ProfilePath          = "/profile/"
	DevicePath           = "/profile/device/"
	AvatarPath           = "/profile/avatar/"
	ManagerShiftsPath    = "/manager/shifts/"
	EmployeeShiftsPath   = "/employee/shifts/"
	UnavailabilityPath   = "/employee/unavailability/"
	ManagerEmployeesPath = "/manager/employees/"
)

// ResourceURL substitutes id for the literal "/0/" placeholder segment in
// a server-provided URL template.
func ResourceURL(template, id string) string {
	return strings.Replace(template, "/0/", "/"+id+"/", 1)
}

// demoLoginPath builds the demo login URL for a role.
func demoLoginPath(role string) string {
	return LoginPath + "demo/" + role + "/"
}

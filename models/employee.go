package models

import (
	"strings"
	"time"
)

// Account roles.
const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Employee is a user account. Managers run the schedule; employees are
// assignable to shifts and manage their own availability. Email doubles as
// the login name; EmployeeID is the human-facing badge number.
type Employee struct {
	ID           string    `bson:"id" json:"id"`
	Role         string    `bson:"role" json:"role"`
	EmployeeID   string    `bson:"employee_id" json:"employee_id"`
	FirstName    string    `bson:"first_name" json:"first_name"`
	LastName     string    `bson:"last_name" json:"last_name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	PositionID   string    `bson:"position_id,omitempty" json:"position_id,omitempty"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	AvatarURL    string    `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName joins first and last name, trimming when either is empty.
func (e Employee) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(e.FirstName) + " " + strings.TrimSpace(e.LastName))
}

// DisplayName is the full name, falling back to the login email.
func (e Employee) DisplayName() string {
	if name := e.FullName(); name != "" {
		return name
	}
	return e.Email
}

func (e Employee) IsManager() bool  { return e.Role == RoleManager }
func (e Employee) IsEmployee() bool { return e.Role == RoleEmployee }

// EmployeeOption is the picker entry bootstrapped to the client for
// assignment dropdowns.
type EmployeeOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PositionID string `json:"position_id"`
	Position   string `json:"position"`
}

// EmployeeDetails backs the edit form in the employee directory.
type EmployeeDetails struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PositionID string `json:"position_id"`
	Position   string `json:"position"`
}

// EmployeeSummary is the directory row returned after an update.
type EmployeeSummary struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PositionID string `json:"position_id"`
	Position   string `json:"position"`
}

// OneTimeCredentials is shown to the manager exactly once after creating
// an employee or resetting a password.
type OneTimeCredentials struct {
	Login             string `json:"login"`
	TemporaryPassword string `json:"temporary_password"`
	EmployeeID        string `json:"employee_id"`
}

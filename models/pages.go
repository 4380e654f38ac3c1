package models

import "encoding/json"

// Island ids. The client decodes each blob once per page load and falls
// back to a default on malformed data.
const (
	IslandShifts             = "shifts-data"
	IslandEmployees          = "employees-data"
	IslandShiftFormState     = "shift-form-state"
	IslandUnavailableDays    = "unavailable-days"
	IslandOneTimeCredentials = "one-time-credentials"
)

// Islands are the bootstrapped JSON blobs of a page state, keyed by id.
type Islands map[string]json.RawMessage

// Put marshals v under the given island id.
func (is Islands) Put(id string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	is[id] = raw
	return nil
}

// PageMeta is the navigation state shared by calendar pages. Dates are
// "2006-01-02" strings; the anchor resolves invalid input to today.
type PageMeta struct {
	View        string `json:"view"`
	Anchor      string `json:"anchor"`
	Start       string `json:"start"`
	End         string `json:"end"`
	PeriodLabel string `json:"period_label"`
	Today       string `json:"today"`
}

// ManagerSchedulePage is the manager calendar page state.
type ManagerSchedulePage struct {
	PageMeta
	Positions         []Position        `json:"positions"`
	SelectedPositions []string          `json:"selected_positions"`
	Status            string            `json:"status"`
	Understaffed      bool              `json:"understaffed"`
	CanUndo           bool              `json:"can_undo"`
	Calendar          Calendar          `json:"calendar"`
	Islands           Islands           `json:"islands"`
	Flashes           []Flash           `json:"flashes"`
	URLs              map[string]string `json:"urls"`
}

// EmployeeSchedulePage is the employee "my shifts" page state.
type EmployeeSchedulePage struct {
	PageMeta
	Calendar Calendar          `json:"calendar"`
	Upcoming []UpcomingShift   `json:"upcoming"`
	Islands  Islands           `json:"islands"`
	Flashes  []Flash           `json:"flashes"`
	URLs     map[string]string `json:"urls"`
}

// UnavailabilityPage is the employee availability calendar page state.
// Month view only.
type UnavailabilityPage struct {
	PageMeta
	Calendar Calendar          `json:"calendar"`
	Islands  Islands           `json:"islands"`
	Flashes  []Flash           `json:"flashes"`
	URLs     map[string]string `json:"urls"`
}

// EmployeeDirectoryPage is the manager's employee administration page.
type EmployeeDirectoryPage struct {
	Query          string            `json:"q"`
	PositionFilter string            `json:"position"`
	Positions      []Position        `json:"positions"`
	Employees      []EmployeeSummary `json:"employees"`
	Islands        Islands           `json:"islands"`
	Flashes        []Flash           `json:"flashes"`
	URLs           map[string]string `json:"urls"`
}

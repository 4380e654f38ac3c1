package client

import (
	"sort"

	"shiftflow/models"
)

// AppState is the manager calendar's in-memory snapshot: the shifts and
// employees bootstrapped by the last page load, the bulk-selection set,
// and the highlighted shift. It is owned by the caller and mutated only
// through methods; loading a page replaces the snapshot wholesale, so
// stale selection or highlight state never survives a navigation.
//
// Not safe for concurrent use.
type AppState struct {
	events *Events

	shifts     []models.ShiftPayload
	shiftsByID map[string]models.ShiftPayload
	employees  []models.EmployeeOption
	formState  *models.ShiftFormState

	selection map[string]struct{}
	highlight string
}

// NewAppState creates an empty state publishing to events. A nil bus is
// valid; signals are then dropped.
func NewAppState(events *Events) *AppState {
	return &AppState{
		events:     events,
		shiftsByID: map[string]models.ShiftPayload{},
		selection:  map[string]struct{}{},
	}
}

// LoadManagerPage replaces the snapshot from a loaded manager page.
// Selection and highlight reset; malformed islands fall back to empty.
func (s *AppState) LoadManagerPage(page *models.ManagerSchedulePage) {
	if page == nil {
		return
	}
	s.shifts = Island(page.Islands, models.IslandShifts, []models.ShiftPayload{})
	s.employees = Island(page.Islands, models.IslandEmployees, []models.EmployeeOption{})
	s.formState = Island[*models.ShiftFormState](page.Islands, models.IslandShiftFormState, nil)

	s.shiftsByID = make(map[string]models.ShiftPayload, len(s.shifts))
	for _, shift := range s.shifts {
		s.shiftsByID[shift.ID] = shift
	}
	s.selection = map[string]struct{}{}
	s.highlight = ""

	s.events.EmitStateReloaded(StateReloaded{View: page.View})
}

// Shifts returns the current snapshot in server order.
func (s *AppState) Shifts() []models.ShiftPayload { return s.shifts }

// Shift looks up one shift from the snapshot.
func (s *AppState) Shift(id string) (models.ShiftPayload, bool) {
	shift, ok := s.shiftsByID[id]
	return shift, ok
}

// Employees returns the picker options in server order.
func (s *AppState) Employees() []models.EmployeeOption { return s.employees }

// FormState returns the round-tripped form state of a failed save, or
// nil.
func (s *AppState) FormState() *models.ShiftFormState { return s.formState }

// SetHighlight marks one shift as highlighted.
func (s *AppState) SetHighlight(id string) { s.highlight = id }

// ClearHighlight removes the highlight.
func (s *AppState) ClearHighlight() { s.highlight = "" }

// Highlight returns the highlighted shift id, or empty.
func (s *AppState) Highlight() string { return s.highlight }

// IsSelected reports whether a shift is in the bulk-selection set.
func (s *AppState) IsSelected(id string) bool {
	_, ok := s.selection[id]
	return ok
}

// Selected returns the selection as a sorted id list.
func (s *AppState) Selected() []string {
	ids := make([]string, 0, len(s.selection))
	for id := range s.selection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ToggleSelection flips one shift's membership and reports the new state.
func (s *AppState) ToggleSelection(id string) bool {
	if _, ok := s.selection[id]; ok {
		delete(s.selection, id)
		s.emitSelection()
		return false
	}
	s.selection[id] = struct{}{}
	s.emitSelection()
	return true
}

// SetSelection replaces the selection set.
func (s *AppState) SetSelection(ids []string) {
	s.selection = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			s.selection[id] = struct{}{}
		}
	}
	s.emitSelection()
}

// ClearSelection empties the selection set.
func (s *AppState) ClearSelection() {
	if len(s.selection) == 0 {
		return
	}
	s.selection = map[string]struct{}{}
	s.emitSelection()
}

func (s *AppState) emitSelection() {
	s.events.EmitSelectionChanged(SelectionChanged{ShiftIDs: s.Selected()})
}

// PickerBuckets splits the employee picker for a shift's position:
// employees holding that position first, everyone else after. Server
// ordering is preserved within each bucket.
type PickerBuckets struct {
	Matching []models.EmployeeOption
	Others   []models.EmployeeOption
}

// EmployeePicker buckets the employee options against a position.
func (s *AppState) EmployeePicker(positionID string) PickerBuckets {
	var buckets PickerBuckets
	for _, option := range s.employees {
		if positionID != "" && option.PositionID == positionID {
			buckets.Matching = append(buckets.Matching, option)
		} else {
			buckets.Others = append(buckets.Others, option)
		}
	}
	return buckets
}

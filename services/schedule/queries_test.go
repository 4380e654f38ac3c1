package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftflow/models"
	"shiftflow/services/schedule"
)

func TestVisibleShifts(t *testing.T) {
	f := newFixture()
	seedRoster(f)
	f.addShift(models.Shift{
		ID: "s2", Date: "2025-08-12", StartTime: "13:00", EndTime: "17:00",
		PositionID: "p1", Capacity: 2, AssignedEmployeeIDs: []string{"e1"},
	})
	f.addShift(models.Shift{
		ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "12:00",
		PositionID: "p2", Capacity: 1, AssignedEmployeeIDs: []string{"e3"},
		Status: models.ShiftStatusPublished,
	})
	f.addShift(models.Shift{
		ID: "s3", Date: "2025-08-20", StartTime: "09:00", EndTime: "12:00",
		PositionID: "p1", Capacity: 1,
	})
	f.addShift(models.Shift{
		ID: "s4", Date: "2025-08-12", StartTime: "10:00", EndTime: "12:00",
		PositionID: "p1", Capacity: 1, CreatedBy: "mgr-2",
	})

	baseQuery := schedule.ViewQuery{
		Start: date(2025, time.August, 11),
		End:   date(2025, time.August, 17),
	}

	t.Run("RangeAndOrdering", func(t *testing.T) {
		shifts, err := f.svc.VisibleShifts(managerID, baseQuery)
		require.NoError(t, err)
		require.Len(t, shifts, 2)
		// Date, then start time, then id.
		assert.Equal(t, "s1", shifts[0].ID)
		assert.Equal(t, "s2", shifts[1].ID)
	})

	t.Run("PositionFilter", func(t *testing.T) {
		q := baseQuery
		q.PositionIDs = []string{"p2"}
		shifts, err := f.svc.VisibleShifts(managerID, q)
		require.NoError(t, err)
		require.Len(t, shifts, 1)
		assert.Equal(t, "s1", shifts[0].ID)
	})

	t.Run("StatusFilter", func(t *testing.T) {
		q := baseQuery
		q.Status = models.ShiftStatusDraft
		shifts, err := f.svc.VisibleShifts(managerID, q)
		require.NoError(t, err)
		require.Len(t, shifts, 1)
		assert.Equal(t, "s2", shifts[0].ID)
	})

	t.Run("UnderstaffedFilter", func(t *testing.T) {
		q := baseQuery
		q.Understaffed = true
		shifts, err := f.svc.VisibleShifts(managerID, q)
		require.NoError(t, err)
		require.Len(t, shifts, 1)
		assert.Equal(t, "s2", shifts[0].ID, "one assignee against capacity 2")
	})
}

func TestShiftPayloads(t *testing.T) {
	f := newFixture()
	seedRoster(f)
	now := time.Date(2025, time.August, 12, 13, 0, 0, 0, time.UTC)

	shifts := []models.Shift{
		{
			ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "12:00",
			PositionID: "p1", Capacity: 2, Status: models.ShiftStatusPublished,
			AssignedEmployeeIDs: []string{"e1", "e2"},
		},
		{
			ID: "s2", Date: "2025-08-12", StartTime: "14:00", EndTime: "18:00",
			PositionID: "p2", Capacity: 1, Status: models.ShiftStatusDraft,
			AssignedEmployeeIDs: nil,
		},
	}

	payloads, err := f.svc.ShiftPayloads(shifts, now)
	require.NoError(t, err)
	require.Len(t, payloads, 2)

	assert.Equal(t, models.ShiftPayload{
		ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "12:00",
		Position: "Barista", PositionID: "p1", Capacity: 2,
		AssignedCount: 2, AssignedEmployeeIDs: []string{"e1", "e2"},
		Status: models.ShiftStatusPublished, IsPast: true,
	}, payloads[0])

	// A nil assignment list serializes as [], not null.
	assert.Equal(t, []string{}, payloads[1].AssignedEmployeeIDs)
	assert.Zero(t, payloads[1].AssignedCount)
	assert.False(t, payloads[1].IsPast)

	empty, err := f.svc.ShiftPayloads(nil, now)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestEmployeeOptions(t *testing.T) {
	f := newFixture()
	seedRoster(f)
	// No name at all: picker falls back to the login email. Blank names
	// also sort first.
	f.employees.accounts = append(f.employees.accounts, models.Employee{
		ID: "e5", Role: models.RoleEmployee, Email: "zed@example.com",
		PositionID: "p1", IsActive: true,
	})
	// Inactive employees stay out of the picker.
	f.employees.accounts = append(f.employees.accounts, models.Employee{
		ID: "e6", Role: models.RoleEmployee, FirstName: "Gone", LastName: "Away",
		PositionID: "p1", IsActive: false,
	})

	options, err := f.svc.EmployeeOptions()
	require.NoError(t, err)
	require.Len(t, options, 4)

	assert.Equal(t, "zed@example.com", options[0].Name)
	assert.Equal(t, models.EmployeeOption{
		ID: "e1", Name: "Ann Adams", PositionID: "p1", Position: "Barista",
	}, options[1])
	assert.Equal(t, "Bob Brown", options[2].Name)
	assert.Equal(t, "Cara Cole", options[3].Name)
}

func TestShiftDetails(t *testing.T) {
	t.Run("FullPayload", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)
		f.addShift(models.Shift{
			ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "12:00",
			PositionID: "p1", Capacity: 2, Status: models.ShiftStatusPublished,
			AssignedEmployeeIDs: []string{"e1", "e2"},
			UpdatedAt:           time.Date(2025, time.August, 1, 10, 0, 0, 0, time.UTC),
		})

		details, err := f.svc.ShiftDetails(managerID, "s1")
		require.NoError(t, err)
		assert.Equal(t, "s1", details.ID)
		assert.Equal(t, "Barista", details.Position)
		assert.Equal(t, 2, details.AssignedCount)
		require.Len(t, details.Assigned, 2)
		assert.Equal(t, models.AssignedEmployee{
			ID: "e1", Name: "Ann Adams", EmployeeID: "EMP-e1",
		}, details.Assigned[0])
		assert.Equal(t, "Mia Vale", details.CreatedBy)
		assert.Equal(t, "2025-08-01T10:00:00Z", details.UpdatedAt)
	})

	t.Run("DropsStaleAssignees", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)
		f.addShift(models.Shift{
			ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "12:00",
			PositionID: "p1", Capacity: 2,
			AssignedEmployeeIDs: []string{"e1", "ghost"},
		})

		details, err := f.svc.ShiftDetails(managerID, "s1")
		require.NoError(t, err)
		require.Len(t, details.Assigned, 1)
		assert.Equal(t, "e1", details.Assigned[0].ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.ShiftDetails(managerID, "missing")
		assert.ErrorIs(t, err, schedule.ErrShiftNotFound)
	})
}

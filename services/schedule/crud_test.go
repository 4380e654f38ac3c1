package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftflow/models"
	"shiftflow/services/schedule"
	"shiftflow/utils"
)

// seedRoster adds two positions and three active employees.
func seedRoster(f *fixture) {
	f.addPosition("p1", "Barista")
	f.addPosition("p2", "Cook")
	f.addEmployee("e1", "Ann", "Adams", "p1")
	f.addEmployee("e2", "Bob", "Brown", "p1")
	f.addEmployee("e3", "Cara", "Cole", "p2")
	f.addManager(managerID, "Mia", "Vale")
}

func validInput() schedule.ShiftInput {
	return schedule.ShiftInput{
		Date:       "2025-08-12",
		StartTime:  "09:00",
		EndTime:    "17:00",
		PositionID: "p1",
		Capacity:   "2",
	}
}

func TestCreateShiftValidation(t *testing.T) {
	tests := map[string]struct {
		mutate      func(*schedule.ShiftInput)
		wantField   string
		wantMessage string
	}{
		"BadDate": {
			mutate:      func(in *schedule.ShiftInput) { in.Date = "12.08.2025" },
			wantField:   "date",
			wantMessage: "Enter a valid date.",
		},
		"EmptyDate": {
			mutate:      func(in *schedule.ShiftInput) { in.Date = "" },
			wantField:   "date",
			wantMessage: "Enter a valid date.",
		},
		"BadStartTime": {
			mutate:      func(in *schedule.ShiftInput) { in.StartTime = "9am" },
			wantField:   "start_time",
			wantMessage: "Enter a valid time.",
		},
		"BadEndTime": {
			mutate:      func(in *schedule.ShiftInput) { in.EndTime = "25:00" },
			wantField:   "end_time",
			wantMessage: "Enter a valid time.",
		},
		"MissingPosition": {
			mutate:      func(in *schedule.ShiftInput) { in.PositionID = "" },
			wantField:   "position",
			wantMessage: "Enter a valid whole number.",
		},
		"UnknownPosition": {
			mutate:      func(in *schedule.ShiftInput) { in.PositionID = "p9" },
			wantField:   "position",
			wantMessage: "Select a valid position.",
		},
		"CapacityNotANumber": {
			mutate:      func(in *schedule.ShiftInput) { in.Capacity = "two" },
			wantField:   "capacity",
			wantMessage: "Enter a valid whole number.",
		},
		"CapacityZero": {
			mutate:      func(in *schedule.ShiftInput) { in.Capacity = "0" },
			wantField:   "capacity",
			wantMessage: "Must be at least 1.",
		},
		"CapacityNegative": {
			mutate:      func(in *schedule.ShiftInput) { in.Capacity = "-3" },
			wantField:   "capacity",
			wantMessage: "Must be at least 1.",
		},
		"EndBeforeStart": {
			mutate: func(in *schedule.ShiftInput) {
				in.StartTime = "17:00"
				in.EndTime = "09:00"
			},
			wantField:   "end_time",
			wantMessage: "End time must be after start time.",
		},
		"EndEqualsStart": {
			mutate: func(in *schedule.ShiftInput) {
				in.StartTime = "09:00"
				in.EndTime = "09:00"
			},
			wantField:   "end_time",
			wantMessage: "End time must be after start time.",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			seedRoster(f)
			input := validInput()
			tc.mutate(&input)

			shift, err := f.svc.CreateShift(managerID, input)
			require.Nil(t, shift)

			var ferr utils.FieldErrors
			require.ErrorAs(t, err, &ferr)
			require.Contains(t, ferr, tc.wantField)
			assert.Equal(t, tc.wantMessage, ferr[tc.wantField][0])
			assert.Empty(t, f.shifts.shifts, "validation failure must not persist")
		})
	}
}

func TestCreateShiftAssignmentRules(t *testing.T) {
	tests := map[string]struct {
		setup       func(*fixture)
		employeeIDs []string
		capacity    string
		wantField   string
		wantMessage string
	}{
		"WrongPosition": {
			employeeIDs: []string{"e3"},
			wantField:   "employee_ids",
			wantMessage: "Selected employees must match the shift position.",
		},
		"InactiveEmployee": {
			setup: func(f *fixture) {
				f.employees.accounts = append(f.employees.accounts, models.Employee{
					ID: "e4", Role: models.RoleEmployee, PositionID: "p1", IsActive: false,
				})
			},
			employeeIDs: []string{"e4"},
			wantField:   "employee_ids",
			wantMessage: "Selected employees must match the shift position.",
		},
		"ManagerNotAssignable": {
			employeeIDs: []string{managerID},
			wantField:   "employee_ids",
			wantMessage: "Selected employees must match the shift position.",
		},
		"UnknownEmployee": {
			employeeIDs: []string{"ghost"},
			wantField:   "employee_ids",
			wantMessage: "Selected employees must match the shift position.",
		},
		"OverCapacity": {
			employeeIDs: []string{"e1", "e2"},
			capacity:    "1",
			wantField:   "capacity",
			wantMessage: "Cannot assign more employees than shift capacity.",
		},
		"UnavailableOnDate": {
			setup:       func(f *fixture) { f.markUnavailable("e1", "2025-08-12") },
			employeeIDs: []string{"e1"},
			wantField:   "employee_ids",
			wantMessage: "Employee is unavailable on 2025-08-12.",
		},
		"OverlappingAssignment": {
			setup: func(f *fixture) {
				f.addShift(models.Shift{
					ID: "s-existing", Date: "2025-08-12",
					StartTime: "08:00", EndTime: "12:00",
					PositionID: "p1", Capacity: 1,
					AssignedEmployeeIDs: []string{"e1"},
				})
			},
			employeeIDs: []string{"e1"},
			wantField:   "employee_ids",
			wantMessage: "Employee already assigned to: Barista 08:00–12:00 (Aug 12)",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			seedRoster(f)
			if tc.setup != nil {
				tc.setup(f)
			}
			input := validInput()
			input.EmployeeIDs = tc.employeeIDs
			if tc.capacity != "" {
				input.Capacity = tc.capacity
			}

			_, err := f.svc.CreateShift(managerID, input)
			var ferr utils.FieldErrors
			require.ErrorAs(t, err, &ferr)
			require.Contains(t, ferr, tc.wantField)
			assert.Equal(t, tc.wantMessage, ferr[tc.wantField][0])
		})
	}
}

func TestCreateShiftAdjacentAssignmentAllowed(t *testing.T) {
	f := newFixture()
	seedRoster(f)
	f.addShift(models.Shift{
		ID: "s-early", Date: "2025-08-12",
		StartTime: "05:00", EndTime: "09:00",
		PositionID: "p1", Capacity: 1,
		AssignedEmployeeIDs: []string{"e1"},
	})

	input := validInput()
	input.EmployeeIDs = []string{"e1"}
	shift, err := f.svc.CreateShift(managerID, input)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, shift.AssignedEmployeeIDs)
}

func TestCreateShift(t *testing.T) {
	t.Run("DraftDoesNotNotify", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)

		shift, err := f.svc.CreateShift(managerID, validInput())
		require.NoError(t, err)
		require.NotNil(t, shift)

		assert.NotEmpty(t, shift.ID)
		assert.Equal(t, models.ShiftStatusDraft, shift.Status)
		assert.Equal(t, managerID, shift.CreatedBy)
		assert.Equal(t, []string{}, shift.AssignedEmployeeIDs)
		assert.Empty(t, f.notifier.published)
		require.NotNil(t, f.storedShift(shift.ID))
	})

	t.Run("PublishNotifies", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)

		input := validInput()
		input.Publish = true
		input.EmployeeIDs = []string{"e1", "e2"}

		shift, err := f.svc.CreateShift(managerID, input)
		require.NoError(t, err)
		assert.Equal(t, models.ShiftStatusPublished, shift.Status)
		assert.Equal(t, []string{shift.ID}, f.notifier.publishedIDs())
	})

	t.Run("TrimsWhitespaceInput", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)

		input := schedule.ShiftInput{
			Date:        " 2025-08-12 ",
			StartTime:   " 09:00",
			EndTime:     "17:00 ",
			PositionID:  " p1 ",
			Capacity:    " 2 ",
			EmployeeIDs: []string{" e1 ", "e1", ""},
		}
		shift, err := f.svc.CreateShift(managerID, input)
		require.NoError(t, err)
		assert.Equal(t, "2025-08-12", shift.Date)
		assert.Equal(t, "09:00", shift.StartTime)
		assert.Equal(t, "17:00", shift.EndTime)
		assert.Equal(t, 2, shift.Capacity)
		assert.Equal(t, []string{"e1"}, shift.AssignedEmployeeIDs)
	})
}

func TestUpdateShift(t *testing.T) {
	t.Run("ReplacesFieldsAndAssignments", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)
		f.addShift(models.Shift{
			ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "17:00",
			PositionID: "p1", Capacity: 2,
			AssignedEmployeeIDs: []string{"e1"},
		})

		input := validInput()
		input.StartTime = "10:00"
		input.EmployeeIDs = []string{"e2"}

		shift, err := f.svc.UpdateShift(managerID, "s1", input)
		require.NoError(t, err)
		assert.Equal(t, "10:00", shift.StartTime)
		assert.Equal(t, []string{"e2"}, shift.AssignedEmployeeIDs)

		stored := f.storedShift("s1")
		require.NotNil(t, stored)
		assert.Equal(t, "10:00", stored.StartTime)
		assert.Equal(t, []string{"e2"}, stored.AssignedEmployeeIDs)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)

		_, err := f.svc.UpdateShift(managerID, "missing", validInput())
		assert.ErrorIs(t, err, schedule.ErrShiftNotFound)
	})

	t.Run("OtherManagersShiftNotFound", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)
		f.addShift(models.Shift{
			ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "17:00",
			PositionID: "p1", Capacity: 1, CreatedBy: "mgr-2",
		})

		_, err := f.svc.UpdateShift(managerID, "s1", validInput())
		assert.ErrorIs(t, err, schedule.ErrShiftNotFound)
	})

	t.Run("DraftToPublishedNotifies", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)
		f.addShift(models.Shift{
			ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "17:00",
			PositionID: "p1", Capacity: 1,
		})

		input := validInput()
		input.Capacity = "1"
		input.Publish = true

		shift, err := f.svc.UpdateShift(managerID, "s1", input)
		require.NoError(t, err)
		assert.Equal(t, models.ShiftStatusPublished, shift.Status)
		assert.Equal(t, []string{"s1"}, f.notifier.publishedIDs())
	})

	t.Run("AlreadyPublishedDoesNotRenotify", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)
		f.addShift(models.Shift{
			ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "17:00",
			PositionID: "p1", Capacity: 1, Status: models.ShiftStatusPublished,
		})

		input := validInput()
		input.Capacity = "1"
		input.Publish = true

		_, err := f.svc.UpdateShift(managerID, "s1", input)
		require.NoError(t, err)
		assert.Empty(t, f.notifier.published)
	})

	t.Run("ValidationFailureLeavesShiftUntouched", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)
		f.addShift(models.Shift{
			ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "17:00",
			PositionID: "p1", Capacity: 2,
		})

		input := validInput()
		input.EndTime = "nope"

		_, err := f.svc.UpdateShift(managerID, "s1", input)
		var ferr utils.FieldErrors
		require.ErrorAs(t, err, &ferr)

		stored := f.storedShift("s1")
		assert.Equal(t, "17:00", stored.EndTime)
	})
}

func TestDeleteShift(t *testing.T) {
	t.Run("SoftDeletes", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)
		f.addShift(models.Shift{
			ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "17:00",
			PositionID: "p1", Capacity: 1,
		})

		shift, err := f.svc.DeleteShift(managerID, "s1")
		require.NoError(t, err)
		assert.Equal(t, "s1", shift.ID)
		assert.True(t, f.storedShift("s1").IsDeleted)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.DeleteShift(managerID, "missing")
		assert.ErrorIs(t, err, schedule.ErrShiftNotFound)
	})

	t.Run("AlreadyDeletedNotFound", func(t *testing.T) {
		f := newFixture()
		f.addShift(models.Shift{ID: "s1", Date: "2025-08-12", IsDeleted: true})

		_, err := f.svc.DeleteShift(managerID, "s1")
		assert.ErrorIs(t, err, schedule.ErrShiftNotFound)
	})
}

func TestPublishShift(t *testing.T) {
	t.Run("PublishesDraft", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)
		f.addShift(models.Shift{
			ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "17:00",
			PositionID: "p1", Capacity: 1,
			AssignedEmployeeIDs: []string{"e1"},
		})

		shift, err := f.svc.PublishShift(managerID, "s1")
		require.NoError(t, err)
		assert.Equal(t, models.ShiftStatusPublished, shift.Status)
		assert.Equal(t, models.ShiftStatusPublished, f.storedShift("s1").Status)
		assert.Equal(t, []string{"s1"}, f.notifier.publishedIDs())
	})

	t.Run("AlreadyPublished", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)
		f.addShift(models.Shift{
			ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "17:00",
			PositionID: "p1", Capacity: 1, Status: models.ShiftStatusPublished,
		})

		shift, err := f.svc.PublishShift(managerID, "s1")
		assert.ErrorIs(t, err, schedule.ErrAlreadyPublished)
		// Shift still returned so the handler can build the redirect.
		require.NotNil(t, shift)
		assert.Empty(t, f.notifier.published)
	})

	t.Run("BlockedByUnavailability", func(t *testing.T) {
		f := newFixture()
		seedRoster(f)
		f.addShift(models.Shift{
			ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "17:00",
			PositionID: "p1", Capacity: 1,
			AssignedEmployeeIDs: []string{"e1"},
		})
		f.markUnavailable("e1", "2025-08-12")

		shift, err := f.svc.PublishShift(managerID, "s1")
		assert.ErrorIs(t, err, schedule.ErrPublishBlocked)
		require.NotNil(t, shift)
		assert.Equal(t, models.ShiftStatusDraft, f.storedShift("s1").Status)
		assert.Empty(t, f.notifier.published)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.PublishShift(managerID, "missing")
		assert.ErrorIs(t, err, schedule.ErrShiftNotFound)
	})
}

package schedule_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftflow/models"
	"shiftflow/services/schedule"
)

func TestAssignedShifts(t *testing.T) {
	f := newFixture()
	seedRoster(f)
	f.addShift(models.Shift{
		ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "12:00",
		PositionID: "p1", Capacity: 1, Status: models.ShiftStatusPublished,
		AssignedEmployeeIDs: []string{"e1"},
	})
	// Drafts never reach the employee calendar.
	f.addShift(models.Shift{
		ID: "s2", Date: "2025-08-13", StartTime: "09:00", EndTime: "12:00",
		PositionID: "p1", Capacity: 1,
		AssignedEmployeeIDs: []string{"e1"},
	})
	f.addShift(models.Shift{
		ID: "s3", Date: "2025-08-13", StartTime: "09:00", EndTime: "12:00",
		PositionID: "p1", Capacity: 1, Status: models.ShiftStatusPublished,
		AssignedEmployeeIDs: []string{"e2"},
	})
	f.addShift(models.Shift{
		ID: "s4", Date: "2025-09-01", StartTime: "09:00", EndTime: "12:00",
		PositionID: "p1", Capacity: 1, Status: models.ShiftStatusPublished,
		AssignedEmployeeIDs: []string{"e1"},
	})

	q := schedule.ViewQuery{
		Start: date(2025, time.August, 1),
		End:   date(2025, time.August, 31),
	}
	shifts, err := f.svc.AssignedShifts("e1", q)
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, "s1", shifts[0].ID)
}

func TestEmployeeShiftPayloads(t *testing.T) {
	f := newFixture()
	seedRoster(f)
	now := time.Date(2025, time.August, 12, 13, 0, 0, 0, time.UTC)

	shifts := []models.Shift{
		{ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "12:00", PositionID: "p1"},
		{ID: "s2", Date: "2025-08-13", StartTime: "14:00", EndTime: "18:00", PositionID: "p2"},
	}
	payloads, err := f.svc.EmployeeShiftPayloads(shifts, now)
	require.NoError(t, err)
	require.Len(t, payloads, 2)

	assert.Equal(t, models.EmployeeShiftPayload{
		ID: "s1", Date: "2025-08-12", StartTime: "09:00", EndTime: "12:00",
		Position: "Barista", IsPast: true,
	}, payloads[0])
	assert.Equal(t, "Cook", payloads[1].Position)
	assert.False(t, payloads[1].IsPast)
}

func TestUpcomingShifts(t *testing.T) {
	f := newFixture()
	seedRoster(f)
	today := time.Date(2025, time.August, 12, 15, 0, 0, 0, time.UTC)

	t.Run("SkipsPastAndCapsAtFive", func(t *testing.T) {
		var shifts []models.Shift
		for day := 10; day <= 19; day++ {
			shifts = append(shifts, models.Shift{
				ID:         fmt.Sprintf("s%d", day),
				Date:       fmt.Sprintf("2025-08-%02d", day),
				StartTime:  "09:00",
				EndTime:    "17:00",
				PositionID: "p1",
			})
		}

		upcoming, err := f.svc.UpcomingShifts(shifts, today)
		require.NoError(t, err)
		require.Len(t, upcoming, 5)
		assert.Equal(t, "s12", upcoming[0].ID, "today's shift still counts")
		assert.Equal(t, "s16", upcoming[4].ID)
		assert.Equal(t, 8.0, upcoming[0].Hours)
	})

	t.Run("FractionalHours", func(t *testing.T) {
		shifts := []models.Shift{{
			ID: "s1", Date: "2025-08-13", StartTime: "09:30", EndTime: "10:45",
			PositionID: "p2",
		}}
		upcoming, err := f.svc.UpcomingShifts(shifts, today)
		require.NoError(t, err)
		require.Len(t, upcoming, 1)
		assert.Equal(t, 1.25, upcoming[0].Hours)
		assert.Equal(t, "Cook", upcoming[0].Position)
	})

	t.Run("NegativeDurationClampsToZero", func(t *testing.T) {
		shifts := []models.Shift{{
			ID: "s1", Date: "2025-08-13", StartTime: "17:00", EndTime: "09:00",
			PositionID: "p1",
		}}
		upcoming, err := f.svc.UpcomingShifts(shifts, today)
		require.NoError(t, err)
		require.Len(t, upcoming, 1)
		assert.Zero(t, upcoming[0].Hours)
	})

	t.Run("Empty", func(t *testing.T) {
		upcoming, err := f.svc.UpcomingShifts(nil, today)
		require.NoError(t, err)
		assert.Empty(t, upcoming)
	})
}

func TestUnavailableDates(t *testing.T) {
	f := newFixture()
	f.markUnavailable("e1", "2025-08-20")
	f.markUnavailable("e1", "2025-08-05")
	f.markUnavailable("e2", "2025-08-06")
	f.markUnavailable("e1", "2025-09-01")

	dates, err := f.svc.UnavailableDates("e1",
		date(2025, time.August, 1), date(2025, time.August, 31))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-08-05", "2025-08-20"}, dates)
}

func TestToggleUnavailability(t *testing.T) {
	f := newFixture()

	nowUnavailable, err := f.svc.ToggleUnavailability("e1", "2025-08-20")
	require.NoError(t, err)
	assert.True(t, nowUnavailable)

	record, err := f.unavail.Get("e1", "2025-08-20")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.NotEmpty(t, record.ID)

	// Second toggle removes the mark again.
	nowUnavailable, err = f.svc.ToggleUnavailability("e1", "2025-08-20")
	require.NoError(t, err)
	assert.False(t, nowUnavailable)

	record, err = f.unavail.Get("e1", "2025-08-20")
	require.NoError(t, err)
	assert.Nil(t, record)
}

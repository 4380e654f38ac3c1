package client_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftflow/client"
	"shiftflow/models"
)

func TestIsland(t *testing.T) {
	islands := models.Islands{}
	require.NoError(t, islands.Put(models.IslandShifts, []models.ShiftPayload{{ID: "s1"}}))
	islands["broken"] = json.RawMessage(`{not json`)

	t.Run("Decodes", func(t *testing.T) {
		shifts := client.Island(islands, models.IslandShifts, []models.ShiftPayload{})
		require.Len(t, shifts, 1)
		assert.Equal(t, "s1", shifts[0].ID)
	})

	t.Run("MissingKeyFallsBack", func(t *testing.T) {
		shifts := client.Island(islands, "absent", []models.ShiftPayload{})
		assert.Empty(t, shifts)
	})

	t.Run("MalformedFallsBack", func(t *testing.T) {
		shifts := client.Island(islands, "broken", []models.ShiftPayload{{ID: "fallback"}})
		require.Len(t, shifts, 1)
		assert.Equal(t, "fallback", shifts[0].ID)
	})
}

func loadedPage(t *testing.T) *models.ManagerSchedulePage {
	t.Helper()
	page := &models.ManagerSchedulePage{
		PageMeta: models.PageMeta{View: "week"},
		Islands:  models.Islands{},
	}
	require.NoError(t, page.Islands.Put(models.IslandShifts, []models.ShiftPayload{
		{ID: "s1", Date: "2025-08-12", Status: "draft"},
		{ID: "s2", Date: "2025-08-13", Status: "published"},
	}))
	require.NoError(t, page.Islands.Put(models.IslandEmployees, []models.EmployeeOption{
		{ID: "e1", Name: "Ann Adams", PositionID: "p1", Position: "Barista"},
	}))
	require.NoError(t, page.Islands.Put(models.IslandShiftFormState, models.ShiftFormState{
		Mode: "create", Date: "2025-08-12", ErrorField: "capacity",
	}))
	return page
}

func TestAppStateLoadManagerPage(t *testing.T) {
	events := client.NewEvents()
	var reloads []client.StateReloaded
	events.OnStateReloaded(func(ev client.StateReloaded) { reloads = append(reloads, ev) })

	state := client.NewAppState(events)
	state.SetHighlight("stale")
	state.SetSelection([]string{"stale"})

	state.LoadManagerPage(loadedPage(t))

	t.Run("SnapshotReplaced", func(t *testing.T) {
		require.Len(t, state.Shifts(), 2)
		shift, ok := state.Shift("s2")
		require.True(t, ok)
		assert.Equal(t, "published", shift.Status)
		_, ok = state.Shift("missing")
		assert.False(t, ok)

		require.Len(t, state.Employees(), 1)
		require.NotNil(t, state.FormState())
		assert.Equal(t, "capacity", state.FormState().ErrorField)
	})

	t.Run("SelectionAndHighlightReset", func(t *testing.T) {
		assert.Empty(t, state.Selected())
		assert.Empty(t, state.Highlight())
	})

	t.Run("ReloadSignalFired", func(t *testing.T) {
		assert.Equal(t, []client.StateReloaded{{View: "week"}}, reloads)
	})

	t.Run("NilPageIgnored", func(t *testing.T) {
		before := len(reloads)
		state.LoadManagerPage(nil)
		assert.Len(t, state.Shifts(), 2)
		assert.Len(t, reloads, before)
	})

	t.Run("MalformedIslandsFallBack", func(t *testing.T) {
		broken := &models.ManagerSchedulePage{
			PageMeta: models.PageMeta{View: "day"},
			Islands:  models.Islands{models.IslandShifts: json.RawMessage(`"nope"`)},
		}
		state.LoadManagerPage(broken)
		assert.Empty(t, state.Shifts())
		assert.Empty(t, state.Employees())
		assert.Nil(t, state.FormState())
	})
}

func TestAppStateSelection(t *testing.T) {
	events := client.NewEvents()
	var changes [][]string
	events.OnSelectionChanged(func(ev client.SelectionChanged) { changes = append(changes, ev.ShiftIDs) })

	state := client.NewAppState(events)

	assert.True(t, state.ToggleSelection("s2"))
	assert.True(t, state.ToggleSelection("s1"))
	assert.True(t, state.IsSelected("s1"))
	assert.Equal(t, []string{"s1", "s2"}, state.Selected(), "selection reads back sorted")

	assert.False(t, state.ToggleSelection("s2"))
	assert.False(t, state.IsSelected("s2"))

	state.SetSelection([]string{"b", "a", "", "b"})
	assert.Equal(t, []string{"a", "b"}, state.Selected(), "blanks dropped, duplicates collapse")

	state.ClearSelection()
	assert.Empty(t, state.Selected())

	assert.Equal(t, [][]string{
		{"s2"},
		{"s1", "s2"},
		{"s1"},
		{"a", "b"},
		{},
	}, changes)

	changes = nil
	state.ClearSelection()
	assert.Empty(t, changes, "clearing an empty selection stays silent")
}

func TestAppStateWithoutEventBus(t *testing.T) {
	state := client.NewAppState(nil)

	assert.True(t, state.ToggleSelection("s1"))
	state.LoadManagerPage(loadedPage(t))
	assert.Empty(t, state.Selected())
}

func TestEmployeePicker(t *testing.T) {
	state := client.NewAppState(nil)
	page := &models.ManagerSchedulePage{Islands: models.Islands{}}
	require.NoError(t, page.Islands.Put(models.IslandEmployees, []models.EmployeeOption{
		{ID: "e1", Name: "Ann Adams", PositionID: "p1"},
		{ID: "e2", Name: "Bob Brown", PositionID: "p2"},
		{ID: "e3", Name: "Cara Cole", PositionID: "p1"},
	}))
	state.LoadManagerPage(page)

	t.Run("SplitsByPosition", func(t *testing.T) {
		buckets := state.EmployeePicker("p1")
		require.Len(t, buckets.Matching, 2)
		assert.Equal(t, "e1", buckets.Matching[0].ID)
		assert.Equal(t, "e3", buckets.Matching[1].ID)
		require.Len(t, buckets.Others, 1)
		assert.Equal(t, "e2", buckets.Others[0].ID)
	})

	t.Run("NoPositionPutsEveryoneInOthers", func(t *testing.T) {
		buckets := state.EmployeePicker("")
		assert.Empty(t, buckets.Matching)
		assert.Len(t, buckets.Others, 3)
	})
}

func TestToasts(t *testing.T) {
	t.Run("LevelsPickDurations", func(t *testing.T) {
		assert.Equal(t, client.ToastDuration, client.NewToast(models.FlashSuccess, "saved").Duration)
		assert.Equal(t, client.ToastDuration, client.NewToast(models.FlashInfo, "fyi").Duration)
		assert.Equal(t, client.ToastErrorDuration, client.NewToast(models.FlashError, "broke").Duration)
	})

	t.Run("ErrorToastKeepsServerMessage", func(t *testing.T) {
		apiErr := &client.APIError{Status: 400, Message: "Select a valid position."}
		toast := client.ErrorToast(apiErr)
		assert.Equal(t, models.FlashError, toast.Level)
		assert.Equal(t, "Select a valid position.", toast.Message)
		assert.Equal(t, client.ToastErrorDuration, toast.Duration)
	})

	t.Run("ErrorToastWrapsPlainErrors", func(t *testing.T) {
		toast := client.ErrorToast(errors.New("connection refused"))
		assert.Equal(t, "connection refused", toast.Message)
	})

	t.Run("FlashesConvert", func(t *testing.T) {
		toasts := client.FlashToasts([]models.Flash{
			{Level: models.FlashSuccess, Message: "Shift saved."},
			{Level: models.FlashError, Message: "Publish blocked."},
		})
		require.Len(t, toasts, 2)
		assert.Equal(t, client.ToastDuration, toasts[0].Duration)
		assert.Equal(t, client.ToastErrorDuration, toasts[1].Duration)
	})
}

func TestViewState(t *testing.T) {
	t.Run("EmptyStateKeepsBarePath", func(t *testing.T) {
		assert.Equal(t, "/manager/shifts/", client.ViewState{}.URL("/manager/shifts/"))
	})

	t.Run("FullStateEncodes", func(t *testing.T) {
		state := client.ViewState{
			View:      "week",
			Date:      "2025-08-12",
			Positions: []string{"p1", "", "p2"},
			Status:    "draft",
			Show:      "understaffed",
		}
		assert.Equal(t,
			"/manager/shifts/?date=2025-08-12&positions=p1&positions=p2&show=understaffed&status=draft&view=week",
			state.URL("/manager/shifts/"))
	})

	t.Run("WithHelpersCopy", func(t *testing.T) {
		state := client.ViewState{View: "week", Date: "2025-08-12"}
		month := state.WithView("month").WithDate("2025-09-01")
		assert.Equal(t, "week", state.View)
		assert.Equal(t, "2025-08-12", state.Date)
		assert.Equal(t, "month", month.View)
		assert.Equal(t, "2025-09-01", month.Date)
	})

	t.Run("NilPageYieldsZeroState", func(t *testing.T) {
		assert.Equal(t, client.ViewState{}, client.ManagerViewState(nil))
	})
}

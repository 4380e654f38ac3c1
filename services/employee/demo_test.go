package employee_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shiftflow/config"
	"shiftflow/models"
	"shiftflow/services/employee"
)

func enableDemoMode(t *testing.T) {
	t.Helper()
	previous := config.AppConfig.DemoMode
	config.AppConfig.DemoMode = true
	t.Cleanup(func() { config.AppConfig.DemoMode = previous })
}

func TestEnsureDemoDataDisabled(t *testing.T) {
	f := newFixture()
	config.AppConfig.DemoMode = false

	_, err := f.svc.EnsureDemoData(models.RoleManager)
	assert.ErrorIs(t, err, employee.ErrDemoDisabled)
}

func TestEnsureDemoDataUnknownRole(t *testing.T) {
	enableDemoMode(t)
	f := newFixture()

	_, err := f.svc.EnsureDemoData("admin")
	assert.ErrorIs(t, err, employee.ErrUnknownDemoRole)
}

func TestEnsureDemoData(t *testing.T) {
	enableDemoMode(t)

	t.Run("SeedsEverythingOnFirstLogin", func(t *testing.T) {
		f := newFixture()

		manager, err := f.svc.EnsureDemoData("Manager")
		require.NoError(t, err)
		assert.Equal(t, models.RoleManager, manager.Role)
		assert.Equal(t, "manager_demo@example.com", manager.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(manager.PasswordHash), []byte("demo12345!")))

		// Both demo positions and both demo accounts exist.
		barista, err := f.positions.GetByName("Barista")
		require.NoError(t, err)
		require.NotNil(t, barista)
		cleaner, err := f.positions.GetByName("Cleaner")
		require.NoError(t, err)
		require.NotNil(t, cleaner)

		worker, err := f.employees.GetByEmail("employee_demo@example.com")
		require.NoError(t, err)
		require.NotNil(t, worker)
		assert.Equal(t, barista.ID, worker.PositionID)

		// Seeded calendar: two published shifts with the worker, one draft.
		require.Len(t, f.shifts.shifts, 3)
		var published, drafts int
		for _, s := range f.shifts.shifts {
			assert.Equal(t, manager.ID, s.CreatedBy)
			if s.Status == models.ShiftStatusPublished {
				published++
				assert.Equal(t, []string{worker.ID}, s.AssignedEmployeeIDs)
			} else {
				drafts++
			}
		}
		assert.Equal(t, 2, published)
		assert.Equal(t, 1, drafts)
	})

	t.Run("EmployeeRoleReturnsWorker", func(t *testing.T) {
		f := newFixture()

		worker, err := f.svc.EnsureDemoData(models.RoleEmployee)
		require.NoError(t, err)
		assert.Equal(t, models.RoleEmployee, worker.Role)
		assert.Equal(t, "employee_demo@example.com", worker.Email)
	})

	t.Run("SecondLoginDoesNotReseed", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.EnsureDemoData(models.RoleManager)
		require.NoError(t, err)
		_, err = f.svc.EnsureDemoData(models.RoleEmployee)
		require.NoError(t, err)

		assert.Len(t, f.shifts.shifts, 3, "demo shifts seed once per manager")
		assert.Len(t, f.employees.accounts, 2)
		assert.Len(t, f.positions.positions, 2)
	})

	t.Run("HealsBrokenDemoAccount", func(t *testing.T) {
		f := newFixture()
		f.addAccount(models.Employee{
			ID: "stale", Email: "manager_demo@example.com",
			Role: models.RoleEmployee, IsActive: false,
			PasswordHash: hashOf(t, "forgotten"),
		})

		manager, err := f.svc.EnsureDemoData(models.RoleManager)
		require.NoError(t, err)
		assert.Equal(t, "stale", manager.ID)
		assert.Equal(t, models.RoleManager, manager.Role)
		assert.True(t, manager.IsActive)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(manager.PasswordHash), []byte("demo12345!")))
	})
}

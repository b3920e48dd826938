package employee_test

import (
	"context"
	"testing"

	"go-employees/internal/employee"
	employeeerrors "go-employees/internal/employee/errors"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// These tests wire the service to a real in-memory store and walk full
// business flows end to end.

func setupWithStore(t *testing.T) (employee.Repository, employee.Service) {
	t.Helper()
	repo := employee.NewRepository()
	svc := employee.NewService(repo, zap.NewNop())
	return repo, svc
}

func TestScenario_NewHireRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, svc := setupWithStore(t)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:       "Ann",
		Department: "Engineering",
		Salary:     75000,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	found, err := svc.GetByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Ann", found.Name)
	assert.Equal(t, "Engineering", found.Department)
	assert.Equal(t, 75000.0, found.Salary)
}

func TestScenario_RaiseWithinAndPastBound(t *testing.T) {
	ctx := context.Background()
	_, svc := setupWithStore(t)

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:       "Ann",
		Department: "Engineering",
		Salary:     75000,
	})
	assert.NoError(t, err)

	raised, err := svc.GiveRaise(ctx, 1, 5000)
	assert.NoError(t, err)
	assert.Equal(t, 80000.0, raised.Salary)

	_, err = svc.GiveRaise(ctx, 1, employee.MaxSalary)
	assert.ErrorIs(t, err, employeeerrors.ErrRaiseExceedsMaximum)

	// The failed raise must not have changed the stored salary.
	found, err := svc.GetByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 80000.0, found.Salary)
}

func TestScenario_TransferSameThenNewDepartment(t *testing.T) {
	ctx := context.Background()
	_, svc := setupWithStore(t)

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:       "Ann",
		Department: "Engineering",
		Salary:     75000,
	})
	assert.NoError(t, err)

	_, err = svc.Transfer(ctx, 1, "Engineering")
	assert.ErrorIs(t, err, employeeerrors.ErrSameDepartmentTransfer)

	moved, err := svc.Transfer(ctx, 1, "Sales")
	assert.NoError(t, err)
	assert.Equal(t, "Sales", moved.Department)

	found, err := svc.GetByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Sales", found.Department)
}

func TestScenario_TerminateUnknownLeavesStoreIntact(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupWithStore(t)

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:       "Ann",
		Department: "Engineering",
		Salary:     75000,
	})
	assert.NoError(t, err)
	before := repo.Count(ctx)

	err = svc.Terminate(ctx, 999)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	assert.Equal(t, before, repo.Count(ctx))
}

func TestScenario_SearchFiltersAsASet(t *testing.T) {
	ctx := context.Background()
	_, svc := setupWithStore(t)

	seed := []employee.CreateEmployeeRequest{
		{Name: "Ann", Department: "Engineering", Salary: 95000},
		{Name: "Bob", Department: "Engineering", Salary: 65000},
		{Name: "Cal", Department: "Marketing", Salary: 80000},
		{Name: "Dee", Department: "Marketing", Salary: 72000},
	}
	for _, req := range seed {
		_, err := svc.Create(ctx, req)
		assert.NoError(t, err)
	}

	res, err := svc.Search(ctx, employee.SearchCriteria{
		Department: "Engineering",
		MinSalary:  70000,
	})
	assert.NoError(t, err)

	names := make(map[string]bool, len(res))
	for _, e := range res {
		names[e.Name] = true
	}
	assert.Equal(t, map[string]bool{"Ann": true}, names)
}

func TestScenario_SaveDispatchesOnID(t *testing.T) {
	ctx := context.Background()
	_, svc := setupWithStore(t)

	pending := employee.Employee{
		Name:       "Ann",
		Department: "Engineering",
		Salary:     75000,
	}

	saved, err := svc.Save(ctx, pending)
	assert.NoError(t, err)
	assert.True(t, saved.Persisted())

	updated, err := svc.Save(ctx, saved.WithSalary(90000))
	assert.NoError(t, err)
	assert.Equal(t, *saved.ID, *updated.ID)
	assert.Equal(t, 90000.0, updated.Salary)

	unknown := pending.WithID(999)
	_, err = svc.Save(ctx, unknown)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

package employee

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id int64) (Employee, bool)
	FindAll(ctx context.Context) []Employee
	FindByDepartment(ctx context.Context, department string) []Employee
	FindBySalaryAtLeast(ctx context.Context, minSalary float64) []Employee
	// FindByDepartmentAndSalaryAtLeast treats an empty department and a zero
	// minimum as pass-through filters.
	FindByDepartmentAndSalaryAtLeast(ctx context.Context, department string, minSalary float64) []Employee
	// Save assigns the next id when e.ID is nil, otherwise overwrites the
	// entry at e.ID (upsert, no existence check). Returns the stored value.
	Save(ctx context.Context, e Employee) Employee
	DeleteByID(ctx context.Context, id int64)
	ExistsByID(ctx context.Context, id int64) bool
	Count(ctx context.Context) int64
	// DeleteAll clears storage and resets the id generator. Test support only.
	DeleteAll(ctx context.Context)
}

// repository is a process-lifetime in-memory store. Single-key operations are
// linearizable under the mutex; FindAll and Count are point-in-time snapshots
// with no atomicity across separate calls. Assigned ids are strictly
// increasing and never reused, even after deletes.
type repository struct {
	mu        sync.RWMutex
	employees map[int64]Employee
	nextID    atomic.Int64
}

func NewRepository() Repository {
	return &repository{
		employees: make(map[int64]Employee),
	}
}

func (r *repository) FindByID(_ context.Context, id int64) (Employee, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	return e, ok
}

func (r *repository) FindAll(_ context.Context) []Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Employee, 0, len(r.employees))
	for _, e := range r.employees {
		all = append(all, e)
	}
	return all
}

func (r *repository) FindByDepartment(ctx context.Context, department string) []Employee {
	return r.FindByDepartmentAndSalaryAtLeast(ctx, department, 0)
}

func (r *repository) FindBySalaryAtLeast(ctx context.Context, minSalary float64) []Employee {
	return r.FindByDepartmentAndSalaryAtLeast(ctx, "", minSalary)
}

func (r *repository) FindByDepartmentAndSalaryAtLeast(_ context.Context, department string, minSalary float64) []Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Employee, 0)
	for _, e := range r.employees {
		if department != "" && !strings.EqualFold(e.Department, department) {
			continue
		}
		if e.Salary < minSalary {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

func (r *repository) Save(_ context.Context, e Employee) Employee {
	if e.ID == nil {
		e = e.WithID(r.nextID.Add(1))
	}

	r.mu.Lock()
	r.employees[*e.ID] = e
	r.mu.Unlock()

	return e
}

func (r *repository) DeleteByID(_ context.Context, id int64) {
	r.mu.Lock()
	delete(r.employees, id)
	r.mu.Unlock()
}

func (r *repository) ExistsByID(_ context.Context, id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.employees[id]
	return ok
}

func (r *repository) Count(_ context.Context) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.employees))
}

func (r *repository) DeleteAll(_ context.Context) {
	r.mu.Lock()
	r.employees = make(map[int64]Employee)
	r.mu.Unlock()

	r.nextID.Store(0)
}

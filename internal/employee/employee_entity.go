package employee

import "time"

// Employee is an immutable value. A nil ID marks a pending new hire; the
// repository assigns the ID on first save and the entity is persisted from
// then on. Mutations go through the With* copy methods, never in place.
type Employee struct {
	ID         *int64
	Name       string
	Department string
	Salary     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Persisted reports whether the repository has assigned an ID.
func (e Employee) Persisted() bool {
	return e.ID != nil
}

// WithID returns a copy carrying the given ID.
func (e Employee) WithID(id int64) Employee {
	e.ID = &id
	return e
}

// WithSalary returns a copy at the new salary. The receiver is unchanged.
func (e Employee) WithSalary(salary float64) Employee {
	e.Salary = salary
	e.UpdatedAt = time.Now().UTC()
	return e
}

// WithDepartment returns a copy in the new department. The receiver is unchanged.
func (e Employee) WithDepartment(department string) Employee {
	e.Department = department
	e.UpdatedAt = time.Now().UTC()
	return e
}

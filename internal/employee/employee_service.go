package employee

import (
	"context"
	"strings"
	"time"

	employeeerrors "go-employees/internal/employee/errors"
	"go-employees/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Business rule thresholds.
const (
	MinSalary              = 30000.0
	MaxSalary              = 500000.0
	StandardRaisePercent   = 0.10
	HighPerformerThreshold = 100000.0

	// Applied by Search when the caller supplies no minimum or a
	// non-positive one.
	DefaultSearchMinSalary = MinSalary
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// Save dispatches on the entity's id: pending entities go through the
	// new-hire path, persisted ones through the update path.
	Save(ctx context.Context, e Employee) (Employee, error)
	GiveRaise(ctx context.Context, id int64, amount float64) (EmployeeResponse, error)
	GiveStandardRaise(ctx context.Context, id int64) (EmployeeResponse, error)
	Transfer(ctx context.Context, id int64, department string) (EmployeeResponse, error)
	HighPerformers(ctx context.Context) ([]EmployeeResponse, error)
	DepartmentExpense(ctx context.Context, department string) (DepartmentExpenseResponse, error)
	Terminate(ctx context.Context, id int64) error
	Search(ctx context.Context, criteria SearchCriteria) ([]EmployeeResponse, error)
}

type service struct {
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	return mapToListResponse(s.repo.FindAll(ctx)), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	e, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return mapToResponse(e), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	e, err := s.processNewHire(ctx, Employee{
		Name:       req.Name,
		Department: req.Department,
		Salary:     req.Salary,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(e), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	e, err := s.update(ctx, id, Employee{
		Name:       req.Name,
		Department: req.Department,
		Salary:     req.Salary,
	})
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(e), nil
}

func (s *service) Save(ctx context.Context, e Employee) (Employee, error) {
	if e.ID == nil {
		return s.processNewHire(ctx, e)
	}
	return s.update(ctx, *e.ID, e)
}

// processNewHire validates the salary bounds and persists a pending entity.
// The repository assigns the id.
func (s *service) processNewHire(ctx context.Context, e Employee) (Employee, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if e.Salary < MinSalary || e.Salary > MaxSalary {
		l.Warn("new hire rejected: salary out of range",
			zap.String("name", e.Name),
			zap.Float64("salary", e.Salary),
		)
		return Employee{}, employeeerrors.ErrSalaryOutOfRange
	}

	saved := s.repo.Save(ctx, e)
	l.Info("new hire processed",
		zap.Int64("id", *saved.ID),
		zap.String("department", saved.Department),
	)
	return saved, nil
}

// update overwrites the entity at id. Last writer wins: there is no version
// check, so concurrent updates to the same id can clobber each other.
func (s *service) update(ctx context.Context, id int64, e Employee) (Employee, error) {
	current, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}

	if e.Salary < MinSalary || e.Salary > MaxSalary {
		return Employee{}, employeeerrors.ErrSalaryOutOfRange
	}

	e = e.WithID(id)
	e.CreatedAt = current.CreatedAt
	e.UpdatedAt = time.Now().UTC()

	return s.repo.Save(ctx, e), nil
}

func (s *service) GiveRaise(ctx context.Context, id int64, amount float64) (EmployeeResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	e, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	if amount <= 0 {
		return EmployeeResponse{}, employeeerrors.ErrRaiseAmountNotPositive
	}
	if e.Salary+amount > MaxSalary {
		l.Warn("raise rejected: exceeds maximum salary",
			zap.Int64("id", id),
			zap.Float64("current", e.Salary),
			zap.Float64("amount", amount),
		)
		return EmployeeResponse{}, employeeerrors.ErrRaiseExceedsMaximum
	}

	raised := s.repo.Save(ctx, e.WithSalary(e.Salary+amount))
	l.Info("raise applied",
		zap.Int64("id", id),
		zap.Float64("new_salary", raised.Salary),
	)
	return mapToResponse(raised), nil
}

func (s *service) GiveStandardRaise(ctx context.Context, id int64) (EmployeeResponse, error) {
	e, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return s.GiveRaise(ctx, id, e.Salary*StandardRaisePercent)
}

func (s *service) Transfer(ctx context.Context, id int64, department string) (EmployeeResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	e, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	department = strings.TrimSpace(department)
	if department == "" {
		return EmployeeResponse{}, employeeerrors.ErrEmptyDepartment
	}
	if strings.EqualFold(e.Department, department) {
		return EmployeeResponse{}, employeeerrors.ErrSameDepartmentTransfer
	}

	moved := s.repo.Save(ctx, e.WithDepartment(department))
	l.Info("employee transferred",
		zap.Int64("id", id),
		zap.String("from", e.Department),
		zap.String("to", department),
	)
	return mapToResponse(moved), nil
}

func (s *service) HighPerformers(ctx context.Context) ([]EmployeeResponse, error) {
	return mapToListResponse(s.repo.FindBySalaryAtLeast(ctx, HighPerformerThreshold)), nil
}

func (s *service) DepartmentExpense(ctx context.Context, department string) (DepartmentExpenseResponse, error) {
	// Concurrent requests for the same department share one scan.
	key := "expense:" + strings.ToLower(department)
	v, _, _ := s.sf.Do(key, func() (interface{}, error) {
		members := s.repo.FindByDepartment(ctx, department)
		total := 0.0
		for _, e := range members {
			total += e.Salary
		}
		return DepartmentExpenseResponse{
			Department: department,
			Total:      total,
			Headcount:  len(members),
		}, nil
	})

	return v.(DepartmentExpenseResponse), nil
}

func (s *service) Terminate(ctx context.Context, id int64) error {
	l := contextutil.GetLogger(ctx, s.logger)

	if !s.repo.ExistsByID(ctx, id) {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.repo.DeleteByID(ctx, id)
	l.Info("employee terminated", zap.Int64("id", id))
	return nil
}

func (s *service) Search(ctx context.Context, criteria SearchCriteria) ([]EmployeeResponse, error) {
	minSalary := criteria.MinSalary
	if minSalary <= 0 {
		minSalary = DefaultSearchMinSalary
	}

	matched := s.repo.FindByDepartmentAndSalaryAtLeast(ctx, criteria.Department, minSalary)

	results := make([]EmployeeResponse, 0, len(matched))
	for _, e := range matched {
		if criteria.MaxSalary > 0 && e.Salary > criteria.MaxSalary {
			continue
		}
		if criteria.Name != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(criteria.Name)) {
			continue
		}
		results = append(results, mapToResponse(e))
	}
	return results, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		Name:       e.Name,
		Department: e.Department,
		Salary:     e.Salary,
	}
	if e.ID != nil {
		resp.ID = *e.ID
	}
	if !e.CreatedAt.IsZero() {
		resp.CreatedAt = e.CreatedAt.Format("2006-01-02 15:04:05")
	}
	if !e.UpdatedAt.IsZero() {
		resp.UpdatedAt = e.UpdatedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}

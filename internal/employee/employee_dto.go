package employee

type CreateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=100"`
	Department string  `json:"department" binding:"required,min=1,max=50"`
	Salary     float64 `json:"salary" binding:"min=0"`
}

type UpdateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=100"`
	Department string  `json:"department" binding:"required,min=1,max=50"`
	Salary     float64 `json:"salary" binding:"min=0"`
}

// Amount carries no binding rule: zero must bind cleanly so the service's
// non-positive check owns the rejection.
type RaiseRequest struct {
	Amount float64 `json:"amount"`
}

type TransferRequest struct {
	Department string `json:"department" binding:"required,min=1,max=50"`
}

// SearchCriteria carries the optional filters of the search endpoint. Zero
// values mean "no constraint on that field".
type SearchCriteria struct {
	Department string  `form:"department"`
	MinSalary  float64 `form:"min_salary"`
	MaxSalary  float64 `form:"max_salary"`
	Name       string  `form:"q"`
}

type EmployeeResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
	CreatedAt  string  `json:"created_at,omitempty"`
	UpdatedAt  string  `json:"updated_at,omitempty"`
}

type DepartmentExpenseResponse struct {
	Department string  `json:"department"`
	Total      float64 `json:"total"`
	Headcount  int     `json:"headcount"`
}

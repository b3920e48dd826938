package employeeerrors

import (
	"net/http"

	"go-employees/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrSalaryOutOfRange = apperror.New(
		apperror.CodeValidationError,
		"Salary is outside the allowed range",
		http.StatusBadRequest,
	)

	ErrRaiseAmountNotPositive = apperror.New(
		apperror.CodeValidationError,
		"Raise amount must be positive",
		http.StatusBadRequest,
	)

	ErrRaiseExceedsMaximum = apperror.New(
		apperror.CodeValidationError,
		"Raise would exceed the maximum allowed salary",
		http.StatusBadRequest,
	)

	ErrEmptyDepartment = apperror.New(
		apperror.CodeValidationError,
		"Department must not be empty",
		http.StatusBadRequest,
	)

	ErrSameDepartmentTransfer = apperror.New(
		apperror.CodeValidationError,
		"Employee is already in that department",
		http.StatusBadRequest,
	)

	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)

package employeeerrors

import (
	"net/http"

	"github.com/abangiyan/hongwei-crew-manager/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee number already exists",
		http.StatusConflict,
	)
	ErrRoleNotInTeam = apperror.New(
		apperror.CodeInvalidInput,
		"Role does not belong to the selected team",
		http.StatusBadRequest,
	)
	ErrUnknownJobTask = apperror.New(
		apperror.CodeInvalidInput,
		"One or more job tasks do not exist",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidInput,
		"Employee is inactive",
		http.StatusBadRequest,
	)
)

package scheduleerrors

import (
	"fmt"
	"net/http"

	"github.com/abangiyan/hongwei-crew-manager/internal/shared/apperror"
)

var (
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Schedule not found",
		http.StatusNotFound,
	)
	ErrDuplicateAssignment = apperror.New(
		apperror.CodeConflict,
		"Employee is already scheduled for this shift and date",
		http.StatusConflict,
	)
	ErrInvalidScheduleDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid schedule_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmptySubmission = apperror.New(
		apperror.CodeInvalidInput,
		"At least one employee must be assigned",
		http.StatusBadRequest,
	)
	ErrShiftNotConfigured = apperror.New(
		apperror.CodeInvalidInput,
		"Branch has no first or second shift configured",
		http.StatusUnprocessableEntity,
	)
	ErrUnknownEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"One or more employees do not exist or are inactive",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Schedule status can only move from scheduled to completed or cancelled",
		http.StatusUnprocessableEntity,
	)
	ErrDraftNotFound = apperror.New(
		apperror.CodeNotFound,
		"No schedule draft in progress",
		http.StatusNotFound,
	)
	ErrDraftStepMismatch = apperror.New(
		apperror.CodeInvalidState,
		"Draft is not at the expected step",
		http.StatusUnprocessableEntity,
	)
	ErrDraftIncomplete = apperror.New(
		apperror.CodeInvalidState,
		"Draft has not reached the final step",
		http.StatusUnprocessableEntity,
	)
	ErrWeekendFullTime = apperror.New(
		apperror.CodeNeedsConfirmation,
		"Scheduling a full time employee on a weekend, confirm to proceed",
		http.StatusConflict,
	)
)

// EmptyJobTasksError menunjuk shift yang bermasalah supaya manajer tahu
// bagian mana dari form yang harus diperbaiki.
func EmptyJobTasksError(shiftName string) error {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("Every frontline employee in %s needs at least one job task", shiftName),
		http.StatusBadRequest,
	)
}

// RepeatedEmployeeError menolak karyawan yang muncul dua kali dalam satu
// shift, baik dua entri frontline maupun frontline sekaligus kitchen.
func RepeatedEmployeeError(shiftName string) error {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("An employee appears more than once in %s", shiftName),
		http.StatusBadRequest,
	)
}

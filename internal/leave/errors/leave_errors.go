package leaveerrors

import (
	"net/http"

	"github.com/abangiyan/hongwei-crew-manager/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidLeaveDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrWeekendLeave = apperror.New(
		apperror.CodeInvalidInput,
		"Leave can only be requested for Monday through Friday",
		http.StatusBadRequest,
	)
	ErrWeekAlreadyTaken = apperror.New(
		apperror.CodeConflict,
		"Employee already has a leave request in this week",
		http.StatusConflict,
	)
	ErrScheduleConflict = apperror.New(
		apperror.CodeNeedsConfirmation,
		"Employee already has a schedule on this date, confirm to proceed",
		http.StatusConflict,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidState,
		"Leave status can only move from pending to approved or rejected",
		http.StatusUnprocessableEntity,
	)
)

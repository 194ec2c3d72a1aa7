package attendanceerrors

import (
	"net/http"

	"go-sitebooks/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)

	ErrAttendanceExists = apperror.New(
		"ATTENDANCE_EXISTS",
		"Attendance for this worker, project and date already exists",
		http.StatusConflict,
	)

	ErrEmptyBatch = apperror.New(
		apperror.CodeInvalidInput,
		"At least one attendance entry is required",
		http.StatusBadRequest,
	)

	ErrDuplicateWorkerInBatch = apperror.New(
		apperror.CodeInvalidInput,
		"A worker appears more than once in the batch",
		http.StatusBadRequest,
	)

	ErrWorkerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Worker not found",
		http.StatusNotFound,
	)

	ErrWorkerInactive = apperror.New(
		apperror.CodeInvalidState,
		"Worker is inactive",
		http.StatusUnprocessableEntity,
	)

	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)

	ErrInvalidWorkDays = apperror.New(
		apperror.CodeInvalidInput,
		"Work days must be between 0 and 2 in steps of 0.25",
		http.StatusBadRequest,
	)

	ErrInvalidDailyWage = apperror.New(
		apperror.CodeInvalidInput,
		"Daily wage must be greater than zero",
		http.StatusBadRequest,
	)

	ErrInvalidPaidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Paid amount must be between 0 and the actual wage",
		http.StatusBadRequest,
	)

	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"Start and end time must be HH:MM with end after start",
		http.StatusBadRequest,
	)
)

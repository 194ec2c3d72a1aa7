package workererrors

import (
	"net/http"

	"go-sitebooks/internal/shared/apperror"
)

var (
	ErrWorkerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Worker not found",
		http.StatusNotFound,
	)

	ErrWorkerNameExists = apperror.New(
		"WORKER_EXISTS",
		"A worker with this name already exists",
		http.StatusConflict,
	)

	ErrInvalidWorkerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid worker ID",
		http.StatusBadRequest,
	)

	ErrInvalidDailyWage = apperror.New(
		apperror.CodeInvalidInput,
		"Daily wage must be greater than zero",
		http.StatusBadRequest,
	)

	ErrInvalidPhone = apperror.New(
		apperror.CodeInvalidInput,
		"Phone number is not valid",
		http.StatusBadRequest,
	)

	ErrWorkerHasLedger = apperror.New(
		apperror.CodeInvalidState,
		"Worker has attendance or transfer records; deactivate instead",
		http.StatusUnprocessableEntity,
	)
)

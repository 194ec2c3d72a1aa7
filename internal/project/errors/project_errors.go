package projecterrors

import (
	"net/http"

	"go-sitebooks/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)

	ErrProjectNameExists = apperror.New(
		"PROJECT_EXISTS",
		"A project with this name already exists",
		http.StatusConflict,
	)

	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project ID",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of active, paused, completed",
		http.StatusBadRequest,
	)

	ErrProjectHasLedger = apperror.New(
		apperror.CodeInvalidState,
		"Project has ledger records and cannot be deleted",
		http.StatusUnprocessableEntity,
	)
)

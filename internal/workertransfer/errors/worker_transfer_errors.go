package workertransfererrors

import (
	"net/http"

	"go-sitebooks/internal/shared/apperror"
)

var (
	ErrTransferNotFound = apperror.New(
		apperror.CodeNotFound,
		"Worker transfer not found",
		http.StatusNotFound,
	)

	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must be greater than zero",
		http.StatusBadRequest,
	)

	ErrInvalidMethod = apperror.New(
		apperror.CodeInvalidInput,
		"Transfer method must be one of hawala, bank, cash",
		http.StatusBadRequest,
	)

	ErrInvalidPhone = apperror.New(
		apperror.CodeInvalidInput,
		"Recipient phone number is invalid",
		http.StatusBadRequest,
	)

	ErrWorkerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Worker not found",
		http.StatusNotFound,
	)

	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
)

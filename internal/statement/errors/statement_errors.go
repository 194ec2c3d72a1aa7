package statementerrors

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

	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)

	ErrSupplierNotFound = apperror.New(
		apperror.CodeNotFound,
		"Supplier not found",
		http.StatusNotFound,
	)

	ErrUnsupportedKind = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported statement kind",
		http.StatusBadRequest,
	)

	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported export format",
		http.StatusBadRequest,
	)

	ErrExportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Export not found",
		http.StatusNotFound,
	)

	ErrExportNotReady = apperror.New(
		"EXPORT_NOT_READY",
		"Export file is not ready",
		http.StatusConflict,
	)
)

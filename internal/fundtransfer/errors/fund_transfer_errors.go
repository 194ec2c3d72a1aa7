package fundtransfererrors

import (
	"net/http"

	"go-sitebooks/internal/shared/apperror"
)

var (
	ErrFundTransferNotFound = apperror.New(
		apperror.CodeNotFound,
		"Fund transfer not found",
		http.StatusNotFound,
	)

	ErrProjectTransferNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project transfer not found",
		http.StatusNotFound,
	)

	ErrTransferNumberExists = apperror.New(
		"TRANSFER_NUMBER_EXISTS",
		"Transfer number already recorded",
		http.StatusConflict,
	)

	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must be greater than zero",
		http.StatusBadRequest,
	)

	ErrSameProject = apperror.New(
		apperror.CodeInvalidInput,
		"Source and destination project must differ",
		http.StatusBadRequest,
	)

	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
)

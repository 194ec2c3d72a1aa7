package suppliererrors

import (
	"net/http"

	"go-sitebooks/internal/shared/apperror"
)

var (
	ErrSupplierNotFound = apperror.New(
		apperror.CodeNotFound,
		"Supplier not found",
		http.StatusNotFound,
	)

	ErrSupplierNameExists = apperror.New(
		"SUPPLIER_EXISTS",
		"A supplier with this name already exists",
		http.StatusConflict,
	)

	ErrInvalidSupplierID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid supplier ID",
		http.StatusBadRequest,
	)

	ErrInvalidPhone = apperror.New(
		apperror.CodeInvalidInput,
		"Phone number is not valid",
		http.StatusBadRequest,
	)

	ErrSupplierHasLedger = apperror.New(
		apperror.CodeInvalidState,
		"Supplier has purchases or payments; deactivate instead",
		http.StatusUnprocessableEntity,
	)

	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Supplier payment not found",
		http.StatusNotFound,
	)

	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must be greater than zero",
		http.StatusBadRequest,
	)

	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)

	ErrPurchaseNotFound = apperror.New(
		apperror.CodeNotFound,
		"Purchase not found for this supplier",
		http.StatusNotFound,
	)

	ErrPaymentExceedsRemaining = apperror.New(
		apperror.CodeInvalidInput,
		"Payment exceeds the remaining amount of the purchase",
		http.StatusBadRequest,
	)
)

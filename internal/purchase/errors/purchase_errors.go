package purchaseerrors

import (
	"net/http"

	"go-sitebooks/internal/shared/apperror"
)

var (
	ErrPurchaseNotFound = apperror.New(
		apperror.CodeNotFound,
		"Purchase not found",
		http.StatusNotFound,
	)

	ErrPurchaseNumberExists = apperror.New(
		"PURCHASE_EXISTS",
		"Purchase number already used",
		http.StatusConflict,
	)

	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be greater than zero",
		http.StatusBadRequest,
	)

	ErrInvalidUnitPrice = apperror.New(
		apperror.CodeInvalidInput,
		"Unit price must not be negative",
		http.StatusBadRequest,
	)

	ErrInvalidPurchaseType = apperror.New(
		apperror.CodeInvalidInput,
		"Purchase type must be cash or credit",
		http.StatusBadRequest,
	)

	ErrSupplierRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Credit purchases require a supplier",
		http.StatusBadRequest,
	)

	ErrInvalidPaidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Paid amount must be between 0 and the total amount",
		http.StatusBadRequest,
	)

	ErrPaidBelowPayments = apperror.New(
		apperror.CodeInvalidState,
		"Paid amount cannot drop below the supplier payments already made",
		http.StatusUnprocessableEntity,
	)

	ErrPurchaseHasPayments = apperror.New(
		apperror.CodeInvalidState,
		"Purchase has supplier payments; delete them first",
		http.StatusUnprocessableEntity,
	)

	ErrPaymentsLinked = apperror.New(
		apperror.CodeInvalidState,
		"Supplier and purchase type cannot change while supplier payments are linked",
		http.StatusUnprocessableEntity,
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
)

package supplier

import (
	"errors"
	"strings"

	suppliererrors "go-sitebooks/internal/supplier/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return suppliererrors.ErrSupplierNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_supplier_name" {
		return suppliererrors.ErrSupplierNameExists
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "uq_supplier_name") {
		return suppliererrors.ErrSupplierNameExists
	}
	return err
}

func mapPaymentError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return suppliererrors.ErrPaymentNotFound
	}
	return err
}

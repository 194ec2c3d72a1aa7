package fundtransfer

import (
	"errors"
	"strings"

	fundtransfererrors "go-sitebooks/internal/fundtransfer/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const transferNumberConstraint = "uq_fund_transfer_number"

func mapRepositoryError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == transferNumberConstraint {
		return fundtransfererrors.ErrTransferNumberExists
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") && strings.Contains(msg, transferNumberConstraint) {
		return fundtransfererrors.ErrTransferNumberExists
	}
	return err
}
